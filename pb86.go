package datasheet

// PB86 returns the datasheet for the PB86 8-button circuit: MCP23017 button
// inputs over I2C, 74HC595 LED outputs over SPI. The analysis numbers are
// presentational facts from the validated design, not computed here.
func PB86() Document {
	return Document{
		Title: "PB86 8-Button Circuit Schematic",
		Subtitles: []string{
			"SPICE Validated: LED current 15mA, Power 120mA total",
			"Date: January 16, 2026",
		},
		Sections: []Section{
			{
				Heading: "CIRCUIT OVERVIEW",
				Lines: []string{
					"This circuit implements 8 PB86 push buttons with built-in LEDs.",
					"",
					"Components:",
					"  - MCP23017: I2C I/O Expander (button inputs)",
					"  - 74HC595: 8-bit Shift Register (LED outputs)",
					"  - 8x PB86: Push buttons with LEDs",
					"  - 8x 150Ω: Current limiting resistors",
					"",
					"Interfaces:",
					"  - I2C: SDA, SCL (MCP23017 control)",
					"  - SPI: DATA, LATCH, CLOCK (74HC595 control)",
				},
			},
			{
				Heading: "BUTTON INPUT CIRCUIT",
				Mono:    true,
				Lines: []string{
					"     +5V",
					"      │",
					"      │  (100kΩ internal pull-up)",
					"      │",
					"      ├─────── GPB0 (MCP23017)",
					"      │",
					"     ─┴─  PB86 Button",
					"      │  (Pins 1-2: NO switch)",
					"      │",
					"     GND",
				},
			},
			{
				Heading: "LED OUTPUT CIRCUIT",
				Mono:    true,
				Lines: []string{
					"      QA (74HC595)",
					"       │",
					"       │",
					"      ─┴─  R1 (150Ω)",
					"       │",
					"       │",
					"      ─┴─  LED1 Anode (+)",
					"       │",
					"      ─┴─  LED1 Cathode (-)",
					"       │",
					"      GND",
				},
			},
			{
				Heading: "COMPONENT VALUES",
				Lines: []string{
					"Resistors:",
					"  R1-R8: 150Ω, 1/4W, 5% (current limiting)",
					"  Pull-ups: 100kΩ (MCP23017 internal)",
					"",
					"LEDs:",
					"  D1-D8: Red LED, 20mA max, Vf ≈ 2.0V",
					"",
					"ICs:",
					"  MCP23017: I2C I/O Expander (DIP-28)",
					"  74HC595: 8-bit Shift Register (DIP-16)",
				},
			},
			{
				Heading: "CIRCUIT ANALYSIS",
				Lines: []string{
					"LED Current:",
					"  I_LED = (V_CC - V_LED) / R_total",
					"  I_LED = (5V - 2V) / 200Ω = 15mA ✅",
					"",
					"Power Consumption:",
					"  Per LED: 15mA",
					"  All LEDs ON: 8 × 15mA = 120mA",
					"  Total: ~120.4mA ✅",
					"",
					"Button Detection:",
					"  Released: 5V (through pull-up)",
					"  Pressed: 0V (connected to GND)",
				},
			},
			{
				Heading: "VALIDATION STATUS",
				Status:  true,
				Lines: []string{
					"✅ SPICE simulation completed",
					"✅ LED current: 15mA (safe)",
					"✅ Power consumption: ~120mA (acceptable)",
					"✅ Button detection: 5V/0V logic (reliable)",
					"✅ Circuit ready for breadboard prototype",
				},
			},
			{
				Heading: "NEXT STEPS",
				Lines: []string{
					"1. Build breadboard prototype",
					"2. Test button detection and LED control",
					"3. Write firmware for MCP23017/74HC595",
					"4. Design PCB layout in KiCad",
				},
			},
		},
		FooterLeft:  "Generated by pkt.systems/datasheet",
		FooterRight: "Page 1 of 1",
	}
}
