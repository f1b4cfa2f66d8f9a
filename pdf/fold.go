package pdf

import "strings"

// The core PDF fonts encode cp1252 only. Runes outside it fold to ASCII
// stand-ins. Box-drawing glyphs fold one-to-one so diagram columns keep
// their width; the remaining folds (Ω, ✅, arrows) favor readability over
// width and only ever appear in trailing annotation text. Anything else
// beyond the code page is dropped.
var coreFontFolds = map[rune]string{
	'─': "-",
	'│': "|",
	'┌': "+",
	'┐': "+",
	'└': "+",
	'┘': "+",
	'├': "+",
	'┤': "+",
	'┬': "+",
	'┴': "+",
	'┼': "+",
	'Ω': "ohm",
	'≈': "~",
	'✅': "[OK]",
	'❌': "[FAIL]",
	'→': "->",
	'←': "<-",
	'…': "...",
}

func foldLine(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		default:
			if sub, ok := coreFontFolds[r]; ok {
				b.WriteString(sub)
			} else if r < 0x100 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
