package pdf

// Config holds page geometry and typography. All lengths are in points.
type Config struct {
	PageSize       string
	Margin         float64
	Indent         float64
	FontFamily     string
	MonoFontFamily string
	FontSize       float64
	TitleSize      float64
	SubtitleSize   float64
	HeadingSize    float64
	FooterSize     float64
	LineHeight     float64
	MonoLineHeight float64
	HeadingGap     float64
	SectionGap     float64
	TextRGB        [3]int
	StatusRGB      [3]int
	Boring         bool
	NoCompression  bool
}

// DefaultConfig returns the baseline layout: A4, one-inch margins, Helvetica
// body with Courier diagrams, and the line heights the datasheet was
// designed around.
func DefaultConfig() Config {
	return Config{
		PageSize:       "A4",
		Margin:         72,
		Indent:         14.4,
		FontFamily:     "Helvetica",
		MonoFontFamily: "Courier",
		FontSize:       10,
		TitleSize:      16,
		SubtitleSize:   12,
		HeadingSize:    14,
		FooterSize:     8,
		LineHeight:     18,
		MonoLineHeight: 14.4,
		HeadingGap:     28.8,
		SectionGap:     21.6,
		TextRGB:        [3]int{0, 0, 0},
		StatusRGB:      [3]int{0, 128, 0},
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.Indent > 0 {
		dst.Indent = src.Indent
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.MonoFontFamily != "" {
		dst.MonoFontFamily = src.MonoFontFamily
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.TitleSize > 0 {
		dst.TitleSize = src.TitleSize
	}
	if src.SubtitleSize > 0 {
		dst.SubtitleSize = src.SubtitleSize
	}
	if src.HeadingSize > 0 {
		dst.HeadingSize = src.HeadingSize
	}
	if src.FooterSize > 0 {
		dst.FooterSize = src.FooterSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.MonoLineHeight > 0 {
		dst.MonoLineHeight = src.MonoLineHeight
	}
	if src.HeadingGap > 0 {
		dst.HeadingGap = src.HeadingGap
	}
	if src.SectionGap > 0 {
		dst.SectionGap = src.SectionGap
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.StatusRGB != [3]int{} {
		dst.StatusRGB = src.StatusRGB
	}
	if src.Boring {
		dst.Boring = src.Boring
	}
	if src.NoCompression {
		dst.NoCompression = src.NoCompression
	}
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times", "Symbol", "ZapfDingbats":
		return true
	default:
		return false
	}
}
