package pdf

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"pkt.systems/datasheet"
)

// Title-block and footer offsets, relative to the title baseline and the
// page edges. The datasheet layout was designed in inches; these are the
// point equivalents.
const (
	subtitleOffset     = 21.6
	subtitleStep       = 14.4
	dividerOffset      = 50.4
	sectionStartOffset = 86.4
	dividerWidth       = 2
	footerBottomOffset = 36
	footerRightOffset  = 180
)

// The datasheet carries a fixed date; pinning the PDF timestamps to it, plus
// sorted catalog output, keeps repeated renders byte-identical.
var stampDate = time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Doc    datasheet.Document
	Writer io.Writer
	Config Config
}

// Render writes the document as a single-page PDF.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	if err := datasheet.Validate(req.Doc); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.FontSize <= 0 || cfg.LineHeight <= 0 || cfg.MonoLineHeight <= 0 {
		return fmt.Errorf("pdf render: invalid font configuration")
	}
	if !isCoreFont(cfg.FontFamily) {
		return fmt.Errorf("pdf render: core font family required, got %q", cfg.FontFamily)
	}
	if !isCoreFont(cfg.MonoFontFamily) {
		return fmt.Errorf("pdf render: core mono font family required, got %q", cfg.MonoFontFamily)
	}
	if cfg.Boring {
		cfg.StatusRGB = cfg.TextRGB
	}

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(false, cfg.Margin)
	if cfg.NoCompression {
		doc.SetCompression(false)
	}
	doc.SetCreationDate(stampDate)
	doc.SetModificationDate(stampDate)
	doc.SetCatalogSort(true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()
	doc.SetTextColor(cfg.TextRGB[0], cfg.TextRGB[1], cfg.TextRGB[2])
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: page setup failed: %w", err)
	}

	doc.SetFont(cfg.MonoFontFamily, "", cfg.FontSize)
	charWidth := doc.GetStringWidth("M")
	if math.IsNaN(charWidth) || charWidth <= 0 {
		return fmt.Errorf("pdf render: invalid font metrics (charWidth=%v)", charWidth)
	}
	pageW, _ := doc.GetPageSize()
	cols := int((pageW - 2*cfg.Margin - cfg.Indent) / charWidth)
	if cols < 10 {
		return fmt.Errorf("pdf render: page too narrow for content (cols=%d)", cols)
	}

	r := renderer{doc: doc, cfg: cfg, tr: tr, cols: cols, pageW: pageW}
	y := r.emitTitleBlock(req.Doc, cfg.Margin)
	for _, sec := range req.Doc.Sections {
		y = r.emitSection(sec, y)
	}
	r.emitFooter(req.Doc)

	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

type renderer struct {
	doc   *fpdf.Fpdf
	cfg   Config
	tr    func(string) string
	cols  int
	pageW float64
}

// emitTitleBlock draws the title, subtitles, and divider rule, returning the
// baseline for the first section heading.
func (r *renderer) emitTitleBlock(doc datasheet.Document, y float64) float64 {
	r.doc.SetFont(r.cfg.FontFamily, "B", r.cfg.TitleSize)
	r.doc.Text(r.cfg.Margin, y, r.tr(foldLine(doc.Title)))

	r.doc.SetFont(r.cfg.FontFamily, "", r.cfg.SubtitleSize)
	sub := y + subtitleOffset
	for _, line := range doc.Subtitles {
		r.doc.Text(r.cfg.Margin, sub, r.tr(foldLine(line)))
		sub += subtitleStep
	}

	r.doc.SetDrawColor(r.cfg.TextRGB[0], r.cfg.TextRGB[1], r.cfg.TextRGB[2])
	r.doc.SetLineWidth(dividerWidth)
	r.doc.Line(r.cfg.Margin, y+dividerOffset, r.pageW-r.cfg.Margin, y+dividerOffset)

	return y + sectionStartOffset
}

// emitSection draws one heading and its body at the cursor baseline y,
// returning the baseline for the next heading.
func (r *renderer) emitSection(sec datasheet.Section, y float64) float64 {
	r.doc.SetFont(r.cfg.FontFamily, "B", r.cfg.HeadingSize)
	r.doc.Text(r.cfg.Margin, y, r.tr(foldLine(sec.Heading)))
	y += r.cfg.HeadingGap

	lineHeight := r.cfg.LineHeight
	if sec.Mono {
		r.doc.SetFont(r.cfg.MonoFontFamily, "", r.cfg.FontSize)
		lineHeight = r.cfg.MonoLineHeight
	} else {
		r.doc.SetFont(r.cfg.FontFamily, "", r.cfg.FontSize)
	}
	if sec.Status {
		r.doc.SetTextColor(r.cfg.StatusRGB[0], r.cfg.StatusRGB[1], r.cfg.StatusRGB[2])
	}

	indent := r.cfg.Margin + r.cfg.Indent
	for _, line := range sec.Lines {
		if sec.Mono {
			r.doc.Text(indent, y, r.tr(foldLine(line)))
			y += lineHeight
			continue
		}
		for _, part := range r.wrapProse(line) {
			r.doc.Text(indent, y, r.tr(foldLine(part)))
			y += lineHeight
		}
	}

	if sec.Status {
		r.doc.SetTextColor(r.cfg.TextRGB[0], r.cfg.TextRGB[1], r.cfg.TextRGB[2])
	}
	return y + r.cfg.SectionGap
}

func (r *renderer) emitFooter(doc datasheet.Document) {
	_, pageH := r.doc.GetPageSize()
	y := pageH - footerBottomOffset
	r.doc.SetFont(r.cfg.FontFamily, "", r.cfg.FooterSize)
	r.doc.Text(r.cfg.Margin, y, r.tr(foldLine(doc.FooterLeft)))
	r.doc.Text(r.pageW-footerRightOffset, y, r.tr(foldLine(doc.FooterRight)))
}

// wrapProse splits a proportional-text line that exceeds the column budget.
// Mono diagram lines are never wrapped.
func (r *renderer) wrapProse(line string) []string {
	if line == "" || ansi.PrintableRuneWidth(line) <= r.cols {
		return []string{line}
	}
	return strings.Split(wordwrap.String(line, r.cols), "\n")
}
