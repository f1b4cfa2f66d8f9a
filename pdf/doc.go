// Package pdf renders a datasheet document to a single-page PDF.
//
// The renderer walks the document top to bottom with an explicit vertical
// cursor: title block, divider rule, one pass per section (heading, body
// lines, inter-section gap), footer pair. Geometry and fonts come from
// Config; the document itself carries no layout.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.Boring = true
//
//	err := pdf.Render(pdf.RenderRequest{
//		Doc:    datasheet.PB86(),
//		Writer: outFile,
//		Config: cfg,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Only the core PDF fonts are used, so output needs no embedded font files.
// Runes outside the core-font code page are folded to ASCII stand-ins of the
// same cell width; see fold.go.
package pdf
