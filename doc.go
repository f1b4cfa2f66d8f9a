// Package datasheet holds the document model and the fixed content for the
// PB86 8-button circuit datasheet.
//
// A datasheet is a flat list of sections, each a heading plus a list of body
// lines. Diagram sections are flagged monospaced so box-drawing characters
// stay aligned; status sections are flagged for colored rendering. The model
// is plain data: all layout decisions (fonts, line heights, colors, page
// geometry) live in the pdf subpackage.
//
// Example:
//
//	doc := datasheet.PB86()
//	err := pdf.Render(pdf.RenderRequest{
//		Doc:    doc,
//		Writer: outFile,
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package datasheet
