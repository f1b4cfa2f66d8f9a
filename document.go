package datasheet

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 text")
	// ErrControlRune reports a control rune embedded in text.
	ErrControlRune = errors.New("control rune in text")
	// ErrEmptyHeading reports a section without a heading.
	ErrEmptyHeading = errors.New("empty section heading")
	// ErrDuplicateHeading reports two sections sharing a heading.
	ErrDuplicateHeading = errors.New("duplicate section heading")
	// ErrEmptyDocument reports a document without sections.
	ErrEmptyDocument = errors.New("document has no sections")
)

// Section is one labeled block of the datasheet: a heading followed by body
// lines drawn at a fixed indent. Empty lines are kept and act as vertical
// spacing. Mono sections render in a fixed-width font and never wrap so
// line-art columns stay aligned. Status sections render in the status color.
type Section struct {
	Heading string
	Lines   []string
	Mono    bool
	Status  bool
}

// Document is a complete single-page datasheet: a title block, the ordered
// sections, and a footer pair.
type Document struct {
	Title       string
	Subtitles   []string
	Sections    []Section
	FooterLeft  string
	FooterRight string
}

// Validate returns an error if the document cannot be rendered: missing or
// duplicate headings, no sections at all, or text that is not clean UTF-8.
func Validate(doc Document) error {
	if len(doc.Sections) == 0 {
		return ErrEmptyDocument
	}
	if err := validateText(doc.Title); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	for i, line := range doc.Subtitles {
		if err := validateText(line); err != nil {
			return fmt.Errorf("subtitle %d: %w", i+1, err)
		}
	}
	seen := make(map[string]struct{}, len(doc.Sections))
	for _, sec := range doc.Sections {
		if sec.Heading == "" {
			return ErrEmptyHeading
		}
		if err := validateText(sec.Heading); err != nil {
			return fmt.Errorf("section %q: %w", sec.Heading, err)
		}
		if _, ok := seen[sec.Heading]; ok {
			return fmt.Errorf("section %q: %w", sec.Heading, ErrDuplicateHeading)
		}
		seen[sec.Heading] = struct{}{}
		for i, line := range sec.Lines {
			if err := validateText(line); err != nil {
				return fmt.Errorf("section %q line %d: %w", sec.Heading, i+1, err)
			}
		}
	}
	if err := validateText(doc.FooterLeft); err != nil {
		return fmt.Errorf("footer: %w", err)
	}
	if err := validateText(doc.FooterRight); err != nil {
		return fmt.Errorf("footer: %w", err)
	}
	return nil
}

func validateText(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	for _, r := range s {
		if isControlRune(r) {
			return ErrControlRune
		}
	}
	return nil
}

// Lines are single-line by construction, so tabs and newlines count as
// control runes too.
func isControlRune(r rune) bool {
	return r < 0x20 || r == 0x7F
}
