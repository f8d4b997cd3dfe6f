// Package docx builds a Word document straight from the resume data, one
// paragraph and run at a time, and serializes it as OOXML.
package docx

import "strings"

type Align string

const (
	AlignLeft   Align = ""
	AlignCenter Align = "center"
)

// Spacing is in twentieths of a point. Line is the line height in 240ths of
// a line; zero leaves it unset.
type Spacing struct {
	Before int
	After  int
	Line   int
}

// Border is a bottom paragraph border. Size is in eighths of a point.
type Border struct {
	Color string
	Space int
	Size  int
}

type Run struct {
	Text   string
	Bold   bool
	Italic bool
	// Size is in half-points; zero keeps the document default.
	Size  int
	Color string
	Font  string
}

type Paragraph struct {
	Runs       []Run
	Spacing    Spacing
	Border     *Border
	IndentLeft int
	Align      Align
}

// Text concatenates the paragraph's runs.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Blank reports whether the paragraph is a spacing-only paragraph.
func (p Paragraph) Blank() bool { return len(p.Runs) == 0 }

type Document struct {
	Title      string
	Paragraphs []Paragraph
}

// Texts returns the text of every non-blank paragraph.
func (d *Document) Texts() []string {
	var out []string
	for _, p := range d.Paragraphs {
		if !p.Blank() {
			out = append(out, p.Text())
		}
	}
	return out
}
