// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx holds an in-memory model of a WordprocessingML document and a
// writer that serializes it as a .docx package. The model is deliberately
// small: one section, named paragraph styles, header/footer parts, and a flat
// sequence of paragraphs made of runs.
// Implements: docs/ARCHITECTURE § Document Model, § Serialization.
package docx

// Section holds the single-section page geometry in millimeters.
type Section struct {
	PageWidthMM    float64
	PageHeightMM   float64
	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64
}

// NamedStyle is a paragraph style written to styles.xml. EastAsiaFont and
// AsciiFont are assigned separately so mixed-script runs pick the right face.
type NamedStyle struct {
	ID   string // e.g. "Heading1"
	Name string // e.g. "heading 1"

	EastAsiaFont string
	AsciiFont    string
	SizePt       float64

	// Align is "center" or "" (leading edge).
	Align string

	SpaceBeforePt float64
	SpaceAfterPt  float64

	// LineSpacingPt, when non-zero, is exact line spacing in points.
	LineSpacingPt float64
}

// Run is a contiguous span of text sharing one formatting override.
type Run struct {
	Text string

	// Font, when set, overrides the run font for all scripts. Used for
	// the monospace code face.
	Font string

	// SizePt, when non-zero, overrides the run size. Used by header and
	// footer runs.
	SizePt float64
}

// Paragraph is one block in the document body, header, or footer.
type Paragraph struct {
	// StyleID references a named style; empty means Normal.
	StyleID string

	// LineSpacingPt, when non-zero, forces exact line spacing on this
	// paragraph regardless of its style.
	LineSpacingPt float64

	Runs []Run
}

// AddRun appends a plain text run and returns it for further overrides.
func (p *Paragraph) AddRun(text string) *Run {
	p.Runs = append(p.Runs, Run{Text: text})
	return &p.Runs[len(p.Runs)-1]
}

// HeaderFooter is the content of a header or footer part.
type HeaderFooter struct {
	Paragraphs []*Paragraph
}

// AddParagraph appends an empty paragraph to the part and returns it.
func (h *HeaderFooter) AddParagraph() *Paragraph {
	p := &Paragraph{}
	h.Paragraphs = append(h.Paragraphs, p)
	return p
}

// Document is the mutable output object. It is owned by one builder for the
// duration of a conversion and read-only once handed to the writer.
type Document struct {
	Section Section

	// Normal is the base body style; Headings holds styles registered by
	// the applier, keyed order preserved for styles.xml output.
	Normal   NamedStyle
	Headings []NamedStyle

	Header HeaderFooter
	Footer HeaderFooter

	Paragraphs []*Paragraph
}

// New returns an empty document. A freshly created document mirrors the
// default template: one empty footer paragraph exists so footer restyling has
// something to stamp, and nothing else.
func New() *Document {
	d := &Document{Normal: NamedStyle{ID: "Normal", Name: "Normal"}}
	d.Footer.AddParagraph()
	return d
}

// AddParagraph appends a body paragraph with the given text. Empty text
// yields a paragraph with no runs.
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.AddRun(text)
	}
	d.Paragraphs = append(d.Paragraphs, p)
	return p
}

// AddHeading appends a paragraph referencing the named heading style for the
// given level (1-9 per WordprocessingML; callers clamp as needed).
func (d *Document) AddHeading(text string, level int) *Paragraph {
	p := d.AddParagraph(text)
	p.StyleID = headingStyleID(level)
	return p
}

// SetHeadingStyle registers or replaces the named style for a heading level.
func (d *Document) SetHeadingStyle(level int, s NamedStyle) {
	s.ID = headingStyleID(level)
	s.Name = headingStyleName(level)
	for i := range d.Headings {
		if d.Headings[i].ID == s.ID {
			d.Headings[i] = s
			return
		}
	}
	d.Headings = append(d.Headings, s)
}
