// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"github.com/pdiddy/md2office/internal/docx"
	"github.com/pdiddy/md2office/pkg/types"
)

// Apply stamps a resolved style sheet onto a document: section geometry, the
// Normal base style with its east-asian/western font split, the three named
// heading styles, and header/footer runs. headerText, when non-empty, takes
// precedence over sheet.HeaderFooter.Text; when both are empty no header run
// is written. Apply is idempotent; a second call overwrites the same values.
func Apply(d *docx.Document, sheet types.StyleSheet, headerText string) {
	d.Section = docx.Section{
		PageWidthMM:    sheet.Page.WidthMM,
		PageHeightMM:   sheet.Page.HeightMM,
		MarginTopMM:    sheet.Margins.TopMM,
		MarginBottomMM: sheet.Margins.BottomMM,
		MarginLeftMM:   sheet.Margins.LeftMM,
		MarginRightMM:  sheet.Margins.RightMM,
	}

	d.Normal = docx.NamedStyle{
		ID:            "Normal",
		Name:          "Normal",
		EastAsiaFont:  sheet.Body.ChineseFont,
		AsciiFont:     sheet.Body.WesternFont,
		SizePt:        sheet.Body.SizePt,
		LineSpacingPt: sheet.Body.LineSpacingPt,
	}

	for level := 1; level <= len(sheet.Headings); level++ {
		h := sheet.Heading(level)
		align := ""
		if h.Align == types.AlignCenter {
			align = "center"
		}
		d.SetHeadingStyle(level, docx.NamedStyle{
			EastAsiaFont:  h.Font,
			AsciiFont:     h.Font,
			SizePt:        h.SizePt,
			Align:         align,
			SpaceBeforePt: h.SpaceBeforePt,
			SpaceAfterPt:  h.SpaceAfterPt,
		})
	}

	if headerText == "" {
		headerText = sheet.HeaderFooter.Text
	}
	if headerText != "" {
		var p *docx.Paragraph
		if len(d.Header.Paragraphs) > 0 {
			p = d.Header.Paragraphs[0]
		} else {
			p = d.Header.AddParagraph()
		}
		p.Runs = p.Runs[:0]
		run := p.AddRun(headerText)
		run.Font = sheet.HeaderFooter.Font
		run.SizePt = sheet.HeaderFooter.SizePt
	}

	// Re-stamp whatever footer runs the template defines; never fabricate
	// footer text.
	for _, p := range d.Footer.Paragraphs {
		for i := range p.Runs {
			p.Runs[i].Font = sheet.HeaderFooter.Font
			p.Runs[i].SizePt = sheet.HeaderFooter.SizePt
		}
	}
}
