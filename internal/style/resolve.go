// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style resolves user style configuration against built-in defaults
// and applies the resolved sheet to a document.
// Implements: docs/ARCHITECTURE § Style Pipeline.
package style

import (
	"github.com/pdiddy/md2office/pkg/types"
)

// Defaults returns the built-in style sheet: A4 pages, thesis margins,
// SimSun/Times New Roman body at 12pt with exact 20pt line spacing, SimHei
// headings, and 9pt header/footer runs. Returned by value so callers can
// never contaminate the defaults of a later conversion.
func Defaults() types.StyleSheet {
	return types.StyleSheet{
		Page: types.PageSize{WidthMM: 210, HeightMM: 297},
		Margins: types.PageMargins{
			TopMM:    30,
			BottomMM: 25,
			LeftMM:   30,
			RightMM:  25,
		},
		Body: types.BodyStyle{
			ChineseFont:   "SimSun",
			WesternFont:   "Times New Roman",
			SizePt:        12,
			LineSpacingPt: 20,
		},
		Headings: [3]types.HeadingStyle{
			{Font: "SimHei", SizePt: 16, Align: types.AlignCenter, SpaceBeforePt: 12, SpaceAfterPt: 12},
			{Font: "SimHei", SizePt: 14, Align: types.AlignStart, SpaceBeforePt: 12, SpaceAfterPt: 12},
			{Font: "SimHei", SizePt: 12, Align: types.AlignStart, SpaceBeforePt: 12, SpaceAfterPt: 12},
		},
		HeaderFooter: types.HeaderFooterStyle{Font: "SimSun", SizePt: 9},
	}
}

// Resolve merges a partial user configuration over the built-in defaults and
// returns a fully populated style sheet. cfg may be nil (defaults only);
// every field supplied in cfg is taken verbatim, every omitted field comes
// from Defaults. Resolution is total: no error conditions exist.
func Resolve(cfg *types.StyleConfig) types.StyleSheet {
	sheet := Defaults()
	if cfg == nil {
		return sheet
	}

	if p := cfg.Page; p != nil {
		setF(&sheet.Page.WidthMM, p.WidthMM)
		setF(&sheet.Page.HeightMM, p.HeightMM)
	}
	if m := cfg.Margins; m != nil {
		setF(&sheet.Margins.TopMM, m.TopMM)
		setF(&sheet.Margins.BottomMM, m.BottomMM)
		setF(&sheet.Margins.LeftMM, m.LeftMM)
		setF(&sheet.Margins.RightMM, m.RightMM)
	}
	if b := cfg.Body; b != nil {
		setS(&sheet.Body.ChineseFont, b.ChineseFont)
		setS(&sheet.Body.WesternFont, b.WesternFont)
		setF(&sheet.Body.SizePt, b.SizePt)
		setF(&sheet.Body.LineSpacingPt, b.LineSpacingPt)
		// The header/footer face defaults to the body chinese font; follow
		// it unless the header_footer section overrides it explicitly.
		if b.ChineseFont != nil && (cfg.HeaderFooter == nil || cfg.HeaderFooter.Font == nil) {
			sheet.HeaderFooter.Font = *b.ChineseFont
		}
	}
	if hs := cfg.Headings; hs != nil {
		mergeHeading(&sheet.Headings[0], hs.H1)
		mergeHeading(&sheet.Headings[1], hs.H2)
		mergeHeading(&sheet.Headings[2], hs.H3)
	}
	if hf := cfg.HeaderFooter; hf != nil {
		setS(&sheet.HeaderFooter.Font, hf.Font)
		setF(&sheet.HeaderFooter.SizePt, hf.SizePt)
		setS(&sheet.HeaderFooter.Text, hf.Text)
	}
	return sheet
}

func mergeHeading(dst *types.HeadingStyle, src *types.HeadingConfig) {
	if src == nil {
		return
	}
	setS(&dst.Font, src.Font)
	setF(&dst.SizePt, src.SizePt)
	if src.Align != nil {
		if a := types.Alignment(*src.Align); a == types.AlignStart || a == types.AlignCenter {
			dst.Align = a
		}
	}
	setF(&dst.SpaceBeforePt, src.SpaceBeforePt)
	setF(&dst.SpaceAfterPt, src.SpaceAfterPt)
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setS(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
