// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"encoding/xml"
	"fmt"
)

const nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

func headingStyleID(level int) string {
	return fmt.Sprintf("Heading%d", level)
}

func headingStyleName(level int) string {
	return fmt.Sprintf("heading %d", level)
}

// Marshal-only mirrors of the styles.xml part. Field order follows the
// CT_Style child sequence Word expects: name, basedOn, next, qFormat,
// pPr, rPr.

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlFonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
}

type xmlSpacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type xmlPPr struct {
	Spacing    *xmlSpacing `xml:"w:spacing"`
	Jc         *xmlVal     `xml:"w:jc"`
	OutlineLvl *xmlVal     `xml:"w:outlineLvl"`
}

type xmlRPr struct {
	Fonts *xmlFonts `xml:"w:rFonts"`
	Sz    *xmlVal   `xml:"w:sz"`
	SzCs  *xmlVal   `xml:"w:szCs"`
}

type xmlStyle struct {
	Type    string    `xml:"w:type,attr"`
	StyleID string    `xml:"w:styleId,attr"`
	Default string    `xml:"w:default,attr,omitempty"`
	Name    xmlVal    `xml:"w:name"`
	BasedOn *xmlVal   `xml:"w:basedOn"`
	Next    *xmlVal   `xml:"w:next"`
	QFormat *struct{} `xml:"w:qFormat"`
	PPr     *xmlPPr   `xml:"w:pPr"`
	RPr     *xmlRPr   `xml:"w:rPr"`
}

type xmlStyles struct {
	XMLName xml.Name   `xml:"w:styles"`
	NS      string     `xml:"xmlns:w,attr"`
	Styles  []xmlStyle `xml:"w:style"`
}

func styleRPr(s NamedStyle) *xmlRPr {
	rpr := &xmlRPr{}
	if s.AsciiFont != "" || s.EastAsiaFont != "" {
		rpr.Fonts = &xmlFonts{
			ASCII:    s.AsciiFont,
			HAnsi:    s.AsciiFont,
			EastAsia: s.EastAsiaFont,
			CS:       s.AsciiFont,
		}
	}
	if s.SizePt > 0 {
		half := itoa(ptToHalfPoints(s.SizePt))
		rpr.Sz = &xmlVal{Val: half}
		rpr.SzCs = &xmlVal{Val: half}
	}
	if rpr.Fonts == nil && rpr.Sz == nil {
		return nil
	}
	return rpr
}

func stylePPr(s NamedStyle, outlineLevel int) *xmlPPr {
	ppr := &xmlPPr{}
	sp := &xmlSpacing{}
	if s.SpaceBeforePt > 0 {
		sp.Before = itoa(ptToTwips(s.SpaceBeforePt))
	}
	if s.SpaceAfterPt > 0 {
		sp.After = itoa(ptToTwips(s.SpaceAfterPt))
	}
	if s.LineSpacingPt > 0 {
		sp.Line = itoa(ptToTwips(s.LineSpacingPt))
		sp.LineRule = "exact"
	}
	if *sp != (xmlSpacing{}) {
		ppr.Spacing = sp
	}
	if s.Align == "center" {
		ppr.Jc = &xmlVal{Val: "center"}
	}
	if outlineLevel >= 0 {
		ppr.OutlineLvl = &xmlVal{Val: itoa(outlineLevel)}
	}
	if ppr.Spacing == nil && ppr.Jc == nil && ppr.OutlineLvl == nil {
		return nil
	}
	return ppr
}

// stylesXML serializes the Normal style and all registered heading styles.
func stylesXML(d *Document) ([]byte, error) {
	parts := xmlStyles{NS: nsMain}

	parts.Styles = append(parts.Styles, xmlStyle{
		Type:    "paragraph",
		StyleID: "Normal",
		Default: "1",
		Name:    xmlVal{Val: "Normal"},
		PPr:     stylePPr(d.Normal, -1),
		RPr:     styleRPr(d.Normal),
	})

	for _, h := range d.Headings {
		var level int
		fmt.Sscanf(h.ID, "Heading%d", &level)
		parts.Styles = append(parts.Styles, xmlStyle{
			Type:    "paragraph",
			StyleID: h.ID,
			Name:    xmlVal{Val: h.Name},
			BasedOn: &xmlVal{Val: "Normal"},
			Next:    &xmlVal{Val: "Normal"},
			QFormat: &struct{}{},
			PPr:     stylePPr(h, level-1),
			RPr:     styleRPr(h),
		})
	}

	out, err := xml.Marshal(parts)
	if err != nil {
		return nil, fmt.Errorf("marshaling styles part: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
