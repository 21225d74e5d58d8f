// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared value types for md2office: the resolved style
// sheet, the partial user style configuration, and conversion statuses.
// Implements: docs/ARCHITECTURE § Data Model.
package types

// Alignment selects paragraph justification for a heading style.
type Alignment string

const (
	// AlignStart aligns paragraphs to the leading edge (left in LTR text).
	AlignStart Alignment = "start"

	// AlignCenter centers paragraphs.
	AlignCenter Alignment = "center"
)

// PageSize is the physical page geometry in millimeters.
type PageSize struct {
	WidthMM  float64 `json:"width_mm" yaml:"width_mm"`
	HeightMM float64 `json:"height_mm" yaml:"height_mm"`
}

// PageMargins are the four page margins in millimeters.
type PageMargins struct {
	TopMM    float64 `json:"top_mm" yaml:"top_mm"`
	BottomMM float64 `json:"bottom_mm" yaml:"bottom_mm"`
	LeftMM   float64 `json:"left_mm" yaml:"left_mm"`
	RightMM  float64 `json:"right_mm" yaml:"right_mm"`
}

// BodyStyle describes the base paragraph style. Chinese and western fonts are
// both required: WordprocessingML assigns east-asian and ascii/hAnsi fonts
// separately, and mixed-script runs render wrong if only one is set.
type BodyStyle struct {
	ChineseFont string `json:"chinese_font" yaml:"chinese_font"`
	WesternFont string `json:"western_font" yaml:"western_font"`
	SizePt      float64 `json:"size_pt" yaml:"size_pt"`

	// LineSpacingPt is exact line spacing in points, not an "at least" value.
	LineSpacingPt float64 `json:"line_spacing_pt" yaml:"line_spacing_pt"`
}

// HeadingStyle describes one of the three configured heading levels.
type HeadingStyle struct {
	Font          string    `json:"font" yaml:"font"`
	SizePt        float64   `json:"size_pt" yaml:"size_pt"`
	Align         Alignment `json:"align" yaml:"align"`
	SpaceBeforePt float64   `json:"space_before_pt" yaml:"space_before_pt"`
	SpaceAfterPt  float64   `json:"space_after_pt" yaml:"space_after_pt"`
}

// HeaderFooterStyle describes page header and footer runs. Text is the
// optional default header text; the --header flag takes precedence over it.
type HeaderFooterStyle struct {
	Font   string  `json:"font" yaml:"font"`
	SizePt float64 `json:"size_pt" yaml:"size_pt"`
	Text   string  `json:"text,omitempty" yaml:"text,omitempty"`
}

// StyleSheet is a fully resolved set of layout and typography parameters.
// Every field is defined after style.Resolve; consumers never see gaps.
type StyleSheet struct {
	Page         PageSize          `json:"page" yaml:"page"`
	Margins      PageMargins       `json:"margins" yaml:"margins"`
	Body         BodyStyle         `json:"body" yaml:"body"`
	Headings     [3]HeadingStyle   `json:"headings" yaml:"headings"`
	HeaderFooter HeaderFooterStyle `json:"header_footer" yaml:"header_footer"`
}

// Heading returns the configured style for heading level 1-3.
// Levels outside that range fall back to level 3.
func (s StyleSheet) Heading(level int) HeadingStyle {
	if level < 1 || level > len(s.Headings) {
		level = len(s.Headings)
	}
	return s.Headings[level-1]
}

// StyleConfig is the partial, user-supplied mirror of StyleSheet as read from
// a YAML or JSON file. Nil pointers mean "use the built-in default"; any
// subset of fields may be present.
type StyleConfig struct {
	Page         *PageConfig         `json:"page,omitempty" yaml:"page,omitempty"`
	Margins      *MarginsConfig      `json:"margins,omitempty" yaml:"margins,omitempty"`
	Body         *BodyConfig         `json:"body,omitempty" yaml:"body,omitempty"`
	Headings     *HeadingsConfig     `json:"headings,omitempty" yaml:"headings,omitempty"`
	HeaderFooter *HeaderFooterConfig `json:"header_footer,omitempty" yaml:"header_footer,omitempty"`
}

// PageConfig optionally overrides page geometry.
type PageConfig struct {
	WidthMM  *float64 `json:"width_mm,omitempty" yaml:"width_mm,omitempty"`
	HeightMM *float64 `json:"height_mm,omitempty" yaml:"height_mm,omitempty"`
}

// MarginsConfig optionally overrides page margins.
type MarginsConfig struct {
	TopMM    *float64 `json:"top_mm,omitempty" yaml:"top_mm,omitempty"`
	BottomMM *float64 `json:"bottom_mm,omitempty" yaml:"bottom_mm,omitempty"`
	LeftMM   *float64 `json:"left_mm,omitempty" yaml:"left_mm,omitempty"`
	RightMM  *float64 `json:"right_mm,omitempty" yaml:"right_mm,omitempty"`
}

// BodyConfig optionally overrides the base paragraph style.
type BodyConfig struct {
	ChineseFont   *string  `json:"chinese_font,omitempty" yaml:"chinese_font,omitempty"`
	WesternFont   *string  `json:"western_font,omitempty" yaml:"western_font,omitempty"`
	SizePt        *float64 `json:"size_pt,omitempty" yaml:"size_pt,omitempty"`
	LineSpacingPt *float64 `json:"line_spacing_pt,omitempty" yaml:"line_spacing_pt,omitempty"`
}

// HeadingsConfig optionally overrides individual heading levels.
type HeadingsConfig struct {
	H1 *HeadingConfig `json:"h1,omitempty" yaml:"h1,omitempty"`
	H2 *HeadingConfig `json:"h2,omitempty" yaml:"h2,omitempty"`
	H3 *HeadingConfig `json:"h3,omitempty" yaml:"h3,omitempty"`
}

// HeadingConfig optionally overrides one heading level.
type HeadingConfig struct {
	Font          *string  `json:"font,omitempty" yaml:"font,omitempty"`
	SizePt        *float64 `json:"size_pt,omitempty" yaml:"size_pt,omitempty"`
	Align         *string  `json:"align,omitempty" yaml:"align,omitempty"`
	SpaceBeforePt *float64 `json:"space_before_pt,omitempty" yaml:"space_before_pt,omitempty"`
	SpaceAfterPt  *float64 `json:"space_after_pt,omitempty" yaml:"space_after_pt,omitempty"`
}

// HeaderFooterConfig optionally overrides header and footer runs.
type HeaderFooterConfig struct {
	Font   *string  `json:"font,omitempty" yaml:"font,omitempty"`
	SizePt *float64 `json:"size_pt,omitempty" yaml:"size_pt,omitempty"`
	Text   *string  `json:"text,omitempty" yaml:"text,omitempty"`
}
