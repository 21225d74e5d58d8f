// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown parses Markdown source into the flat token stream the
// document builder walks: a linear sequence of open/close block tokens with
// inline tokens carrying ordered child spans. Parsing itself is delegated to
// goldmark; this package only flattens its AST.
// Implements: docs/ARCHITECTURE § Tokenization.
package markdown

// Kind identifies a block-level token.
type Kind int

const (
	KindOther Kind = iota
	KindHeadingOpen
	KindHeadingClose
	KindParagraphOpen
	KindParagraphClose
	KindInline
	KindBulletListOpen
	KindBulletListClose
	KindOrderedListOpen
	KindOrderedListClose
	KindListItemOpen
	KindListItemClose
	KindFence
	KindBlockquoteOpen
	KindBlockquoteClose
	KindHorizontalRule
)

var kindNames = map[Kind]string{
	KindOther:            "other",
	KindHeadingOpen:      "heading_open",
	KindHeadingClose:     "heading_close",
	KindParagraphOpen:    "paragraph_open",
	KindParagraphClose:   "paragraph_close",
	KindInline:           "inline",
	KindBulletListOpen:   "bullet_list_open",
	KindBulletListClose:  "bullet_list_close",
	KindOrderedListOpen:  "ordered_list_open",
	KindOrderedListClose: "ordered_list_close",
	KindListItemOpen:     "list_item_open",
	KindListItemClose:    "list_item_close",
	KindFence:            "fence",
	KindBlockquoteOpen:   "blockquote_open",
	KindBlockquoteClose:  "blockquote_close",
	KindHorizontalRule:   "hr",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Token is one element of the flattened stream. Level is set on heading
// tokens; Content holds raw source text for inline and fence tokens;
// Children holds the ordered inline spans of an inline token.
type Token struct {
	Kind     Kind
	Level    int
	Content  string
	Children []Span
}

// SpanKind identifies an inline child span.
type SpanKind int

const (
	SpanOther SpanKind = iota
	SpanText
	SpanCodeInline
	SpanSoftBreak
	SpanHardBreak
	SpanEmphOpen
	SpanEmphClose
	SpanStrongOpen
	SpanStrongClose
	SpanLinkOpen
	SpanLinkClose
)

// Span is one inline child: a text payload, an inline code run, a line
// break, or a pure formatting marker with no content of its own.
type Span struct {
	Kind    SpanKind
	Content string
}
