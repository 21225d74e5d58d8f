// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// parser is CommonMark plus the table and strikethrough extensions.
var parser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Parse converts Markdown source into the flat token stream. The stream is
// always balanced: every open token this function emits is paired with its
// close token.
func Parse(source []byte) []Token {
	root := parser.Parser().Parse(text.NewReader(source))
	return flattenChildren(nil, root, source)
}

func flattenChildren(tokens []Token, n ast.Node, source []byte) []Token {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		tokens = flattenNode(tokens, c, source)
	}
	return tokens
}

func flattenNode(tokens []Token, n ast.Node, source []byte) []Token {
	switch t := n.(type) {
	case *ast.Heading:
		tokens = append(tokens, Token{Kind: KindHeadingOpen, Level: t.Level})
		tokens = append(tokens, inlineToken(t, source))
		return append(tokens, Token{Kind: KindHeadingClose, Level: t.Level})

	case *ast.Paragraph:
		tokens = append(tokens, Token{Kind: KindParagraphOpen})
		tokens = append(tokens, inlineToken(t, source))
		return append(tokens, Token{Kind: KindParagraphClose})

	case *ast.TextBlock:
		// Tight list items hold bare text blocks; emit them as paragraphs
		// so list-item scanning sees a uniform shape.
		tokens = append(tokens, Token{Kind: KindParagraphOpen})
		tokens = append(tokens, inlineToken(t, source))
		return append(tokens, Token{Kind: KindParagraphClose})

	case *ast.List:
		open, closing := KindBulletListOpen, KindBulletListClose
		if t.IsOrdered() {
			open, closing = KindOrderedListOpen, KindOrderedListClose
		}
		tokens = append(tokens, Token{Kind: open})
		tokens = flattenChildren(tokens, t, source)
		return append(tokens, Token{Kind: closing})

	case *ast.ListItem:
		tokens = append(tokens, Token{Kind: KindListItemOpen})
		tokens = flattenChildren(tokens, t, source)
		return append(tokens, Token{Kind: KindListItemClose})

	case *ast.Blockquote:
		tokens = append(tokens, Token{Kind: KindBlockquoteOpen})
		tokens = flattenChildren(tokens, t, source)
		return append(tokens, Token{Kind: KindBlockquoteClose})

	case *ast.FencedCodeBlock:
		return append(tokens, Token{Kind: KindFence, Content: rawLines(t, source, false)})

	case *ast.CodeBlock:
		return append(tokens, Token{Kind: KindFence, Content: rawLines(t, source, false)})

	case *ast.ThematicBreak:
		return append(tokens, Token{Kind: KindHorizontalRule})

	default:
		// Tables, raw HTML blocks, and anything else unmapped flatten to a
		// single opaque token the builder skips.
		return append(tokens, Token{Kind: KindOther})
	}
}

// inlineToken builds the single inline token for a block: Content is the raw
// source text of the block's lines, Children the flattened span sequence.
func inlineToken(n ast.Node, source []byte) Token {
	return Token{
		Kind:     KindInline,
		Content:  rawLines(n, source, true),
		Children: appendSpans(nil, n, source),
	}
}

// rawLines joins a block node's source line segments. Inline content drops
// the final line terminator; fence content keeps it.
func rawLines(n ast.Node, source []byte, trim bool) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	s := b.String()
	if trim {
		s = strings.TrimRight(s, "\n")
	}
	return s
}

func appendSpans(spans []Span, n ast.Node, source []byte) []Span {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			spans = append(spans, Span{Kind: SpanText, Content: string(t.Segment.Value(source))})
			if t.HardLineBreak() {
				spans = append(spans, Span{Kind: SpanHardBreak})
			} else if t.SoftLineBreak() {
				spans = append(spans, Span{Kind: SpanSoftBreak})
			}

		case *ast.CodeSpan:
			spans = append(spans, Span{Kind: SpanCodeInline, Content: childText(t, source)})

		case *ast.Emphasis:
			open, closing := SpanEmphOpen, SpanEmphClose
			if t.Level >= 2 {
				open, closing = SpanStrongOpen, SpanStrongClose
			}
			spans = append(spans, Span{Kind: open})
			spans = appendSpans(spans, t, source)
			spans = append(spans, Span{Kind: closing})

		case *ast.Link:
			spans = append(spans, Span{Kind: SpanLinkOpen})
			spans = appendSpans(spans, t, source)
			spans = append(spans, Span{Kind: SpanLinkClose})

		case *ast.AutoLink:
			spans = append(spans, Span{Kind: SpanLinkOpen})
			spans = append(spans, Span{Kind: SpanText, Content: string(t.URL(source))})
			spans = append(spans, Span{Kind: SpanLinkClose})

		case *ast.String:
			spans = append(spans, Span{Kind: SpanOther, Content: string(t.Value)})

		default:
			// Strikethrough and other wrapped inlines: recurse so their
			// text payloads survive as plain spans.
			if c.HasChildren() {
				spans = appendSpans(spans, c, source)
			}
		}
	}
	return spans
}

// childText concatenates the text segments directly under an inline node.
func childText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
