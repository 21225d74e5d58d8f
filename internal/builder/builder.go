// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package builder walks a flat Markdown token stream and appends styled
// blocks to a document: headings, paragraphs, list items, code blocks, block
// quotes, and horizontal rules. It is the fallback rendering core used when
// pandoc is unavailable: a single forward pass with no backtracking that
// never fails on a well-formed stream.
// Implements: docs/ARCHITECTURE § Fallback Renderer.
package builder

import (
	"strings"

	"github.com/pdiddy/md2office/internal/docx"
	"github.com/pdiddy/md2office/internal/markdown"
	"github.com/pdiddy/md2office/pkg/types"
)

const (
	// monospaceFont is the fixed code face for fences and inline code.
	monospaceFont = "Consolas"

	// bulletMarker and orderedMarker prefix list items. The ordered marker
	// is a literal: items are not numbered incrementally.
	bulletMarker  = "•"
	orderedMarker = "1."

	// ruleGlyphs stands in for a horizontal rule.
	ruleGlyphs = "——————"

	listIndent = "    "
)

// listContext records one open list block during the walk.
type listContext struct {
	ordered bool
	depth   int
}

// Build consumes a balanced token stream and returns the populated document.
// Balance is an upstream contract (the tokenizer always produces balanced
// streams) and is not re-validated here.
func Build(tokens []markdown.Token, sheet types.StyleSheet) *docx.Document {
	w := &walker{
		cur:   newCursor(tokens),
		doc:   docx.New(),
		sheet: sheet,
	}
	w.run()
	return w.doc
}

type walker struct {
	cur   *cursor
	doc   *docx.Document
	sheet types.StyleSheet
	lists []listContext
}

func (w *walker) run() {
	for !w.cur.done() {
		tok := w.cur.next()
		switch tok.Kind {
		case markdown.KindHeadingOpen:
			w.heading(tok.Level)

		case markdown.KindParagraphOpen:
			w.paragraph()

		case markdown.KindBulletListOpen:
			w.lists = append(w.lists, listContext{ordered: false, depth: len(w.lists)})

		case markdown.KindOrderedListOpen:
			w.lists = append(w.lists, listContext{ordered: true, depth: len(w.lists)})

		case markdown.KindBulletListClose, markdown.KindOrderedListClose:
			if len(w.lists) > 0 {
				w.lists = w.lists[:len(w.lists)-1]
			}

		case markdown.KindListItemOpen:
			w.listItem()

		case markdown.KindFence:
			w.fence(tok)

		case markdown.KindBlockquoteOpen:
			w.blockquote()

		case markdown.KindHorizontalRule:
			w.doc.AddParagraph(ruleGlyphs)

		default:
			// Unrecognized kinds produce no block.
		}
	}
}

// heading consumes the inline and close tokens following a heading open and
// appends one heading block with the concatenated child text.
func (w *walker) heading(level int) {
	inline := w.cur.next()
	if level > 6 {
		level = 6
	}
	w.doc.AddHeading(inlineText(inline), level)
	w.cur.next() // heading close
}

// paragraph consumes the inline and close tokens following a paragraph open.
func (w *walker) paragraph() {
	inline := w.cur.next()
	if inline.Kind == markdown.KindInline && len(inline.Children) > 0 {
		w.renderInline(inline.Children)
	} else {
		w.doc.AddParagraph("")
	}
	w.cur.next() // paragraph close
}

// renderInline builds one paragraph from a flat span sequence. Emphasis,
// strong, and link markers are consumed without affecting run formatting.
func (w *walker) renderInline(spans []markdown.Span) {
	p := w.doc.AddParagraph("")
	for _, s := range spans {
		switch s.Kind {
		case markdown.SpanText:
			p.AddRun(s.Content)
		case markdown.SpanCodeInline:
			run := p.AddRun(s.Content)
			run.Font = monospaceFont
		case markdown.SpanSoftBreak, markdown.SpanHardBreak:
			p.AddRun("\n")
		case markdown.SpanEmphOpen, markdown.SpanEmphClose,
			markdown.SpanStrongOpen, markdown.SpanStrongClose,
			markdown.SpanLinkOpen, markdown.SpanLinkClose:
			// Formatting markers carry no text.
		default:
			if s.Content != "" {
				p.AddRun(s.Content)
			}
		}
	}
}

// listItem scans to the matching item close, keeping the text of the last
// inline token found, and appends one marker-prefixed paragraph indented by
// the current nesting depth.
func (w *walker) listItem() {
	var text string
	w.cur.scanToClose(markdown.KindListItemOpen, markdown.KindListItemClose, func(t markdown.Token) {
		if t.Kind == markdown.KindInline && len(t.Children) > 0 {
			text = inlineText(t)
		}
	})

	marker := bulletMarker
	if n := len(w.lists); n > 0 && w.lists[n-1].ordered {
		marker = orderedMarker
	}
	indent := ""
	if n := len(w.lists); n > 1 {
		indent = strings.Repeat(listIndent, n-1)
	}

	p := w.doc.AddParagraph(indent + marker + " " + text)
	p.LineSpacingPt = w.sheet.Body.LineSpacingPt
}

// fence appends one monospace paragraph, stripping a single trailing line
// terminator from the raw code text.
func (w *walker) fence(tok markdown.Token) {
	p := w.doc.AddParagraph("")
	run := p.AddRun(strings.TrimSuffix(tok.Content, "\n"))
	run.Font = monospaceFont
}

// blockquote collects the raw content of every inline token up to the
// matching close and appends one "> "-prefixed paragraph per collected
// string.
func (w *walker) blockquote() {
	var lines []string
	w.cur.scanToClose(markdown.KindBlockquoteOpen, markdown.KindBlockquoteClose, func(t markdown.Token) {
		if t.Kind == markdown.KindInline && t.Content != "" {
			lines = append(lines, t.Content)
		}
	})
	for _, line := range lines {
		w.doc.AddParagraph("> " + line)
	}
}

// inlineText concatenates the plain text of an inline token's child spans.
// Spans without a direct text payload contribute nothing.
func inlineText(tok markdown.Token) string {
	var b strings.Builder
	for _, s := range tok.Children {
		b.WriteString(s.Content)
	}
	return b.String()
}
