// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []Token, want []Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", kinds(got), want)
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Fatalf("token %d = %v, want %v (full stream: %v)", i, got[i].Kind, want[i], kinds(got))
		}
	}
}

func TestParse_Paragraph(t *testing.T) {
	tokens := Parse([]byte("Hello world.\n"))

	assertKinds(t, tokens, []Kind{KindParagraphOpen, KindInline, KindParagraphClose})

	inline := tokens[1]
	if inline.Content != "Hello world." {
		t.Errorf("inline content = %q, want %q", inline.Content, "Hello world.")
	}
	if len(inline.Children) != 1 || inline.Children[0].Kind != SpanText || inline.Children[0].Content != "Hello world." {
		t.Errorf("children = %+v, want one text span", inline.Children)
	}
}

func TestParse_Heading(t *testing.T) {
	tokens := Parse([]byte("## Title\n"))

	assertKinds(t, tokens, []Kind{KindHeadingOpen, KindInline, KindHeadingClose})

	if tokens[0].Level != 2 || tokens[2].Level != 2 {
		t.Errorf("levels = %d/%d, want 2/2", tokens[0].Level, tokens[2].Level)
	}
	if tokens[1].Content != "Title" {
		t.Errorf("inline content = %q, want Title", tokens[1].Content)
	}
}

func TestParse_NestedList(t *testing.T) {
	src := "- a\n  - b\n"

	tokens := Parse([]byte(src))

	assertKinds(t, tokens, []Kind{
		KindBulletListOpen,
		KindListItemOpen,
		KindParagraphOpen, KindInline, KindParagraphClose,
		KindBulletListOpen,
		KindListItemOpen,
		KindParagraphOpen, KindInline, KindParagraphClose,
		KindListItemClose,
		KindBulletListClose,
		KindListItemClose,
		KindBulletListClose,
	})
}

func TestParse_OrderedList(t *testing.T) {
	tokens := Parse([]byte("1. one\n2. two\n"))

	got := kinds(tokens)
	if got[0] != KindOrderedListOpen || got[len(got)-1] != KindOrderedListClose {
		t.Errorf("stream not wrapped in ordered list tokens: %v", got)
	}
}

func TestParse_FenceKeepsTrailingNewline(t *testing.T) {
	tokens := Parse([]byte("```\nx=1\n```\n"))

	assertKinds(t, tokens, []Kind{KindFence})
	if tokens[0].Content != "x=1\n" {
		t.Errorf("fence content = %q, want %q", tokens[0].Content, "x=1\n")
	}
}

func TestParse_Blockquote(t *testing.T) {
	tokens := Parse([]byte("> quoted\n"))

	assertKinds(t, tokens, []Kind{
		KindBlockquoteOpen,
		KindParagraphOpen, KindInline, KindParagraphClose,
		KindBlockquoteClose,
	})
	if tokens[2].Content != "quoted" {
		t.Errorf("inline content = %q, want quoted", tokens[2].Content)
	}
}

func TestParse_HorizontalRule(t *testing.T) {
	tokens := Parse([]byte("---\n"))

	assertKinds(t, tokens, []Kind{KindHorizontalRule})
}

func TestParse_InlineSpans(t *testing.T) {
	tokens := Parse([]byte("plain *em* **strong** `code` [text](https://example.com)\n"))

	inline := tokens[1]
	var got []SpanKind
	for _, s := range inline.Children {
		got = append(got, s.Kind)
	}

	want := []SpanKind{
		SpanText,
		SpanEmphOpen, SpanText, SpanEmphClose,
		SpanText,
		SpanStrongOpen, SpanText, SpanStrongClose,
		SpanText,
		SpanCodeInline,
		SpanText,
		SpanLinkOpen, SpanText, SpanLinkClose,
	}
	if len(got) != len(want) {
		t.Fatalf("span kinds = %v, want %v (spans: %+v)", got, want, inline.Children)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("span %d = %v, want %v (spans: %+v)", i, got[i], want[i], inline.Children)
		}
	}

	var code string
	for _, s := range inline.Children {
		if s.Kind == SpanCodeInline {
			code = s.Content
		}
	}
	if code != "code" {
		t.Errorf("code span content = %q, want code", code)
	}
}

func TestParse_SoftBreak(t *testing.T) {
	tokens := Parse([]byte("line one\nline two\n"))

	assertKinds(t, tokens, []Kind{KindParagraphOpen, KindInline, KindParagraphClose})

	var sawSoftBreak bool
	for _, s := range tokens[1].Children {
		if s.Kind == SpanSoftBreak {
			sawSoftBreak = true
		}
	}
	if !sawSoftBreak {
		t.Errorf("no soft break span in %+v", tokens[1].Children)
	}
	if tokens[1].Content != "line one\nline two" {
		t.Errorf("raw content = %q, want both lines joined", tokens[1].Content)
	}
}

func TestParse_TableFlattensToOther(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	tokens := Parse([]byte(src))

	for _, tok := range tokens {
		if tok.Kind != KindOther {
			t.Fatalf("table produced %v token, want only %v: %v", tok.Kind, KindOther, kinds(tokens))
		}
	}
}

func TestParse_BalancedStream(t *testing.T) {
	src := strings.Join([]string{
		"# H1",
		"",
		"para",
		"",
		"- a",
		"  - b",
		"",
		"> quote",
		"",
		"```",
		"code",
		"```",
		"",
		"---",
		"",
	}, "\n")

	tokens := Parse([]byte(src))

	opens := map[Kind]Kind{
		KindHeadingOpen:     KindHeadingClose,
		KindParagraphOpen:   KindParagraphClose,
		KindBulletListOpen:  KindBulletListClose,
		KindOrderedListOpen: KindOrderedListClose,
		KindListItemOpen:    KindListItemClose,
		KindBlockquoteOpen:  KindBlockquoteClose,
	}
	counts := map[Kind]int{}
	for _, tok := range tokens {
		counts[tok.Kind]++
	}
	for open, closing := range opens {
		if counts[open] != counts[closing] {
			t.Errorf("%v count %d != %v count %d", open, counts[open], closing, counts[closing])
		}
	}
}
