// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package builder

import (
	"github.com/pdiddy/md2office/internal/markdown"
)

// cursor is a forward-only position over a token stream. Handlers advance it
// through next and scanToClose instead of arithmetic on indices.
type cursor struct {
	tokens []markdown.Token
	pos    int
}

func newCursor(tokens []markdown.Token) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

// next consumes and returns the current token. Past the end it returns the
// zero token (KindOther), which every handler ignores.
func (c *cursor) next() markdown.Token {
	if c.done() {
		return markdown.Token{}
	}
	t := c.tokens[c.pos]
	c.pos++
	return t
}

// scanToClose consumes tokens until the close matching an already consumed
// open of the given kind, tracking nesting depth, and leaves the cursor just
// past that close. Every consumed token except the matching close is handed
// to visit. On an unbalanced stream the scan stops at the end of input.
func (c *cursor) scanToClose(open, closing markdown.Kind, visit func(markdown.Token)) {
	depth := 1
	for !c.done() {
		t := c.next()
		switch t.Kind {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return
			}
		}
		visit(t)
	}
}
