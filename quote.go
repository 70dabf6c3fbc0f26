// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Blockquote is a [Block] representing a block quote.
// Its content is a full block list, so quotes nest arbitrarily.
type Blockquote struct {
	Blocks []Block
}

func (*Blockquote) Block() {}

func (b *Blockquote) printHTML(p *printer) {
	p.html("<blockquote>\n")
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
	p.html("</blockquote>\n")
}

func isQuoteLine(s string) bool {
	return strings.HasPrefix(trimLeftSpaceTab(s), ">")
}

// trimQuoteMarker strips one leading > and at most one following space.
// Deeper > runs stay in the text and are handled by the recursive
// re-parse in startQuote.
func trimQuoteMarker(s string) string {
	t := trimLeftSpaceTab(s)[1:]
	return strings.TrimPrefix(t, " ")
}

// startQuote accumulates > lines plus lazy continuation lines (a
// non-blank line following quote text without its own marker) and
// re-runs the parser on the stripped content.
func (p *parser) startQuote() (Block, bool) {
	if !isQuoteLine(p.lines[p.i]) {
		return nil, false
	}
	var inner []string
Lines:
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		switch {
		case isQuoteLine(ln):
			inner = append(inner, trimQuoteMarker(ln))
		case !isBlank(ln) && !startsNewBlock(ln, p.next()):
			inner = append(inner, ln)
		default:
			break Lines
		}
		p.i++
	}
	return &Blockquote{Blocks: Parse(strings.Join(inner, "\n"))}, true
}
