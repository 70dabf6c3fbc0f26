// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Paragraph is a [Block] of running text, rendered in <p> tags.
// It is also the fallback for any construct the parser does not
// recognize.
type Paragraph struct {
	Text Inlines
}

func (*Paragraph) Block() {}

func (b *Paragraph) printHTML(p *printer) {
	p.html("<p>")
	b.Text.printHTML(p)
	p.html("</p>\n")
}

// parseParagraph accumulates non-blank lines until a blank line or the
// start of another block construct, then resolves the joined text into
// styled runs.
func (p *parser) parseParagraph() Block {
	lines := []string{trimSpaceTab(p.lines[p.i])}
	p.i++
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if isBlank(ln) || startsNewBlock(ln, p.next()) {
			break
		}
		lines = append(lines, trimSpaceTab(ln))
		p.i++
	}
	return &Paragraph{Text: resolveInline(strings.Join(lines, "\n"))}
}
