// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// An Expandable is a [Block] representing an {% expand %} disclosure,
// rendered as a <details> element with the title as its summary.
type Expandable struct {
	Title  string
	Blocks []Block
}

func (*Expandable) Block() {}

func (b *Expandable) printHTML(p *printer) {
	p.html("<details>\n<summary>")
	p.text(b.Title)
	p.html("</summary>\n")
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
	p.html("</details>\n")
}

func (p *parser) parseExpandable(tag templateTag) Block {
	p.i++
	body := p.collectUntil("expand")
	return &Expandable{
		Title:  tag.attrs["title"],
		Blocks: Parse(strings.Join(body, "\n")),
	}
}
