// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Tabs is a [Block] representing a {% tabs %} group.
type Tabs struct {
	Items []TabItem
}

// A TabItem is one {% tab %} pane.
type TabItem struct {
	Title  string
	Blocks []Block
}

func (*Tabs) Block() {}

func (b *Tabs) printHTML(p *printer) {
	p.html("<div class=\"tabs\">\n")
	for _, item := range b.Items {
		p.html("<div class=\"tab\">\n<div class=\"tab-title\">")
		p.text(item.Title)
		p.html("</div>\n<div class=\"tab-content\">\n")
		for _, c := range item.Blocks {
			c.printHTML(p)
		}
		p.html("</div>\n</div>\n")
	}
	p.html("</div>\n")
}

// parseTabs consumes {% tab %}...{% endtab %} panes until the matching
// {% endtabs %}. Stray lines between panes are dropped; an empty group
// is allowed and renders as an empty container.
func (p *parser) parseTabs() Block {
	p.i++
	tabs := &Tabs{}
	for p.i < len(p.lines) {
		t, ok := parseTemplateTag(p.lines[p.i])
		if ok && t.name == "endtabs" {
			p.i++
			break
		}
		if ok && t.name == "tab" {
			p.i++
			body := p.collectUntil("tab")
			tabs.Items = append(tabs.Items, TabItem{
				Title:  t.attrs["title"],
				Blocks: Parse(strings.Join(body, "\n")),
			})
			continue
		}
		p.i++
	}
	return tabs
}
