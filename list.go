// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
)

// A List is a [Block] representing an ordered or unordered list.
// Start preserves the author's first ordinal (a list may begin at "5.")
// and is meaningful only for ordered lists.
type List struct {
	Ordered bool
	Start   int
	Items   []ListItem
}

// A ListItem is one item of a [List]. Items own a full block list, so
// they can hold nested lists, code, quotes, and so on. Checked is
// TaskNone for a plain item; TaskOpen or TaskDone mark a task-list
// item and its completion state. Item identity is structural: two
// items with equal content are interchangeable.
type ListItem struct {
	Blocks  []Block
	Checked TaskState
}

// A TaskState is the checkbox state of a task-list item.
type TaskState int

const (
	TaskNone TaskState = iota // plain list item, no checkbox
	TaskOpen
	TaskDone
)

func (*List) Block() {}

func (b *List) printHTML(p *printer) {
	if b.Ordered {
		// start="1" is the default; avoid redundant markup.
		if b.Start != 1 {
			fmt.Fprintf(p, "<ol start=\"%d\">\n", b.Start)
		} else {
			p.html("<ol>\n")
		}
	} else {
		p.html("<ul>\n")
	}
	for _, item := range b.Items {
		item.printHTML(p)
	}
	if b.Ordered {
		p.html("</ol>\n")
	} else {
		p.html("</ul>\n")
	}
}

func (b ListItem) printHTML(p *printer) {
	switch b.Checked {
	case TaskOpen:
		p.html(`<li class="task"><span class="task-checkbox">&#9744;</span> `)
	case TaskDone:
		p.html(`<li class="task"><span class="task-checkbox">&#9745;</span> `)
	default:
		p.html("<li>")
	}
	// A single-paragraph item renders its runs bare inside the <li>.
	if len(b.Blocks) == 1 {
		if para, ok := b.Blocks[0].(*Paragraph); ok {
			para.Text.printHTML(p)
			p.html("</li>\n")
			return
		}
	}
	p.html("\n")
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
	p.html("</li>\n")
}

// A listMarker is the parsed prefix of a list item line.
type listMarker struct {
	width   int // columns consumed by indent, marker, and separator
	ordered bool
	num     int
	task    TaskState
	rest    string // text after the marker (and task box, if any)
}

func isListLine(s string) bool {
	if isThematicBreakLine(s) {
		return false
	}
	_, ok := parseListMarker(s)
	return ok
}

// parseListMarker recognizes "- ", "* ", "+ " bullets and "N." / "N)"
// ordinals, each optionally followed by a [ ] / [x] task box.
func parseListMarker(s string) (listMarker, bool) {
	var m listMarker
	ind := indentWidth(s)
	t := trimLeftSpaceTab(s)
	if t == "" {
		return m, false
	}
	switch c := t[0]; {
	case c == '-' || c == '*' || c == '+':
		if len(t) < 2 || (t[1] != ' ' && t[1] != '\t') {
			return m, false
		}
		m.width = ind + 2
		m.rest = t[2:]
	case isDigit(c):
		j := 0
		num := 0
		for j < len(t) && isDigit(t[j]) && j < 9 {
			num = num*10 + int(t[j]-'0')
			j++
		}
		if j >= len(t) || (t[j] != '.' && t[j] != ')') {
			return m, false
		}
		j++
		if j >= len(t) || (t[j] != ' ' && t[j] != '\t') {
			return m, false
		}
		m.ordered = true
		m.num = num
		m.width = ind + j + 1
		m.rest = t[j+1:]
	default:
		return m, false
	}

	if r := m.rest; len(r) >= 3 && r[0] == '[' && r[2] == ']' && (len(r) == 3 || r[3] == ' ') {
		switch r[1] {
		case ' ':
			m.task = TaskOpen
		case 'x', 'X':
			m.task = TaskDone
		}
		if m.task != TaskNone {
			m.rest = strings.TrimPrefix(r[3:], " ")
		}
	}
	return m, true
}

// startList consumes a contiguous run of list item lines. Lines
// indented at least as far as the current item's marker width belong
// to that item's body and are re-parsed recursively, which is how
// nested lists and multi-block items arise. A blank line or a line
// that is neither a matching marker nor a continuation ends the list.
func (p *parser) startList() (Block, bool) {
	if !isListLine(p.lines[p.i]) {
		return nil, false
	}
	first, _ := parseListMarker(p.lines[p.i])
	list := &List{Ordered: first.ordered, Start: 1}
	if first.ordered {
		list.Start = first.num
	}

	var body []string
	width := 0
	task := TaskNone
	flush := func() {
		if body == nil {
			return
		}
		list.Items = append(list.Items, ListItem{
			Blocks:  Parse(strings.Join(body, "\n")),
			Checked: task,
		})
		body = nil
	}

	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if isBlank(ln) {
			break
		}
		if body != nil && indentWidth(ln) >= width {
			body = append(body, stripIndent(ln, width))
			p.i++
			continue
		}
		m, ok := parseListMarker(ln)
		if !ok || m.ordered != list.Ordered || isThematicBreakLine(ln) {
			break
		}
		flush()
		width = m.width
		task = m.task
		body = []string{m.rest}
		p.i++
	}
	flush()
	return list, true
}
