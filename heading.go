// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
)

// A Heading is a [Block] representing an ATX heading,
// displayed with the <h1> through <h6> tags.
type Heading struct {
	// Level is the heading level: 1 through 6.
	// Other values are clamped to the valid range.
	Level int

	// Text is the text of the heading.
	Text Inlines
}

func (*Heading) Block() {}

// level returns the effective level, clamping Level to the range [1, 6].
func (h *Heading) level() int {
	return max(1, min(6, h.Level))
}

func (b *Heading) printHTML(p *printer) {
	fmt.Fprintf(p, "<h%d>", b.level())
	b.Text.printHTML(p)
	fmt.Fprintf(p, "</h%d>\n", b.level())
}

func isHeadingLine(s string) bool {
	_, _, ok := trimATX(s)
	return ok
}

// trimATX trims a heading prefix (optional spaces and then one or more
// #s followed by a space) from s, reporting the clamped heading level
// and the remaining text. A marker count outside 1..6 is coerced into
// range rather than rejected.
func trimATX(s string) (level int, text string, ok bool) {
	t := trimLeftSpaceTab(s)
	n := runLen(t, 0, '#')
	if n == 0 {
		return 0, "", false
	}
	if n < len(t) && t[n] != ' ' && t[n] != '\t' {
		return 0, "", false
	}
	text = trimSpaceTab(t[n:])

	// Remove trailing #s if preceded by a space, as in "## Title ##".
	if inner := strings.TrimRight(text, "#"); inner != trimRightSpaceTab(inner) || inner == "" {
		text = trimRightSpaceTab(inner)
	}

	return max(1, min(6, n)), text, true
}

func (p *parser) startHeading() (Block, bool) {
	level, text, ok := trimATX(p.lines[p.i])
	if !ok {
		return nil, false
	}
	p.i++
	return &Heading{Level: level, Text: resolveInline(text)}, true
}
