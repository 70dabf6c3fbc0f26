// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// An HTMLBlock is a [Block] representing raw passthrough HTML.
// Its content is emitted verbatim, never escaped: it originates from
// the authoring platform, not end users, and this is the renderer's
// single deliberate trust boundary.
type HTMLBlock struct {
	Content string
}

func (*HTMLBlock) Block() {}

func (b *HTMLBlock) printHTML(p *printer) {
	p.html(b.Content, "\n")
}

func isHTMLLine(s string) bool {
	t := trimLeftSpaceTab(s)
	if len(t) < 2 || t[0] != '<' {
		return false
	}
	c := t[1]
	return isLetter(c) || c == '/' || c == '!' || c == '?'
}

// htmlTagName returns the lowercased element name opening at t[0],
// or "" if t does not start with <name.
func htmlTagName(t string) string {
	i := 1
	if i < len(t) && t[i] == '/' {
		i++
	}
	j := i
	for j < len(t) && (isLetter(t[j]) || isDigit(t[j]) || t[j] == '-') {
		j++
	}
	if j == i {
		return ""
	}
	return strings.ToLower(t[i:j])
}

// startHTMLBlock captures a raw HTML region: an HTML comment runs to
// the line containing -->, a named open tag runs to the line containing
// its matching close tag, and either stops early at a blank line.
func (p *parser) startHTMLBlock() (Block, bool) {
	if !isHTMLLine(p.lines[p.i]) {
		return nil, false
	}
	first := trimLeftSpaceTab(p.lines[p.i])

	var done func(string) bool
	switch {
	case strings.HasPrefix(first, "<!--"):
		done = func(s string) bool { return strings.Contains(s, "-->") }
	case first[1] != '/' && first[1] != '!' && first[1] != '?':
		if name := htmlTagName(first); name != "" {
			closer := "</" + name + ">"
			done = func(s string) bool { return strings.Contains(strings.ToLower(s), closer) }
		}
	}

	var lines []string
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if isBlank(ln) {
			break
		}
		lines = append(lines, ln)
		p.i++
		if done != nil && done(ln) {
			break
		}
	}
	return &HTMLBlock{Content: strings.Join(lines, "\n")}, true
}
