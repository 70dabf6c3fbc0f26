// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A ThematicBreak is a [Block] representing a horizontal rule.
type ThematicBreak struct{}

func (*ThematicBreak) Block() {}

func (b *ThematicBreak) printHTML(p *printer) {
	p.html("<hr />\n")
}

// isThematicBreakLine reports whether s is a run of three or more
// -, * or _ characters (spaces allowed between) and nothing else.
func isThematicBreakLine(s string) bool {
	t := trimSpaceTab(s)
	if t == "" {
		return false
	}
	c := t[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	n := 0
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case c:
			n++
		case ' ', '\t':
			// allowed
		default:
			return false
		}
	}
	return n >= 3
}

func (p *parser) startThematicBreak() (Block, bool) {
	if !isThematicBreakLine(p.lines[p.i]) {
		return nil, false
	}
	p.i++
	return &ThematicBreak{}, true
}
