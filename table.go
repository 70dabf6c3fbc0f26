// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Table is a [Block] representing a pipe table. Header defines the
// column count; rows may be ragged, and missing cells render empty.
// Cells hold raw text, escaped at render time.
type Table struct {
	Header []string
	Rows   [][]string
}

func (*Table) Block() {}

func (t *Table) printHTML(p *printer) {
	p.html("<table>\n<thead>\n<tr>\n")
	for _, hdr := range t.Header {
		p.html("<th>")
		p.text(hdr)
		p.html("</th>\n")
	}
	p.html("</tr>\n</thead>\n<tbody>\n")
	for _, row := range t.Rows {
		p.html("<tr>\n")
		for i := range t.Header {
			p.html("<td>")
			if i < len(row) {
				p.text(row[i])
			}
			p.html("</td>\n")
		}
		p.html("</tr>\n")
	}
	p.html("</tbody>\n</table>\n")
}

// splitTableRow trims outer pipes and splits on unescaped | characters,
// rewriting \| to a literal pipe inside a cell.
func splitTableRow(s string) []string {
	t := trimSpaceTab(s)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c == '\\' && i+1 < len(t) && t[i+1] == '|' {
			cur.WriteByte('|')
			i++
			continue
		}
		if c == '|' {
			cells = append(cells, trimSpaceTab(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	cells = append(cells, trimSpaceTab(cur.String()))
	return cells
}

// isDelimRow reports whether every cell of s matches :?-+:? .
func isDelimRow(s string) bool {
	cells := splitTableRow(s)
	for _, c := range cells {
		c = strings.TrimSuffix(strings.TrimPrefix(c, ":"), ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}

// isTableStart reports whether hdr and delim form a table header row
// and its separator row with matching column counts.
func isTableStart(hdr, delim string) bool {
	if !strings.Contains(hdr, "|") || !strings.Contains(delim, "-") {
		return false
	}
	return isDelimRow(delim) && len(splitTableRow(delim)) == len(splitTableRow(hdr))
}

// startTable recognizes a header row, a separator row, and one or more
// data rows. Without at least one data row the lines fall through to
// paragraph parsing.
func (p *parser) startTable() (Block, bool) {
	if p.i+2 >= len(p.lines) {
		return nil, false
	}
	hdr, delim, first := p.lines[p.i], p.lines[p.i+1], p.lines[p.i+2]
	if !isTableStart(hdr, delim) {
		return nil, false
	}
	if isBlank(first) || !strings.Contains(first, "|") {
		return nil, false
	}
	t := &Table{Header: splitTableRow(hdr)}
	p.i += 2
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if isBlank(ln) || !strings.Contains(ln, "|") {
			break
		}
		t.Rows = append(t.Rows, splitTableRow(ln))
		p.i++
	}
	return t, true
}
