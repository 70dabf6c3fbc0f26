// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Style identifies the styling of a single inline run.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
	StyleCode
	StyleStrikethrough
	StyleLink
)

// A Span is one styled run of text within a paragraph-like block.
// URL is set only when Style is [StyleLink].
type Span struct {
	Text  string
	Style Style
	URL   string
}

// Inlines is an ordered sequence of styled runs. Adjacent runs of
// identical style are merged during resolution to keep trees small.
type Inlines []Span

func (x Inlines) printHTML(p *printer) {
	for _, sp := range x {
		sp.printHTML(p)
	}
}

func (sp Span) printHTML(p *printer) {
	switch sp.Style {
	case StyleBold:
		p.html("<strong>")
		p.text(sp.Text)
		p.html("</strong>")
	case StyleItalic:
		p.html("<em>")
		p.text(sp.Text)
		p.html("</em>")
	case StyleCode:
		p.html("<code>")
		p.text(sp.Text)
		p.html("</code>")
	case StyleStrikethrough:
		p.html("<del>")
		p.text(sp.Text)
		p.html("</del>")
	case StyleLink:
		p.html(`<a href="`)
		p.text(sp.URL)
		p.html(`">`)
		p.text(sp.Text)
		p.html("</a>")
	default:
		p.text(sp.Text)
	}
}

// resolveInline scans raw inline markdown into styled runs.
// Recognition order is code spans, links, bold, italic, strikethrough;
// a code span's contents are never re-scanned for other markers.
// Unmatched opening markers come through as literal text, so resolution
// never fails: worst case the whole input is one plain run.
func resolveInline(s string) Inlines {
	var out Inlines
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '`':
			n := runLen(s, i, '`')
			if j := findTickRun(s, i+n, n); j >= 0 {
				flush()
				out = append(out, Span{Text: s[i+n : j], Style: StyleCode})
				i = j + n
				continue
			}
			plain.WriteString(s[i : i+n])
			i += n

		case c == '[':
			if text, url, end, ok := parseInlineLink(s, i); ok {
				flush()
				out = append(out, Span{Text: text, Style: StyleLink, URL: url})
				i = end
				continue
			}
			plain.WriteByte(c)
			i++

		case c == '~' && runLen(s, i, '~') >= 2:
			if inner, end, ok := matchDelim(s, i, "~~"); ok {
				flush()
				out = append(out, overlay(resolveInline(inner), StyleStrikethrough)...)
				i = end
				continue
			}
			plain.WriteString("~~")
			i += 2

		case c == '*' || c == '_':
			marker := s[i : i+1]
			style := StyleItalic
			if runLen(s, i, c) >= 2 {
				marker = s[i : i+2]
				style = StyleBold
			}
			if inner, end, ok := matchDelim(s, i, marker); ok {
				flush()
				out = append(out, overlay(resolveInline(inner), style)...)
				i = end
				continue
			}
			plain.WriteString(marker)
			i += len(marker)

		default:
			plain.WriteByte(c)
			i++
		}
	}
	flush()
	return mergeSpans(out)
}

// matchDelim looks for the closing counterpart of the emphasis marker
// opening at s[i]. The enclosed text must be non-empty and must not
// begin or end with a space (so "2 * 3 * 4" stays plain text).
func matchDelim(s string, i int, marker string) (inner string, end int, ok bool) {
	start := i + len(marker)
	j := findMarker(s, start, marker)
	if j < 0 {
		return "", 0, false
	}
	inner = s[start:j]
	if inner == "" || inner[0] == ' ' || inner[len(inner)-1] == ' ' {
		return "", 0, false
	}
	return inner, j + len(marker), true
}

// findMarker finds the next run of marker bytes in s[from:] whose length
// is exactly len(marker), skipping over code spans so that a backtick
// region can never close emphasis opened outside it.
func findMarker(s string, from int, marker string) int {
	c := marker[0]
	for i := from; i < len(s); {
		switch {
		case s[i] == '`':
			n := runLen(s, i, '`')
			if j := findTickRun(s, i+n, n); j >= 0 {
				i = j + n
			} else {
				i += n
			}
		case s[i] == c:
			n := runLen(s, i, c)
			if n == len(marker) {
				return i
			}
			i += n
		default:
			i++
		}
	}
	return -1
}

// findTickRun finds the start of the next run of exactly n backticks.
func findTickRun(s string, from, n int) int {
	for i := from; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		m := runLen(s, i, '`')
		if m == n {
			return i
		}
		i += m
	}
	return -1
}

// runLen returns the length of the run of c bytes starting at s[i].
func runLen(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}

// parseInlineLink parses a [text](url) link whose bracket opens at s[i].
// Nested brackets are balanced inside the link text; code spans inside
// the text cannot close the bracket.
func parseInlineLink(s string, i int) (text, url string, end int, ok bool) {
	depth := 0
	j := i
	for j < len(s) {
		switch s[j] {
		case '`':
			n := runLen(s, j, '`')
			if k := findTickRun(s, j+n, n); k >= 0 {
				j = k + n
			} else {
				j += n
			}
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				j++
				goto Closed
			}
		}
		j++
	}
	return "", "", 0, false

Closed:
	if j >= len(s) || s[j] != '(' {
		return "", "", 0, false
	}
	k := strings.IndexByte(s[j:], ')')
	if k < 0 {
		return "", "", 0, false
	}
	text = s[i+1 : j-1]
	url = trimSpaceTab(s[j+1 : j+k])
	return text, url, j + k + 1, true
}

// overlay applies style to every plain run in spans. Runs that already
// carry a style (a code span inside bold, say) keep their own.
func overlay(spans Inlines, style Style) Inlines {
	for i := range spans {
		if spans[i].Style == StylePlain {
			spans[i].Style = style
		}
	}
	return spans
}

// mergeSpans drops empty runs and merges each run of spans with
// identical style (and URL) into a single span.
func mergeSpans(spans Inlines) Inlines {
	out := spans[:0]
	for _, sp := range spans {
		if sp.Text == "" && sp.Style != StyleLink {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == sp.Style && out[n-1].URL == sp.URL {
			out[n-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}
