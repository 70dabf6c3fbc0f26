// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A CodeBlock is a [Block] representing a fenced code block,
// displayed in <pre><code> tags. Code holds the raw body, unescaped
// until render time; Language is the info-string token after the
// opening fence, or "" when absent.
type CodeBlock struct {
	Language string
	Code     string
}

func (*CodeBlock) Block() {}

// Code theme palettes. Inline styles rather than classes so that
// exported fragments keep their colors without the stylesheet, and
// print-color-adjust so PDF export keeps the backgrounds.
const (
	codeLightBG = "#f6f8fa"
	codeLightFG = "#24292e"
	codeDarkBG  = "#1e1e1e"
	codeDarkFG  = "#f8f8f2"
)

func (b *CodeBlock) printHTML(p *printer) {
	bg, fg := codeLightBG, codeLightFG
	if p.dark {
		bg, fg = codeDarkBG, codeDarkFG
	}
	p.html(`<pre style="background-color:`, bg, `;color:`, fg,
		`;-webkit-print-color-adjust:exact;print-color-adjust:exact;"><code class="language-`)
	p.text(b.Language)
	p.html(`">`)
	p.text(b.Code)
	if b.Code != "" {
		p.html("\n")
	}
	p.html("</code></pre>\n")
}

func isFenceLine(s string) bool {
	t := trimLeftSpaceTab(s)
	return runLen(t, 0, '`') >= 3
}

// startFence captures everything from an opening ``` fence to the first
// closing fence (at least as many backticks, no info string) as one
// code block. Nothing inside is reinterpreted, including would-be
// nested fences: the first closing fence wins. An unterminated fence
// runs to end of input.
func (p *parser) startFence() (Block, bool) {
	t := trimLeftSpaceTab(p.lines[p.i])
	n := runLen(t, 0, '`')
	if n < 3 {
		return nil, false
	}
	info := trimSpaceTab(t[n:])
	if strings.Contains(info, "`") {
		return nil, false
	}
	lang := info
	if i := strings.IndexAny(lang, " \t"); i >= 0 {
		lang = lang[:i]
	}
	p.i++

	var body []string
	for p.i < len(p.lines) {
		u := trimLeftSpaceTab(p.lines[p.i])
		if m := runLen(u, 0, '`'); m >= n && trimSpaceTab(u[m:]) == "" {
			p.i++
			break
		}
		body = append(body, p.lines[p.i])
		p.i++
	}
	return &CodeBlock{Language: lang, Code: strings.Join(body, "\n")}, true
}
