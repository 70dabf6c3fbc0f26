// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// An Image is a [Block] for a line consisting solely of ![alt](src).
// Alt == "" means no alt text was given: the <img> still gets an empty
// alt attribute but no <figcaption> is emitted.
type Image struct {
	Source string
	Alt    string
}

func (*Image) Block() {}

func (b *Image) printHTML(p *printer) {
	src := b.Source
	// Export-time inlining: a source present in the image map is
	// replaced by its pre-embedded data URI so the document renders
	// without network access.
	if mapped, ok := p.images[b.Source]; ok {
		src = mapped
	}
	p.html(`<figure><img src="`)
	p.text(src)
	p.html(`" alt="`)
	p.text(b.Alt)
	p.html(`" />`)
	if b.Alt != "" {
		p.html("<figcaption>")
		p.text(b.Alt)
		p.html("</figcaption>")
	}
	p.html("</figure>\n")
}

func isImageLine(s string) bool {
	_, _, ok := parseImageLine(s)
	return ok
}

func parseImageLine(s string) (src, alt string, ok bool) {
	t := trimSpaceTab(s)
	if !strings.HasPrefix(t, "![") || !strings.HasSuffix(t, ")") {
		return "", "", false
	}
	j := strings.Index(t, "](")
	if j < 0 {
		return "", "", false
	}
	alt = t[2:j]
	src = trimSpaceTab(t[j+2 : len(t)-1])
	// Drop an optional "title" after the URL.
	if k := strings.IndexAny(src, " \t"); k >= 0 {
		src = src[:k]
	}
	if src == "" || strings.Contains(alt, "]") {
		return "", "", false
	}
	return src, alt, true
}

func (p *parser) startImage() (Block, bool) {
	src, alt, ok := parseImageLine(p.lines[p.i])
	if !ok {
		return nil, false
	}
	p.i++
	return &Image{Source: src, Alt: alt}, true
}
