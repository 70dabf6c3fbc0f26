// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "bytes"

// A printer accumulates rendered HTML. The theme selection and the
// export image map ride along so every block's printHTML can see them.
type printer struct {
	buf    bytes.Buffer
	dark   bool
	images map[string]string
}

// ToHTML renders blocks to an HTML fragment. darkCodeTheme selects the
// code block palette; images maps image sources to pre-embedded data
// URIs for export (may be nil). Rendering is a pure function: the same
// block list always produces the same string, and an empty list renders
// to "".
func ToHTML(blocks []Block, darkCodeTheme bool, images map[string]string) string {
	p := &printer{dark: darkCodeTheme, images: images}
	for _, b := range blocks {
		b.printHTML(p)
	}
	return p.buf.String()
}

// html writes trusted markup verbatim.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes author-supplied text, escaped.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

func (p *printer) Write(text []byte) (int, error) {
	return p.buf.Write(text)
}
