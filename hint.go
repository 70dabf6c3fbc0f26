// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Hint is a [Block] representing a {% hint %} callout.
type Hint struct {
	Kind   HintKind
	Blocks []Block
}

// A HintKind selects the callout's icon, title, and styling.
type HintKind int

const (
	HintInfo HintKind = iota
	HintSuccess
	HintWarning
	HintDanger
)

func (k HintKind) String() string {
	switch k {
	case HintSuccess:
		return "success"
	case HintWarning:
		return "warning"
	case HintDanger:
		return "danger"
	}
	return "info"
}

// Fixed icon/title pair per kind.
var hintIcons = map[HintKind]string{
	HintInfo:    "&#8505;",  // ℹ
	HintSuccess: "&#10003;", // ✓
	HintWarning: "&#9888;",  // ⚠
	HintDanger:  "&#9940;",  // ⛔
}

var hintTitles = map[HintKind]string{
	HintInfo:    "Info",
	HintSuccess: "Success",
	HintWarning: "Warning",
	HintDanger:  "Danger",
}

func (*Hint) Block() {}

func (b *Hint) printHTML(p *printer) {
	p.html(`<div class="hint hint-`, b.Kind.String(), "\">\n")
	p.html(`<div class="hint-header"><span class="hint-icon">`,
		hintIcons[b.Kind], `</span> `, hintTitles[b.Kind], "</div>\n")
	p.html(`<div class="hint-body">`, "\n")
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
	p.html("</div>\n</div>\n")
}

func hintKind(style string) HintKind {
	switch strings.ToLower(style) {
	case "success":
		return HintSuccess
	case "warning":
		return HintWarning
	case "danger":
		return HintDanger
	}
	return HintInfo
}

func (p *parser) parseHint(tag templateTag) Block {
	p.i++
	body := p.collectUntil("hint")
	return &Hint{
		Kind:   hintKind(tag.attrs["style"]),
		Blocks: Parse(strings.Join(body, "\n")),
	}
}
