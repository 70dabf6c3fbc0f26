// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"net/url"
	"strings"
)

// An Embed is a [Block] representing an {% embed url="..." %} line.
// Kind is derived from the URL host; Title is the optional caption.
type Embed struct {
	Kind  EmbedKind
	URL   string
	Title string
}

// An EmbedKind identifies the embedded service, used by the
// presentation layer to pick a player or preview card.
type EmbedKind int

const (
	EmbedGeneric EmbedKind = iota
	EmbedYouTube
	EmbedVimeo
	EmbedTwitter
	EmbedGitHub
	EmbedCodePen
	EmbedFigma
	EmbedLoom
)

func (k EmbedKind) String() string {
	switch k {
	case EmbedYouTube:
		return "youtube"
	case EmbedVimeo:
		return "vimeo"
	case EmbedTwitter:
		return "twitter"
	case EmbedGitHub:
		return "github"
	case EmbedCodePen:
		return "codepen"
	case EmbedFigma:
		return "figma"
	case EmbedLoom:
		return "loom"
	}
	return "generic"
}

func (*Embed) Block() {}

func (b *Embed) printHTML(p *printer) {
	p.html(`<figure class="embed embed-`, b.Kind.String(), `"><a href="`)
	p.text(b.URL)
	p.html(`">`)
	if b.Title != "" {
		p.text(b.Title)
	} else {
		p.text(b.URL)
	}
	p.html("</a></figure>\n")
}

func newEmbed(tag templateTag) *Embed {
	u := tag.attrs["url"]
	return &Embed{
		Kind:  embedKindForURL(u),
		URL:   u,
		Title: tag.attrs["title"],
	}
}

func embedKindForURL(raw string) EmbedKind {
	u, err := url.Parse(raw)
	if err != nil {
		return EmbedGeneric
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch {
	case host == "youtube.com" || host == "youtu.be":
		return EmbedYouTube
	case host == "vimeo.com" || strings.HasSuffix(host, ".vimeo.com"):
		return EmbedVimeo
	case host == "twitter.com" || host == "x.com":
		return EmbedTwitter
	case host == "github.com" || host == "gist.github.com":
		return EmbedGitHub
	case host == "codepen.io":
		return EmbedCodePen
	case host == "figma.com" || strings.HasSuffix(host, ".figma.com"):
		return EmbedFigma
	case host == "loom.com":
		return EmbedLoom
	}
	return EmbedGeneric
}
