// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// The authoring platform's block extensions (hints, tabs, expandables,
// embeds) use template tags of the form
//
//	{% name key="value" key="value" %}
//
// on their own line, with container tags closed by {% endname %}.

// A templateTag is one parsed {% ... %} line.
type templateTag struct {
	name  string
	attrs map[string]string
}

func isTemplateLine(s string) bool {
	_, ok := parseTemplateTag(s)
	return ok
}

func parseTemplateTag(s string) (templateTag, bool) {
	t := trimSpaceTab(s)
	if !strings.HasPrefix(t, "{%") || !strings.HasSuffix(t, "%}") || len(t) < 4 {
		return templateTag{}, false
	}
	inner := trimSpaceTab(t[2 : len(t)-2])
	if inner == "" {
		return templateTag{}, false
	}

	i := 0
	for i < len(inner) && inner[i] != ' ' && inner[i] != '\t' {
		i++
	}
	tag := templateTag{name: strings.ToLower(inner[:i])}

	// key="value" pairs; anything malformed ends attribute parsing and
	// the remainder is ignored rather than failing the tag.
	rest := trimLeftSpaceTab(inner[i:])
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || eq+1 >= len(rest) || rest[eq+1] != '"' {
			break
		}
		key := trimSpaceTab(rest[:eq])
		end := strings.IndexByte(rest[eq+2:], '"')
		if end < 0 {
			break
		}
		if tag.attrs == nil {
			tag.attrs = make(map[string]string)
		}
		tag.attrs[key] = rest[eq+2 : eq+2+end]
		rest = trimLeftSpaceTab(rest[eq+2+end+1:])
	}
	return tag, true
}

// startTemplate dispatches the container and leaf extensions.
// Unknown tags (including stray end tags) report false and degrade to
// paragraph text.
func (p *parser) startTemplate() (Block, bool) {
	tag, ok := parseTemplateTag(p.lines[p.i])
	if !ok {
		return nil, false
	}
	switch tag.name {
	case "hint":
		return p.parseHint(tag), true
	case "tabs":
		return p.parseTabs(), true
	case "expand":
		return p.parseExpandable(tag), true
	case "embed":
		p.i++
		return newEmbed(tag), true
	}
	return nil, false
}

// collectUntil consumes lines up to the matching {% endname %} tag,
// counting nested name tags, and returns the body. The end tag is
// consumed; reaching EOF without one simply ends the region.
func (p *parser) collectUntil(name string) []string {
	depth := 1
	var lines []string
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if t, ok := parseTemplateTag(ln); ok {
			switch t.name {
			case name:
				depth++
			case "end" + name:
				depth--
				if depth == 0 {
					p.i++
					return lines
				}
			}
		}
		lines = append(lines, ln)
		p.i++
	}
	return lines
}
