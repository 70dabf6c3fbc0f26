// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// Parse converts raw markdown text into an ordered list of blocks.
//
// The parser is a line-oriented state machine: each call to parseBlock
// tries the block starters in a fixed order and falls back to paragraph
// text when nothing matches, so malformed input is never an error.
// Empty or whitespace-only input yields an empty block list.
func Parse(text string) []Block {
	p := &parser{lines: splitLines(text)}
	return p.parseBlocks()
}

type parser struct {
	lines []string
	i     int
}

func (p *parser) parseBlocks() []Block {
	var blocks []Block
	for p.i < len(p.lines) {
		if isBlank(p.lines[p.i]) {
			p.i++
			continue
		}
		blocks = append(blocks, p.parseBlock())
	}
	return blocks
}

// next returns the line after the current one, or "" at EOF.
func (p *parser) next() string {
	if p.i+1 < len(p.lines) {
		return p.lines[p.i+1]
	}
	return ""
}

func (p *parser) parseBlock() Block {
	if b, ok := p.startFence(); ok {
		return b
	}
	if b, ok := p.startTemplate(); ok {
		return b
	}
	if b, ok := p.startHeading(); ok {
		return b
	}
	if b, ok := p.startQuote(); ok {
		return b
	}
	if b, ok := p.startThematicBreak(); ok {
		return b
	}
	if b, ok := p.startList(); ok {
		return b
	}
	if b, ok := p.startTable(); ok {
		return b
	}
	if b, ok := p.startHTMLBlock(); ok {
		return b
	}
	if b, ok := p.startImage(); ok {
		return b
	}
	return p.parseParagraph()
}

// startsNewBlock reports whether ln begins a block construct other than
// a paragraph. Paragraph accumulation and blockquote lazy continuation
// both stop at such lines. next is the line after ln, needed because a
// table start is only recognizable as a header/delimiter pair.
func startsNewBlock(ln, next string) bool {
	return isFenceLine(ln) ||
		isTemplateLine(ln) ||
		isHeadingLine(ln) ||
		isQuoteLine(ln) ||
		isThematicBreakLine(ln) ||
		isListLine(ln) ||
		isTableStart(ln, next) ||
		isHTMLLine(ln) ||
		isImageLine(ln)
}
