// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package markdown implements the Gitbeek document pipeline: a line-oriented
parser that turns authored markdown into a typed block tree, a block-level
diff engine for rendering change-request content diffs, and an HTML
renderer with light/dark code theming for in-app display and export.

The grammar is the practical subset used by the authoring platform, not
full CommonMark: headings, paragraphs, fenced code, blockquotes, lists
(including task lists), pipe tables, thematic breaks, raw HTML blocks,
standalone images, and the platform's template-tag extensions (hints,
tabs, expandables, embeds). Malformed input never fails a parse; anything
unrecognized degrades to paragraph text.

Everything in this package is a pure function over immutable values.
Parsing, diffing, and rendering hold no state between calls and may be
invoked concurrently without coordination.
*/
package markdown

// A Block is one structural unit of a parsed document.
// It is one of [*Heading], [*Paragraph], [*CodeBlock], [*Blockquote],
// [*List], [*Table], [*Image], [*ThematicBreak], [*HTMLBlock],
// [*Hint], [*Tabs], [*Expandable], and [*Embed].
type Block interface {
	Block()

	printHTML(p *printer)
}
