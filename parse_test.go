// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func typeName(b Block) string {
	return fmt.Sprintf("%T", b)
}

var blockCmp = []cmp.Option{cmpopts.EquateEmpty()}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "  \n\t\n   "} {
		if got := Parse(in); len(got) != 0 {
			t.Errorf("Parse(%q) = %d blocks, want 0", in, len(got))
		}
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		in    string
		level int
		text  string
	}{
		{"# Hello", 1, "Hello"},
		{"## Two words", 2, "Two words"},
		{"###### Six", 6, "Six"},
		{"####### Seven", 6, "Seven"},
		{"########## Deep", 6, "Deep"},
		{"  ## Indented", 2, "Indented"},
		{"## Closed ##", 2, "Closed"},
		{"#", 1, ""},
	}
	for _, tt := range tests {
		blocks := Parse(tt.in)
		if len(blocks) != 1 {
			t.Fatalf("Parse(%q) = %d blocks, want 1", tt.in, len(blocks))
		}
		h, ok := blocks[0].(*Heading)
		if !ok {
			t.Fatalf("Parse(%q) = %T, want *Heading", tt.in, blocks[0])
		}
		if h.level() != tt.level {
			t.Errorf("Parse(%q) level = %d, want %d", tt.in, h.level(), tt.level)
		}
		want := resolveInline(tt.text)
		if diff := cmp.Diff(want, h.Text, blockCmp...); diff != "" {
			t.Errorf("Parse(%q) text mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseHashWithoutSpaceIsParagraph(t *testing.T) {
	blocks := Parse("#NoSpace")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if _, ok := blocks[0].(*Paragraph); !ok {
		t.Fatalf("got %T, want *Paragraph", blocks[0])
	}
}

func TestParseParagraph(t *testing.T) {
	blocks := Parse("first line\nsecond line\n\nanother one")
	want := []Block{
		&Paragraph{Text: Inlines{{Text: "first line\nsecond line"}}},
		&Paragraph{Text: Inlines{{Text: "another one"}}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("paragraph mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuote(t *testing.T) {
	blocks := Parse("> quoted a\n> quoted b")
	want := []Block{
		&Blockquote{Blocks: []Block{
			&Paragraph{Text: Inlines{{Text: "quoted a\nquoted b"}}},
		}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("quote mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuoteLazyContinuation(t *testing.T) {
	blocks := Parse("> quoted\nstill quoted")
	want := []Block{
		&Blockquote{Blocks: []Block{
			&Paragraph{Text: Inlines{{Text: "quoted\nstill quoted"}}},
		}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("lazy continuation mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuoteNested(t *testing.T) {
	blocks := Parse("> > inner")
	want := []Block{
		&Blockquote{Blocks: []Block{
			&Blockquote{Blocks: []Block{
				&Paragraph{Text: Inlines{{Text: "inner"}}},
			}},
		}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("nested quote mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *CodeBlock
	}{
		{
			name: "basic",
			in:   "```go\nfmt.Println(1)\n```",
			want: &CodeBlock{Language: "go", Code: "fmt.Println(1)"},
		},
		{
			name: "no language",
			in:   "```\nplain\n```",
			want: &CodeBlock{Code: "plain"},
		},
		{
			name: "info string extra words dropped",
			in:   "```go run me\nx\n```",
			want: &CodeBlock{Language: "go", Code: "x"},
		},
		{
			name: "blank lines kept in body",
			in:   "```swift\nlet x = 1\n\nlet y = 2\n```",
			want: &CodeBlock{Language: "swift", Code: "let x = 1\n\nlet y = 2"},
		},
		{
			name: "unterminated runs to end",
			in:   "```\nno closing",
			want: &CodeBlock{Code: "no closing"},
		},
		{
			name: "closing fence may be longer",
			in:   "```\nbody\n`````",
			want: &CodeBlock{Code: "body"},
		},
		{
			name: "empty body",
			in:   "```\n```",
			want: &CodeBlock{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.in)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if diff := cmp.Diff(tt.want, blocks[0], blockCmp...); diff != "" {
				t.Errorf("fence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFenceFirstClosingWins(t *testing.T) {
	// The would-be nested fence terminates the block.
	blocks := Parse("```\nouter\n```\ninner\n```")
	if len(blocks) < 2 {
		t.Fatalf("got %d blocks, want at least 2", len(blocks))
	}
	cb, ok := blocks[0].(*CodeBlock)
	if !ok {
		t.Fatalf("first block is %T, want *CodeBlock", blocks[0])
	}
	if cb.Code != "outer" {
		t.Errorf("first code block body = %q, want %q", cb.Code, "outer")
	}
}

func TestParseThematicBreak(t *testing.T) {
	for _, in := range []string{"---", "***", "___", "- - -", "  *****  "} {
		blocks := Parse(in)
		if len(blocks) != 1 {
			t.Fatalf("Parse(%q) = %d blocks, want 1", in, len(blocks))
		}
		if _, ok := blocks[0].(*ThematicBreak); !ok {
			t.Errorf("Parse(%q) = %T, want *ThematicBreak", in, blocks[0])
		}
	}
	// Two markers are not enough.
	blocks := Parse("--")
	if _, ok := blocks[0].(*Paragraph); !ok {
		t.Errorf("Parse(%q) = %T, want *Paragraph", "--", blocks[0])
	}
}

func TestParseUnorderedList(t *testing.T) {
	blocks := Parse("- one\n- two\n- three")
	want := []Block{
		&List{Start: 1, Items: []ListItem{
			{Blocks: []Block{&Paragraph{Text: Inlines{{Text: "one"}}}}},
			{Blocks: []Block{&Paragraph{Text: Inlines{{Text: "two"}}}}},
			{Blocks: []Block{&Paragraph{Text: Inlines{{Text: "three"}}}}},
		}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("unordered list mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOrderedListStart(t *testing.T) {
	blocks := Parse("5. five\n6. six")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	list, ok := blocks[0].(*List)
	if !ok {
		t.Fatalf("got %T, want *List", blocks[0])
	}
	if !list.Ordered || list.Start != 5 {
		t.Errorf("Ordered=%v Start=%d, want true 5", list.Ordered, list.Start)
	}
	if len(list.Items) != 2 {
		t.Errorf("got %d items, want 2", len(list.Items))
	}
}

func TestParseTaskList(t *testing.T) {
	blocks := Parse("- [x] done\n- [ ] todo\n- plain")
	list, ok := blocks[0].(*List)
	if !ok {
		t.Fatalf("got %T, want *List", blocks[0])
	}
	states := []TaskState{TaskDone, TaskOpen, TaskNone}
	if len(list.Items) != len(states) {
		t.Fatalf("got %d items, want %d", len(list.Items), len(states))
	}
	for i, want := range states {
		if got := list.Items[i].Checked; got != want {
			t.Errorf("item %d Checked = %v, want %v", i, got, want)
		}
	}
}

func TestParseNestedList(t *testing.T) {
	blocks := Parse("- outer\n  - inner")
	want := []Block{
		&List{Start: 1, Items: []ListItem{
			{Blocks: []Block{
				&Paragraph{Text: Inlines{{Text: "outer"}}},
				&List{Start: 1, Items: []ListItem{
					{Blocks: []Block{&Paragraph{Text: Inlines{{Text: "inner"}}}}},
				}},
			}},
		}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("nested list mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTable(t *testing.T) {
	blocks := Parse("| a | b |\n| --- | --- |\n| 1 | 2 |\n| 3 |")
	want := []Block{
		&Table{
			Header: []string{"a", "b"},
			Rows:   [][]string{{"1", "2"}, {"3"}},
		},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTableEscapedPipe(t *testing.T) {
	blocks := Parse("| cmd |\n| --- |\n| a \\| b |")
	tbl, ok := blocks[0].(*Table)
	if !ok {
		t.Fatalf("got %T, want *Table", blocks[0])
	}
	if got := tbl.Rows[0][0]; got != "a | b" {
		t.Errorf("cell = %q, want %q", got, "a | b")
	}
}

func TestParseTableWithoutRowsIsParagraph(t *testing.T) {
	blocks := Parse("| a | b |\n| --- | --- |")
	for _, b := range blocks {
		if _, ok := b.(*Table); ok {
			t.Fatalf("header and delimiter alone parsed as a table")
		}
	}
}

func TestParseHTMLBlock(t *testing.T) {
	in := "<div class=\"x\">\nhello\n</div>"
	blocks := Parse(in)
	want := []Block{&HTMLBlock{Content: in}}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("html block mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHTMLComment(t *testing.T) {
	blocks := Parse("<!-- note -->\nafter")
	want := []Block{
		&HTMLBlock{Content: "<!-- note -->"},
		&Paragraph{Text: Inlines{{Text: "after"}}},
	}
	if diff := cmp.Diff(want, blocks, blockCmp...); diff != "" {
		t.Errorf("html comment mismatch (-want +got):\n%s", diff)
	}
}

func TestParseImage(t *testing.T) {
	tests := []struct {
		in   string
		want *Image
	}{
		{"![Logo](logo.png)", &Image{Source: "logo.png", Alt: "Logo"}},
		{"![](pic.jpg)", &Image{Source: "pic.jpg"}},
		{`![Shot](shot.png "A title")`, &Image{Source: "shot.png", Alt: "Shot"}},
	}
	for _, tt := range tests {
		blocks := Parse(tt.in)
		if len(blocks) != 1 {
			t.Fatalf("Parse(%q) = %d blocks, want 1", tt.in, len(blocks))
		}
		if diff := cmp.Diff(Block(tt.want), blocks[0], blockCmp...); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseMalformedImageIsParagraph(t *testing.T) {
	for _, in := range []string{"![no src]()", "![broken](", "![a]b](u)"} {
		blocks := Parse(in)
		if _, ok := blocks[0].(*Paragraph); !ok {
			t.Errorf("Parse(%q) = %T, want *Paragraph", in, blocks[0])
		}
	}
}

func TestParseDocumentSequence(t *testing.T) {
	in := "# Title\n\nIntro text.\n\n```go\ncode()\n```\n\n> note\n\n- a\n- b\n\n---\n\n![x](x.png)"
	blocks := Parse(in)
	wantTypes := []string{
		"*markdown.Heading",
		"*markdown.Paragraph",
		"*markdown.CodeBlock",
		"*markdown.Blockquote",
		"*markdown.List",
		"*markdown.ThematicBreak",
		"*markdown.Image",
	}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantTypes))
	}
	for i, b := range blocks {
		if got := typeName(b); got != wantTypes[i] {
			t.Errorf("block %d is %s, want %s", i, got, wantTypes[i])
		}
	}
}
