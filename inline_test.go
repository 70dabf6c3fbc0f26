// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolveInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Inlines
	}{
		{
			name: "plain",
			in:   "hello world",
			want: Inlines{{Text: "hello world"}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "bold",
			in:   "a **strong** b",
			want: Inlines{
				{Text: "a "},
				{Text: "strong", Style: StyleBold},
				{Text: " b"},
			},
		},
		{
			name: "italic star",
			in:   "*em*",
			want: Inlines{{Text: "em", Style: StyleItalic}},
		},
		{
			name: "italic underscore",
			in:   "_em_",
			want: Inlines{{Text: "em", Style: StyleItalic}},
		},
		{
			name: "bold underscore",
			in:   "__strong__",
			want: Inlines{{Text: "strong", Style: StyleBold}},
		},
		{
			name: "code span",
			in:   "run `go build` now",
			want: Inlines{
				{Text: "run "},
				{Text: "go build", Style: StyleCode},
				{Text: " now"},
			},
		},
		{
			name: "strikethrough",
			in:   "~~gone~~",
			want: Inlines{{Text: "gone", Style: StyleStrikethrough}},
		},
		{
			name: "link",
			in:   "see [the docs](https://example.com) here",
			want: Inlines{
				{Text: "see "},
				{Text: "the docs", Style: StyleLink, URL: "https://example.com"},
				{Text: " here"},
			},
		},
		{
			name: "link with nested brackets",
			in:   "[a [b] c](u)",
			want: Inlines{{Text: "a [b] c", Style: StyleLink, URL: "u"}},
		},
		{
			name: "bold inside link text stays literal",
			in:   "[**x**](u)",
			want: Inlines{{Text: "**x**", Style: StyleLink, URL: "u"}},
		},
		{
			name: "nested italic in bold",
			in:   "**a *b* c**",
			want: Inlines{
				{Text: "a ", Style: StyleBold},
				{Text: "b", Style: StyleItalic},
				{Text: " c", Style: StyleBold},
			},
		},
		{
			name: "code keeps its style inside bold",
			in:   "**a `b**` c**",
			want: Inlines{
				{Text: "a ", Style: StyleBold},
				{Text: "b**", Style: StyleCode},
				{Text: " c", Style: StyleBold},
			},
		},
		{
			name: "markers inside code span are literal",
			in:   "`a**b`**c**",
			want: Inlines{
				{Text: "a**b", Style: StyleCode},
				{Text: "c", Style: StyleBold},
			},
		},
		{
			name: "unmatched bold is literal",
			in:   "**never closed",
			want: Inlines{{Text: "**never closed"}},
		},
		{
			name: "unmatched backtick is literal",
			in:   "a ` b",
			want: Inlines{{Text: "a ` b"}},
		},
		{
			name: "spaced stars stay literal",
			in:   "2 * 3 * 4",
			want: Inlines{{Text: "2 * 3 * 4"}},
		},
		{
			name: "empty emphasis is literal",
			in:   "****",
			want: Inlines{{Text: "****"}},
		},
		{
			name: "bracket without paren is literal",
			in:   "[not a link]",
			want: Inlines{{Text: "[not a link]"}},
		},
		{
			name: "double backtick span",
			in:   "``a `tick` b``",
			want: Inlines{{Text: "a `tick` b", Style: StyleCode}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveInline(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("resolveInline(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
