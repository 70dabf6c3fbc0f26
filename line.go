// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// splitLines splits text into lines without their line endings.
// CRLF is normalized to LF first so \r never leaks into block text.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func isBlank(s string) bool {
	return trimSpaceTab(s) == ""
}

func trimLeftSpaceTab(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func trimRightSpaceTab(s string) string {
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[:j]
}

func trimSpaceTab(s string) string {
	return trimRightSpaceTab(trimLeftSpaceTab(s))
}

// indentWidth returns the number of leading spaces in s,
// counting a tab as reaching the next 4-column tab stop.
func indentWidth(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			n++
		case '\t':
			n += 4 - n&3
		default:
			return n
		}
	}
	return n
}

// stripIndent removes up to width columns of leading whitespace from s.
// Tabs count as 4 columns; a tab that straddles the boundary is
// replaced by the spaces left over.
func stripIndent(s string, width int) string {
	col := 0
	i := 0
	for i < len(s) && col < width {
		switch s[i] {
		case ' ':
			col++
			i++
		case '\t':
			col += 4 - col&3
			i++
		default:
			return s[i:]
		}
	}
	if col > width {
		return strings.Repeat(" ", col-width) + s[i:]
	}
	return s[i:]
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
