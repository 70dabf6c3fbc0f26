// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// SplitBlocks segments raw markdown into independent diffable units:
// blank-line separated chunks, trimmed, with empty units dropped. A
// fenced code region is always one atomic unit regardless of internal
// blank lines, so a code block is never split mid-body when diffed.
func SplitBlocks(text string) []string {
	lines := splitLines(text)
	var units []string
	var cur []string
	fenceLen := 0 // backtick count of the open fence, 0 when outside

	flush := func() {
		if len(cur) == 0 {
			return
		}
		if u := strings.TrimSpace(strings.Join(cur, "\n")); u != "" {
			units = append(units, u)
		}
		cur = nil
	}

	for _, ln := range lines {
		if fenceLen == 0 && isBlank(ln) {
			flush()
			continue
		}
		t := trimLeftSpaceTab(ln)
		n := runLen(t, 0, '`')
		switch {
		case fenceLen == 0 && n >= 3:
			// Fenced region: its own unit, even without a blank line
			// before or after.
			flush()
			fenceLen = n
			cur = append(cur, ln)
		case fenceLen > 0 && n >= fenceLen && trimSpaceTab(t[n:]) == "":
			fenceLen = 0
			cur = append(cur, ln)
			flush()
		default:
			cur = append(cur, ln)
		}
	}
	flush()
	return units
}
