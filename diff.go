// Copyright 2025 The Gitbeek Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A DiffKind annotates one unit of a block-level diff.
type DiffKind int

const (
	DiffUnchanged DiffKind = iota
	DiffAdded
	DiffRemoved
)

func (k DiffKind) String() string {
	switch k {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	}
	return "unchanged"
}

// A DiffUnit is one diffable text unit annotated with its change state.
// Units are produced only by [Diff]; they never nest.
type DiffUnit struct {
	Text string
	Kind DiffKind
}

// Diff aligns two ordered lists of diffable units (see [SplitBlocks])
// by their longest common subsequence and merges them into a single
// annotated sequence: around each common anchor, removed units come
// first, then added units, then the anchor itself as unchanged.
//
// When duplicate units admit several maximal common subsequences the
// choice among them follows the DP backtrack order and is not part of
// the contract; only the identity and totality properties are.
func Diff(before, after []string) []DiffUnit {
	anchors := longestCommonSubsequence(before, after)

	out := make([]DiffUnit, 0, len(before)+len(after)-len(anchors))
	i, j := 0, 0
	for _, anchor := range anchors {
		for before[i] != anchor {
			out = append(out, DiffUnit{Text: before[i], Kind: DiffRemoved})
			i++
		}
		for after[j] != anchor {
			out = append(out, DiffUnit{Text: after[j], Kind: DiffAdded})
			j++
		}
		out = append(out, DiffUnit{Text: anchor, Kind: DiffUnchanged})
		i++
		j++
	}
	for ; i < len(before); i++ {
		out = append(out, DiffUnit{Text: before[i], Kind: DiffRemoved})
	}
	for ; j < len(after); j++ {
		out = append(out, DiffUnit{Text: after[j], Kind: DiffAdded})
	}
	return out
}

// longestCommonSubsequence computes the classic LCS by dynamic
// programming over unit equality: O(m·n) time and space, then a
// backtrack that prefers "up" over "left" on equal counts.
func longestCommonSubsequence(a, b []string) []string {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	lcs := make([]string, table[m][n])
	for i, j, k := m, n, table[m][n]; k > 0; {
		switch {
		case a[i-1] == b[j-1]:
			k--
			lcs[k] = a[i-1]
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}
	return lcs
}
