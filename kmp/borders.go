// Package kmp implements Knuth-Morris-Pratt substring search over generic
// element slices.
//
// KMP precomputes a border table (also called the failure function) for the
// pattern and then scans the text in a single forward pass. After a mismatch
// the matcher re-aligns the pattern using the longest border of the part
// already matched instead of restarting from scratch, which bounds the whole
// search at O(n+m) regardless of input.
//
// The table is a pure function of the pattern. Callers that search one
// pattern against many texts should build it once and reuse it (the root
// substr package does this memoization automatically).
package kmp

// Borders holds, for every prefix length i of a pattern, the length of the
// longest proper border of that prefix: a prefix of the first i elements
// that is also a suffix of them, shorter than i itself.
//
// The table has m+1 entries for a pattern of length m >= 1, indexed by
// prefix length, with Borders[0] and Borders[1] fixed at 0 by convention.
// For the empty pattern the table is empty. Every entry satisfies
// 0 <= Borders[i] < i.
//
// Example: for the pattern "aabaa" the table is [0 0 1 0 1 2] — the
// 5-element prefix "aabaa" has "aa" (length 2) as its longest border.
type Borders []int

// BuildBorders computes the border table for pattern.
//
// Construction walks the border chain: the longest border of a prefix of
// length i either extends the longest border of the prefix of length i-1
// by one element, or is found by following that border's own border, and
// so on down to the empty border.
//
// Runs in O(m): each chain step shortens the current border, and borders
// only grow by one per iteration.
func BuildBorders[T comparable](pattern []T) Borders {
	m := len(pattern)
	if m == 0 {
		return Borders{}
	}

	borders := make(Borders, m+1)
	for i := 2; i <= m; i++ {
		// Longest border of the previous prefix; try to extend it with
		// pattern[i-1], shrinking along the border chain on mismatch.
		b := borders[i-1]
		for b != 0 && pattern[b] != pattern[i-1] {
			b = borders[b]
		}
		if pattern[b] == pattern[i-1] {
			borders[i] = b + 1
		}
	}
	return borders
}
