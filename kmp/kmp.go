package kmp

// Search returns the index of the first occurrence of pattern in text, or
// -1 if pattern is not present. borders must be the table produced by
// BuildBorders for this exact pattern; passing a table built for a
// different pattern gives undefined results.
//
// The matcher keeps two cursors: t, the candidate start in the text, and p,
// the number of pattern elements already matched at that start. On a
// mismatch with p > 0 the candidate advances by p-borders[p] and p resets
// to borders[p], so elements covered by the border are never re-compared.
// The sum t+p never decreases, which bounds the scan at O(n+m).
//
// An empty pattern matches at index 0. A pattern longer than the text never
// matches, and no comparison reads past the end of the text: the loop
// condition t+p < n guards every text access.
//
// Example:
//
//	pattern := []byte("dead")
//	pos := kmp.Search(pattern, []byte("the dog is very dead then"), kmp.BuildBorders(pattern))
//	// pos == 16
func Search[T comparable](pattern, text []T, borders Borders) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}

	t, p := 0, 0
	for t+p < n {
		if text[t+p] == pattern[p] {
			p++
			if p == m {
				return t
			}
			continue
		}
		if p == 0 {
			// Nothing matched yet, no border to exploit.
			t++
			continue
		}
		t += p - borders[p]
		p = borders[p]
	}
	return -1
}
