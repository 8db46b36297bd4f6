package bmh

// Search returns the byte index of the first occurrence of pattern in text,
// or -1 if pattern is not present. shifts must be the table produced by
// BuildShifts for this exact pattern.
//
// Each candidate window is compared from the end of the pattern backward.
// Mismatches discovered near the end permit the largest skips, because the
// shift is derived from the rightmost position of the text byte under the
// window's last slot: if that byte occurs nowhere in the pattern, no window
// overlapping it can match and the search advances by the full pattern
// length. The stored shift is clamped to a minimum of 1 (the pattern's own
// last byte maps to 0 in the table) so the window always moves forward.
//
// An empty pattern returns -1: the algorithm inspects pattern[m-1] and is
// undefined for m == 0. Callers wanting empty-pattern-matches-everywhere
// semantics should use the linear or kmp matchers. A pattern longer than
// the text returns -1 without reading the text; the window condition
// t+m <= len(text) guards every access.
//
// Example:
//
//	pattern := []byte("then")
//	pos := bmh.Search(pattern, []byte("the dog is very dead then"), bmh.BuildShifts(pattern))
//	// pos == 21
func Search(pattern, text []byte, shifts *ShiftTable) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return -1
	}

	for t := 0; t+m <= n; {
		p := m - 1
		for text[t+p] == pattern[p] {
			if p == 0 {
				return t
			}
			p--
		}
		shift := shifts[text[t+m-1]]
		if shift == 0 {
			// text[t+m-1] equals the pattern's last byte but the window
			// mismatched earlier; a zero shift would loop forever.
			shift = 1
		}
		t += shift
	}
	return -1
}
