// Package linear implements brute-force substring search over generic
// element slices.
//
// The scan tries every candidate start position and compares the pattern
// left to right, giving O(n*m) worst-case time with no auxiliary memory.
// It is the correctness baseline the smarter matchers (kmp, bmh) are
// validated against, and it remains the right choice for very short
// patterns or texts where table construction cannot pay for itself.
package linear

// Search returns the index of the first occurrence of pattern in text,
// or -1 if pattern is not present.
//
// An empty pattern matches at index 0. A pattern longer than the text
// never matches. Candidate starts are bounded by len(text)-len(pattern),
// so no comparison ever reads past the end of the text.
//
// Example:
//
//	pos := linear.Search([]byte("dog"), []byte("the dog"))
//	// pos == 4
func Search[T comparable](pattern, text []T) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}

	// Every start in [0, n-m] leaves room for the whole pattern, so the
	// inner loop can index text[s+i] without further bounds checks.
candidates:
	for s := 0; s <= n-m; s++ {
		for i := 0; i < m; i++ {
			if text[s+i] != pattern[i] {
				continue candidates
			}
		}
		return s
	}
	return -1
}
