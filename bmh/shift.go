// Package bmh implements Boyer-Moore-Horspool substring search over byte
// slices.
//
// BMH precomputes a 256-entry bad-character shift table for the pattern and
// compares each candidate window right to left. On a mismatch the window
// jumps forward by the shift stored for the text byte under the window's
// last position, frequently by the full pattern length, which makes the
// average case sublinear: most text bytes are never examined at all. The
// worst case remains O(n*m).
//
// Unlike the generic matchers (linear, kmp) this package is hard-wired to
// an 8-bit alphabet: the table's fixed size is what makes the shift lookup
// a single array index. Callers searching UTF-8 text get byte offsets, not
// rune offsets.
package bmh

// alphabetSize is the number of distinct byte values. The table is a plain
// array so lookups compile to one indexed load.
const alphabetSize = 256

// ShiftTable maps each byte value to the distance the search window may
// safely advance when that byte is the last byte of a mismatching window.
//
// For a pattern of length m, bytes absent from the pattern map to m; a byte
// at pattern position i maps to m-1-i, with later (rightmost) occurrences
// overwriting earlier ones. All entries are therefore in [0, m]; the
// pattern's last byte maps to 0, which the matcher clamps to a minimum
// shift of 1 so the window always advances.
type ShiftTable [alphabetSize]int

// BuildShifts computes the bad-character shift table for pattern.
//
// The table is a pure function of the pattern and independent of any text,
// so it can be built once and reused across searches. Building costs
// O(m+256).
//
// Example: for the pattern "abca", 'a' maps to 0 (rightmost occurrence at
// index 3), 'c' to 1, 'b' to 2, and every other byte to 4.
func BuildShifts(pattern []byte) *ShiftTable {
	m := len(pattern)
	var shifts ShiftTable
	for i := range shifts {
		shifts[i] = m
	}
	// Left to right, so a repeated byte keeps the value from its
	// rightmost occurrence.
	for i := 0; i < m; i++ {
		shifts[pattern[i]] = m - 1 - i
	}
	return &shifts
}
