// Package substr provides single-pattern substring search with three
// interchangeable algorithms and precomputed, memoized search tables.
//
// The package wraps a pattern in a handle that exposes:
//   - Linear: brute-force scan, O(n*m) worst case, no setup cost
//   - KMP: Knuth-Morris-Pratt, O(n+m) guaranteed, border table
//   - BMH: Boyer-Moore-Horspool, sublinear on average, byte patterns only
//
// Each auxiliary table is built at most once per handle, on first use of
// the algorithm that needs it, and reused across searches against any
// number of texts. Building the tables depends only on the pattern, never
// on the text, which is what makes the caching correct.
//
// Basic usage:
//
//	p := substr.NewString("dead")
//	pos := p.BMHString("the dog is very dead then")
//	// pos == 16
//
// Generic patterns work over any comparable element type:
//
//	p := substr.New([]rune("héllo"))
//	pos := p.KMP([]rune("say héllo twice"))
//	// pos == 4 (a rune offset, not a byte offset)
//
// Callers that just want the first occurrence without choosing an
// algorithm can use Index/IndexString, which select a strategy from the
// input shape the same way a caller would by hand.
//
// Index units: the generic matchers report offsets in elements (runes, if
// the handle was built from runes), while BMH always reports byte offsets.
// For ASCII the two coincide; for multi-byte UTF-8 they do not, and the
// package performs no conversion between them.
//
// All search methods return -1 for "not found", following bytes.Index.
// There are no error returns: every input, including empty patterns and
// texts, has a defined result.
//
// Handles are safe for concurrent use. First-use table construction is
// synchronized; after that the tables are read-only.
package substr

import (
	"sync"

	"github.com/coregx/substr/bmh"
	"github.com/coregx/substr/kmp"
	"github.com/coregx/substr/linear"
)

// Pattern is an immutable search pattern over elements of type T, with a
// lazily built border table for KMP. Create handles with New (or
// NewBytes/NewString/NewRunes for concrete types); the zero value behaves
// as an empty pattern.
//
// The handle borrows the slice passed to New and never mutates it; the
// caller must not mutate it either while the handle is in use. Any change
// to the pattern requires a new handle — tables are never rebuilt.
type Pattern[T comparable] struct {
	elems []T

	bordersOnce sync.Once
	borders     kmp.Borders
}

// New returns a handle for pattern. No tables are built until the first
// search that needs them.
func New[T comparable](pattern []T) *Pattern[T] {
	return &Pattern[T]{elems: pattern}
}

// NewRunes returns a handle over the pattern's runes. Searches through this
// handle report rune offsets; see the package comment for how these relate
// to BMH's byte offsets.
func NewRunes(pattern string) *Pattern[rune] {
	return New([]rune(pattern))
}

// Len returns the pattern length in elements.
func (p *Pattern[T]) Len() int {
	return len(p.elems)
}

// Linear searches text with the brute-force scan. An empty pattern matches
// at index 0. Returns -1 if the pattern is not present.
func (p *Pattern[T]) Linear(text []T) int {
	return linear.Search(p.elems, text)
}

// KMP searches text with Knuth-Morris-Pratt, building the border table on
// first use and reusing it afterwards. An empty pattern matches at index 0.
// Returns -1 if the pattern is not present.
func (p *Pattern[T]) KMP(text []T) int {
	return kmp.Search(p.elems, text, p.Borders())
}

// Borders returns the pattern's border table, building it if no KMP search
// has run yet. The returned slice is shared and must not be modified.
func (p *Pattern[T]) Borders() kmp.Borders {
	p.bordersOnce.Do(func() {
		p.borders = kmp.BuildBorders(p.elems)
	})
	return p.borders
}

// BytePattern is a Pattern over bytes, adding the BMH search and its lazily
// built bad-character table. Linear and KMP remain available through the
// embedded handle and agree with BMH on every non-empty pattern.
type BytePattern struct {
	Pattern[byte]

	shiftsOnce sync.Once
	shifts     *bmh.ShiftTable
}

// NewBytes returns a handle for a byte pattern.
func NewBytes(pattern []byte) *BytePattern {
	return &BytePattern{Pattern: Pattern[byte]{elems: pattern}}
}

// NewString returns a handle for the pattern's bytes. Searches through this
// handle report byte offsets.
func NewString(pattern string) *BytePattern {
	return NewBytes([]byte(pattern))
}

// BMH searches text with Boyer-Moore-Horspool, building the bad-character
// table on first use and reusing it afterwards. Returns -1 if the pattern
// is not present.
//
// Unlike Linear and KMP, an empty pattern returns -1: BMH inspects the
// pattern's last byte and is undefined for length zero.
func (p *BytePattern) BMH(text []byte) int {
	return bmh.Search(p.elems, text, p.Shifts())
}

// BMHString is BMH on the bytes of text.
func (p *BytePattern) BMHString(text string) int {
	return p.BMH([]byte(text))
}

// Shifts returns the pattern's bad-character table, building it if no BMH
// search has run yet. The returned table is shared and must not be
// modified.
func (p *BytePattern) Shifts() *bmh.ShiftTable {
	p.shiftsOnce.Do(func() {
		p.shifts = bmh.BuildShifts(p.elems)
	})
	return p.shifts
}
