package substr

import (
	"github.com/coregx/substr/bmh"
	"github.com/coregx/substr/internal/bytealg"
	"github.com/coregx/substr/linear"
)

// Strategy identifies the algorithm Index selects for a given pattern/text
// shape. Selection is automatic; the type exists so callers and tests can
// observe which path a given input takes.
type Strategy int

const (
	// UseEmpty short-circuits the empty pattern: it matches at index 0
	// with no scan at all.
	UseEmpty Strategy = iota

	// UseNone short-circuits a pattern longer than the text: no candidate
	// window fits, so the result is -1 without reading either input.
	UseNone

	// UseMemchr handles single-byte patterns with the SWAR byte scan.
	// A one-byte pattern has no structure for KMP or BMH to exploit.
	UseMemchr

	// UseLinear handles small windows, where table construction costs
	// more than the brute-force scan it would save.
	UseLinear

	// UseBMH is the default for everything else: table cost amortizes and
	// the bad-character rule skips most text bytes.
	UseBMH
)

// String returns the strategy name for logs and test failures.
func (s Strategy) String() string {
	switch s {
	case UseEmpty:
		return "Empty"
	case UseNone:
		return "None"
	case UseMemchr:
		return "Memchr"
	case UseLinear:
		return "Linear"
	case UseBMH:
		return "BMH"
	default:
		return "Unknown"
	}
}

// smallTextLen is the window size below which the brute-force scan beats
// table-driven search: building a 256-entry shift table touches more memory
// than scanning the whole text.
const smallTextLen = 32

// ChooseStrategy returns the algorithm Index will use for the given pattern
// and text lengths.
func ChooseStrategy(patternLen, textLen int) Strategy {
	switch {
	case patternLen == 0:
		return UseEmpty
	case patternLen > textLen:
		return UseNone
	case patternLen == 1:
		return UseMemchr
	case textLen < smallTextLen:
		return UseLinear
	default:
		return UseBMH
	}
}

// Index returns the byte index of the first occurrence of pattern in text,
// or -1 if pattern is not present in text.
//
// This is the convenience entry point for one-shot searches: it picks an
// algorithm from the input shape (see ChooseStrategy) and builds whatever
// table that algorithm needs for this single call. Callers searching the
// same pattern against many texts should create a handle with NewBytes
// instead, which builds each table once.
//
// Index agrees with bytes.Index on every input, including the empty
// pattern, which matches at index 0.
//
// Example:
//
//	pos := substr.Index([]byte("the dog is very dead then"), []byte("dead"))
//	// pos == 16
func Index(text, pattern []byte) int {
	switch ChooseStrategy(len(pattern), len(text)) {
	case UseEmpty:
		return 0
	case UseNone:
		return -1
	case UseMemchr:
		return bytealg.IndexByte(text, pattern[0])
	case UseLinear:
		return linear.Search(pattern, text)
	default:
		return bmh.Search(pattern, text, bmh.BuildShifts(pattern))
	}
}

// IndexString is Index on the bytes of text and pattern.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}
