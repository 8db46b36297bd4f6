// Package bytealg provides the pure Go byte-search primitive backing the
// single-byte fast path of the root substr package.
package bytealg

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// IndexByte returns the index of the first instance of c in text, or -1 if
// c is not present.
//
// The scan uses the SWAR (SIMD Within A Register) technique: c is broadcast
// into every byte of a uint64 mask, 8 text bytes are read at a time, and a
// zero-byte detection formula finds the first matching lane. Inputs shorter
// than one word fall back to a plain loop, which is faster there because
// the mask setup never amortizes.
func IndexByte(text []byte, c byte) int {
	n := len(text)
	if n < 8 {
		for i := 0; i < n; i++ {
			if text[i] == c {
				return i
			}
		}
		return -1
	}

	// Broadcast c to all 8 lanes: c=0x42 -> 0x4242424242424242.
	mask := uint64(c) * lo8

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(text[i:])

		// XOR turns matching lanes into 0x00; the Hacker's Delight
		// zero-byte formula sets the high bit of every zero lane.
		x := chunk ^ mask
		matched := (x - lo8) & ^x & hi8
		if matched != 0 {
			return i + bits.TrailingZeros64(matched)/8
		}
		i += 8
	}

	for ; i < n; i++ {
		if text[i] == c {
			return i
		}
	}
	return -1
}
