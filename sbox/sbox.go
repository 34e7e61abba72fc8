// Package sbox provides the Rijndael substitution box consumed by the key
// scheduler.
//
// The table is not hardcoded: it is generated at package init by walking the
// multiplicative group of GF(2⁸) and applying the affine transformation of
// FIPS-197 §5.1.1. p and q stay multiplicative inverses of each other
// throughout the walk, so every entry is q's affine image at index p.
package sbox

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/aes/gf"
)

var forward = func() (sb [256]byte) {
	var p, q byte = 1, 1
	for {
		// multiply p by 3 (a generator of the multiplicative group)
		p = gf.Add(p, gf.MulX(p, 1))

		// divide q by 3 (equals multiplication by 0xf6)
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sb[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse and maps to the affine constant
	sb[0] = 0x63
	return sb
}()

// Sub substitutes a single byte.
func Sub(b byte) byte {
	return forward[b]
}

// Table returns the full substitution table for callers that index directly.
func Table() *[256]byte {
	return &forward
}
