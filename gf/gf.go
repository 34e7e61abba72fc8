// Package gf implements byte arithmetic over GF(2⁸) as used by Rijndael.
//
// Elements are binary polynomials of degree < 8 reduced modulo the
// irreducible polynomial x⁸ + x⁴ + x³ + x + 1 (FIPS-197 §4.1). Reducing mod
// poly corresponds to a xor with the low eight bits (0x1B) every time a
// 0x100 bit appears.
package gf

// Poly is the reduction polynomial with the implied x⁸ term stripped.
const Poly = 0x1B

// Add adds two field elements. Addition of binary polynomials is xor.
func Add(a, b byte) byte {
	return a ^ b
}

// MulX multiplies b by the field generator x, times times in sequence.
// times == 0 leaves b unchanged.
func MulX(b byte, times int) byte {
	for i := 0; i < times; i++ {
		if b&0x80 != 0 {
			b = b<<1 ^ Poly
		} else {
			b <<= 1
		}
	}
	return b
}

// Mul multiplies two field elements with the shift-and-add schoolbook
// method, reducing as the partial product grows.
func Mul(a, b byte) byte {
	var s byte
	for b != 0 {
		if b&1 != 0 {
			s ^= a
		}
		a = MulX(a, 1)
		b >>= 1
	}
	return s
}
