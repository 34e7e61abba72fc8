// Package keyschedule derives AES round-key schedules from 128-, 192- and
// 256-bit cipher keys per FIPS-197 §5.2.
package keyschedule

import (
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"

	"git.gammaspectra.live/P2Pool/aes/gf"
	"git.gammaspectra.live/P2Pool/aes/sbox"
	"git.gammaspectra.live/P2Pool/aes/types"
)

// MaxScheduleSize is the schedule length for the largest supported cipher
// key, 60 words for AES-256.
const MaxScheduleSize = 240

// Substitution is the byte substitution the scheduler applies at key-length
// boundary words. The expansion itself only requires it to be a fixed
// byte-to-byte mapping.
type Substitution func(byte) byte

type ParamsError struct {
	Params Params
}

func (e ParamsError) Error() string {
	return fmt.Sprintf("keyschedule: invalid parameters %+v", e.Params)
}

type KeyLengthError struct {
	Params Params
	Bytes  int
}

func (e KeyLengthError) Error() string {
	return fmt.Sprintf("keyschedule: cipher key is %d bytes, parameters require %d", e.Bytes, e.Params.KeySize())
}

// Schedule is the expanded round-key material for one cipher key. It is
// allocated per call and sized exactly to the active parameters; callers may
// use it concurrently with other schedules.
type Schedule struct {
	params Params
	bytes  []byte
}

// Expand derives the round-key schedule for cipherKey under params, using
// the standard substitution box.
func Expand(params Params, cipherKey []byte) (*Schedule, error) {
	return ExpandWithSubstitution(params, cipherKey, sbox.Sub)
}

// ExpandWithSubstitution is Expand with an explicit substitution collaborator.
//
// The schedule starts as the cipher key itself. Every later word is the word
// KeyWords positions back xored with the previous word, which at key-length
// boundaries (and, for AES-256, halfway between them) is first passed
// through rotation, substitution and round-constant injection.
func ExpandWithSubstitution(params Params, cipherKey []byte, sub Substitution) (*Schedule, error) {
	if !params.Valid() {
		return nil, ParamsError{Params: params}
	}
	if len(cipherKey) != params.KeySize() {
		return nil, KeyLengthError{Params: params, Bytes: len(cipherKey)}
	}

	ks := make([]byte, params.ScheduleSize())
	copy(ks, cipherKey)

	for word := params.KeyWords; word < len(ks)/4; word++ {
		// owned copy of the previous word: the transforms below must
		// not write through into the schedule
		var w [4]byte
		copy(w[:], ks[(word-1)*4:])

		if word%params.KeyWords == 0 {
			// [b0, b1, b2, b3] -> [b1, b2, b3, b0]
			w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
			for i := range w {
				w[i] = sub(w[i])
			}
			// only the first byte takes the round constant; the
			// other three bytes of the constant word are zero
			w[0] ^= roundConstant(word / params.KeyWords)
		} else if params.KeyWords > 6 && word%params.KeyWords == 4 {
			// extra substitution for 256-bit keys, without
			// rotation or round constant
			for i := range w {
				w[i] = sub(w[i])
			}
		}

		for i := range w {
			w[i] ^= ks[(word-params.KeyWords)*4+i]
		}
		copy(ks[word*4:], w[:])
	}

	return &Schedule{params: params, bytes: ks}, nil
}

// roundConstant returns the constant injected at boundary index i >= 1,
// the field element x^(i-1).
func roundConstant(i int) byte {
	// i == 1 takes the literal x⁰; keep the branch distinct from
	// gf.MulX(1, 0) so the base case stays visible
	if i == 1 {
		return 1
	}
	return gf.MulX(1, i-1)
}

// Params returns the parameters the schedule was expanded under.
func (s *Schedule) Params() Params {
	return s.params
}

// Bytes returns the backing schedule material. Callers must not modify it.
func (s *Schedule) Bytes() []byte {
	return s.bytes
}

// Len returns the schedule length in bytes.
func (s *Schedule) Len() int {
	return len(s.bytes)
}

// NumWords returns the number of 4-byte words in the schedule.
func (s *Schedule) NumWords() int {
	return len(s.bytes) / 4
}

// Word returns schedule word i.
func (s *Schedule) Word(i int) (w [4]byte) {
	copy(w[:], s.bytes[i*4:])
	return w
}

// RoundKey returns the block-sized key material for round r, with round 0
// being the initial whitening key. r must be in [0, Rounds].
func (s *Schedule) RoundKey(r int) types.RoundKey {
	return types.RoundKeyFromBytes(s.bytes[r*4*s.params.BlockWords : (r+1)*4*s.params.BlockWords])
}

func (s *Schedule) String() string {
	return fasthex.EncodeToString(s.bytes)
}

func (s *Schedule) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(s.bytes)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], s.bytes)
	return buf, nil
}
