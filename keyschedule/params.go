package keyschedule

import "strconv"

// Params carries the three sizing parameters of FIPS-197 §5, there named
// Nb/Nk/Nr. A Params value is immutable configuration: construct it once per
// cipher key size with ParamsForSize and pass it to every Expand call, so
// schedules for different key sizes never share state.
type Params struct {
	// BlockWords (Nb) is the number of 4-byte words in the data block.
	// AES only takes 128-bit blocks, so this is always 4.
	BlockWords int
	// KeyWords (Nk) is the number of 4-byte words in the cipher key.
	KeyWords int
	// Rounds (Nr) is the number of transformation rounds, KeyWords + 6.
	Rounds int
}

var (
	Params128 = Params{BlockWords: 4, KeyWords: 4, Rounds: 10}
	Params192 = Params{BlockWords: 4, KeyWords: 6, Rounds: 12}
	Params256 = Params{BlockWords: 4, KeyWords: 8, Rounds: 14}

	// DefaultParams matches the largest supported cipher key.
	DefaultParams = Params256
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "keyschedule: unsupported cipher key size " + strconv.Itoa(int(k))
}

// ParamsForSize resolves the parameters for a cipher key of keyBits bits.
// Unsupported sizes are rejected outright: the scheduler never falls back to
// default parameters, as that would silently produce a schedule for the
// wrong key size.
func ParamsForSize(keyBits int) (Params, error) {
	switch keyBits {
	case 128:
		return Params128, nil
	case 192:
		return Params192, nil
	case 256:
		return Params256, nil
	}
	return Params{}, KeySizeError(keyBits)
}

// Valid reports whether p is one of the three supported parameter sets.
func (p Params) Valid() bool {
	return p == Params128 || p == Params192 || p == Params256
}

// KeySize returns the cipher key length in bytes.
func (p Params) KeySize() int {
	return p.KeyWords * 4
}

// ScheduleSize returns the schedule length in bytes, one block-sized round
// key for each of the Rounds rounds plus the initial whitening key.
func (p Params) ScheduleSize() int {
	return 4 * p.BlockWords * (p.Rounds + 1)
}
