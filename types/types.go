package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const RoundKeySize = 16

// RoundKey is the 128 bits of schedule material combined with the cipher
// state in one round.
//
//nolint:recvcheck
type RoundKey [RoundKeySize]byte

var ZeroRoundKey RoundKey

func (k RoundKey) MarshalJSON() ([]byte, error) {
	var buf [RoundKeySize*2 + 2]byte
	buf[0] = '"'
	buf[RoundKeySize*2+1] = '"'
	fasthex.Encode(buf[1:], k[:])
	return buf[:], nil
}

func (k *RoundKey) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != RoundKeySize*2+2 {
		return errors.New("wrong round key size")
	}

	if _, err := fasthex.Decode(k[:], b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}

func (k RoundKey) String() string {
	return fasthex.EncodeToString(k[:])
}

func MustBytes16FromString[T ~[16]byte](s string) T {
	if k, err := Bytes16FromString[T](s); err != nil {
		panic(err)
	} else {
		return k
	}
}

func Bytes16FromString[T ~[16]byte](s string) (T, error) {
	var k T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return k, err
	} else {
		if len(buf) != 16 {
			return k, errors.New("wrong size")
		}
		copy(k[:], buf)
		return k, nil
	}
}

func MustRoundKeyFromString(s string) RoundKey {
	return MustBytes16FromString[RoundKey](s)
}

func RoundKeyFromString(s string) (RoundKey, error) {
	return Bytes16FromString[RoundKey](s)
}

func RoundKeyFromBytes(buf []byte) (k RoundKey) {
	if len(buf) != RoundKeySize {
		return
	}
	copy(k[:], buf)
	return
}
