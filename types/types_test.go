package types

import (
	"testing"

	"git.gammaspectra.live/P2Pool/aes/utils"
)

func TestRoundKey(t *testing.T) {
	hexKey := "d014f9a8c9ee2589e13f0cc8b6630ca6"
	k, err := RoundKeyFromString(hexKey)
	if err != nil {
		t.Fatal(err)
	}

	if k.String() != hexKey {
		t.Fatalf("expected %s, got %s", hexKey, k)
	}
}

func TestRoundKey_MarshalJSON(t *testing.T) {
	k := MustRoundKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")
	buf, err := k.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	expected := "\"2b7e151628aed2a6abf7158809cf4f3c\""
	if string(buf) != expected {
		t.Fatalf("expected %s, got %s", expected, buf)
	}

	var k2 RoundKey
	if err = k2.UnmarshalJSON(buf); err != nil {
		t.Fatal(err)
	}
	if k2 != k {
		t.Fatalf("expected %s, got %s", k, k2)
	}
}

func TestRoundKey_JSONRoundTrip(t *testing.T) {
	keys := []RoundKey{
		MustRoundKeyFromString("2b7e151628aed2a6abf7158809cf4f3c"),
		MustRoundKeyFromString("a0fafe1788542cb123a339392a6c7605"),
		ZeroRoundKey,
	}

	buf, err := utils.MarshalJSON(keys)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []RoundKey
	if err = utils.UnmarshalJSON(buf, &decoded); err != nil {
		t.Fatal(err)
	}

	if len(decoded) != len(keys) {
		t.Fatalf("expected %d keys, got %d", len(keys), len(decoded))
	}
	for i := range keys {
		if decoded[i] != keys[i] {
			t.Fatalf("key %d: expected %s, got %s", i, keys[i], decoded[i])
		}
	}
}

func TestRoundKeyFromString_WrongSize(t *testing.T) {
	if _, err := RoundKeyFromString("2b7e1516"); err == nil {
		t.Fatal("expected error for short input")
	}
	if _, err := RoundKeyFromString("zz7e151628aed2a6abf7158809cf4f3c"); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}

func TestRoundKeyFromBytes(t *testing.T) {
	if RoundKeyFromBytes([]byte{1, 2, 3}) != ZeroRoundKey {
		t.Fatal("expected zero round key for wrong length input")
	}
}
