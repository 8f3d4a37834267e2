package digest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"tip5-hash/pkg/field"
)

func sampleDigest() Digest {
	return New([Len]field.Element{field.New(1), field.New(2), field.New(3), field.New(field.P - 1), field.New(1 << 40)})
}

func TestValues(t *testing.T) {
	elems := [Len]field.Element{field.New(10), field.New(20), field.New(30), field.New(40), field.New(50)}
	d := New(elems)
	if d.Values() != elems {
		t.Errorf("Values() = %v, want %v", d.Values(), elems)
	}
}

func TestEquality(t *testing.T) {
	a := sampleDigest()
	b := sampleDigest()
	if a != b {
		t.Errorf("identical digests compare unequal")
	}
	c := b
	c[4] = field.New(7)
	if a == c {
		t.Errorf("different digests compare equal")
	}

	seen := map[Digest]int{a: 1}
	if seen[b] != 1 {
		t.Errorf("digest lookup by value failed")
	}
}

func TestBytes(t *testing.T) {
	got := sampleDigest().Bytes()
	want, _ := hex.DecodeString(
		"0100000000000000" +
			"0200000000000000" +
			"0300000000000000" +
			"00000000ffffffff" +
			"0000000000010000")
	if !bytes.Equal(got[:], want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
}

func TestBytesRoundtrip(t *testing.T) {
	d := sampleDigest()
	b := d.Bytes()
	back, err := FromBytes(b[:])
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if back != d {
		t.Errorf("FromBytes(Bytes()) = %v, want %v", back, d)
	}
}

func TestFromBytesErrors(t *testing.T) {
	if _, err := FromBytes(make([]byte, ByteLen-1)); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short input err = %v, want ErrInvalidLength", err)
	}

	b := make([]byte, ByteLen)
	for i := 16; i < 24; i++ {
		b[i] = 0xff // element 2 = 2^64 - 1 >= P
	}
	if _, err := FromBytes(b); !errors.Is(err, field.ErrNonCanonical) {
		t.Errorf("non-canonical err = %v, want ErrNonCanonical", err)
	}
}

func TestHexRoundtrip(t *testing.T) {
	d := sampleDigest()
	s := d.String()
	if len(s) != 2*ByteLen || strings.ToLower(s) != s {
		t.Errorf("String() = %q", s)
	}
	back, err := ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if back != d {
		t.Errorf("ParseHex(String()) = %v, want %v", back, d)
	}
}

func TestParseHexErrors(t *testing.T) {
	if _, err := ParseHex("abcd"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("short hex err = %v, want ErrInvalidLength", err)
	}
	if _, err := ParseHex(strings.Repeat("zz", ByteLen)); err == nil {
		t.Errorf("invalid hex accepted")
	}
}
