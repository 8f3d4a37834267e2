// Package digest provides the fixed-size output of the Tip5 hash.
package digest

import (
	"encoding/hex"
	"errors"
	"fmt"

	"tip5-hash/pkg/field"
)

const (
	// Len is the number of field elements in a digest.
	Len = 5

	// ByteLen is the size of a digest's canonical byte encoding.
	ByteLen = Len * field.Bytes
)

// ErrInvalidLength is returned when decoding input of the wrong size.
var ErrInvalidLength = errors.New("digest: invalid length")

// Digest is the result of hashing a sequence of field elements.
// Digests are compared and used as map keys by value.
type Digest [Len]field.Element

// New creates a digest from an array of elements.
func New(elements [Len]field.Element) Digest {
	return Digest(elements)
}

// Values returns the digest's elements.
func (d Digest) Values() [Len]field.Element {
	return d
}

// Bytes returns the canonical encoding: each element's canonical value as 8 little-endian bytes.
func (d Digest) Bytes() [ByteLen]byte {
	var out [ByteLen]byte
	for i, e := range d {
		b := e.CanonicalBytes()
		copy(out[i*field.Bytes:], b[:])
	}
	return out
}

// FromBytes decodes the canonical encoding produced by Bytes.
func FromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != ByteLen {
		return d, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), ByteLen)
	}
	for i := range d {
		e, err := field.FromCanonicalBytes([field.Bytes]byte(b[i*field.Bytes : (i+1)*field.Bytes]))
		if err != nil {
			return Digest{}, fmt.Errorf("digest: element %d: %w", i, err)
		}
		d[i] = e
	}
	return d, nil
}

// String returns the lower-case hex of Bytes.
func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// ParseHex decodes a digest from the format produced by String.
func ParseHex(s string) (Digest, error) {
	if len(s) != 2*ByteLen {
		return Digest{}, fmt.Errorf("%w: got %d hex characters, want %d", ErrInvalidLength, len(s), 2*ByteLen)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("digest: %w", err)
	}
	return FromBytes(b)
}
