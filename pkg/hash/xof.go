package hash

import (
	"golang.org/x/crypto/sha3"

	"tip5-hash/pkg/field"
)

// ElementXOF expands a seed into a stream of uniformly distributed field elements.
// It reads SHAKE-128 output as 8-byte little-endian words and rejects words >= P.
type ElementXOF struct {
	h   sha3.ShakeHash
	buf [168]byte // SHAKE128 rate
	pos int
	end int
}

// NewElementXOF creates an element stream for seed.
func NewElementXOF(seed []byte) *ElementXOF {
	h := sha3.NewShake128()
	h.Write(seed)
	return &ElementXOF{h: h}
}

// Reset reinitializes the stream for a new seed.
func (x *ElementXOF) Reset(seed []byte) {
	x.h.Reset()
	x.h.Write(seed)
	x.pos = 0
	x.end = 0
}

// next8 returns the next 8 bytes from the XOF.
func (x *ElementXOF) next8() [field.Bytes]byte {
	if x.pos+field.Bytes > x.end {
		// 168 is a multiple of 8, so the buffer is always fully consumed before a refill.
		n, _ := x.h.Read(x.buf[:])
		x.pos = 0
		x.end = n
	}
	b := [field.Bytes]byte(x.buf[x.pos : x.pos+field.Bytes])
	x.pos += field.Bytes
	return b
}

// Next returns the next element of the stream.
func (x *ElementXOF) Next() field.Element {
	for {
		e, err := field.FromCanonicalBytes(x.next8())
		if err == nil {
			return e
		}
	}
}

// ExpandElements returns the first n elements of the stream for seed.
func ExpandElements(seed []byte, n int) []field.Element {
	x := NewElementXOF(seed)
	out := make([]field.Element, n)
	for i := range out {
		out[i] = x.Next()
	}
	return out
}
