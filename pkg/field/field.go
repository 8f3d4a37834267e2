// Package field provides arithmetic over the prime field Z_P where P = 2^64 - 2^32 + 1.
//
// Elements are kept in Montgomery form a_M = a * R mod P with R = 2^64.
package field

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

const (
	// P is the prime modulus: 2^64 - 2^32 + 1
	P uint64 = 0xFFFF_FFFF_0000_0001

	// Max is the largest canonical value, P - 1.
	Max = P - 1

	// Bytes is the size of an element's raw and canonical byte encodings.
	Bytes = 8

	// r2 = R^2 mod P = 2^128 mod P, used to move integers into Montgomery form.
	r2 uint64 = 0xFFFF_FFFE_0000_0001

	// epsilon = 2^64 mod P = 2^32 - 1. Adding P modulo 2^64 is subtracting epsilon.
	epsilon uint64 = 0xFFFF_FFFF
)

// ErrNonCanonical is returned when an encoded integer is not below P.
var ErrNonCanonical = errors.New("field: value is not canonical")

// Element is an element of Z_P in Montgomery form.
// The zero value is the field element 0.
type Element struct {
	v uint64
}

// New returns the element congruent to v.
func New(v uint64) Element {
	hi, lo := bits.Mul64(v, r2)
	return Element{MontReduce(hi, lo)}
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{epsilon}
}

// MontReduce computes x * R^(-1) mod P for x = hi*2^64 + lo < P*2^64.
// Only shifts, adds and one conditional correction are used, exploiting P = 2^64 - 2^32 + 1.
func MontReduce(hi, lo uint64) uint64 {
	a, e := bits.Add64(lo, lo<<32, 0)
	b := a - (a >> 32) - e
	r, c := bits.Sub64(hi, b, 0)
	return r - epsilon*c
}

// Value returns the canonical integer in [0, P) represented by e.
func (e Element) Value() uint64 {
	return MontReduce(0, e.v)
}

// FromRaw wraps a raw Montgomery-domain word without conversion.
func FromRaw(raw uint64) Element {
	return Element{raw}
}

// Raw returns the raw Montgomery-domain word.
func (e Element) Raw() uint64 {
	return e.v
}

// FromRawBytes interprets 8 little-endian bytes as a raw Montgomery-domain word.
func FromRawBytes(b [Bytes]byte) Element {
	return Element{uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56}
}

// RawBytes returns the raw Montgomery-domain word in little-endian byte order.
func (e Element) RawBytes() [Bytes]byte {
	return le64(e.v)
}

// CanonicalBytes returns Value() in little-endian byte order.
func (e Element) CanonicalBytes() [Bytes]byte {
	return le64(e.Value())
}

// FromCanonicalBytes decodes a little-endian canonical integer.
func FromCanonicalBytes(b [Bytes]byte) (Element, error) {
	v := FromRawBytes(b).v
	if v >= P {
		return Element{}, fmt.Errorf("%w: %d", ErrNonCanonical, v)
	}
	return New(v), nil
}

func le64(v uint64) [Bytes]byte {
	return [Bytes]byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	}
}

// Add returns e + f.
func (e Element) Add(f Element) Element {
	fv := f.v
	if fv >= P {
		fv -= P
	}
	// e + f = e - (P - f)
	x, borrow := bits.Sub64(e.v, P-fv, 0)
	if borrow != 0 {
		x += P
	}
	return Element{x}
}

// Sub returns e - f.
func (e Element) Sub(f Element) Element {
	x, borrow := bits.Sub64(e.v, f.v, 0)
	return Element{x - epsilon*borrow}
}

// Mul returns e * f. Multiplying two Montgomery words and reducing once stays in Montgomery form.
func (e Element) Mul(f Element) Element {
	hi, lo := bits.Mul64(e.v, f.v)
	return Element{MontReduce(hi, lo)}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Neg returns -e.
func (e Element) Neg() Element {
	return Zero().Sub(e)
}

// Div returns e / f. It panics if f is zero.
func (e Element) Div(f Element) Element {
	return f.Inverse().Mul(e)
}

// Exp returns e^n using binary exponentiation.
func (e Element) Exp(n uint64) Element {
	res := One()
	base := e
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Square()
		n >>= 1
	}
	return res
}

// sqn squares e n times.
func (e Element) sqn(n int) Element {
	for i := 0; i < n; i++ {
		e = e.Square()
	}
	return e
}

// Inverse returns e^(-1) = e^(P-2) by Fermat's little theorem. It panics if e is zero.
//
// P-2 = 0b1111...1110 1111...1111: 31 ones, a zero, then 32 ones.
// The chain builds runs of ones (2, 3, 6, 12, 24, 30, 31, 32) and finishes with 32 squarings.
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}

	ones2 := e.Square().Mul(e)
	ones3 := ones2.Square().Mul(e)
	ones6 := ones3.sqn(3).Mul(ones3)
	ones12 := ones6.sqn(6).Mul(ones6)
	ones24 := ones12.sqn(12).Mul(ones12)
	ones30 := ones24.sqn(6).Mul(ones6)
	ones31 := ones30.Square().Mul(e)
	ones31Zero := ones31.Square()
	ones32 := ones31Zero.Mul(e)

	return ones31Zero.sqn(32).Mul(ones32)
}

// IsZero reports whether e is congruent to 0.
func (e Element) IsZero() bool {
	return e.Value() == 0
}

// IsOne reports whether e is congruent to 1.
func (e Element) IsOne() bool {
	return e.Value() == 1
}

// Equal reports whether e and f represent the same residue, even if their raw words differ.
func (e Element) Equal(f Element) bool {
	return e.Value() == f.Value()
}

// String returns the canonical value in decimal.
func (e Element) String() string {
	return strconv.FormatUint(e.Value(), 10)
}
