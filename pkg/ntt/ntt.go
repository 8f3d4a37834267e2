// Package ntt provides the Number Theoretic Transform over the field Z_P.
//
// P - 1 = 2^32 * (2^32 - 1), so power-of-two transforms up to length 2^32 exist.
package ntt

import (
	"math/bits"

	"tip5-hash/pkg/field"
)

// Generator is a generator of the multiplicative group of Z_P.
const Generator = 7

// maxLog is log2 of the largest supported transform length.
const maxLog = 32

// RootOfUnity returns a primitive n-th root of unity. n must be a power of two up to 2^32.
func RootOfUnity(n int) field.Element {
	checkLength(n)
	return field.New(Generator).Exp((field.P - 1) / uint64(n))
}

func checkLength(n int) {
	if n <= 0 || n&(n-1) != 0 || bits.TrailingZeros64(uint64(n)) > maxLog {
		panic("ntt: length must be a power of two up to 2^32")
	}
}

// bitReverse permutes a into bit-reversed index order.
func bitReverse(a []field.Element) {
	n := len(a)
	if n < 2 {
		return
	}
	shift := 64 - bits.TrailingZeros64(uint64(n))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// transform evaluates a at the powers of omega, in place.
func transform(a []field.Element, omega field.Element) {
	n := len(a)
	bitReverse(a)
	for size := 2; size <= n; size *= 2 {
		half := size / 2
		w := omega.Exp(uint64(n / size))
		for offset := 0; offset < n; offset += size {
			z := field.One()
			for j := offset; j < offset+half; j++ {
				t := z.Mul(a[j+half])
				a[j+half] = a[j].Sub(t)
				a[j] = a[j].Add(t)
				z = z.Mul(w)
			}
		}
	}
}

// Forward computes A[k] = sum_j a[j] * w^(jk) in place, w = RootOfUnity(len(a)).
// Input and output are in standard order.
func Forward(a []field.Element) {
	n := len(a)
	transform(a, RootOfUnity(n))
}

// Inverse undoes Forward in place.
func Inverse(a []field.Element) {
	n := len(a)
	transform(a, RootOfUnity(n).Inverse())
	nInv := field.New(uint64(n)).Inverse()
	for i := range a {
		a[i] = a[i].Mul(nInv)
	}
}

// CyclicConvolution returns c[k] = sum_i a[i] * b[(k-i) mod n].
// a and b must have the same power-of-two length; neither is modified.
func CyclicConvolution(a, b []field.Element) []field.Element {
	if len(a) != len(b) {
		panic("ntt: convolution operands differ in length")
	}
	n := len(a)
	checkLength(n)

	fa := append([]field.Element(nil), a...)
	fb := append([]field.Element(nil), b...)
	Forward(fa)
	Forward(fb)
	for i := range fa {
		fa[i] = fa[i].Mul(fb[i])
	}
	Inverse(fa)
	return fa
}
