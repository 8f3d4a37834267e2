// Package sampling derives pseudorandom values from a sponge's squeezed output.
package sampling

import (
	"tip5-hash/pkg/field"
	"tip5-hash/pkg/sponge"
)

// elementStream hands out squeezed elements one at a time, squeezing a new block when empty.
type elementStream struct {
	s   sponge.Sponge
	buf sponge.Block
	pos int
}

func newElementStream(s sponge.Sponge) *elementStream {
	return &elementStream{s: s, pos: sponge.Rate}
}

func (st *elementStream) next() field.Element {
	if st.pos == sponge.Rate {
		st.buf = st.s.Squeeze()
		st.pos = 0
	}
	e := st.buf[st.pos]
	st.pos++
	return e
}

func checkCount(n int) {
	if n < 0 {
		panic("sampling: negative sample count")
	}
}

// SampleIndices squeezes s to produce n indices in [0, upperBound).
// upperBound must be a power of two.
// Elements equal to field.Max are skipped so every index is uniformly distributed.
func SampleIndices(s sponge.Sponge, upperBound uint32, n int) []uint32 {
	if upperBound == 0 || upperBound&(upperBound-1) != 0 {
		panic("sampling: upper bound must be a power of two")
	}
	checkCount(n)

	st := newElementStream(s)
	indices := make([]uint32, 0, n)
	for len(indices) < n {
		e := st.next()
		if e.Value() == field.Max {
			continue
		}
		indices = append(indices, uint32(e.Value())%upperBound)
	}
	return indices
}

// SampleElements squeezes s to produce n field elements.
func SampleElements(s sponge.Sponge, n int) []field.Element {
	checkCount(n)
	st := newElementStream(s)
	out := make([]field.Element, n)
	for i := range out {
		out[i] = st.next()
	}
	return out
}
