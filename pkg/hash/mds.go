package hash

import (
	"math/bits"

	"tip5-hash/pkg/field"
)

// mdsLayer multiplies the state by the circulant MDS matrix.
//
// Montgomery form is linear, so the product can be taken on raw words. Each raw word is
// split into 32-bit halves and both halves go through the circulant product over plain
// integers: entries are < 2^16, so every row sum stays below 2^52 and no reduction is
// needed until the halves are recombined.
func mdsLayer(state *[StateSize]field.Element) {
	var lo, hi [StateSize]uint64
	for i, e := range state {
		w := e.Raw()
		lo[i] = w & 0xFFFF_FFFF
		hi[i] = w >> 32
	}

	for r := 0; r < StateSize; r++ {
		row := &mdsMatrix[r]
		var sLo, sHi uint64
		for c := 0; c < StateSize; c++ {
			sLo += row[c] * lo[c]
			sHi += row[c] * hi[c]
		}
		state[r] = field.FromRaw(foldRow(sLo, sHi))
	}
}

// foldRow reduces sLo + sHi*2^32 (< 2^85) to a 64-bit word congruent mod P,
// using 2^64 = 2^32 - 1 (mod P). The result may exceed P; the fold is part of
// the permutation's definition because later rounds read raw bytes.
func foldRow(sLo, sHi uint64) uint64 {
	lo, carry := bits.Add64(sLo, sHi<<32, 0)
	hi := sHi>>32 + carry

	res, over := bits.Add64(lo, hi*0xFFFF_FFFF, 0)
	if over != 0 {
		res += 0xFFFF_FFFF
	}
	return res
}
