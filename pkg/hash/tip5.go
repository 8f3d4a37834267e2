// Package hash implements the Tip5 permutation and the hash functions built on it.
package hash

import (
	"tip5-hash/pkg/digest"
	"tip5-hash/pkg/encoding"
	"tip5-hash/pkg/field"
	"tip5-hash/pkg/sponge"
)

// Tip5 is a sponge over the Tip5 permutation.
// Internal state is kept in Montgomery form; the first sponge.Rate elements are the rate.
type Tip5 struct {
	state [StateSize]field.Element
}

var _ sponge.Sponge = (*Tip5)(nil)

// New creates a Tip5 sponge for the given domain.
// The capacity is all ones for FixedLength and all zeros for VariableLength.
func New(domain sponge.Domain) *Tip5 {
	t := &Tip5{}
	if domain == sponge.FixedLength {
		for i := sponge.Rate; i < StateSize; i++ {
			t.state[i] = field.One()
		}
	}
	return t
}

// Init creates a fresh sponge in the variable-length domain.
func Init() *Tip5 {
	return New(sponge.VariableLength)
}

// OffsetFermatCubeMap returns (x+1)^3 - 1 mod 257. On 0..255 it generates the lookup table.
func OffsetFermatCubeMap(x uint16) uint16 {
	xx := uint64(x) + 1
	return uint16((xx*xx*xx + 256) % 257)
}

// splitAndLookup substitutes every byte of the raw Montgomery word through the lookup table.
// This is a permutation of raw words, not a field operation.
func splitAndLookup(e field.Element) field.Element {
	b := e.RawBytes()
	for i := range b {
		b[i] = lookupTable[b[i]]
	}
	return field.FromRawBytes(b)
}

func (t *Tip5) sboxLayer() {
	for i := 0; i < NumSplitAndLookup; i++ {
		t.state[i] = splitAndLookup(t.state[i])
	}

	// x -> x^7
	for i := NumSplitAndLookup; i < StateSize; i++ {
		x := t.state[i]
		sq := x.Square()
		qu := sq.Square()
		t.state[i] = x.Mul(sq.Mul(qu))
	}
}

// round applies one round of the Tip5 permutation: S-box, MDS, round constants.
func (t *Tip5) round(r int) {
	t.sboxLayer()
	mdsLayer(&t.state)
	for i := 0; i < StateSize; i++ {
		t.state[i] = t.state[i].Add(roundConstants[StateSize*r+i])
	}
}

// Permute applies the full Tip5 permutation to the state in place.
func (t *Tip5) Permute() {
	for r := 0; r < NumRounds; r++ {
		t.round(r)
	}
}

// Trace applies the permutation like Permute and returns the state before the
// first round followed by the state after each round.
func (t *Tip5) Trace() [1 + NumRounds][StateSize]field.Element {
	var trace [1 + NumRounds][StateSize]field.Element
	trace[0] = t.state
	for r := 0; r < NumRounds; r++ {
		t.round(r)
		trace[1+r] = t.state
	}
	return trace
}

// State returns a copy of the internal state.
func (t *Tip5) State() [StateSize]field.Element {
	return t.state
}

// Absorb overwrites the rate with block and applies the permutation.
func (t *Tip5) Absorb(block sponge.Block) {
	copy(t.state[:sponge.Rate], block[:])
	t.Permute()
}

// Squeeze returns the rate and then applies the permutation.
func (t *Tip5) Squeeze() sponge.Block {
	var out sponge.Block
	copy(out[:], t.state[:sponge.Rate])
	t.Permute()
	return out
}

func (t *Tip5) output() digest.Digest {
	var d digest.Digest
	copy(d[:], t.state[:digest.Len])
	return d
}

// Hash10 hashes exactly ten elements in the fixed-length domain.
// There is no padding because the input fills the rate exactly.
func Hash10(input [sponge.Rate]field.Element) digest.Digest {
	t := New(sponge.FixedLength)
	copy(t.state[:sponge.Rate], input[:])
	t.Permute()
	return t.output()
}

// HashPair hashes two digests together. It equals Hash10 on the concatenation of their values.
func HashPair(left, right digest.Digest) digest.Digest {
	var input [sponge.Rate]field.Element
	copy(input[:digest.Len], left[:])
	copy(input[digest.Len:], right[:])
	return Hash10(input)
}

// HashVarlen hashes a variable-length sequence of elements.
//
// HashVarlen and Hash10 differ even when the padded input of the former equals
// the input of the latter: the capacity starts at zero here and at one for
// fixed-length hashing.
func HashVarlen(input []field.Element) digest.Digest {
	t := Init()
	sponge.PadAndAbsorbAll(t, input)
	return t.output()
}

// HashBytes hashes a byte string through the injective encoding.BytesToElements map.
func HashBytes(b []byte) digest.Digest {
	return HashVarlen(encoding.BytesToElements(b))
}
