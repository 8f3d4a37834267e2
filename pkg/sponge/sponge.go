// Package sponge defines the sponge construction used by the Tip5 hash.
//
// The padding and absorption rules live here so that they are independent of the
// concrete permutation.
package sponge

import "tip5-hash/pkg/field"

// Rate is the number of state elements absorbed or squeezed per permutation.
const Rate = 10

// Block is one rate-sized chunk of sponge input or output.
type Block = [Rate]field.Element

// Domain differentiates between modes of hashing.
//
// Each domain initializes the capacity part of the state differently, so
// variable-length input cannot collide with fixed-length input whose rate block
// happens to be identical after padding.
type Domain int

const (
	// VariableLength is for inputs that may span more than Rate elements.
	VariableLength Domain = iota

	// FixedLength is for inputs that always fit in exactly Rate elements,
	// e.g. a pair of digests.
	FixedLength
)

func (d Domain) String() string {
	switch d {
	case VariableLength:
		return "VariableLength"
	case FixedLength:
		return "FixedLength"
	default:
		return "Domain(?)"
	}
}

// Sponge is a cryptographic sponge over a fixed-width permutation.
//
// Implementations are not safe for concurrent use of a single instance, but
// distinct instances share no mutable state and can run on separate goroutines
// without synchronization.
type Sponge interface {
	// Absorb overwrites the rate part of the state with block, leaves the
	// capacity untouched and applies the permutation.
	Absorb(block Block)

	// Squeeze returns the current rate part of the state and then applies the
	// permutation, so successive calls yield fresh output.
	Squeeze() Block
}

// PaddedLength returns the length of an n-element input after padding:
// the next multiple of Rate strictly greater than n.
func PaddedLength(n int) int {
	return (n/Rate + 1) * Rate
}

// PadAndAbsorbAll pads input with [1, 0, 0, ...] up to PaddedLength(len(input))
// and absorbs the result block by block. Padding is never empty.
func PadAndAbsorbAll(s Sponge, input []field.Element) {
	var block Block
	for len(input) >= Rate {
		copy(block[:], input[:Rate])
		s.Absorb(block)
		input = input[Rate:]
	}

	// Final block: remaining input, the 1 marker, zeros.
	n := copy(block[:], input)
	block[n] = field.One()
	for i := n + 1; i < Rate; i++ {
		block[i] = field.Zero()
	}
	s.Absorb(block)
}
