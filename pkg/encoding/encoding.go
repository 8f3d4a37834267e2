// Package encoding provides byte serialization for field elements.
package encoding

import (
	"errors"
	"fmt"

	"tip5-hash/pkg/field"
)

// bytesPerElement is the number of input bytes packed into one element by BytesToElements.
// 257^7 < P, so seven base-257 digits always fit.
const bytesPerElement = 7

// ErrInvalidLength is returned when packed input is not a whole number of elements.
var ErrInvalidLength = errors.New("encoding: invalid length")

// PackElements packs field elements into bytes (8 bytes per element, canonical, little-endian).
func PackElements(es []field.Element) []byte {
	result := make([]byte, 0, len(es)*field.Bytes)
	for _, e := range es {
		b := e.CanonicalBytes()
		result = append(result, b[:]...)
	}
	return result
}

// UnpackElements unpacks bytes produced by PackElements.
func UnpackElements(bs []byte) ([]field.Element, error) {
	if len(bs)%field.Bytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidLength, len(bs), field.Bytes)
	}
	result := make([]field.Element, len(bs)/field.Bytes)
	for i := range result {
		e, err := field.FromCanonicalBytes([field.Bytes]byte(bs[i*field.Bytes:]))
		if err != nil {
			return nil, fmt.Errorf("encoding: element %d: %w", i, err)
		}
		result[i] = e
	}
	return result, nil
}

// BytesToElements converts bytes to field elements.
// Adds 1 to each byte and packs groups of seven as base-257 digits, least significant first.
// This distinguishes b'h' from b'h\0'.
func BytesToElements(bs []byte) []field.Element {
	result := make([]field.Element, 0, (len(bs)+bytesPerElement-1)/bytesPerElement)
	for len(bs) > 0 {
		n := min(bytesPerElement, len(bs))
		var acc uint64
		for i := n - 1; i >= 0; i-- {
			acc = acc*257 + uint64(bs[i]) + 1
		}
		result = append(result, field.New(acc))
		bs = bs[n:]
	}
	return result
}
