// Package bitmask provides bit tests over single flag bytes and packed
// byte buffers. Bit i of a packed buffer lives in byte i/8, at bit
// position i%8 counting from the least significant bit.
package bitmask

import "fmt"

// BitMask is a single byte of flag bits.
type BitMask byte

// SetBit sets the bit at the given position.
func (bitmask BitMask) SetBit(pos uint) BitMask {
	return bitmask | 1<<pos
}

// ClearBit clears the bit at the given position.
func (bitmask BitMask) ClearBit(pos uint) BitMask {
	return bitmask &^ (1 << pos)
}

// HasBit checks whether the bit at the given position is set.
func (bitmask BitMask) HasBit(pos uint) bool {
	return bitmask&(1<<pos) > 0
}

// IsSet reports whether bit index is set in the packed bitmap.
//
// The index must lie inside the bitmap; passing an out-of-range index
// is a programming error and panics instead of returning a value.
func IsSet(bitmap []byte, index uint) bool {
	checkIndex(bitmap, index)

	return BitMask(bitmap[index/8]).HasBit(index % 8)
}

// Set sets bit index in the packed bitmap, with the same range
// contract as IsSet.
func Set(bitmap []byte, index uint) {
	checkIndex(bitmap, index)

	bitmap[index/8] = byte(BitMask(bitmap[index/8]).SetBit(index % 8))
}

func checkIndex(bitmap []byte, index uint) {
	if index >= uint(len(bitmap))*8 {
		panic(fmt.Sprintf("bitmask: bit index %d out of range for %d byte bitmap", index, len(bitmap)))
	}
}
