package types

import (
	"math"

	"github.com/eput-tools/eput.go/codec"
)

const (
	// FixedPoint32Size is the wire size of a FixedPoint32.
	FixedPoint32Size = codec.Int32Size
	// FixedPoint64Size is the wire size of a FixedPoint64.
	FixedPoint64Size = codec.Int64Size
)

// FixedPoint32 is the decimal value Unscaled * 10^(-Scale).
//
// Only the unscaled magnitude travels on the wire. The scale is schema
// knowledge fixed per field by the device descriptor, so encoding
// discards it and decoding must be handed it out of band. Encode and
// decode are therefore inverses only when the caller passes the scale
// consistently.
type FixedPoint32 struct {
	Unscaled int32
	Scale    int32
}

// FixedPoint32FromBytes reads the unscaled magnitude from the first 4
// bytes of b and attaches the out-of-band scale.
func FixedPoint32FromBytes(b []byte, scale int32) FixedPoint32 {
	return FixedPoint32{Unscaled: codec.Int32(b), Scale: scale}
}

// Put writes the unscaled magnitude to the first 4 bytes of b. The
// scale is not transmitted.
func (f FixedPoint32) Put(b []byte) {
	codec.PutInt32(b, f.Unscaled)
}

// Bytes returns the wire form of the FixedPoint32.
func (f FixedPoint32) Bytes() []byte {
	b := make([]byte, FixedPoint32Size)
	f.Put(b)

	return b
}

// Float64 returns the represented decimal value as a float64.
func (f FixedPoint32) Float64() float64 {
	return float64(f.Unscaled) * math.Pow10(-int(f.Scale))
}

// FixedPoint64 is the decimal value Unscaled * 10^(-Scale), with a 64
// bit unscaled magnitude. The scale follows the same out-of-band rule
// as FixedPoint32.
type FixedPoint64 struct {
	Unscaled int64
	Scale    int32
}

// FixedPoint64FromBytes reads the unscaled magnitude from the first 8
// bytes of b and attaches the out-of-band scale.
func FixedPoint64FromBytes(b []byte, scale int32) FixedPoint64 {
	return FixedPoint64{Unscaled: codec.Int64(b), Scale: scale}
}

// Put writes the unscaled magnitude to the first 8 bytes of b. The
// scale is not transmitted.
func (f FixedPoint64) Put(b []byte) {
	codec.PutInt64(b, f.Unscaled)
}

// Bytes returns the wire form of the FixedPoint64.
func (f FixedPoint64) Bytes() []byte {
	b := make([]byte, FixedPoint64Size)
	f.Put(b)

	return b
}

// Float64 returns the represented decimal value as a float64.
func (f FixedPoint64) Float64() float64 {
	return float64(f.Unscaled) * math.Pow10(-int(f.Scale))
}
