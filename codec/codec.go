// Package codec implements the fixed-width big-endian scalar encoding of
// the eput tag format.
//
// All functions operate in place on caller-supplied buffers and perform no
// bounds checking of their own; the buffer must hold at least the wire
// size of the value. Multi-byte values are assembled by successive byte
// extraction, most significant byte first, so the encoding never depends
// on the host byte order.
package codec

const (
	// BoolSize is the wire size of a bool value.
	BoolSize = 1
	// Uint8Size is the wire size of a uint8 value.
	Uint8Size = 1
	// Uint16Size is the wire size of a uint16 value.
	Uint16Size = 2
	// Uint32Size is the wire size of a uint32 value.
	Uint32Size = 4
	// Uint64Size is the wire size of a uint64 value.
	Uint64Size = 8
	// Int8Size is the wire size of an int8 value.
	Int8Size = 1
	// Int16Size is the wire size of an int16 value.
	Int16Size = 2
	// Int32Size is the wire size of an int32 value.
	Int32Size = 4
	// Int64Size is the wire size of an int64 value.
	Int64Size = 8
	// Float32Size is the wire size of a float32 value.
	Float32Size = 4
	// Float64Size is the wire size of a float64 value.
	Float64Size = 8
)
