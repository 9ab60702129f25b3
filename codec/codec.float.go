package codec

import "math"

// Floats are reinterpreted as fixed-width unsigned integers of matching
// width and then byte-extracted like any other integer. This keeps the
// wire format IEEE-754 big-endian on every host without inspecting the
// host byte order, and round-trips are bit exact (including NaN
// payloads).

// PutFloat32 writes the IEEE-754 bit pattern of v to the first 4 bytes
// of b, most significant byte first.
func PutFloat32(b []byte, v float32) {
	PutUint32(b, math.Float32bits(v))
}

// Float32 reads a big-endian IEEE-754 single precision value from the
// first 4 bytes of b.
func Float32(b []byte) float32 {
	return math.Float32frombits(Uint32(b))
}

// PutFloat64 writes the IEEE-754 bit pattern of v to the first 8 bytes
// of b, most significant byte first.
func PutFloat64(b []byte, v float64) {
	PutUint64(b, math.Float64bits(v))
}

// Float64 reads a big-endian IEEE-754 double precision value from the
// first 8 bytes of b.
func Float64(b []byte) float64 {
	return math.Float64frombits(Uint64(b))
}
