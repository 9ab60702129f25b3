package codec

// Signed values travel as their two's complement bit pattern; the
// conversions below are value preserving for every in-range input.

// PutInt8 writes v to the first byte of b.
func PutInt8(b []byte, v int8) {
	b[0] = byte(v)
}

// Int8 reads an int8 value from the first byte of b.
func Int8(b []byte) int8 {
	return int8(b[0])
}

// PutInt16 writes v to the first 2 bytes of b, most significant byte first.
func PutInt16(b []byte, v int16) {
	PutUint16(b, uint16(v))
}

// Int16 reads a big-endian int16 value from the first 2 bytes of b.
func Int16(b []byte) int16 {
	return int16(Uint16(b))
}

// PutInt32 writes v to the first 4 bytes of b, most significant byte first.
func PutInt32(b []byte, v int32) {
	PutUint32(b, uint32(v))
}

// Int32 reads a big-endian int32 value from the first 4 bytes of b.
func Int32(b []byte) int32 {
	return int32(Uint32(b))
}

// PutInt64 writes v to the first 8 bytes of b, most significant byte first.
func PutInt64(b []byte, v int64) {
	PutUint64(b, uint64(v))
}

// Int64 reads a big-endian int64 value from the first 8 bytes of b.
func Int64(b []byte) int64 {
	return int64(Uint64(b))
}
