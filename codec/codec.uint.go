package codec

// PutUint8 writes v to the first byte of b.
func PutUint8(b []byte, v uint8) {
	b[0] = v
}

// Uint8 reads a uint8 value from the first byte of b.
func Uint8(b []byte) uint8 {
	return b[0]
}

// PutUint16 writes v to the first 2 bytes of b, most significant byte first.
func PutUint16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// Uint16 reads a big-endian uint16 value from the first 2 bytes of b.
func Uint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// PutUint32 writes v to the first 4 bytes of b, most significant byte first.
func PutUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// Uint32 reads a big-endian uint32 value from the first 4 bytes of b.
func Uint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PutUint64 writes v to the first 8 bytes of b, most significant byte first.
func PutUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// Uint64 reads a big-endian uint64 value from the first 8 bytes of b.
func Uint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}
