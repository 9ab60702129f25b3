package codec

// PutBool writes v to the first byte of b, as 1 for true and 0 for false.
func PutBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

// Bool reads a bool value from the first byte of b. Any nonzero byte is
// true, so buffers written by producers that do not canonicalize their
// boolean encoding still decode correctly.
func Bool(b []byte) bool {
	return b[0] != 0
}
