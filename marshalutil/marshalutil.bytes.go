package marshalutil

// WriteByte writes a single byte to the internal buffer.
func (util *MarshalUtil) WriteByte(b byte) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(1)
	util.bytes[util.writeOffset] = b
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadByte reads a single byte from the internal buffer.
func (util *MarshalUtil) ReadByte() (byte, error) {
	readEndOffset, err := util.checkReadCapacity(1)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset], nil
}

// WriteBytes writes the given bytes to the internal buffer.
func (util *MarshalUtil) WriteBytes(bytes []byte) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(len(bytes))
	copy(util.bytes[util.writeOffset:writeEndOffset], bytes)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadBytes reads the given amount of bytes from the internal buffer.
// The returned slice aliases the buffer.
func (util *MarshalUtil) ReadBytes(length int) ([]byte, error) {
	readEndOffset, err := util.checkReadCapacity(length)
	if err != nil {
		return nil, err
	}
	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset:readEndOffset], nil
}
