package marshalutil

import "github.com/eput-tools/eput.go/codec"

// WriteUint8 writes a marshaled uint8 value to the internal buffer.
func (util *MarshalUtil) WriteUint8(value uint8) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Uint8Size)
	codec.PutUint8(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadUint8 reads a uint8 value from the internal buffer.
func (util *MarshalUtil) ReadUint8() (uint8, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Uint8Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Uint8(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteUint16 writes a marshaled uint16 value to the internal buffer.
func (util *MarshalUtil) WriteUint16(value uint16) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Uint16Size)
	codec.PutUint16(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadUint16 reads a uint16 value from the internal buffer.
func (util *MarshalUtil) ReadUint16() (uint16, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Uint16Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Uint16(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteUint32 writes a marshaled uint32 value to the internal buffer.
func (util *MarshalUtil) WriteUint32(value uint32) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Uint32Size)
	codec.PutUint32(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadUint32 reads a uint32 value from the internal buffer.
func (util *MarshalUtil) ReadUint32() (uint32, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Uint32Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Uint32(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteUint64 writes a marshaled uint64 value to the internal buffer.
func (util *MarshalUtil) WriteUint64(value uint64) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Uint64Size)
	codec.PutUint64(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadUint64 reads a uint64 value from the internal buffer.
func (util *MarshalUtil) ReadUint64() (uint64, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Uint64Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Uint64(util.bytes[util.readOffset:readEndOffset]), nil
}
