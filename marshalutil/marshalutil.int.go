package marshalutil

import "github.com/eput-tools/eput.go/codec"

// WriteInt8 writes a marshaled int8 value to the internal buffer.
func (util *MarshalUtil) WriteInt8(value int8) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Int8Size)
	codec.PutInt8(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadInt8 reads an int8 value from the internal buffer.
func (util *MarshalUtil) ReadInt8() (int8, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Int8Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Int8(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteInt16 writes a marshaled int16 value to the internal buffer.
func (util *MarshalUtil) WriteInt16(value int16) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Int16Size)
	codec.PutInt16(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadInt16 reads an int16 value from the internal buffer.
func (util *MarshalUtil) ReadInt16() (int16, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Int16Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Int16(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteInt32 writes a marshaled int32 value to the internal buffer.
func (util *MarshalUtil) WriteInt32(value int32) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Int32Size)
	codec.PutInt32(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadInt32 reads an int32 value from the internal buffer.
func (util *MarshalUtil) ReadInt32() (int32, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Int32Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Int32(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteInt64 writes a marshaled int64 value to the internal buffer.
func (util *MarshalUtil) WriteInt64(value int64) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Int64Size)
	codec.PutInt64(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadInt64 reads an int64 value from the internal buffer.
func (util *MarshalUtil) ReadInt64() (int64, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Int64Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Int64(util.bytes[util.readOffset:readEndOffset]), nil
}
