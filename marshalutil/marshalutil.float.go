package marshalutil

import "github.com/eput-tools/eput.go/codec"

// WriteFloat32 writes a marshaled float32 value to the internal buffer.
func (util *MarshalUtil) WriteFloat32(value float32) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Float32Size)
	codec.PutFloat32(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadFloat32 reads a float32 value from the internal buffer.
func (util *MarshalUtil) ReadFloat32() (float32, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Float32Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Float32(util.bytes[util.readOffset:readEndOffset]), nil
}

// WriteFloat64 writes a marshaled float64 value to the internal buffer.
func (util *MarshalUtil) WriteFloat64(value float64) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.Float64Size)
	codec.PutFloat64(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadFloat64 reads a float64 value from the internal buffer.
func (util *MarshalUtil) ReadFloat64() (float64, error) {
	readEndOffset, err := util.checkReadCapacity(codec.Float64Size)
	if err != nil {
		return 0, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Float64(util.bytes[util.readOffset:readEndOffset]), nil
}
