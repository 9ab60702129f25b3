package marshalutil

import "github.com/eput-tools/eput.go/codec"

// WriteBool writes a marshaled bool value to the internal buffer.
func (util *MarshalUtil) WriteBool(value bool) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(codec.BoolSize)
	codec.PutBool(util.bytes[util.writeOffset:writeEndOffset], value)
	util.WriteSeek(writeEndOffset)

	return util
}

// ReadBool reads a bool value from the internal buffer. Any nonzero
// byte reads as true.
func (util *MarshalUtil) ReadBool() (bool, error) {
	readEndOffset, err := util.checkReadCapacity(codec.BoolSize)
	if err != nil {
		return false, err
	}
	defer util.ReadSeek(readEndOffset)

	return codec.Bool(util.bytes[util.readOffset:readEndOffset]), nil
}
