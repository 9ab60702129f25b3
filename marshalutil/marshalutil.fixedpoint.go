package marshalutil

import "github.com/eput-tools/eput.go/types"

// WriteFixedPoint32 writes the unscaled magnitude of a FixedPoint32
// value to the internal buffer. The scale is schema knowledge and not
// transmitted.
func (util *MarshalUtil) WriteFixedPoint32(value types.FixedPoint32) *MarshalUtil {
	return util.WriteInt32(value.Unscaled)
}

// ReadFixedPoint32 reads a FixedPoint32 value from the internal
// buffer, attaching the out-of-band scale.
func (util *MarshalUtil) ReadFixedPoint32(scale int32) (types.FixedPoint32, error) {
	unscaled, err := util.ReadInt32()
	if err != nil {
		return types.FixedPoint32{}, err
	}

	return types.FixedPoint32{Unscaled: unscaled, Scale: scale}, nil
}

// WriteFixedPoint64 writes the unscaled magnitude of a FixedPoint64
// value to the internal buffer. The scale is schema knowledge and not
// transmitted.
func (util *MarshalUtil) WriteFixedPoint64(value types.FixedPoint64) *MarshalUtil {
	return util.WriteInt64(value.Unscaled)
}

// ReadFixedPoint64 reads a FixedPoint64 value from the internal
// buffer, attaching the out-of-band scale.
func (util *MarshalUtil) ReadFixedPoint64(scale int32) (types.FixedPoint64, error) {
	unscaled, err := util.ReadInt64()
	if err != nil {
		return types.FixedPoint64{}, err
	}

	return types.FixedPoint64{Unscaled: unscaled, Scale: scale}, nil
}
