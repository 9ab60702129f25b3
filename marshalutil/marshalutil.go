// Package marshalutil provides a fluent read/write buffer for
// composing and picking apart eput wire structures. All values are
// encoded big-endian through the scalar codec.
package marshalutil

import "github.com/pkg/errors"

// DefaultCapacity is the initial buffer capacity used when the final
// size of a structure is not known upfront.
const DefaultCapacity = 256

// MarshalUtil wraps a byte buffer with independent read and write
// offsets. Writes grow the buffer as needed; reads are capacity
// checked and return an error instead of running past the end.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates a MarshalUtil with an empty buffer of the given initial
// capacity.
func New(capacity int) *MarshalUtil {
	return &MarshalUtil{
		bytes: make([]byte, capacity),
	}
}

// NewFromBytes creates a MarshalUtil that reads from the given buffer.
// The buffer is not copied.
func NewFromBytes(data []byte) *MarshalUtil {
	return &MarshalUtil{
		bytes: data,
		size:  len(data),
	}
}

// ReadOffset returns the current read position.
func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

// WriteOffset returns the current write position.
func (util *MarshalUtil) WriteOffset() int {
	return util.writeOffset
}

// ReadSeek sets the read position. Negative offsets seek relative to
// the current position.
func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		util.readOffset += offset
	} else {
		util.readOffset = offset
	}
}

// WriteSeek sets the write position. Negative offsets seek relative to
// the current position.
func (util *MarshalUtil) WriteSeek(offset int) {
	if offset < 0 {
		util.writeOffset += offset
	} else {
		util.writeOffset = offset
	}
}

// Bytes returns the written region of the underlying buffer.
func (util *MarshalUtil) Bytes() []byte {
	return util.bytes[:util.size]
}

// Remaining returns the number of unread bytes.
func (util *MarshalUtil) Remaining() int {
	return util.size - util.readOffset
}

// SimpleBinaryMarshaler represents objects with an infallible Bytes
// method returning their marshaled form.
type SimpleBinaryMarshaler interface {
	Bytes() []byte
}

// Write marshals the given object into the buffer via its Bytes
// method.
func (util *MarshalUtil) Write(object SimpleBinaryMarshaler) *MarshalUtil {
	return util.WriteBytes(object.Bytes())
}

func (util *MarshalUtil) checkReadCapacity(length int) (readEndOffset int, err error) {
	readEndOffset = util.readOffset + length
	if readEndOffset > util.size {
		err = errors.Errorf("tried to read %d bytes from %d bytes input", readEndOffset, util.size)
	}

	return
}

func (util *MarshalUtil) expandWriteCapacity(length int) (writeEndOffset int) {
	writeEndOffset = util.writeOffset + length
	if writeEndOffset > len(util.bytes) {
		util.bytes = append(util.bytes, make([]byte, writeEndOffset-len(util.bytes))...)
	}
	if writeEndOffset > util.size {
		util.size = writeEndOffset
	}

	return
}
