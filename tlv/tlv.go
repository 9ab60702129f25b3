// Package tlv scans and builds the NFC Forum style TLV blocks that
// frame messages in eput tag memory.
//
// A block is a 1 byte type followed by a length field and that many
// value bytes. Lengths below 0xFF use a single byte; longer values use
// the escape byte 0xFF followed by a 2 byte big-endian length, where
// 0xFFFF is reserved. NULL blocks are bare padding bytes and the
// terminator block marks the end of the data area; neither carries a
// length field.
package tlv

import "github.com/pkg/errors"

const (
	// TypeNull is the padding block type. It has no length field.
	TypeNull byte = 0x00
	// TypeNDEFMessage is the block type framing an NDEF message.
	TypeNDEFMessage byte = 0x03
	// TypeTerminator marks the end of the tag's data area. It has no
	// length field.
	TypeTerminator byte = 0xFE
)

const (
	extendedLengthEscape = 0xFF
	reservedLength       = 0xFFFF

	// MaxValueLength is the largest value size the extended length
	// form can express; 0xFFFF is reserved.
	MaxValueLength = reservedLength - 1
)

// ErrValueTooLong is returned by Append for values longer than
// MaxValueLength bytes.
var ErrValueTooLong = errors.New("TLV value too long")

// FindFirst scans buf from the start for the first block of the given
// type and returns the offset and length of its value region.
//
// NULL blocks are skipped, a terminator block stops the scan, and a
// reserved extended length (0xFFFF) aborts it. A buffer that ends in
// the middle of a type or length field is treated as not containing
// the block, not as an error; found is false in all of these cases.
// The value region itself is not checked against the buffer end.
func FindFirst(buf []byte, typeCode byte) (offset, length int, found bool) {
	index := 0
	for index < len(buf) {
		blockType := buf[index]
		if blockType == TypeNull {
			index++

			continue
		}
		if blockType == TypeTerminator {
			break
		}
		index++
		if index >= len(buf) {
			break
		}
		var blockLength int
		if buf[index] == extendedLengthEscape {
			if index+2 >= len(buf) {
				break
			}
			blockLength = int(buf[index+1])<<8 | int(buf[index+2])
			index += 3
			if blockLength == reservedLength {
				break
			}
		} else {
			blockLength = int(buf[index])
			index++
		}
		if blockType == typeCode {
			return index, blockLength, true
		}
		index += blockLength
	}

	return 0, 0, false
}

// Append appends a block of the given type to dst and returns the
// extended slice. Values of 0xFF bytes and above use the escaped
// 3 byte length form.
func Append(dst []byte, typeCode byte, value []byte) ([]byte, error) {
	if len(value) > MaxValueLength {
		return nil, errors.Wrapf(ErrValueTooLong, "%d bytes exceed the maximum of %d", len(value), MaxValueLength)
	}
	dst = append(dst, typeCode)
	if len(value) < extendedLengthEscape {
		dst = append(dst, byte(len(value)))
	} else {
		dst = append(dst, extendedLengthEscape, byte(len(value)>>8), byte(len(value)))
	}

	return append(dst, value...), nil
}

// AppendTerminator appends a terminator block to dst.
func AppendTerminator(dst []byte) []byte {
	return append(dst, TypeTerminator)
}
