package ndef

import (
	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/bitmask"
	"github.com/eput-tools/eput.go/codec"
)

// Record header flag bits. Bits 0-2 hold the TNF.
const (
	flagIDLengthPresent uint = 3
	flagShortRecord     uint = 4
	flagMessageEnd      uint = 6
	flagMessageBegin    uint = 7
)

const tnfMask = 0x07

// Record is a single NDEF record.
//
// Type, ID and Payload are views into the buffer the record was parsed
// from, not copies; the buffer must outlive every use of the record.
// ID is nil when the record carries no id field.
type Record struct {
	TNF     byte
	Type    []byte
	ID      []byte
	Payload []byte
}

// ParseRecord parses one record from the start of buf.
//
// It returns the record together with the total number of bytes the
// record occupies, so the caller can parse the record that follows at
// that offset. If buf cannot hold the full record, ErrBufferTruncated
// is returned and the zero Record; a failed parse never yields a
// partially populated record.
func ParseRecord(buf []byte) (Record, int, error) {
	if len(buf) < 2 {
		return Record{}, 0, errors.Wrapf(ErrBufferTruncated, "%d bytes cannot hold a record header", len(buf))
	}

	flags := bitmask.BitMask(buf[0])
	typeLength := int(buf[1])

	payloadLengthWidth := codec.Uint32Size
	if flags.HasBit(flagShortRecord) {
		payloadLengthWidth = codec.Uint8Size
	}
	idLengthWidth := 0
	if flags.HasBit(flagIDLengthPresent) {
		idLengthWidth = 1
	}

	headerLength := 2 + payloadLengthWidth + idLengthWidth
	if len(buf) < headerLength {
		return Record{}, 0, errors.Wrapf(ErrBufferTruncated, "%d bytes cannot hold the record's length fields", len(buf))
	}

	// the 4-byte payload length is summed in 64 bits so that a length
	// beyond the int range of 32-bit platforms still fails the buffer
	// check instead of wrapping
	var payloadLength int64
	if payloadLengthWidth == codec.Uint8Size {
		payloadLength = int64(codec.Uint8(buf[2:]))
	} else {
		payloadLength = int64(codec.Uint32(buf[2:]))
	}
	idLength := 0
	if idLengthWidth > 0 {
		idLength = int(codec.Uint8(buf[2+payloadLengthWidth:]))
	}

	totalLength64 := int64(headerLength) + int64(typeLength) + int64(idLength) + payloadLength
	if int64(len(buf)) < totalLength64 {
		return Record{}, 0, errors.Wrapf(ErrBufferTruncated, "record spans %d bytes but only %d are available", totalLength64, len(buf))
	}
	totalLength := int(totalLength64)

	typeStart := headerLength
	idStart := typeStart + typeLength
	payloadStart := idStart + idLength

	record := Record{
		TNF:     buf[0] & tnfMask,
		Type:    buf[typeStart:idStart],
		Payload: buf[payloadStart:totalLength],
	}
	if idLength > 0 {
		record.ID = buf[idStart:payloadStart]
	}

	return record, totalLength, nil
}
