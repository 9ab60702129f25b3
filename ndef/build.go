package ndef

import (
	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/bitmask"
	"github.com/eput-tools/eput.go/codec"
)

// shortRecordMaxPayload is the largest payload a 1 byte length field
// can describe.
const shortRecordMaxPayload = 0xFF

// BuildMessage encodes the eput record pair as an NDEF message: the
// data record with the message-begin flag, the metadata record with
// the message-end flag. Both records must satisfy the same protocol
// constraints ParseMessage enforces.
func BuildMessage(data, meta Record) ([]byte, error) {
	if err := checkProtocol(data); err != nil {
		return nil, err
	}
	if err := checkProtocol(meta); err != nil {
		return nil, err
	}

	buf, err := appendRecord(nil, data, true, false)
	if err != nil {
		return nil, err
	}

	return appendRecord(buf, meta, false, true)
}

func appendRecord(dst []byte, record Record, begin, end bool) ([]byte, error) {
	if len(record.Type) > 0xFF {
		return nil, errors.Errorf("record type of %d bytes does not fit the 1 byte type length field", len(record.Type))
	}
	if len(record.ID) > 0xFF {
		return nil, errors.Errorf("record id of %d bytes does not fit the 1 byte id length field", len(record.ID))
	}

	flags := bitmask.BitMask(record.TNF & tnfMask)
	if begin {
		flags = flags.SetBit(flagMessageBegin)
	}
	if end {
		flags = flags.SetBit(flagMessageEnd)
	}
	short := len(record.Payload) <= shortRecordMaxPayload
	if short {
		flags = flags.SetBit(flagShortRecord)
	}
	if len(record.ID) > 0 {
		flags = flags.SetBit(flagIDLengthPresent)
	}

	dst = append(dst, byte(flags), byte(len(record.Type)))
	if short {
		dst = append(dst, byte(len(record.Payload)))
	} else {
		var payloadLength [codec.Uint32Size]byte
		codec.PutUint32(payloadLength[:], uint32(len(record.Payload)))
		dst = append(dst, payloadLength[:]...)
	}
	if len(record.ID) > 0 {
		dst = append(dst, byte(len(record.ID)))
	}
	dst = append(dst, record.Type...)
	dst = append(dst, record.ID...)

	return append(dst, record.Payload...), nil
}
