package ndef

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/tlv"
)

// ParseMessage parses the eput record pair from the start of buf: the
// data record at offset 0, then the metadata record at the offset the
// data record consumed.
//
// Both records must be absolute URI records typed with the eput
// scheme; a violation on either yields ErrWrongRecordType, and the
// metadata record is not parsed when the data record already failed.
// Parse errors of the data record propagate unchanged.
func ParseMessage(buf []byte) (data, meta Record, err error) {
	data, consumed, err := ParseRecord(buf)
	if err != nil {
		return Record{}, Record{}, err
	}
	if err := checkProtocol(data); err != nil {
		return Record{}, Record{}, err
	}

	meta, _, err = ParseRecord(buf[consumed:])
	if err != nil {
		return Record{}, Record{}, err
	}
	if err := checkProtocol(meta); err != nil {
		return Record{}, Record{}, err
	}

	return data, meta, nil
}

// ExtractMessage locates the NDEF message TLV in a raw tag image and
// parses the eput record pair from its value region. ErrNoNDEFMessage
// is returned when the image holds no such TLV.
func ExtractMessage(tag []byte) (data, meta Record, err error) {
	offset, length, found := tlv.FindFirst(tag, tlv.TypeNDEFMessage)
	if !found {
		return Record{}, Record{}, ErrNoNDEFMessage
	}
	if offset+length > len(tag) {
		return Record{}, Record{}, errors.Wrapf(ErrBufferTruncated, "TLV declares %d value bytes but only %d remain", length, len(tag)-offset)
	}

	return ParseMessage(tag[offset : offset+length])
}

func checkProtocol(record Record) error {
	if record.TNF != TNFURI {
		return errors.Wrapf(ErrWrongRecordType, "TNF is 0x%02x, want URI (0x%02x)", record.TNF, TNFURI)
	}
	if !bytes.HasPrefix(record.Type, []byte(TypeScheme)) {
		return errors.Wrapf(ErrWrongRecordType, "type %q lacks the eput scheme", record.Type)
	}

	return nil
}
