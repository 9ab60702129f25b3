// Package ndef parses and builds the two-record NDEF message the eput
// protocol stores on a tag: a data record followed by a metadata
// record, both absolute URI records whose type starts with the eput
// scheme.
package ndef

import "github.com/pkg/errors"

const (
	// TNFURI is the type name format of absolute URI records.
	TNFURI byte = 0x03

	// TypeScheme is the URI scheme prefix both eput records must carry
	// in their type field. Producers may append query arguments, e.g.
	// "?zip=0" on an uncompressed metadata record.
	TypeScheme = "https://pma.inftech.hs-mannheim.de/eput"
)

var (
	// ErrBufferTruncated is returned when a buffer ends before the
	// record parsed from it.
	ErrBufferTruncated = errors.New("record buffer truncated")
	// ErrWrongRecordType is returned when a record is not an eput
	// scheme URI record.
	ErrWrongRecordType = errors.New("record does not match the eput protocol")
	// ErrNoNDEFMessage is returned when a tag image holds no NDEF
	// message TLV.
	ErrNoNDEFMessage = errors.New("no NDEF message in buffer")
)
