package blob

import (
	"github.com/eput-tools/eput.go/ndef"
	"github.com/eput-tools/eput.go/tlv"
)

// uncompressedArgument marks an uncompressed metadata record in its
// type URI.
const uncompressedArgument = "?zip=0"

// tagOverhead is the per-tag memory consumed besides the two payloads:
// the memory control, lock and terminator TLVs plus the two record
// headers.
const tagOverhead = 9 + 18

// BuildTagImage wraps a data and a metadata blob into a complete tag
// image: the two-record NDEF message inside an NDEF message TLV,
// closed by a terminator TLV.
func BuildTagImage(data, metadata []byte, compressed bool) ([]byte, error) {
	metaType := ndef.TypeScheme
	if !compressed {
		metaType += uncompressedArgument
	}

	message, err := ndef.BuildMessage(
		ndef.Record{TNF: ndef.TNFURI, Type: []byte(ndef.TypeScheme), Payload: data},
		ndef.Record{TNF: ndef.TNFURI, Type: []byte(metaType), Payload: metadata},
	)
	if err != nil {
		return nil, err
	}

	image, err := tlv.Append(nil, tlv.TypeNDEFMessage, message)
	if err != nil {
		return nil, err
	}

	return tlv.AppendTerminator(image), nil
}

// FitsTag reports whether payloads of the given combined size fit a
// tag of the given memory size, accounting for the fixed TLV and
// record header overhead. A negative tagSize disables the check.
func FitsTag(payloadSize, tagSize int) bool {
	if tagSize < 0 {
		return true
	}

	return payloadSize+tagOverhead <= tagSize
}
