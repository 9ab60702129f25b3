package blob

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/codec"
	"github.com/eput-tools/eput.go/marshalutil"
)

// ErrUnknownHash is returned when a hash function name is not one of
// the supported choices.
var ErrUnknownHash = errors.New("unknown hash function")

// NewHash returns a constructor for the named digest used in ROM blob
// descriptors. Supported names are md5, sha1, sha256, crc32 and xxh64.
func NewHash(name string) (func() hash.Hash, error) {
	switch name {
	case "md5":
		return md5.New, nil
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "crc32":
		return func() hash.Hash { return crc32.NewIEEE() }, nil
	case "xxh64":
		return func() hash.Hash { return xxhash.New() }, nil
	}

	return nil, errors.Wrapf(ErrUnknownHash, "%q", name)
}

// ExportROM builds the ROM blob used to provision tag memories. The
// header holds the blob count and digest size, followed by one
// descriptor per blob carrying its digest, absolute start offset and
// length, followed by the raw payloads. The data blob always comes
// first; each metadata set follows in order.
func ExportROM(data []byte, metadataSets [][]byte, newHash func() hash.Hash) ([]byte, error) {
	blobs := make([][]byte, 0, 1+len(metadataSets))
	blobs = append(blobs, data)
	blobs = append(blobs, metadataSets...)
	if len(blobs) > 255 {
		return nil, errors.Errorf("%d blobs do not fit the 1 byte count field", len(blobs))
	}

	digestSize := newHash().Size()
	descriptorSize := digestSize + 2*codec.Uint32Size
	headerSize := 2 + len(blobs)*descriptorSize

	payloadSize := 0
	for _, payload := range blobs {
		payloadSize += len(payload)
	}

	util := marshalutil.New(headerSize + payloadSize)
	util.WriteUint8(uint8(len(blobs))).WriteUint8(uint8(digestSize))

	offset := headerSize
	for _, payload := range blobs {
		digest := newHash()
		digest.Write(payload)
		util.WriteBytes(digest.Sum(nil))
		util.WriteUint32(uint32(offset)).WriteUint32(uint32(len(payload)))
		offset += len(payload)
	}
	for _, payload := range blobs {
		util.WriteBytes(payload)
	}

	return util.Bytes(), nil
}
