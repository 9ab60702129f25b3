package blob

import (
	"bytes"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/descriptor"
	"github.com/eput-tools/eput.go/marshalutil"
)

// propertyListTerminator ends the property descriptor section of the
// metadata blob. Property type codes stay below this value.
const propertyListTerminator = 0xFF

// GenerateMetadata builds the metadata blob for the given profile: the
// device info block, one descriptor per property, the property list
// terminator and the translation tables. With compress set the result
// is deflated at the highest compression level.
func GenerateMetadata(profile *descriptor.Profile, compress bool) ([]byte, error) {
	util := marshalutil.New(marshalutil.DefaultCapacity)

	util.WriteUint8(uint8(profile.Device.Type))
	util.WriteBytes(profile.Device.PackedID())
	util.WriteBytes([]byte(profile.Device.Name)).WriteUint8(0)

	for i := range profile.Properties {
		if err := profile.Properties[i].AppendMetadata(util); err != nil {
			return nil, err
		}
	}
	util.WriteUint8(propertyListTerminator)

	appendTranslations(util, profile)

	metadata := util.Bytes()
	if !compress {
		return metadata, nil
	}

	return compressMetadata(metadata)
}

// appendTranslations appends one table per translation: the language
// tag, then one entry per identifier in declaration order, each either
// a NUL terminated UTF-8 string or a lone NUL when untranslated. Two
// trailing NUL bytes close the section.
func appendTranslations(util *marshalutil.MarshalUtil, profile *descriptor.Profile) {
	ids := profile.IDs()
	for _, translation := range profile.Translations {
		util.WriteBytes([]byte(translation.Language)).WriteUint8(0)
		for _, id := range ids {
			translated, exists := translation.Strings[id]
			if !exists {
				util.WriteUint8(0)
				continue
			}
			util.WriteBytes([]byte(translated)).WriteUint8(0)
		}
	}
	util.WriteUint8(0).WriteUint8(0)
}

func compressMetadata(metadata []byte) ([]byte, error) {
	compressed := &bytes.Buffer{}
	writer, err := zlib.NewWriterLevel(compressed, zlib.BestCompression)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create metadata compressor")
	}
	if _, err := writer.Write(metadata); err != nil {
		return nil, errors.Wrap(err, "failed to compress metadata")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to flush compressed metadata")
	}

	return compressed.Bytes(), nil
}
