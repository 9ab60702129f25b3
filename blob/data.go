// Package blob generates and parses the binary payloads stored on
// eput tags: the data blob holding the current property values, the
// metadata blob describing the device and its properties, the NDEF tag
// image combining both and the ROM blob used to provision tag
// memories.
package blob

import (
	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/codec"
	"github.com/eput-tools/eput.go/descriptor"
	"github.com/eput-tools/eput.go/marshalutil"
	"github.com/eput-tools/eput.go/types"
)

// LastWrittenSize is the size of the timestamp slot trailing the
// property values in the data blob. It is zeroed on generation and
// stamped by devices on write.
const LastWrittenSize = codec.Uint64Size

// ErrDataLength is returned when a data blob's length does not match
// the profile it is parsed against.
var ErrDataLength = errors.New("data blob length mismatch")

// GenerateData builds the data blob for the given profile: every
// property's default value in declaration order, followed by the
// zeroed last written timestamp slot.
func GenerateData(profile *descriptor.Profile) ([]byte, error) {
	util := marshalutil.New(profile.DataSize() + LastWrittenSize)
	for i := range profile.Properties {
		if err := profile.Properties[i].AppendDefault(util); err != nil {
			return nil, err
		}
	}
	util.WriteBytes(make([]byte, LastWrittenSize))

	return util.Bytes(), nil
}

// Data holds the decoded contents of a data blob.
type Data struct {
	Values      map[string]interface{}
	LastWritten types.TimePoint
}

// ParseData decodes a data blob against the profile that defines its
// layout. The blob must match the profile's size exactly.
func ParseData(profile *descriptor.Profile, blob []byte) (*Data, error) {
	expectedSize := profile.DataSize() + LastWrittenSize
	if len(blob) != expectedSize {
		return nil, errors.Wrapf(ErrDataLength, "got %d bytes, expected %d", len(blob), expectedSize)
	}

	util := marshalutil.NewFromBytes(blob)
	data := &Data{Values: make(map[string]interface{}, len(profile.Properties))}
	for i := range profile.Properties {
		property := &profile.Properties[i]
		value, err := property.ReadValue(util)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read property %q", property.ID)
		}
		data.Values[property.ID] = value
	}

	lastWritten, err := util.ReadTimePoint()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last written timestamp")
	}
	data.LastWritten = lastWritten

	return data, nil
}
