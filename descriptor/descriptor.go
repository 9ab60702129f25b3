// Package descriptor models eput device descriptors: the device
// identity, the list of configurable properties with their wire types
// and defaults, and optional translation tables. Descriptors are
// authored as YAML or JSON documents and loaded through Load.
package descriptor

import (
	"github.com/eput-tools/eput.go/codec"
	"github.com/eput-tools/eput.go/marshalutil"
)

// DeviceType is the device category code carried in the metadata
// header. The high bit marks custom devices whose property list must
// not be truncated by generic clients.
type DeviceType uint8

const (
	DeviceCustom           DeviceType = 0x00
	DeviceLight            DeviceType = 0x01
	DeviceWashingMachine   DeviceType = 0x02
	DeviceHeater           DeviceType = 0x03
	DeviceCustomNoTruncate DeviceType = 0x80
)

var deviceTypeNames = map[string]DeviceType{
	"Custom":            DeviceCustom,
	"Light":             DeviceLight,
	"Washing Machine":   DeviceWashingMachine,
	"Heater":            DeviceHeater,
	"Custom_NoTruncate": DeviceCustomNoTruncate,
}

// DeviceInfo identifies a device model. ManufacturerID and DeviceID
// are 24 bit values.
type DeviceInfo struct {
	Type            DeviceType
	ManufacturerID  uint32
	DeviceID        uint32
	FirmwareVersion uint8
	ProtocolVersion uint8
	Name            string
}

// PackedIDSize is the size of the packed device identity block.
const PackedIDSize = 3 + 3 + codec.Uint8Size + codec.Uint8Size

// PackedID returns the packed identity block: manufacturer id and
// device id as 3 byte big-endian values, then firmware and protocol
// version bytes.
func (d DeviceInfo) PackedID() []byte {
	util := marshalutil.New(PackedIDSize)
	writeUint24(util, d.ManufacturerID)
	writeUint24(util, d.DeviceID)
	util.WriteUint8(d.FirmwareVersion)
	util.WriteUint8(d.ProtocolVersion)

	return util.Bytes()
}

func writeUint24(util *marshalutil.MarshalUtil, value uint32) {
	util.WriteUint8(uint8(value >> 16)).WriteUint8(uint8(value >> 8)).WriteUint8(uint8(value))
}

// Translation is one language's strings for the descriptor's property
// and entry identifiers.
type Translation struct {
	Language string
	Strings  map[string]string
}

// Profile is a fully parsed device descriptor.
type Profile struct {
	Device       DeviceInfo
	Properties   []Property
	Translations []Translation
}

// DataSize returns the combined wire size of all property values in
// the data blob, excluding the trailing last-written timestamp slot.
func (p *Profile) DataSize() int {
	size := 0
	for i := range p.Properties {
		size += p.Properties[i].DataSize()
	}

	return size
}

// IDs returns every property identifier in declaration order. The
// positions double as the indices translation tables are keyed by.
func (p *Profile) IDs() []string {
	ids := make([]string, 0, len(p.Properties))
	for i := range p.Properties {
		ids = append(ids, p.Properties[i].ID)
	}

	return ids
}
