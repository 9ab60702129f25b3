package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eput-tools/eput.go/descriptor"
	"github.com/eput-tools/eput.go/marshalutil"
	"github.com/eput-tools/eput.go/types"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func uint8Ptr(v uint8) *uint8 {
	return &v
}

func TestDataSize(t *testing.T) {
	tests := []struct {
		property descriptor.Property
		size     int
	}{
		{descriptor.Property{Type: descriptor.TypeBool}, 1},
		{descriptor.Property{Type: descriptor.TypeUint16}, 2},
		{descriptor.Property{Type: descriptor.TypeInt64}, 8},
		{descriptor.Property{Type: descriptor.TypeFloat32}, 4},
		{descriptor.Property{Type: descriptor.TypeDate}, 8},
		{descriptor.Property{Type: descriptor.TypeTime}, 3},
		{descriptor.Property{Type: descriptor.TypeZonedDateTime}, 10},
		{descriptor.Property{Type: descriptor.TypeDateTimeRange}, 16},
		{descriptor.Property{Type: descriptor.TypeTimeRange}, 6},
		{descriptor.Property{Type: descriptor.TypeStringUTF8, MaxLength: 32}, 31},
		{descriptor.Property{Type: descriptor.TypePassword, MaxLength: 16}, 15},
		{descriptor.Property{Type: descriptor.TypeFixedPoint64}, 8},
		{descriptor.Property{Type: descriptor.TypeNumberListInt, IntNumbers: []int64{1, 2}}, 8},
		{descriptor.Property{Type: descriptor.TypeLanguage, Entries: []string{"en", "de"}}, 1},
		{descriptor.Property{Type: descriptor.TypeOneOutOfM, Entries: []string{"a", "b"}}, 1},
		// the selection bitmap is padded to full bytes
		{descriptor.Property{Type: descriptor.TypeNOutOfM, Entries: []string{"a", "b", "c"}}, 1},
		{descriptor.Property{Type: descriptor.TypeNOutOfM, Entries: make([]string, 9)}, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.property.DataSize(), "type 0x%02X", uint8(tt.property.Type))
	}
}

func TestAppendDefaultZeroValues(t *testing.T) {
	property := descriptor.Property{ID: "counter", Type: descriptor.TypeUint32}

	util := marshalutil.New(4)
	require.NoError(t, property.AppendDefault(util))
	assert.Equal(t, []byte{0, 0, 0, 0}, util.Bytes())
}

func TestAppendDefaultString(t *testing.T) {
	property := descriptor.Property{
		ID:        "label",
		Type:      descriptor.TypeStringASCII,
		MaxLength: 8,
		Default:   "lamp",
	}

	util := marshalutil.New(property.DataSize())
	require.NoError(t, property.AppendDefault(util))
	assert.Equal(t, []byte{'l', 'a', 'm', 'p', 0, 0, 0}, util.Bytes())
}

func TestAppendDefaultStringTooLong(t *testing.T) {
	property := descriptor.Property{
		ID:        "label",
		Type:      descriptor.TypeStringASCII,
		MaxLength: 4,
		Default:   "toolong",
	}

	assert.Error(t, property.AppendDefault(marshalutil.New(8)))
}

func TestAppendDefaultTypeMismatch(t *testing.T) {
	property := descriptor.Property{ID: "power", Type: descriptor.TypeBool, Default: "yes"}

	assert.Error(t, property.AppendDefault(marshalutil.New(1)))
}

func TestAppendMetadataInteger(t *testing.T) {
	property := descriptor.Property{
		ID:      "level",
		Type:    descriptor.TypeUint8,
		Min:     int64Ptr(0),
		Max:     int64Ptr(100),
		Step:    int64Ptr(5),
		Default: uint64(50),
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0x86,                    // type code
		'l', 'e', 'v', 'e', 'l', 0x00,
		0x07,           // min, max and step present
		0x00, 100, 0x05,
	}, util.Bytes())
}

func TestAppendMetadataContentType(t *testing.T) {
	property := descriptor.Property{
		ID:                 "cook",
		Type:               descriptor.TypeUint8,
		Min:                int64Ptr(1),
		ContentType:        uint8Ptr(1), // time
		ContentTypeDefault: uint8Ptr(1), // seconds
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0x86,
		'c', 'o', 'o', 'k', 0x00,
		0x19, // min, content type and unit present
		0x01, // min
		0x01, // content type
		0x01, // unit
	}, util.Bytes())
}

func TestAppendMetadataFloatContentType(t *testing.T) {
	property := descriptor.Property{
		ID:          "mass",
		Type:        descriptor.TypeFloat32,
		ContentType: uint8Ptr(2), // weight
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0x8E,
		'm', 'a', 's', 's', 0x00,
		0x08, // content type present
		0x02,
	}, util.Bytes())
}

func TestAppendMetadataNumberList(t *testing.T) {
	property := descriptor.Property{
		ID:         "steps",
		Type:       descriptor.TypeNumberListInt,
		IntNumbers: []int64{-1, 500},
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0x90,
		's', 't', 'e', 'p', 's', 0x00,
		0x00, 0x02, // entry count
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // -1
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0xF4, // 500
	}, util.Bytes())
}

func TestAppendMetadataNumberListEmpty(t *testing.T) {
	property := descriptor.Property{ID: "steps", Type: descriptor.TypeNumberListDbl}

	assert.Error(t, property.AppendMetadata(marshalutil.New(marshalutil.DefaultCapacity)))
}

func TestAppendMetadataLanguage(t *testing.T) {
	property := descriptor.Property{
		ID:      "lang",
		Type:    descriptor.TypeLanguage,
		Entries: []string{"en", "de"},
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0xA2,
		'l', 'a', 'n', 'g', 0x00,
		0x02, // entry count
		'e', 'n', 0x00,
		'd', 'e', 0x00,
		0x00, // dependency count
	}, util.Bytes())
}

func TestAppendMetadataStringSubtype(t *testing.T) {
	property := descriptor.Property{ID: "pin", Type: descriptor.TypePassword, MaxLength: 12}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{0x9F, 'p', 'i', 'n', 0x00, 12}, util.Bytes())
}

func TestAppendMetadataSelection(t *testing.T) {
	property := descriptor.Property{
		ID:      "mode",
		Type:    descriptor.TypeOneOutOfM,
		Entries: []string{"eco", "max"},
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0x82,
		'm', 'o', 'd', 'e', 0x00,
		0x02, // entry count
		'e', 'c', 'o', 0x00,
		'm', 'a', 'x', 0x00,
		0x00, // dependency count
	}, util.Bytes())
}

func TestAppendMetadataString(t *testing.T) {
	property := descriptor.Property{ID: "label", Type: descriptor.TypeStringUTF8, MaxLength: 16}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{0x9B, 'l', 'a', 'b', 'e', 'l', 0x00, 16}, util.Bytes())
}

func TestAppendMetadataFixedPoint(t *testing.T) {
	property := descriptor.Property{ID: "temp", Type: descriptor.TypeFixedPoint32, Scale: 2}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{
		0xA0,
		't', 'e', 'm', 'p', 0x00,
		0x00, 0x00, 0x00, 0x02, // scale
		0x00, // no limits
	}, util.Bytes())
}

func TestAppendMetadataBool(t *testing.T) {
	property := descriptor.Property{ID: "power", Type: descriptor.TypeBool}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	require.NoError(t, property.AppendMetadata(util))
	assert.Equal(t, []byte{0x84, 'p', 'o', 'w', 'e', 'r', 0x00, 0x00, 0x00}, util.Bytes())
}

func TestReadValueRoundTrip(t *testing.T) {
	properties := []descriptor.Property{
		{ID: "power", Type: descriptor.TypeBool, Default: true},
		{ID: "count", Type: descriptor.TypeUint16, Default: uint64(512)},
		{ID: "delta", Type: descriptor.TypeInt8, Default: int64(-3)},
		{ID: "ratio", Type: descriptor.TypeFloat64, Default: 0.25},
		{ID: "start", Type: descriptor.TypeDateTime, Default: types.TimePoint(1661857445123)},
		{ID: "temp", Type: descriptor.TypeFixedPoint32, Scale: 2, Default: types.FixedPoint32{Unscaled: 2150, Scale: 2}},
		{ID: "label", Type: descriptor.TypeStringASCII, MaxLength: 8, Default: "abc"},
		{ID: "lang", Type: descriptor.TypeLanguage, Entries: []string{"en", "de"}, Default: uint8(2)},
		{ID: "steps", Type: descriptor.TypeNumberListInt, IntNumbers: []int64{10, 20}, Default: int64(20)},
		{ID: "dose", Type: descriptor.TypeNumberListDbl, FloatNumbers: []float64{0.5, 1.5}, Default: 1.5},
		{ID: "link", Type: descriptor.TypeURI, MaxLength: 16, Default: "https://x"},
	}

	util := marshalutil.New(marshalutil.DefaultCapacity)
	for i := range properties {
		require.NoError(t, properties[i].AppendDefault(util))
	}

	reader := marshalutil.NewFromBytes(util.Bytes())
	for i := range properties {
		value, err := properties[i].ReadValue(reader)
		require.NoError(t, err, "property %q", properties[i].ID)
		assert.Equal(t, properties[i].Default, value, "property %q", properties[i].ID)
	}
	assert.Zero(t, reader.Remaining())
}
