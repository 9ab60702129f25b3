package descriptor

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/eput-tools/eput.go/codec"
	"github.com/eput-tools/eput.go/marshalutil"
	"github.com/eput-tools/eput.go/types"
)

// Type is the wire type code of a property, carried as the first byte
// of its metadata descriptor.
type Type uint8

const (
	TypeOneOutOfM     Type = 0x82
	TypeNOutOfM       Type = 0x83
	TypeBool          Type = 0x84
	TypeUint8         Type = 0x86
	TypeUint16        Type = 0x87
	TypeUint32        Type = 0x88
	TypeUint64        Type = 0x89
	TypeInt8          Type = 0x8A
	TypeInt16         Type = 0x8B
	TypeInt32         Type = 0x8C
	TypeInt64         Type = 0x8D
	TypeFloat32       Type = 0x8E
	TypeFloat64       Type = 0x8F
	TypeNumberListInt Type = 0x90
	TypeNumberListDbl Type = 0x91
	TypeDate          Type = 0x92
	TypeDateTime      Type = 0x93
	TypeTime          Type = 0x94
	TypeZonedDateTime Type = 0x95
	TypeDateRange     Type = 0x97
	TypeDateTimeRange Type = 0x98
	TypeTimeRange     Type = 0x99
	TypeStringASCII   Type = 0x9A
	TypeStringUTF8    Type = 0x9B
	TypeEmail         Type = 0x9C
	TypePhone         Type = 0x9D
	TypeURI           Type = 0x9E
	TypePassword      Type = 0x9F
	TypeFixedPoint32  Type = 0xA0
	TypeFixedPoint64  Type = 0xA1
	TypeLanguage      Type = 0xA2
)

// typeNames maps descriptor document type names to their wire codes.
var typeNames = map[string]Type{
	"one_out_of_m":       TypeOneOutOfM,
	"n_out_of_m":         TypeNOutOfM,
	"bool":               TypeBool,
	"uint8_t":            TypeUint8,
	"uint16_t":           TypeUint16,
	"uint32_t":           TypeUint32,
	"uint64_t":           TypeUint64,
	"int8_t":             TypeInt8,
	"int16_t":            TypeInt16,
	"int32_t":            TypeInt32,
	"int64_t":            TypeInt64,
	"float":              TypeFloat32,
	"double":             TypeFloat64,
	"number_list_int":    TypeNumberListInt,
	"number_list_double": TypeNumberListDbl,
	"date":               TypeDate,
	"date_time":          TypeDateTime,
	"time":               TypeTime,
	"zoned_date_time":    TypeZonedDateTime,
	"date_range":         TypeDateRange,
	"date_time_range":    TypeDateTimeRange,
	"time_range":         TypeTimeRange,
	"str_ascii":          TypeStringASCII,
	"str_utf8":           TypeStringUTF8,
	"str_mail":           TypeEmail,
	"str_phone":          TypePhone,
	"str_uri":            TypeURI,
	"str_pwd":            TypePassword,
	"fixp32":             TypeFixedPoint32,
	"fixp64":             TypeFixedPoint64,
	"language":           TypeLanguage,
}

// descriptor flag bits announcing which optional fields follow in a
// numeric property's metadata.
const (
	limitFlagMin            = 1 << 0
	limitFlagMax            = 1 << 1
	limitFlagStep           = 1 << 2
	limitFlagContentType    = 1 << 3
	limitFlagContentTypeDef = 1 << 4
)

// Property is one configurable value of a device profile. Depending on
// Type only a subset of the optional fields is meaningful: Scale for
// fixed point properties, MaxLength for strings, Entries for
// selections, Min/Max/Step and the content type pair for numeric
// properties and IntNumbers/FloatNumbers for number lists.
type Property struct {
	ID                 string
	Type               Type
	Scale              int32
	MaxLength          int
	Entries            []string
	Min                *int64
	Max                *int64
	Step               *int64
	ContentType        *uint8
	ContentTypeDefault *uint8
	IntNumbers         []int64
	FloatNumbers       []float64
	Default            interface{}
}

// DataSize returns the number of bytes the property occupies inside
// the data blob.
func (p *Property) DataSize() int {
	switch p.Type {
	case TypeOneOutOfM, TypeLanguage, TypeBool, TypeUint8, TypeInt8:
		return 1
	case TypeNOutOfM:
		return (len(p.Entries) + 7) / 8
	case TypeUint16, TypeInt16:
		return codec.Uint16Size
	case TypeUint32, TypeInt32, TypeFloat32, TypeFixedPoint32:
		return codec.Uint32Size
	case TypeUint64, TypeInt64, TypeFloat64, TypeFixedPoint64,
		TypeNumberListInt, TypeNumberListDbl:
		return codec.Uint64Size
	case TypeDate, TypeDateTime:
		return types.TimePointSize
	case TypeTime:
		return types.TimeOfDaySize
	case TypeZonedDateTime:
		return types.ZonedTimeSize
	case TypeDateRange, TypeDateTimeRange:
		return types.DateRangeSize
	case TypeTimeRange:
		return types.TimeRangeSize
	case TypeStringASCII, TypeStringUTF8, TypeEmail, TypePhone, TypeURI, TypePassword:
		return p.MaxLength - 1
	}

	return 0
}

// AppendDefault appends the property's default value in wire form to
// the given MarshalUtil. A nil Default encodes as the type's zero
// value.
func (p *Property) AppendDefault(util *marshalutil.MarshalUtil) error {
	switch p.Type {
	case TypeOneOutOfM, TypeLanguage:
		value, err := defaultValue[uint8](p)
		if err != nil {
			return err
		}
		util.WriteUint8(value)
	case TypeNOutOfM:
		value, err := defaultValue[[]byte](p)
		if err != nil {
			return err
		}
		if value == nil {
			value = make([]byte, p.DataSize())
		}
		util.WriteBytes(value)
	case TypeBool:
		value, err := defaultValue[bool](p)
		if err != nil {
			return err
		}
		util.WriteBool(value)
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		value, err := defaultValue[uint64](p)
		if err != nil {
			return err
		}
		writeSized(util, p.DataSize(), value)
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		value, err := defaultValue[int64](p)
		if err != nil {
			return err
		}
		writeSized(util, p.DataSize(), uint64(value))
	case TypeFloat32:
		value, err := defaultValue[float64](p)
		if err != nil {
			return err
		}
		util.WriteFloat32(float32(value))
	case TypeFloat64:
		value, err := defaultValue[float64](p)
		if err != nil {
			return err
		}
		util.WriteFloat64(value)
	case TypeNumberListInt:
		value, err := defaultValue[int64](p)
		if err != nil {
			return err
		}
		util.WriteInt64(value)
	case TypeNumberListDbl:
		value, err := defaultValue[float64](p)
		if err != nil {
			return err
		}
		util.WriteFloat64(value)
	case TypeDate, TypeDateTime:
		value, err := defaultValue[types.TimePoint](p)
		if err != nil {
			return err
		}
		util.WriteTimePoint(value)
	case TypeTime:
		value, err := defaultValue[types.TimeOfDay](p)
		if err != nil {
			return err
		}
		util.WriteTimeOfDay(value)
	case TypeZonedDateTime:
		value, err := defaultValue[types.ZonedTime](p)
		if err != nil {
			return err
		}
		util.WriteZonedTime(value)
	case TypeDateRange, TypeDateTimeRange:
		value, err := defaultValue[types.DateRange](p)
		if err != nil {
			return err
		}
		util.WriteDateRange(value)
	case TypeTimeRange:
		value, err := defaultValue[types.TimeRange](p)
		if err != nil {
			return err
		}
		util.WriteTimeRange(value)
	case TypeStringASCII, TypeStringUTF8, TypeEmail, TypePhone, TypeURI, TypePassword:
		value, err := defaultValue[string](p)
		if err != nil {
			return err
		}

		return p.appendString(util, value)
	case TypeFixedPoint32:
		value, err := defaultValue[types.FixedPoint32](p)
		if err != nil {
			return err
		}
		util.WriteFixedPoint32(value)
	case TypeFixedPoint64:
		value, err := defaultValue[types.FixedPoint64](p)
		if err != nil {
			return err
		}
		util.WriteFixedPoint64(value)
	default:
		return errors.Errorf("property %q: unknown type code 0x%02X", p.ID, uint8(p.Type))
	}

	return nil
}

// appendString appends a NUL terminated string padded with zero bytes
// to the property's fixed field size.
func (p *Property) appendString(util *marshalutil.MarshalUtil, value string) error {
	fieldSize := p.DataSize()
	if len(value)+1 > fieldSize {
		return errors.Errorf("property %q: default %q exceeds maximum length %d", p.ID, value, p.MaxLength)
	}

	field := make([]byte, fieldSize)
	copy(field, value)
	util.WriteBytes(field)

	return nil
}

// ReadValue reads one value of the property's type from the given
// MarshalUtil. The dynamic type of the result matches the one Default
// holds after Load.
func (p *Property) ReadValue(util *marshalutil.MarshalUtil) (interface{}, error) {
	switch p.Type {
	case TypeOneOutOfM, TypeLanguage:
		return util.ReadUint8()
	case TypeNOutOfM:
		raw, err := util.ReadBytes(p.DataSize())
		if err != nil {
			return nil, err
		}
		bitmap := make([]byte, len(raw))
		copy(bitmap, raw)

		return bitmap, nil
	case TypeBool:
		return util.ReadBool()
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return readSizedUint(util, p.DataSize())
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return readSizedInt(util, p.DataSize())
	case TypeFloat32:
		value, err := util.ReadFloat32()

		return float64(value), err
	case TypeFloat64:
		return util.ReadFloat64()
	case TypeNumberListInt:
		return util.ReadInt64()
	case TypeNumberListDbl:
		return util.ReadFloat64()
	case TypeDate, TypeDateTime:
		return util.ReadTimePoint()
	case TypeTime:
		return util.ReadTimeOfDay()
	case TypeZonedDateTime:
		return util.ReadZonedTime()
	case TypeDateRange, TypeDateTimeRange:
		return util.ReadDateRange()
	case TypeTimeRange:
		return util.ReadTimeRange()
	case TypeStringASCII, TypeStringUTF8, TypeEmail, TypePhone, TypeURI, TypePassword:
		raw, err := util.ReadBytes(p.DataSize())
		if err != nil {
			return nil, err
		}
		if terminator := bytes.IndexByte(raw, 0x00); terminator >= 0 {
			raw = raw[:terminator]
		}

		return string(raw), nil
	case TypeFixedPoint32:
		return util.ReadFixedPoint32(p.Scale)
	case TypeFixedPoint64:
		return util.ReadFixedPoint64(p.Scale)
	}

	return nil, errors.Errorf("property %q: unknown type code 0x%02X", p.ID, uint8(p.Type))
}

// AppendMetadata appends the property's metadata descriptor: the type
// code, the NUL terminated identifier and the type specific trailer.
func (p *Property) AppendMetadata(util *marshalutil.MarshalUtil) error {
	util.WriteUint8(uint8(p.Type))
	writeTerminatedString(util, p.ID)

	switch p.Type {
	case TypeOneOutOfM, TypeNOutOfM, TypeLanguage:
		if len(p.Entries) > 255 {
			return errors.Errorf("property %q: %d entries exceed descriptor limit", p.ID, len(p.Entries))
		}
		util.WriteUint8(uint8(len(p.Entries)))
		for _, entry := range p.Entries {
			writeTerminatedString(util, entry)
		}
		// dependency count, unused
		util.WriteUint8(0)
	case TypeBool:
		// dependency counts for the true and false branch, unused
		util.WriteUint8(0).WriteUint8(0)
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64,
		TypeInt8, TypeInt16, TypeInt32, TypeInt64,
		TypeFloat32, TypeFloat64:
		p.appendLimits(util)
	case TypeNumberListInt:
		if err := p.checkNumberCount(len(p.IntNumbers)); err != nil {
			return err
		}
		util.WriteUint16(uint16(len(p.IntNumbers)))
		for _, number := range p.IntNumbers {
			util.WriteInt64(number)
		}
	case TypeNumberListDbl:
		if err := p.checkNumberCount(len(p.FloatNumbers)); err != nil {
			return err
		}
		util.WriteUint16(uint16(len(p.FloatNumbers)))
		for _, number := range p.FloatNumbers {
			util.WriteFloat64(number)
		}
	case TypeStringASCII, TypeStringUTF8, TypeEmail, TypePhone, TypeURI, TypePassword:
		if p.MaxLength < 2 || p.MaxLength > 255 {
			return errors.Errorf("property %q: maximum length %d out of range", p.ID, p.MaxLength)
		}
		util.WriteUint8(uint8(p.MaxLength))
	case TypeFixedPoint32, TypeFixedPoint64:
		util.WriteInt32(p.Scale)
		p.appendLimits(util)
	}

	return nil
}

// checkNumberCount validates a number list's entry count against the
// uint16 wire field.
func (p *Property) checkNumberCount(count int) error {
	if count < 1 || count > 65535 {
		return errors.Errorf("property %q: %d numbers out of descriptor range 1..65535", p.ID, count)
	}

	return nil
}

// appendLimits writes the limit flags byte followed by the announced
// min/max/step values at the property's wire width and the content
// type pair.
func (p *Property) appendLimits(util *marshalutil.MarshalUtil) {
	flags := uint8(0)
	if p.Min != nil {
		flags |= limitFlagMin
	}
	if p.Max != nil {
		flags |= limitFlagMax
	}
	if p.Step != nil {
		flags |= limitFlagStep
	}
	if p.ContentType != nil {
		flags |= limitFlagContentType
	}
	if p.ContentTypeDefault != nil {
		flags |= limitFlagContentTypeDef
	}
	util.WriteUint8(flags)

	size := p.DataSize()
	if p.Min != nil {
		writeSized(util, size, uint64(*p.Min))
	}
	if p.Max != nil {
		writeSized(util, size, uint64(*p.Max))
	}
	if p.Step != nil {
		writeSized(util, size, uint64(*p.Step))
	}
	if p.ContentType != nil {
		util.WriteUint8(*p.ContentType)
	}
	if p.ContentTypeDefault != nil {
		util.WriteUint8(*p.ContentTypeDefault)
	}
}

// defaultValue returns the property's default coerced to T, or T's
// zero value when no default is set.
func defaultValue[T any](p *Property) (T, error) {
	var zero T
	if p.Default == nil {
		return zero, nil
	}

	value, ok := p.Default.(T)
	if !ok {
		return zero, errors.Errorf("property %q: default has type %T, expected %T", p.ID, p.Default, zero)
	}

	return value, nil
}

// writeSized writes the low size bytes of value in big-endian order.
// Two's complement truncation makes this correct for signed values as
// well.
func writeSized(util *marshalutil.MarshalUtil, size int, value uint64) {
	switch size {
	case codec.Uint8Size:
		util.WriteUint8(uint8(value))
	case codec.Uint16Size:
		util.WriteUint16(uint16(value))
	case codec.Uint32Size:
		util.WriteUint32(uint32(value))
	default:
		util.WriteUint64(value)
	}
}

func readSizedUint(util *marshalutil.MarshalUtil, size int) (uint64, error) {
	switch size {
	case codec.Uint8Size:
		value, err := util.ReadUint8()

		return uint64(value), err
	case codec.Uint16Size:
		value, err := util.ReadUint16()

		return uint64(value), err
	case codec.Uint32Size:
		value, err := util.ReadUint32()

		return uint64(value), err
	default:
		return util.ReadUint64()
	}
}

func readSizedInt(util *marshalutil.MarshalUtil, size int) (int64, error) {
	switch size {
	case codec.Uint8Size:
		value, err := util.ReadInt8()

		return int64(value), err
	case codec.Uint16Size:
		value, err := util.ReadInt16()

		return int64(value), err
	case codec.Uint32Size:
		value, err := util.ReadInt32()

		return int64(value), err
	default:
		return util.ReadInt64()
	}
}

// writeTerminatedString appends the raw string bytes followed by a NUL
// terminator.
func writeTerminatedString(util *marshalutil.MarshalUtil, value string) {
	util.WriteBytes([]byte(value)).WriteUint8(0)
}
