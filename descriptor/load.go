package descriptor

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/eput-tools/eput.go/bitmask"
	"github.com/eput-tools/eput.go/types"
)

var (
	// ErrUnsupportedFormat is returned when a descriptor file has an
	// extension other than .yml, .yaml or .json.
	ErrUnsupportedFormat = errors.New("unsupported descriptor format")

	// ErrUnknownDeviceType is returned when the device_type field names
	// no known device category.
	ErrUnknownDeviceType = errors.New("unknown device type")

	// ErrUnknownPropertyType is returned when a property's type field
	// names no known wire type.
	ErrUnknownPropertyType = errors.New("unknown property type")

	// ErrInvalidDescriptor is returned when a descriptor document is
	// structurally broken, for example through missing fields or
	// duplicate property identifiers.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

type rawDescriptor struct {
	DeviceType      string                   `koanf:"device_type"`
	DeviceName      string                   `koanf:"device_name"`
	ManufacturerID  uint32                   `koanf:"manufacturer_id"`
	DeviceID        uint32                   `koanf:"device_id"`
	FirmwareVersion uint8                    `koanf:"firmware_version"`
	ProtocolVersion uint8                    `koanf:"protocol_version"`
	Properties      []map[string]interface{} `koanf:"properties"`
	Translations    []map[string]interface{} `koanf:"translation_data"`
}

// Load reads and validates a device descriptor document. The format is
// derived from the file extension.
func Load(path string) (*Profile, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, "failed to load descriptor %s", path)
	}

	raw := &rawDescriptor{}
	if err := k.Unmarshal("", raw); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal descriptor %s", path)
	}

	return build(raw)
}

func build(raw *rawDescriptor) (*Profile, error) {
	deviceType, exists := deviceTypeNames[raw.DeviceType]
	if !exists {
		return nil, errors.Wrapf(ErrUnknownDeviceType, "%q", raw.DeviceType)
	}
	if raw.DeviceName == "" {
		return nil, errors.Wrap(ErrInvalidDescriptor, "device_name is missing")
	}
	if raw.ManufacturerID > 0xFFFFFF || raw.DeviceID > 0xFFFFFF {
		return nil, errors.Wrap(ErrInvalidDescriptor, "manufacturer_id and device_id must fit into 24 bits")
	}

	profile := &Profile{
		Device: DeviceInfo{
			Type:            deviceType,
			ManufacturerID:  raw.ManufacturerID,
			DeviceID:        raw.DeviceID,
			FirmwareVersion: raw.FirmwareVersion,
			ProtocolVersion: raw.ProtocolVersion,
			Name:            raw.DeviceName,
		},
	}

	seenIDs := make(map[string]struct{})
	for i, rawProperty := range raw.Properties {
		property, err := buildProperty(rawProperty)
		if err != nil {
			return nil, errors.Wrapf(err, "property %d", i)
		}
		if _, exists := seenIDs[property.ID]; exists {
			return nil, errors.Wrapf(ErrInvalidDescriptor, "duplicate property id %q", property.ID)
		}
		seenIDs[property.ID] = struct{}{}

		profile.Properties = append(profile.Properties, property)
	}

	for i, rawTranslation := range raw.Translations {
		translation, err := buildTranslation(rawTranslation)
		if err != nil {
			return nil, errors.Wrapf(err, "translation %d", i)
		}

		profile.Translations = append(profile.Translations, translation)
	}

	return profile, nil
}

func buildProperty(raw map[string]interface{}) (Property, error) {
	id := cast.ToString(raw["id"])
	if id == "" {
		return Property{}, errors.Wrap(ErrInvalidDescriptor, "id is missing")
	}
	if !isASCII(id) {
		return Property{}, errors.Wrapf(ErrInvalidDescriptor, "id %q contains non-ASCII characters", id)
	}

	typeName := cast.ToString(raw["type"])
	propertyType, exists := typeNames[typeName]
	if !exists {
		return Property{}, errors.Wrapf(ErrUnknownPropertyType, "%q", typeName)
	}

	property := Property{ID: id, Type: propertyType}

	switch propertyType {
	case TypeOneOutOfM, TypeNOutOfM, TypeLanguage:
		entries, err := cast.ToStringSliceE(raw["entries"])
		if err != nil || len(entries) == 0 {
			return Property{}, errors.Wrapf(ErrInvalidDescriptor, "property %q needs a non-empty entries list", id)
		}
		property.Entries = entries
	case TypeStringASCII, TypeStringUTF8, TypeEmail, TypePhone, TypeURI, TypePassword:
		maxLength, err := cast.ToIntE(raw["max_length"])
		if err != nil || maxLength < 2 || maxLength > 255 {
			return Property{}, errors.Wrapf(ErrInvalidDescriptor, "property %q needs a max_length between 2 and 255", id)
		}
		property.MaxLength = maxLength
	case TypeNumberListInt, TypeNumberListDbl:
		if err := parseNumbers(&property, raw["numbers"]); err != nil {
			return Property{}, err
		}
	case TypeFixedPoint32, TypeFixedPoint64:
		scale, err := cast.ToInt32E(raw["scale"])
		if err != nil {
			return Property{}, errors.Wrapf(ErrInvalidDescriptor, "property %q needs a scale", id)
		}
		property.Scale = scale
	}

	if err := parseLimits(&property, raw); err != nil {
		return Property{}, err
	}

	if rawDefault, exists := raw["default"]; exists && rawDefault != nil {
		if err := parseDefault(&property, rawDefault); err != nil {
			return Property{}, err
		}
	}

	// a number list without an explicit default defaults to its first
	// entry
	if property.Default == nil {
		switch propertyType {
		case TypeNumberListInt:
			property.Default = property.IntNumbers[0]
		case TypeNumberListDbl:
			property.Default = property.FloatNumbers[0]
		}
	}

	return property, nil
}

// parseNumbers fills a number list property's value table from the
// descriptor's numbers list.
func parseNumbers(property *Property, raw interface{}) error {
	rawNumbers, err := cast.ToSliceE(raw)
	if err != nil || len(rawNumbers) < 1 || len(rawNumbers) > 65535 {
		return errors.Wrapf(ErrInvalidDescriptor, "property %q needs a numbers list with 1 to 65535 entries", property.ID)
	}

	for _, rawNumber := range rawNumbers {
		switch property.Type {
		case TypeNumberListInt:
			number, err := cast.ToInt64E(rawNumber)
			if err != nil {
				return errors.Wrapf(ErrInvalidDescriptor, "property %q: %v is not an integer", property.ID, rawNumber)
			}
			property.IntNumbers = append(property.IntNumbers, number)
		case TypeNumberListDbl:
			number, err := cast.ToFloat64E(rawNumber)
			if err != nil {
				return errors.Wrapf(ErrInvalidDescriptor, "property %q: %v is not a number", property.ID, rawNumber)
			}
			property.FloatNumbers = append(property.FloatNumbers, number)
		}
	}

	return nil
}

func parseLimits(property *Property, raw map[string]interface{}) error {
	limitKeys := map[string]**int64{}
	switch property.Type {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64,
		TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		limitKeys["min_value"] = &property.Min
		limitKeys["max_value"] = &property.Max
		limitKeys["step_size"] = &property.Step
	case TypeFixedPoint32, TypeFixedPoint64:
		// fixed point descriptors carry no step size field
		limitKeys["min_value"] = &property.Min
		limitKeys["max_value"] = &property.Max
	case TypeFloat32, TypeFloat64:
	default:
		return nil
	}

	for key, target := range limitKeys {
		rawValue, exists := raw[key]
		if !exists || rawValue == nil {
			continue
		}
		value, err := cast.ToInt64E(rawValue)
		if err != nil {
			return errors.Wrapf(ErrInvalidDescriptor, "property %q: invalid %s", property.ID, key)
		}
		*target = &value
	}

	return parseContentType(property, raw)
}

var contentTypes = map[string]uint8{
	"none":   0,
	"time":   1,
	"weight": 2,
	"length": 3,
}

var contentTypeDefs = map[string]map[string]uint8{
	"time":   {"ms": 0, "s": 1, "m": 2, "h": 3, "d": 4},
	"weight": {"mg": 0, "g": 0, "kg": 0},
	"length": {"mm": 0, "cm": 1, "dm": 2, "m": 3, "km": 4},
}

func parseContentType(property *Property, raw map[string]interface{}) error {
	rawType, exists := raw["content_type"]
	if !exists || rawType == nil {
		return nil
	}
	name := cast.ToString(rawType)
	code, known := contentTypes[name]
	if !known {
		return errors.Wrapf(ErrInvalidDescriptor, "property %q: unknown content_type %q", property.ID, name)
	}
	property.ContentType = &code

	rawDef, exists := raw["content_type_def"]
	if !exists || rawDef == nil {
		return nil
	}
	// an unknown unit falls back to the content type's base unit
	def := contentTypeDefs[name][cast.ToString(rawDef)]
	property.ContentTypeDefault = &def

	return nil
}

func parseDefault(property *Property, raw interface{}) error {
	var err error
	switch property.Type {
	case TypeOneOutOfM, TypeLanguage:
		property.Default, err = entryIndex(property, raw)
	case TypeNOutOfM:
		property.Default, err = entryBitmap(property, raw)
	case TypeBool:
		property.Default, err = cast.ToBoolE(raw)
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		property.Default, err = cast.ToUint64E(raw)
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		property.Default, err = cast.ToInt64E(raw)
	case TypeFloat32, TypeFloat64, TypeNumberListDbl:
		property.Default, err = cast.ToFloat64E(raw)
	case TypeNumberListInt:
		property.Default, err = cast.ToInt64E(raw)
	case TypeDate, TypeDateTime:
		property.Default, err = parseTimePoint(cast.ToString(raw))
	case TypeTime:
		property.Default, err = parseTimeOfDay(cast.ToString(raw))
	case TypeZonedDateTime:
		property.Default, err = parseZonedTime(cast.ToString(raw))
	case TypeDateRange, TypeDateTimeRange:
		property.Default, err = parseDateRange(cast.ToString(raw))
	case TypeTimeRange:
		property.Default, err = parseTimeRange(cast.ToString(raw))
	case TypeStringASCII, TypeStringUTF8, TypeEmail, TypePhone, TypeURI, TypePassword:
		value, castErr := cast.ToStringE(raw)
		if castErr == nil && len(value)+1 > property.DataSize() {
			castErr = errors.Errorf("%q exceeds maximum length %d", value, property.MaxLength)
		}
		if castErr == nil && property.Type == TypeStringASCII && !isASCII(value) {
			castErr = errors.Errorf("%q contains non-ASCII characters", value)
		}
		property.Default, err = value, castErr
	case TypeFixedPoint32:
		var unscaled int32
		unscaled, err = cast.ToInt32E(raw)
		property.Default = types.FixedPoint32{Unscaled: unscaled, Scale: property.Scale}
	case TypeFixedPoint64:
		var unscaled int64
		unscaled, err = cast.ToInt64E(raw)
		property.Default = types.FixedPoint64{Unscaled: unscaled, Scale: property.Scale}
	}
	if err != nil {
		return errors.Wrapf(ErrInvalidDescriptor, "property %q: invalid default: %s", property.ID, err)
	}

	return nil
}

// entryIndex resolves a selection default to its 1 based entry index.
func entryIndex(property *Property, raw interface{}) (uint8, error) {
	name, err := cast.ToStringE(raw)
	if err != nil {
		return 0, err
	}
	for i, entry := range property.Entries {
		if entry == name {
			return uint8(i + 1), nil
		}
	}

	return 0, errors.Errorf("%q is not an entry", name)
}

// entryBitmap resolves a list of selection defaults to the bitmap of
// their entry indices.
func entryBitmap(property *Property, raw interface{}) ([]byte, error) {
	names, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, err
	}

	bitmap := make([]byte, property.DataSize())
	for _, name := range names {
		index, err := entryIndex(property, name)
		if err != nil {
			return nil, err
		}
		bitmask.Set(bitmap, uint(index-1))
	}

	return bitmap, nil
}

var timePointLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimePoint(value string) (types.TimePoint, error) {
	for _, layout := range timePointLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return types.TimePoint(parsed.UnixMilli()), nil
		}
	}

	return 0, errors.Errorf("%q is not a timestamp", value)
}

func parseTimeOfDay(value string) (types.TimeOfDay, error) {
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		return types.TimeOfDay{}, errors.Errorf("%q is not a time of day", value)
	}

	return types.TimeOfDay{
		Hours:   uint8(parsed.Hour()),
		Minutes: uint8(parsed.Minute()),
		Seconds: uint8(parsed.Second()),
	}, nil
}

func parseZonedTime(value string) (types.ZonedTime, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return types.ZonedTime{}, errors.Errorf("%q is not a zoned timestamp", value)
	}
	_, offsetSeconds := parsed.Zone()

	return types.ZonedTime{
		Time:   types.TimePoint(parsed.UnixMilli()),
		Offset: types.ZoneOffset(offsetSeconds / 60),
	}, nil
}

func parseDateRange(value string) (types.DateRange, error) {
	from, to, err := splitRange(value)
	if err != nil {
		return types.DateRange{}, err
	}
	fromPoint, err := parseTimePoint(from)
	if err != nil {
		return types.DateRange{}, err
	}
	toPoint, err := parseTimePoint(to)
	if err != nil {
		return types.DateRange{}, err
	}

	return types.DateRange{From: fromPoint, To: toPoint}, nil
}

func parseTimeRange(value string) (types.TimeRange, error) {
	from, to, err := splitRange(value)
	if err != nil {
		return types.TimeRange{}, err
	}
	fromTime, err := parseTimeOfDay(from)
	if err != nil {
		return types.TimeRange{}, err
	}
	toTime, err := parseTimeOfDay(to)
	if err != nil {
		return types.TimeRange{}, err
	}

	return types.TimeRange{From: fromTime, To: toTime}, nil
}

func splitRange(value string) (string, string, error) {
	parts := strings.SplitN(value, ";", 2)
	if len(parts) != 2 {
		return "", "", errors.Errorf("%q is not a range, expected \"from;to\"", value)
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func buildTranslation(raw map[string]interface{}) (Translation, error) {
	language := cast.ToString(raw["language"])
	if language == "" || !isASCII(language) {
		return Translation{}, errors.Wrap(ErrInvalidDescriptor, "language is missing or not ASCII")
	}

	translation := Translation{Language: language, Strings: make(map[string]string)}
	if rawStrings, exists := raw["translations"]; exists && rawStrings != nil {
		table, err := cast.ToStringMapStringE(rawStrings)
		if err != nil {
			return Translation{}, errors.Wrapf(ErrInvalidDescriptor, "translations for %q are not a string map", language)
		}
		translation.Strings = table
	}

	return translation, nil
}

func isASCII(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7E {
			return false
		}
	}

	return true
}
