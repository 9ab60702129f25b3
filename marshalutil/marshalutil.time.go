package marshalutil

import "github.com/eput-tools/eput.go/types"

// WriteTimePoint writes a marshaled TimePoint value to the internal
// buffer.
func (util *MarshalUtil) WriteTimePoint(value types.TimePoint) *MarshalUtil {
	return util.WriteInt64(int64(value))
}

// ReadTimePoint reads a TimePoint value from the internal buffer.
func (util *MarshalUtil) ReadTimePoint() (types.TimePoint, error) {
	value, err := util.ReadInt64()

	return types.TimePoint(value), err
}

// WriteTimeOfDay writes a marshaled TimeOfDay value to the internal
// buffer.
func (util *MarshalUtil) WriteTimeOfDay(value types.TimeOfDay) *MarshalUtil {
	return util.WriteUint8(value.Hours).WriteUint8(value.Minutes).WriteUint8(value.Seconds)
}

// ReadTimeOfDay reads a TimeOfDay value from the internal buffer.
func (util *MarshalUtil) ReadTimeOfDay() (types.TimeOfDay, error) {
	raw, err := util.ReadBytes(types.TimeOfDaySize)
	if err != nil {
		return types.TimeOfDay{}, err
	}

	return types.TimeOfDayFromBytes(raw), nil
}

// WriteDateRange writes a marshaled DateRange value to the internal
// buffer.
func (util *MarshalUtil) WriteDateRange(value types.DateRange) *MarshalUtil {
	return util.WriteTimePoint(value.From).WriteTimePoint(value.To)
}

// ReadDateRange reads a DateRange value from the internal buffer.
func (util *MarshalUtil) ReadDateRange() (types.DateRange, error) {
	raw, err := util.ReadBytes(types.DateRangeSize)
	if err != nil {
		return types.DateRange{}, err
	}

	return types.DateRangeFromBytes(raw), nil
}

// WriteTimeRange writes a marshaled TimeRange value to the internal
// buffer.
func (util *MarshalUtil) WriteTimeRange(value types.TimeRange) *MarshalUtil {
	return util.WriteTimeOfDay(value.From).WriteTimeOfDay(value.To)
}

// ReadTimeRange reads a TimeRange value from the internal buffer.
func (util *MarshalUtil) ReadTimeRange() (types.TimeRange, error) {
	raw, err := util.ReadBytes(types.TimeRangeSize)
	if err != nil {
		return types.TimeRange{}, err
	}

	return types.TimeRangeFromBytes(raw), nil
}

// WriteZoneOffset writes a marshaled ZoneOffset value to the internal
// buffer.
func (util *MarshalUtil) WriteZoneOffset(value types.ZoneOffset) *MarshalUtil {
	return util.WriteInt16(int16(value))
}

// ReadZoneOffset reads a ZoneOffset value from the internal buffer.
func (util *MarshalUtil) ReadZoneOffset() (types.ZoneOffset, error) {
	value, err := util.ReadInt16()

	return types.ZoneOffset(value), err
}

// WriteZonedTime writes a marshaled ZonedTime value to the internal
// buffer.
func (util *MarshalUtil) WriteZonedTime(value types.ZonedTime) *MarshalUtil {
	return util.WriteTimePoint(value.Time).WriteZoneOffset(value.Offset)
}

// ReadZonedTime reads a ZonedTime value from the internal buffer.
func (util *MarshalUtil) ReadZonedTime() (types.ZonedTime, error) {
	raw, err := util.ReadBytes(types.ZonedTimeSize)
	if err != nil {
		return types.ZonedTime{}, err
	}

	return types.ZonedTimeFromBytes(raw), nil
}
