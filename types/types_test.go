package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eput-tools/eput.go/types"
)

func TestTimePointRoundTrip(t *testing.T) {
	for _, value := range []types.TimePoint{math.MinInt64, -1, 0, 1, 1661857445123, math.MaxInt64} {
		assert.Equal(t, value, types.TimePointFromBytes(value.Bytes()))
	}
}

func TestTimePointLayout(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02}, types.TimePoint(0x0102).Bytes())
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for _, value := range []types.TimeOfDay{
		{},
		{Hours: 23, Minutes: 59, Seconds: 59},
		{Hours: 8, Minutes: 30, Seconds: 0},
		// sentinel wire value used by devices, passes through unclamped
		{Hours: 24, Minutes: 60, Seconds: 60},
		{Hours: 255, Minutes: 255, Seconds: 255},
	} {
		assert.Equal(t, value, types.TimeOfDayFromBytes(value.Bytes()))
	}
}

func TestDateRangeRoundTrip(t *testing.T) {
	// From > To is a legal wire value
	for _, value := range []types.DateRange{
		{},
		{From: 1000, To: 2000},
		{From: 2000, To: 1000},
		{From: math.MinInt64, To: math.MaxInt64},
	} {
		assert.Equal(t, value, types.DateRangeFromBytes(value.Bytes()))
	}
}

func TestTimeRangeRoundTrip(t *testing.T) {
	value := types.TimeRange{
		From: types.TimeOfDay{Hours: 8, Minutes: 0, Seconds: 0},
		To:   types.TimeOfDay{Hours: 17, Minutes: 30, Seconds: 0},
	}
	assert.Equal(t, value, types.TimeRangeFromBytes(value.Bytes()))
	assert.Equal(t, []byte{8, 0, 0, 17, 30, 0}, value.Bytes())
}

func TestZoneOffsetRoundTrip(t *testing.T) {
	for _, value := range []types.ZoneOffset{math.MinInt16, -720, -1, 0, 1, 120, math.MaxInt16} {
		assert.Equal(t, value, types.ZoneOffsetFromBytes(value.Bytes()))
	}
}

func TestZonedTimeRoundTrip(t *testing.T) {
	value := types.ZonedTime{Time: 1661857445123, Offset: -120}
	assert.Equal(t, value, types.ZonedTimeFromBytes(value.Bytes()))
	assert.Len(t, value.Bytes(), types.ZonedTimeSize)
}

func TestFixedPoint32(t *testing.T) {
	value := types.FixedPoint32{Unscaled: 1234, Scale: 2}
	assert.Equal(t, []byte{0x00, 0x00, 0x04, 0xD2}, value.Bytes())
	assert.InDelta(t, 12.34, value.Float64(), 1e-9)

	// the scale does not travel on the wire, the decoder supplies it
	decoded := types.FixedPoint32FromBytes(value.Bytes(), 2)
	assert.Equal(t, value, decoded)
	rescaled := types.FixedPoint32FromBytes(value.Bytes(), 3)
	assert.Equal(t, int32(1234), rescaled.Unscaled)
	assert.InDelta(t, 1.234, rescaled.Float64(), 1e-9)
}

func TestFixedPoint64(t *testing.T) {
	value := types.FixedPoint64{Unscaled: -123456789, Scale: 4}
	assert.Equal(t, value, types.FixedPoint64FromBytes(value.Bytes(), 4))
	assert.InDelta(t, -12345.6789, value.Float64(), 1e-9)

	negativeScale := types.FixedPoint64{Unscaled: 5, Scale: -2}
	assert.InDelta(t, 500.0, negativeScale.Float64(), 1e-9)
}
