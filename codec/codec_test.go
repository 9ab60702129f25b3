package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eput-tools/eput.go/codec"
)

func TestUint8RoundTrip(t *testing.T) {
	for _, value := range []uint8{0, 1, math.MaxUint8 / 2, math.MaxUint8 - 1, math.MaxUint8} {
		b := make([]byte, codec.Uint8Size)
		codec.PutUint8(b, value)
		assert.Equal(t, value, codec.Uint8(b))
	}
}

func TestUint16RoundTrip(t *testing.T) {
	for _, value := range []uint16{0, 1, math.MaxUint16 / 2, math.MaxUint16 - 1, math.MaxUint16} {
		b := make([]byte, codec.Uint16Size)
		codec.PutUint16(b, value)
		assert.Equal(t, value, codec.Uint16(b))
	}
}

func TestUint32RoundTrip(t *testing.T) {
	for _, value := range []uint32{0, 1, math.MaxUint32 / 2, math.MaxUint32 - 1, math.MaxUint32} {
		b := make([]byte, codec.Uint32Size)
		codec.PutUint32(b, value)
		assert.Equal(t, value, codec.Uint32(b))
	}
}

func TestUint64RoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, math.MaxUint64 / 2, math.MaxUint64 - 1, math.MaxUint64} {
		b := make([]byte, codec.Uint64Size)
		codec.PutUint64(b, value)
		assert.Equal(t, value, codec.Uint64(b))
	}
}

func TestInt8RoundTrip(t *testing.T) {
	for _, value := range []int8{math.MinInt8, math.MinInt8 + 1, math.MinInt8 / 2, -1, 0, 1, math.MaxInt8 / 2, math.MaxInt8 - 1, math.MaxInt8} {
		b := make([]byte, codec.Int8Size)
		codec.PutInt8(b, value)
		assert.Equal(t, value, codec.Int8(b))
	}
}

func TestInt16RoundTrip(t *testing.T) {
	for _, value := range []int16{math.MinInt16, math.MinInt16 + 1, math.MinInt16 / 2, -1, 0, 1, math.MaxInt16 / 2, math.MaxInt16 - 1, math.MaxInt16} {
		b := make([]byte, codec.Int16Size)
		codec.PutInt16(b, value)
		assert.Equal(t, value, codec.Int16(b))
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, value := range []int32{math.MinInt32, math.MinInt32 + 1, math.MinInt32 / 2, -1, 0, 1, math.MaxInt32 / 2, math.MaxInt32 - 1, math.MaxInt32} {
		b := make([]byte, codec.Int32Size)
		codec.PutInt32(b, value)
		assert.Equal(t, value, codec.Int32(b))
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, value := range []int64{math.MinInt64, math.MinInt64 + 1, math.MinInt64 / 2, -1, 0, 1, math.MaxInt64 / 2, math.MaxInt64 - 1, math.MaxInt64} {
		b := make([]byte, codec.Int64Size)
		codec.PutInt64(b, value)
		assert.Equal(t, value, codec.Int64(b))
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, value := range []float32{
		0, 1, -1, 0.5, -0.5, math.MaxFloat32, -math.MaxFloat32,
		math.SmallestNonzeroFloat32, float32(math.Inf(1)), float32(math.Inf(-1)),
	} {
		b := make([]byte, codec.Float32Size)
		codec.PutFloat32(b, value)
		assert.Equal(t, value, codec.Float32(b))
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, value := range []float64{
		0, 1, -1, 0.5, -0.5, math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1),
	} {
		b := make([]byte, codec.Float64Size)
		codec.PutFloat64(b, value)
		assert.Equal(t, value, codec.Float64(b))
	}
}

func TestFloatNaNKeepsBits(t *testing.T) {
	b := make([]byte, codec.Float64Size)
	codec.PutFloat64(b, math.NaN())
	assert.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(codec.Float64(b)))

	b = make([]byte, codec.Float32Size)
	codec.PutFloat32(b, float32(math.NaN()))
	assert.Equal(t, math.Float32bits(float32(math.NaN())), math.Float32bits(codec.Float32(b)))
}

func TestBigEndianLayout(t *testing.T) {
	b := make([]byte, codec.Uint64Size)

	codec.PutUint16(b, 0x0102)
	assert.Equal(t, []byte{0x01, 0x02}, b[:codec.Uint16Size])

	codec.PutUint32(b, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b[:codec.Uint32Size])

	codec.PutUint64(b, 0x0102030405060708)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, b)

	codec.PutInt16(b, -2)
	assert.Equal(t, []byte{0xFF, 0xFE}, b[:codec.Int16Size])

	codec.PutFloat32(b, 1.0)
	assert.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, b[:codec.Float32Size])
}

func TestBool(t *testing.T) {
	b := make([]byte, codec.BoolSize)

	codec.PutBool(b, true)
	assert.Equal(t, []byte{0x01}, b)
	assert.True(t, codec.Bool(b))

	codec.PutBool(b, false)
	assert.Equal(t, []byte{0x00}, b)
	assert.False(t, codec.Bool(b))

	// any nonzero byte reads as true
	b[0] = 0xA5
	assert.True(t, codec.Bool(b))
}
