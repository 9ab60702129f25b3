package types

import "github.com/eput-tools/eput.go/codec"

const (
	// ZoneOffsetSize is the wire size of a ZoneOffset.
	ZoneOffsetSize = codec.Int16Size
	// ZonedTimeSize is the wire size of a ZonedTime.
	ZonedTimeSize = TimePointSize + ZoneOffsetSize
)

// ZoneOffset is a signed UTC offset. The unit (eput devices use
// minutes) is defined by the producer of the value.
type ZoneOffset int16

// ZoneOffsetFromBytes reads a ZoneOffset from the first 2 bytes of b.
func ZoneOffsetFromBytes(b []byte) ZoneOffset {
	return ZoneOffset(codec.Int16(b))
}

// Put writes the ZoneOffset to the first 2 bytes of b.
func (o ZoneOffset) Put(b []byte) {
	codec.PutInt16(b, int16(o))
}

// Bytes returns the wire form of the ZoneOffset.
func (o ZoneOffset) Bytes() []byte {
	b := make([]byte, ZoneOffsetSize)
	o.Put(b)

	return b
}

// ZonedTime is a TimePoint together with the UTC offset it was
// recorded in.
type ZonedTime struct {
	Time   TimePoint
	Offset ZoneOffset
}

// ZonedTimeFromBytes reads a ZonedTime from the first 10 bytes of b.
func ZonedTimeFromBytes(b []byte) ZonedTime {
	return ZonedTime{
		Time:   TimePointFromBytes(b),
		Offset: ZoneOffsetFromBytes(b[TimePointSize:]),
	}
}

// Put writes the ZonedTime to the first 10 bytes of b.
func (t ZonedTime) Put(b []byte) {
	t.Time.Put(b)
	t.Offset.Put(b[TimePointSize:])
}

// Bytes returns the wire form of the ZonedTime.
func (t ZonedTime) Bytes() []byte {
	b := make([]byte, ZonedTimeSize)
	t.Put(b)

	return b
}
