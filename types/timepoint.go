package types

import "github.com/eput-tools/eput.go/codec"

// TimePointSize is the wire size of a TimePoint.
const TimePointSize = codec.Int64Size

// TimePoint is an opaque signed 64 bit counter. The unit (eput devices
// use milliseconds since the Unix epoch) is defined by the producer of
// the value, not by the codec.
type TimePoint int64

// TimePointFromBytes reads a TimePoint from the first 8 bytes of b.
func TimePointFromBytes(b []byte) TimePoint {
	return TimePoint(codec.Int64(b))
}

// Put writes the TimePoint to the first 8 bytes of b.
func (t TimePoint) Put(b []byte) {
	codec.PutInt64(b, int64(t))
}

// Bytes returns the wire form of the TimePoint.
func (t TimePoint) Bytes() []byte {
	b := make([]byte, TimePointSize)
	t.Put(b)

	return b
}
