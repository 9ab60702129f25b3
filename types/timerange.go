package types

// TimeRangeSize is the wire size of a TimeRange.
const TimeRangeSize = 2 * TimeOfDaySize

// TimeRange spans the wall clock times From up to To.
type TimeRange struct {
	From TimeOfDay
	To   TimeOfDay
}

// TimeRangeFromBytes reads a TimeRange from the first 6 bytes of b.
func TimeRangeFromBytes(b []byte) TimeRange {
	return TimeRange{
		From: TimeOfDayFromBytes(b),
		To:   TimeOfDayFromBytes(b[TimeOfDaySize:]),
	}
}

// Put writes the TimeRange to the first 6 bytes of b.
func (r TimeRange) Put(b []byte) {
	r.From.Put(b)
	r.To.Put(b[TimeOfDaySize:])
}

// Bytes returns the wire form of the TimeRange.
func (r TimeRange) Bytes() []byte {
	b := make([]byte, TimeRangeSize)
	r.Put(b)

	return b
}
