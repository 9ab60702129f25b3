package types

// DateRangeSize is the wire size of a DateRange.
const DateRangeSize = 2 * TimePointSize

// DateRange spans the time points From up to To. The codec does not
// require From <= To.
type DateRange struct {
	From TimePoint
	To   TimePoint
}

// DateRangeFromBytes reads a DateRange from the first 16 bytes of b.
func DateRangeFromBytes(b []byte) DateRange {
	return DateRange{
		From: TimePointFromBytes(b),
		To:   TimePointFromBytes(b[TimePointSize:]),
	}
}

// Put writes the DateRange to the first 16 bytes of b.
func (r DateRange) Put(b []byte) {
	r.From.Put(b)
	r.To.Put(b[TimePointSize:])
}

// Bytes returns the wire form of the DateRange.
func (r DateRange) Bytes() []byte {
	b := make([]byte, DateRangeSize)
	r.Put(b)

	return b
}
