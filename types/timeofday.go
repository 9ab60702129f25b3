package types

import "github.com/eput-tools/eput.go/codec"

// TimeOfDaySize is the wire size of a TimeOfDay.
const TimeOfDaySize = 3 * codec.Uint8Size

// TimeOfDay is a wall clock time split into hour, minute and second
// fields. The fields are not range validated anywhere in the codec:
// values such as {24, 60, 60} are legal wire values that devices use
// for sentinel and overflow semantics, so the contract is round-trip
// fidelity, not calendar validity.
type TimeOfDay struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
}

// TimeOfDayFromBytes reads a TimeOfDay from the first 3 bytes of b.
func TimeOfDayFromBytes(b []byte) TimeOfDay {
	return TimeOfDay{
		Hours:   codec.Uint8(b),
		Minutes: codec.Uint8(b[1:]),
		Seconds: codec.Uint8(b[2:]),
	}
}

// Put writes the TimeOfDay to the first 3 bytes of b, verbatim and
// unclamped.
func (t TimeOfDay) Put(b []byte) {
	codec.PutUint8(b, t.Hours)
	codec.PutUint8(b[1:], t.Minutes)
	codec.PutUint8(b[2:], t.Seconds)
}

// Bytes returns the wire form of the TimeOfDay.
func (t TimeOfDay) Bytes() []byte {
	b := make([]byte, TimeOfDaySize)
	t.Put(b)

	return b
}
