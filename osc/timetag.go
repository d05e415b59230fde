package osc

import (
	"encoding/binary"
	"time"
)

const secondsFrom1900To1970 = 2208988800

// TimetagImmediate is the reserved zero time tag. A bundle carrying it must
// be executed immediately on receipt. It is the only process-wide constant
// of this package and is never mutated.
const TimetagImmediate Timetag = 0

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since midnight on January 1, 1900, and the
// last 32 bits specify fractional parts of a second to a precision of about
// 200 picoseconds. This is the representation used by Internet NTP timestamps.
type Timetag uint64

// NewTimetag returns a time tag for the current time.
func NewTimetag() Timetag {
	return NewTimetagFromTime(time.Now())
}

// NewTimetagFromTime returns a new OSC time tag from a time.Time.
func NewTimetagFromTime(t time.Time) Timetag {
	secs := uint64(t.Unix() + secondsFrom1900To1970)
	frac := (uint64(t.Nanosecond()) << 32) / uint64(time.Second)
	return Timetag(secs<<32 | frac)
}

// NewTimetagFromParts assembles a time tag from its two 32-bit fields.
// Seconds occupies the more significant half of the tag.
func NewTimetagFromParts(seconds, fraction uint32) Timetag {
	return Timetag(uint64(seconds)<<32 | uint64(fraction))
}

// SecondsSinceEpoch returns the first 32 bits of the time tag: the number of
// whole seconds since midnight on January 1, 1900.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// FractionalSecond returns the last 32 bits of the time tag: the fractional
// part of a second as a binary fraction (1<<32 units per second).
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// Time returns the time the tag refers to.
func (t Timetag) Time() time.Time {
	secs := int64(t>>32) - secondsFrom1900To1970
	nsec := (uint64(uint32(t)) * uint64(time.Second)) >> 32
	return time.Unix(secs, int64(nsec))
}

// SetTime sets the value of the time tag from a time.Time.
func (t *Timetag) SetTime(ts time.Time) {
	*t = NewTimetagFromTime(ts)
}

// MarshalBinary returns the 8 wire-order bytes of the time tag.
func (t Timetag) MarshalBinary() ([]byte, error) {
	b := make([]byte, bit64Size)
	binary.BigEndian.PutUint64(b, uint64(t))
	return b, nil
}

// ExpiresIn returns the duration until the tag's time is reached, or zero if
// the tag is immediate or already in the past.
func (t Timetag) ExpiresIn() time.Duration {
	// Both the zero tag and the OSC 1.0 "immediately" value (1) are due now.
	if t <= 1 {
		return 0
	}

	d := time.Until(t.Time())
	if d <= 0 {
		return 0
	}
	return d
}
