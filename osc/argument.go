package osc

import (
	"encoding/binary"
	"math"
)

// RGBA is a 32-bit RGBA colour, OSC type tag 'r'. On the wire the red
// channel is the most significant byte and alpha the least significant.
type RGBA struct {
	R, G, B, A uint8
}

// MIDI is a 4-byte MIDI message, OSC type tag 'm'. On the wire the port ID
// is the most significant byte and data2 the least significant.
type MIDI struct {
	PortID byte
	Status byte
	Data1  byte
	Data2  byte
}

// Argument32 is a fixed 4-byte slot holding one encoded 32-bit OSC argument.
// The slot is stored in wire order: index 0 is the value's most significant
// byte on every host architecture, so a slot can be copied to or from a
// packet buffer byte for byte.
//
// The typed accessors reinterpret the same four bytes. No accessor validates
// anything: which view is meaningful is determined by the message's type tag
// string, and picking the right one is the caller's job.
type Argument32 [4]byte

// Int32 reads the slot as a big-endian two's-complement int32.
func (a *Argument32) Int32() int32 {
	return int32(binary.BigEndian.Uint32(a[:]))
}

// SetInt32 stores v into the slot in wire order.
func (a *Argument32) SetInt32(v int32) {
	binary.BigEndian.PutUint32(a[:], uint32(v))
}

// Float32 reads the slot as an IEEE-754 binary32 value. The bit pattern
// passes through exactly; NaN and Inf payloads are preserved.
func (a *Argument32) Float32() float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(a[:]))
}

// SetFloat32 stores the exact bit pattern of v into the slot in wire order.
func (a *Argument32) SetFloat32(v float32) {
	binary.BigEndian.PutUint32(a[:], math.Float32bits(v))
}

// RGBA reads the slot as an RGBA colour.
func (a *Argument32) RGBA() RGBA {
	return RGBA{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// SetRGBA stores c into the slot, red first.
func (a *Argument32) SetRGBA(c RGBA) {
	a[0], a[1], a[2], a[3] = c.R, c.G, c.B, c.A
}

// MIDI reads the slot as a MIDI message.
func (a *Argument32) MIDI() MIDI {
	return MIDI{PortID: a[0], Status: a[1], Data1: a[2], Data2: a[3]}
}

// SetMIDI stores m into the slot, port ID first.
func (a *Argument32) SetMIDI(m MIDI) {
	a[0], a[1], a[2], a[3] = m.PortID, m.Status, m.Data1, m.Data2
}

// Byte returns the byte at index i, 0..3. Index 0 is the wire-order most
// significant byte regardless of host byte order.
func (a *Argument32) Byte(i int) byte { return a[i] }

// SetByte sets the byte at index i, 0..3, in wire order.
func (a *Argument32) SetByte(i int, b byte) { a[i] = b }

// Argument64 is the 8-byte counterpart of Argument32, holding one encoded
// 64-bit OSC argument in wire order. Same contract: index 0 is the most
// significant byte on every host, and the typed views reinterpret the same
// storage without validation.
type Argument64 [8]byte

// Uint64 reads the slot as a big-endian uint64.
func (a *Argument64) Uint64() uint64 {
	return binary.BigEndian.Uint64(a[:])
}

// SetUint64 stores v into the slot in wire order.
func (a *Argument64) SetUint64(v uint64) {
	binary.BigEndian.PutUint64(a[:], v)
}

// Int64 reads the slot as a big-endian two's-complement int64.
func (a *Argument64) Int64() int64 {
	return int64(binary.BigEndian.Uint64(a[:]))
}

// SetInt64 stores v into the slot in wire order.
func (a *Argument64) SetInt64(v int64) {
	binary.BigEndian.PutUint64(a[:], uint64(v))
}

// Float64 reads the slot as an IEEE-754 binary64 value, bit-exact.
func (a *Argument64) Float64() float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(a[:]))
}

// SetFloat64 stores the exact bit pattern of v into the slot in wire order.
func (a *Argument64) SetFloat64(v float64) {
	binary.BigEndian.PutUint64(a[:], math.Float64bits(v))
}

// Timetag reads the slot as an OSC time tag: seconds in the more significant
// half, fraction in the less significant half, each big-endian.
func (a *Argument64) Timetag() Timetag {
	return Timetag(binary.BigEndian.Uint64(a[:]))
}

// SetTimetag stores t into the slot in wire order.
func (a *Argument64) SetTimetag(t Timetag) {
	binary.BigEndian.PutUint64(a[:], uint64(t))
}

// Byte returns the byte at index i, 0..7. Index 0 is the wire-order most
// significant byte regardless of host byte order.
func (a *Argument64) Byte(i int) byte { return a[i] }

// SetByte sets the byte at index i, 0..7, in wire order.
func (a *Argument64) SetByte(i int, b byte) { a[i] = b }
