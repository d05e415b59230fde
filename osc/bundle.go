package osc

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns an OSC Bundle tagged with the current time.
func NewBundle() *Bundle {
	return &Bundle{Timetag: NewTimetag()}
}

// NewBundleWithTime returns an OSC Bundle scheduled for the given time.
func NewBundleWithTime(t time.Time) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(t)}
}

// NewImmediateBundle returns an OSC Bundle carrying the reserved zero time
// tag, to be executed immediately on receipt.
func NewImmediateBundle() *Bundle {
	return &Bundle{Timetag: TimetagImmediate}
}

// NewBundleFromData returns a new OSC bundle parsed from raw packet contents.
func NewBundleFromData(data []byte) (*Bundle, error) {
	b := &Bundle{}
	if err := b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch t := pck.(type) {
	default:
		return fmt.Errorf("unsupported OSC packet type: only Bundle and Message are supported")

	case *Bundle, *Message:
		b.Elements = append(b.Elements, t)
	}

	return nil
}

// MarshalBinary serializes the OSC bundle to the wire format:
// 1. Bundle string: '#bundle' plus null terminator
// 2. OSC time tag
// 3. Length of first bundle element
// 4. First bundle element
// 5. Length of n bundle element
// 6. n bundle element
func (b *Bundle) MarshalBinary() ([]byte, error) {
	buf := bPool.Get().(*[]byte)
	defer bPool.Put(buf)

	n, err := b.marshalInto(*buf)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, *buf)
	return out, nil
}

func (b *Bundle) marshalInto(bb []byte) (int, error) {
	if len(bundleMarker)+bit64Size > len(bb) {
		return 0, fmt.Errorf("marshalInto: packet too large")
	}

	n := copy(bb, bundleMarker)

	var tt Argument64
	tt.SetTimetag(b.Timetag)
	n += copy(bb[n:], tt[:])

	for _, el := range b.Elements {
		eb, err := el.MarshalBinary()
		if err != nil {
			return 0, err
		}

		if n+bit32Size+len(eb) > len(bb) {
			return 0, fmt.Errorf("marshalInto: packet too large")
		}

		binary.BigEndian.PutUint32(bb[n:], uint32(len(eb)))
		n += bit32Size
		n += copy(bb[n:], eb)
	}

	return n, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(d []byte) error {
	data := make([]byte, len(d))
	copy(data, d)

	return b.unmarshalBinary(data)
}

// unmarshalBinary is the actual implementation, it doesn't copy, so a whole
// nested bundle is parsed out of a single copy.
func (b *Bundle) unmarshalBinary(data []byte) error {
	if (len(data) % bit32Size) != 0 {
		return fmt.Errorf("unmarshalBinary: data is not 4-byte aligned")
	}

	if !IsBundle(data) {
		return fmt.Errorf("unmarshalBinary: invalid bundle start tag")
	}

	if len(data) < len(bundleMarker)+bit64Size {
		return fmt.Errorf("unmarshalBinary: bundle is too short")
	}
	data = data[len(bundleMarker):]

	var tt Argument64
	copy(tt[:], data)
	b.Timetag = tt.Timetag()
	data = data[bit64Size:]

	// Read size-prefixed elements until the end of the buffer. Each element
	// is classified again, so bundles nest to any depth.
	for len(data) > 0 {
		if len(data) < bit32Size {
			return fmt.Errorf("unmarshalBinary: truncated bundle element size")
		}
		length := int(binary.BigEndian.Uint32(data[:bit32Size]))
		data = data[bit32Size:]
		if length < 0 || length > len(data) {
			return fmt.Errorf("unmarshalBinary: invalid bundle element length: %d", length)
		}

		p, err := parsePacket(data[:length])
		if err != nil {
			return err
		}
		data = data[length:]
		b.Elements = append(b.Elements, p)
	}

	return nil
}
