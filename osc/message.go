package osc

import (
	"fmt"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []interface{}
}

// Verify that Message implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// NewMessageFromData returns a new Message parsed from raw packet contents.
func NewMessageFromData(data []byte) (*Message, error) {
	m := &Message{}
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}

// Append appends the given arguments to the arguments list. Arguments of an
// unsupported type are rejected and nothing is appended.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		if ToTypeTag(a) == TypeInvalid {
			return fmt.Errorf("Append: unsupported type: %T", a)
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// CountArguments returns the number of arguments.
func (m *Message) CountArguments() int {
	return len(m.Arguments)
}

// Match returns true, if the OSC address pattern of the OSC Message matches the given
// address. The match is case sensitive!
func (m *Message) Match(addr string) bool {
	regexp, err := getRegEx(m.Address)
	if err != nil {
		return false
	}
	return regexp.MatchString(addr)
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() (string, error) {
	if m == nil {
		return "", fmt.Errorf("TypeTags: message is nil")
	}

	var tags strings.Builder
	tags.WriteByte(',')
	for _, arg := range m.Arguments {
		s := ToTypeTag(arg)
		if s == TypeInvalid {
			return "", fmt.Errorf("TypeTags: unsupported type: %T", arg)
		}
		tags.WriteByte(byte(s))
	}

	return tags.String(), nil
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()

	var b strings.Builder
	b.WriteString(m.Address)
	if len(tags) <= 1 {
		return b.String()
	}

	b.WriteByte(' ')
	b.WriteString(tags)

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case bool, int32, int64, float32, float64, string:
			fmt.Fprintf(&b, " %v", arg)

		case nil:
			b.WriteString(" Nil")

		case []byte:
			b.WriteString(" blob")

		case Timetag:
			fmt.Fprintf(&b, " %d", uint64(arg))

		case RGBA:
			fmt.Fprintf(&b, " #%02x%02x%02x%02x", arg.R, arg.G, arg.B, arg.A)

		case MIDI:
			fmt.Fprintf(&b, " midi(%d,%#02x,%#02x,%#02x)", arg.PortID, arg.Status, arg.Data1, arg.Data2)
		}
	}

	return b.String()
}

// MarshalBinary serializes the OSC message to the wire format:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	buf := bPool.Get().(*[]byte)
	defer bPool.Put(buf)

	n, err := m.marshalInto(*buf)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, *buf)
	return out, nil
}

func (m *Message) marshalInto(b []byte) (int, error) {
	need := paddedLength(len(m.Address)+1) + paddedLength(len(m.Arguments)+2)
	if need > len(b) {
		return 0, fmt.Errorf("marshalInto: packet too large")
	}

	n := writePaddedString(m.Address, b)

	nt, err := writeTypeTags(m.Arguments, b[n:])
	if err != nil {
		return 0, fmt.Errorf("marshalInto: %w", err)
	}
	n += nt

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		default:
			return 0, fmt.Errorf("marshalInto: unsupported type: %T", t)

		case bool, nil:
			// Encoded by the type tag alone, no payload.

		case int32:
			var a Argument32
			a.SetInt32(t)
			n, err = appendSlot(b, n, a[:])

		case float32:
			var a Argument32
			a.SetFloat32(t)
			n, err = appendSlot(b, n, a[:])

		case RGBA:
			var a Argument32
			a.SetRGBA(t)
			n, err = appendSlot(b, n, a[:])

		case MIDI:
			var a Argument32
			a.SetMIDI(t)
			n, err = appendSlot(b, n, a[:])

		case int64:
			var a Argument64
			a.SetInt64(t)
			n, err = appendSlot(b, n, a[:])

		case float64:
			var a Argument64
			a.SetFloat64(t)
			n, err = appendSlot(b, n, a[:])

		case Timetag:
			var a Argument64
			a.SetTimetag(t)
			n, err = appendSlot(b, n, a[:])

		case string:
			if n+paddedLength(len(t)+1) > len(b) {
				return 0, fmt.Errorf("marshalInto: packet too large")
			}
			n += writePaddedString(t, b[n:])

		case []byte:
			if n+bit32Size+paddedLength(len(t)) > len(b) {
				return 0, fmt.Errorf("marshalInto: packet too large")
			}
			n += writeBlob(t, b[n:])
		}
		if err != nil {
			return 0, err
		}
	}

	return n, nil
}

// appendSlot copies one wire-ordered argument slot into b at offset n.
func appendSlot(b []byte, n int, slot []byte) (int, error) {
	if n+len(slot) > len(b) {
		return 0, fmt.Errorf("marshalInto: packet too large")
	}
	return n + copy(b[n:], slot), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(d []byte) error {
	data := make([]byte, len(d))
	copy(data, d)

	return m.unmarshalBinary(data)
}

// unmarshalBinary is the actual implementation. It does not copy, so parsed
// strings and blobs reference the given slice.
func (m *Message) unmarshalBinary(data []byte) error {
	if !IsMessage(data) {
		return fmt.Errorf("unmarshalBinary: data is not a valid OSC message")
	}

	if (len(data) % bit32Size) != 0 {
		return fmt.Errorf("unmarshalBinary: data is not 4-byte aligned")
	}

	addr, n, err := parsePaddedString(data)
	if err != nil {
		return fmt.Errorf("unmarshalBinary: %w", err)
	}
	m.Address = addr

	if err := m.readArguments(data[n:]); err != nil {
		return fmt.Errorf("unmarshalBinary: %w", err)
	}

	return nil
}

// readArguments parses the type tag string and the arguments that follow it.
func (m *Message) readArguments(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("readArguments: missing type tag string")
	}

	typetags, n, err := parsePaddedString(data)
	if err != nil {
		return fmt.Errorf("readArguments: %w", err)
	}
	data = data[n:]

	if len(typetags) == 0 {
		return nil
	}

	if typetags[0] != ',' {
		return fmt.Errorf("readArguments: invalid type tag string: %q", typetags)
	}

	if len(typetags) == 1 {
		return nil
	}

	m.Arguments = make([]interface{}, 0, len(typetags)-1)

	for _, c := range typetags[1:] {
		switch TypeTag(c) {
		default:
			return fmt.Errorf("readArguments: unsupported type tag: %c", c)

		case TypeTrue:
			m.Arguments = append(m.Arguments, true)

		case TypeFalse:
			m.Arguments = append(m.Arguments, false)

		case TypeNil:
			m.Arguments = append(m.Arguments, nil)

		case TypeInt32:
			var a Argument32
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.Int32())

		case TypeFloat32:
			var a Argument32
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.Float32())

		case TypeRGBA:
			var a Argument32
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.RGBA())

		case TypeMIDI:
			var a Argument32
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.MIDI())

		case TypeInt64:
			var a Argument64
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.Int64())

		case TypeFloat64:
			var a Argument64
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.Float64())

		case TypeTimetag:
			var a Argument64
			if data, err = readSlot(a[:], data); err != nil {
				return err
			}
			m.Arguments = append(m.Arguments, a.Timetag())

		case TypeString:
			s, n, err := parsePaddedString(data)
			if err != nil {
				return fmt.Errorf("readArguments: %w", err)
			}
			data = data[n:]
			m.Arguments = append(m.Arguments, s)

		case TypeBlob:
			buf, n, err := parseBlob(data)
			if err != nil {
				return fmt.Errorf("readArguments: %w", err)
			}
			data = data[n:]
			m.Arguments = append(m.Arguments, buf)
		}
	}

	return nil
}

// readSlot fills one argument slot from data in wire order and returns the
// remainder.
func readSlot(slot []byte, data []byte) ([]byte, error) {
	if len(data) < len(slot) {
		return nil, fmt.Errorf("readArguments: not enough bytes to read")
	}
	copy(slot, data)
	return data[len(slot):], nil
}
