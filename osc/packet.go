package osc

import (
	"encoding"
	"fmt"
)

const (
	// MaxPacketSize is the maximum packet size permitted by the transport
	// layer. It bounds every marshal buffer and the server's read buffer.
	// 1472 fits a single ethernet UDP datagram if memory is tight.
	MaxPacketSize = 1 << 15

	bit32Size = 4
	bit64Size = 8

	// bundleMarker is the literal that opens every OSC bundle, including
	// the required terminating null.
	bundleMarker = "#bundle\x00"
)

// Packet is the interface for Message and Bundle.
type Packet interface {
	encoding.BinaryMarshaler
}

// IsMessage reports whether the packet contents begin an OSC message, i.e.
// the first byte is the address pattern root '/'. Empty contents are not a
// message.
func IsMessage(contents []byte) bool {
	return len(contents) > 0 && contents[0] == '/'
}

// IsBundle reports whether the packet contents begin an OSC bundle, i.e.
// they start with the exact 8 bytes "#bundle" plus a null terminator.
// Truncated contents or any prefix mismatch is not a bundle.
func IsBundle(contents []byte) bool {
	return len(contents) >= len(bundleMarker) && string(contents[:len(bundleMarker)]) == bundleMarker
}

// ParsePacket parses raw packet contents into a Message or a Bundle.
// Contents that are neither are rejected with an error. The data is copied,
// so the caller may reuse its buffer.
func ParsePacket(data []byte) (Packet, error) {
	d := make([]byte, len(data))
	copy(d, data)
	return parsePacket(d)
}

// parsePacket assumes the bytes have already been copied, so nested bundle
// elements can be parsed without copying again.
func parsePacket(data []byte) (Packet, error) {
	if len(data) > MaxPacketSize {
		return nil, fmt.Errorf("parsePacket: packet exceeds maximum transport size: %d", len(data))
	}

	switch {
	case IsMessage(data):
		m := &Message{}
		if err := m.unmarshalBinary(data); err != nil {
			return nil, err
		}
		return m, nil

	case IsBundle(data):
		b := &Bundle{}
		if err := b.unmarshalBinary(data); err != nil {
			return nil, err
		}
		return b, nil

	default:
		return nil, fmt.Errorf("parsePacket: contents are neither an OSC message nor a bundle")
	}
}
