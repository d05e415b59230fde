// Package slip implements RFC 1055 SLIP framing for carrying OSC packets
// over serial ports and other byte streams. UDP preserves packet boundaries
// on its own; a byte stream does not, so each packet is wrapped in a SLIP
// frame and recovered on the far side.
package slip

import (
	"bufio"
	"fmt"
	"io"

	"github.com/HfMT-ZM4/OSC99/osc"
)

const (
	endByte = 0xc0
	escByte = 0xdb
	escEnd  = 0xdc
	escEsc  = 0xdd
)

// Frame returns the SLIP framing of data. The frame opens with an END byte
// to flush line noise, escapes END and ESC within the payload, and closes
// with END.
func Frame(data []byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, endByte)
	for _, c := range data {
		switch c {
		case endByte:
			out = append(out, escByte, escEnd)
		case escByte:
			out = append(out, escByte, escEsc)
		default:
			out = append(out, c)
		}
	}
	return append(out, endByte)
}

// Encoder writes SLIP-framed OSC packets to a byte stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing frames to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode marshals the packet and writes it as one SLIP frame.
func (e *Encoder) Encode(p osc.Packet) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	return e.WriteFrame(data)
}

// WriteFrame writes raw packet contents as one SLIP frame.
func (e *Encoder) WriteFrame(data []byte) error {
	_, err := e.w.Write(Frame(data))
	return err
}

// Decoder reads SLIP frames from a byte stream and parses them as OSC
// packets. A Decoder is not safe for concurrent use.
type Decoder struct {
	r   io.ByteReader
	buf []byte
}

// NewDecoder returns a Decoder reading from r. If r is not an io.ByteReader
// it is wrapped in a bufio.Reader.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// Next reads the next non-empty frame and returns its unescaped contents.
// The returned slice is valid until the next call. io.EOF is returned at a
// clean end of stream, io.ErrUnexpectedEOF if the stream stops mid-frame.
func (d *Decoder) Next() ([]byte, error) {
	d.buf = d.buf[:0]
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(d.buf) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch c {
		case endByte:
			// Back-to-back END bytes delimit empty frames; skip them.
			if len(d.buf) == 0 {
				continue
			}
			return d.buf, nil

		case escByte:
			c, err = d.r.ReadByte()
			if err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return nil, err
			}
			switch c {
			case escEnd:
				c = endByte
			case escEsc:
				c = escByte
			default:
				return nil, fmt.Errorf("slip: invalid escape sequence %#02x", c)
			}
		}

		if len(d.buf) >= osc.MaxPacketSize {
			return nil, fmt.Errorf("slip: frame exceeds %d bytes", osc.MaxPacketSize)
		}
		d.buf = append(d.buf, c)
	}
}

// Decode reads the next frame and parses it as an OSC message or bundle.
func (d *Decoder) Decode() (osc.Packet, error) {
	frame, err := d.Next()
	if err != nil {
		return nil, err
	}
	return osc.ParsePacket(frame)
}
