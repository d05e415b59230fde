package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

////
// De/Encoding functions
////

// parsePaddedString reads a null-terminated, 4-byte-aligned string from the
// given slice and returns the string and the number of bytes consumed,
// padding included.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, fmt.Errorf("parsePaddedString: %w", io.ErrUnexpectedEOF)
	}

	n := pos + 1 + padBytesNeeded(pos+1)
	if n > len(data) {
		return "", 0, fmt.Errorf("parsePaddedString: missing padding: %w", io.ErrUnexpectedEOF)
	}

	return string(data[:pos]), n, nil
}

// writePaddedString writes str to b with a null terminator and zero padding
// up to the next 4-byte boundary. Returns the number of bytes written.
// The caller has checked that b is large enough.
func writePaddedString(str string, b []byte) int {
	n := copy(b, str)
	for i := padBytesNeeded(n+1) + 1; i > 0; i-- {
		b[n] = 0
		n++
	}
	return n
}

// parseBlob reads a size-prefixed OSC blob and returns its payload and the
// number of bytes consumed, padding included.
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: %w", io.ErrUnexpectedEOF)
	}

	blobLen := int(binary.BigEndian.Uint32(data[:bit32Size]))
	n := bit32Size + blobLen
	total := n + padBytesNeeded(n)
	if blobLen < 0 || total > len(data) {
		return nil, 0, fmt.Errorf("parseBlob: invalid blob length %d", blobLen)
	}

	return data[bit32Size:n], total, nil
}

// writeBlob writes data as a size-prefixed OSC blob into b, zero padding it
// to 4-byte alignment. Returns the number of bytes written.
func writeBlob(data []byte, b []byte) int {
	binary.BigEndian.PutUint32(b[:bit32Size], uint32(len(data)))
	n := bit32Size + copy(b[bit32Size:], data)
	for i := padBytesNeeded(n); i > 0; i-- {
		b[n] = 0
		n++
	}
	return n
}

// padBytesNeeded determines how many bytes are needed to fill up to the next
// 4 byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

// paddedLength returns elementLen rounded up to the next 4 byte length.
func paddedLength(elementLen int) int {
	return elementLen + padBytesNeeded(elementLen)
}
