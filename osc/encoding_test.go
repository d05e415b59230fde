package osc

import (
	"bytes"
	"testing"
)

func TestParsePaddedString(t *testing.T) {
	for _, tt := range []struct {
		buf     []byte // buffer
		want    int    // bytes consumed
		want1   string // resulting string
		wantErr bool
	}{
		{[]byte{'t', 'e', 's', 't', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, 12, "teststring", false},
		{[]byte{'t', 'e', 's', 't', 'e', 'r', 's', 0}, 8, "testers", false},
		{[]byte{'t', 'e', 's', 't', 's', 0, 0, 0}, 8, "tests", false},
		{[]byte{'t', 'e', 's', 0}, 4, "tes", false},
		{[]byte{'t', 'e', 's', 't'}, 0, "", true},     // no null terminator
		{[]byte{'t', 'e', 's', 't', 's', 0}, 0, "", true}, // padding missing
	} {
		got, got1, err := parsePaddedString(tt.buf)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: parsePaddedString() error = %v, wantErr %v", tt.want1, err, tt.wantErr)
			continue
		}
		if got1 != tt.want {
			t.Errorf("%s: bytes consumed don't match; got = %d, want = %d", tt.want1, got1, tt.want)
		}
		if got != tt.want1 {
			t.Errorf("%s: strings don't match; got = %q, want = %q", tt.want1, got, tt.want1)
		}
	}
}

func TestWritePaddedString(t *testing.T) {
	// Fill the buffer first: padding must be written as zeros, not assumed.
	buf := bytes.Repeat([]byte{0xff}, 16)
	testString := "testString"
	want := paddedLength(len(testString) + 1)

	if n := writePaddedString(testString, buf); n != want {
		t.Errorf("writePaddedString() = %d, want %d", n, want)
	}
	if !bytes.Equal(buf[:12], []byte("testString\x00\x00")) {
		t.Errorf("writePaddedString() buffer = %v", buf[:12])
	}
}

func TestBlobRoundTrip(t *testing.T) {
	for _, payload := range [][]byte{
		{},
		{1},
		{1, 2, 3},
		{1, 2, 3, 4},
		bytes.Repeat([]byte{0xab}, 33),
	} {
		buf := bytes.Repeat([]byte{0xff}, 64)
		n := writeBlob(payload, buf)
		if n%4 != 0 {
			t.Errorf("writeBlob() wrote %d bytes, not 4-byte aligned", n)
		}

		got, consumed, err := parseBlob(buf[:n])
		if err != nil {
			t.Fatalf("parseBlob() error = %v", err)
		}
		if consumed != n {
			t.Errorf("parseBlob() consumed %d bytes, want %d", consumed, n)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("parseBlob() = %v, want %v", got, payload)
		}
	}
}

func TestParseBlobInvalid(t *testing.T) {
	for _, tt := range []struct {
		name string
		buf  []byte
	}{
		{"short_header", []byte{0, 0}},
		{"length_overrun", []byte{0, 0, 0, 9, 1, 2, 3, 4}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseBlob(tt.buf); err == nil {
				t.Error("parseBlob() accepted invalid input")
			}
		})
	}
}

func TestPadBytesNeeded(t *testing.T) {
	for _, tt := range []struct {
		in, want int
	}{
		{0, 0}, {1, 3}, {2, 2}, {3, 1}, {4, 0}, {10, 2}, {32, 0}, {63, 1},
	} {
		if n := padBytesNeeded(tt.in); n != tt.want {
			t.Errorf("padBytesNeeded(%d) = %d, want %d", tt.in, n, tt.want)
		}
	}
}
