package osc

import (
	"math"
	"testing"
)

func TestArgument32_Int32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, 128, -128, 0x01020304, 1 << 30, math.MaxInt32, math.MinInt32} {
		var a Argument32
		a.SetInt32(v)
		if got := a.Int32(); got != v {
			t.Errorf("Int32() = %d, want %d", got, v)
		}

		// Reassembling the value from the byte view must give the same
		// result: the byte view and the typed view alias the same slot.
		w := int32(uint32(a.Byte(0))<<24 | uint32(a.Byte(1))<<16 | uint32(a.Byte(2))<<8 | uint32(a.Byte(3)))
		if w != v {
			t.Errorf("byte view of %d reassembles to %d", v, w)
		}
	}
}

func TestArgument32_ByteZeroIsMostSignificant(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 0x7f000000, -0x80000000, 0x12345678} {
		var a Argument32
		a.SetInt32(v)
		if got, want := a.Byte(0), byte(uint32(v)>>24); got != want {
			t.Errorf("Byte(0) of %#x = %#x, want %#x", v, got, want)
		}
		if got, want := a.Byte(3), byte(uint32(v)); got != want {
			t.Errorf("Byte(3) of %#x = %#x, want %#x", v, got, want)
		}
	}
}

func TestArgument32_Float32BitExact(t *testing.T) {
	for _, tt := range []struct {
		name string
		bits uint32
	}{
		{"zero", 0x00000000},
		{"neg_zero", 0x80000000},
		{"one_and_a_half", 0x3fc00000},
		{"pos_inf", 0x7f800000},
		{"neg_inf", 0xff800000},
		{"nan", 0x7fc00001},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var a Argument32
			a.SetByte(0, byte(tt.bits>>24))
			a.SetByte(1, byte(tt.bits>>16))
			a.SetByte(2, byte(tt.bits>>8))
			a.SetByte(3, byte(tt.bits))

			got := a.Float32()
			if math.Float32bits(got) != tt.bits {
				t.Errorf("Float32() bits = %#08x, want %#08x", math.Float32bits(got), tt.bits)
			}

			var b Argument32
			b.SetFloat32(got)
			if b != a {
				t.Errorf("SetFloat32 round trip: %v, want %v", b, a)
			}
		})
	}
}

func TestArgument32_RGBAWireOrder(t *testing.T) {
	var a Argument32
	a.SetRGBA(RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44})

	if a != (Argument32{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("SetRGBA wire bytes = %v, want [11 22 33 44]", a)
	}
	if got := a.RGBA(); got != (RGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("RGBA() = %+v", got)
	}
	// Red is the most significant byte of the integer view.
	if got := a.Int32(); got != 0x11223344 {
		t.Errorf("Int32() of colour = %#x, want 0x11223344", got)
	}
}

func TestArgument32_MIDIWireOrder(t *testing.T) {
	var a Argument32
	a.SetMIDI(MIDI{PortID: 0x01, Status: 0x90, Data1: 0x40, Data2: 0x7f})

	if a != (Argument32{0x01, 0x90, 0x40, 0x7f}) {
		t.Errorf("SetMIDI wire bytes = %v, want [01 90 40 7f]", a)
	}
	if got := a.MIDI(); got != (MIDI{0x01, 0x90, 0x40, 0x7f}) {
		t.Errorf("MIDI() = %+v", got)
	}
}

func TestArgument64_IntRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x0102030405060708, math.MaxUint64, 1 << 63} {
		var a Argument64
		a.SetUint64(v)
		if got := a.Uint64(); got != v {
			t.Errorf("Uint64() = %d, want %d", got, v)
		}
		if got, want := a.Byte(0), byte(v>>56); got != want {
			t.Errorf("Byte(0) of %#x = %#x, want %#x", v, got, want)
		}
		if got, want := a.Byte(7), byte(v); got != want {
			t.Errorf("Byte(7) of %#x = %#x, want %#x", v, got, want)
		}
		if got := a.Int64(); got != int64(v) {
			t.Errorf("Int64() = %d, want %d", got, int64(v))
		}
	}
}

func TestArgument64_Float64BitExact(t *testing.T) {
	for _, tt := range []struct {
		name string
		bits uint64
	}{
		{"zero", 0x0000000000000000},
		{"neg_zero", 0x8000000000000000},
		{"neg_two_and_a_half", 0xc004000000000000},
		{"pos_inf", 0x7ff0000000000000},
		{"neg_inf", 0xfff0000000000000},
		{"nan", 0x7ff8000000000001},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var a Argument64
			for i := 0; i < bit64Size; i++ {
				a.SetByte(i, byte(tt.bits>>(56-8*i)))
			}

			got := a.Float64()
			if math.Float64bits(got) != tt.bits {
				t.Errorf("Float64() bits = %#016x, want %#016x", math.Float64bits(got), tt.bits)
			}

			var b Argument64
			b.SetFloat64(got)
			if b != a {
				t.Errorf("SetFloat64 round trip: %v, want %v", b, a)
			}
		})
	}
}

func TestArgument64_TimetagLayout(t *testing.T) {
	var a Argument64
	a.SetTimetag(NewTimetagFromParts(0x83aa7e80, 0x80000000))

	// Seconds occupy the more significant half, fraction the less
	// significant half, each big-endian.
	want := Argument64{0x83, 0xaa, 0x7e, 0x80, 0x80, 0x00, 0x00, 0x00}
	if a != want {
		t.Errorf("SetTimetag wire bytes = %v, want %v", a, want)
	}

	tt := a.Timetag()
	if got := tt.SecondsSinceEpoch(); got != 0x83aa7e80 {
		t.Errorf("SecondsSinceEpoch() = %#x, want 0x83aa7e80", got)
	}
	if got := tt.FractionalSecond(); got != 0x80000000 {
		t.Errorf("FractionalSecond() = %#x, want 0x80000000", got)
	}
}
