package osc

// Shared wire fixtures used by the message, bundle and packet tests. Every
// case round-trips: obj marshals to exactly raw, and raw unmarshals to
// exactly obj.

type testCase struct {
	name    string
	obj     Packet
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		name: "no_args",
		obj:  NewMessage("/a/b"),
		raw:  []byte("/a/b\x00\x00\x00\x00,\x00\x00\x00"),
	},
	{
		name: "int_bool_string",
		obj:  NewMessage("/osc/address", int32(111), true, "hello"),
		raw: []byte("/osc/address\x00\x00\x00\x00" +
			",iTs\x00\x00\x00\x00" +
			"\x00\x00\x00\x6f" +
			"hello\x00\x00\x00"),
	},
	{
		name: "floats",
		obj:  NewMessage("/f", float32(1.5), float64(-2.5)),
		raw: []byte("/f\x00\x00" +
			",fd\x00" +
			"\x3f\xc0\x00\x00" +
			"\xc0\x04\x00\x00\x00\x00\x00\x00"),
	},
	{
		name: "int64_timetag",
		obj:  NewMessage("/t", int64(-1), Timetag(0x0102030405060708)),
		raw: []byte("/t\x00\x00" +
			",ht\x00" +
			"\xff\xff\xff\xff\xff\xff\xff\xff" +
			"\x01\x02\x03\x04\x05\x06\x07\x08"),
	},
	{
		name: "color_midi",
		obj: NewMessage("/color",
			RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44},
			MIDI{PortID: 0x01, Status: 0x90, Data1: 0x40, Data2: 0x7f}),
		raw: []byte("/color\x00\x00" +
			",rm\x00" +
			"\x11\x22\x33\x44" +
			"\x01\x90\x40\x7f"),
	},
	{
		name: "nil_and_false",
		obj:  NewMessage("/n", nil, false),
		raw:  []byte("/n\x00\x00,NF\x00"),
	},
	{
		name: "blob",
		obj:  NewMessage("/b", []byte{1, 2, 3}),
		raw: []byte("/b\x00\x00" +
			",b\x00\x00" +
			"\x00\x00\x00\x03\x01\x02\x03\x00"),
	},
}

var bundleTestCases = []testCase{
	{
		name: "immediate_one_message",
		obj: &Bundle{
			Timetag:  TimetagImmediate,
			Elements: []Packet{NewMessage("/a/b")},
		},
		raw: []byte("#bundle\x00" +
			"\x00\x00\x00\x00\x00\x00\x00\x00" +
			"\x00\x00\x00\x0c" +
			"/a/b\x00\x00\x00\x00,\x00\x00\x00"),
	},
	{
		name: "empty",
		obj:  &Bundle{Timetag: NewTimetagFromParts(0x83aa7e80, 0)},
		raw: []byte("#bundle\x00" +
			"\x83\xaa\x7e\x80\x00\x00\x00\x00"),
	},
	{
		name: "nested",
		obj: &Bundle{
			Timetag: NewTimetagFromParts(1, 0),
			Elements: []Packet{
				&Bundle{
					Timetag:  TimetagImmediate,
					Elements: []Packet{NewMessage("/x", int32(5))},
				},
			},
		},
		raw: []byte("#bundle\x00" +
			"\x00\x00\x00\x01\x00\x00\x00\x00" +
			"\x00\x00\x00\x20" +
			"#bundle\x00" +
			"\x00\x00\x00\x00\x00\x00\x00\x00" +
			"\x00\x00\x00\x0c" +
			"/x\x00\x00,i\x00\x00\x00\x00\x00\x05"),
	},
}

// invalidPacketCases are contents ParsePacket must reject.
var invalidPacketCases = []struct {
	name string
	raw  []byte
}{
	{"empty", []byte{}},
	{"garbage", []byte("bogus\x00\x00\x00")},
	{"bundle_tag_truncated", []byte("#bundl\x00\x00")},
	{"bundle_tag_unterminated", []byte("#bundleX\x00\x00\x00\x00\x00\x00\x00\x00")},
	{"message_unterminated_address", []byte("/abc")},
	{"message_missing_typetags", []byte("/a/b\x00\x00\x00\x00")},
	{"message_unaligned", []byte("/a\x00\x00,\x00\x00\x00\x00\x00")},
	{"bundle_missing_timetag", []byte("#bundle\x00\x00\x00\x00\x00")}, // 12 bytes, no room for the time tag
	{"bundle_element_size_overrun", []byte("#bundle\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x40" +
		"/a/b\x00\x00\x00\x00,\x00\x00\x00")},
}
