//Package osc implements the Open Sound Control 1.0 protocol
//(http://opensoundcontrol.org/spec-1_0.html): the wire representation of OSC
//arguments, message and bundle encoding, and a UDP client and server.
//
//Open Sound Control (OSC) is an open, transport-independent, message-based
//protocol developed for communication among computers, sound synthesizers,
//and other multimedia devices. Every multi-byte field on the wire is
//big-endian, regardless of the host.
//
//Argument slots
//
//At the bottom of the package sit Argument32 and Argument64, fixed-size slots
//holding one encoded argument in wire order. Byte index 0 of a slot is always
//the most significant byte of the value it holds, on every architecture; the
//typed accessors (Int32, Float32, RGBA, MIDI, Int64, Float64, Timetag)
//reinterpret the same bytes as native values. The message and bundle codecs
//are built on these slots, and transport code can use them directly to move
//argument bytes to and from packet buffers.
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet. A packet's contents are
//either a Message (an address pattern, a type tag string, and zero or more
//arguments) or a Bundle (a time tag followed by size-prefixed elements, each
//itself a message or bundle). IsMessage and IsBundle classify raw contents;
//ParsePacket decodes them.
//
//Supported type tags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' ([]byte)
//	'h' (int64)
//	'd' (float64)
//	't' (Timetag)
//	'r' (RGBA)
//	'm' (MIDI)
//	'T' (true)
//	'F' (false)
//	'N' (nil)
//
//Usage
//
//OSC client example:
//  client, _ := osc.Dial("localhost:8765")
//  msg := osc.NewMessage("/osc/address")
//  msg.Append(int32(111))
//  msg.Append(true)
//  msg.Append("hello")
//  client.Send(msg)
//
//OSC server example:
//  d := osc.NewDispatcher()
//  d.AddMethodFunc("/message/address", func(msg *osc.Message) {
//      fmt.Println(msg)
//  })
//
//  server := &osc.Server{
//      Addr:       "127.0.0.1:8765",
//      Dispatcher: d,
//  }
//  server.ListenAndServe()
package osc
