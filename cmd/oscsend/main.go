package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/HfMT-ZM4/OSC99/osc"
)

type cli struct {
	Target  string   `arg:"" help:"Destination host:port."`
	Address string   `arg:"" help:"OSC address pattern, e.g. /oscillator/4/frequency."`
	Args    []string `arg:"" optional:"" help:"Typed arguments: i:42 f:1.5 s:hello h:7 d:2.5 b:<hex> r:<rrggbbaa> m:<hex> t:<uint64> T F N."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("oscsend"),
		kong.Description("Send a single OSC message over UDP."),
		kong.UsageOnError(),
	)

	msg := osc.NewMessage(args.Address)
	for _, a := range args.Args {
		v, err := parseArgument(a)
		if err != nil {
			log.Fatal(err)
		}
		if err := msg.Append(v); err != nil {
			log.Fatal(err)
		}
	}

	client, err := osc.Dial(args.Target)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		log.Fatal(err)
	}
}

// parseArgument turns a "tag:value" CLI argument into the matching OSC
// argument type. The bare tags T, F and N carry no value.
func parseArgument(s string) (interface{}, error) {
	switch s {
	case "T":
		return true, nil
	case "F":
		return false, nil
	case "N":
		return nil, nil
	}

	tag, val, ok := strings.Cut(s, ":")
	if !ok || len(tag) != 1 {
		return nil, fmt.Errorf("invalid argument %q, want tag:value", s)
	}

	switch osc.TypeTag(tag[0]) {
	case osc.TypeInt32:
		i, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return int32(i), nil

	case osc.TypeInt64:
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return i, nil

	case osc.TypeFloat32:
		f, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return float32(f), nil

	case osc.TypeFloat64:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return f, nil

	case osc.TypeString:
		return val, nil

	case osc.TypeBlob:
		b, err := hex.DecodeString(val)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return b, nil

	case osc.TypeTimetag:
		t, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return osc.Timetag(t), nil

	case osc.TypeRGBA:
		b, err := hex.DecodeString(val)
		if err != nil || len(b) != 4 {
			return nil, fmt.Errorf("argument %q: want 8 hex digits rrggbbaa", s)
		}
		return osc.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil

	case osc.TypeMIDI:
		b, err := hex.DecodeString(val)
		if err != nil || len(b) != 4 {
			return nil, fmt.Errorf("argument %q: want 8 hex digits", s)
		}
		return osc.MIDI{PortID: b[0], Status: b[1], Data1: b[2], Data2: b[3]}, nil

	default:
		return nil, fmt.Errorf("argument %q: unknown type tag %q", s, tag)
	}
}
