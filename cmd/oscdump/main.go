package main

import (
	"net"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/HfMT-ZM4/OSC99/osc"
)

type cli struct {
	Listen string `help:"UDP listen address." default:":9000"`
	Debug  bool   `help:"Enable debug logging."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("oscdump"),
		kong.Description("Print every OSC packet received on a UDP port."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if args.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Str("app", "oscdump").Logger()

	conn, err := net.ListenPacket("udp", args.Listen)
	if err != nil {
		logger.Fatal().Err(err).Str("listen", args.Listen).Msg("cannot listen")
	}
	defer conn.Close()

	logger.Info().Str("listen", conn.LocalAddr().String()).Msg("listening for OSC packets")

	server := &osc.Server{Logger: &logger}
	for {
		p, addr, err := server.ReceivePacket(conn)
		if err != nil {
			if _, ok := err.(net.Error); ok {
				logger.Fatal().Err(err).Msg("read failed")
			}
			logger.Warn().Err(err).Msg("dropping malformed packet")
			continue
		}
		dump(logger, addr, p)
	}
}

func dump(logger zerolog.Logger, addr net.Addr, p osc.Packet) {
	switch t := p.(type) {
	case *osc.Message:
		logger.Info().Str("from", addr.String()).Msg(t.String())

	case *osc.Bundle:
		evt := logger.Info().Str("from", addr.String()).
			Uint32("seconds", t.Timetag.SecondsSinceEpoch()).
			Uint32("fraction", t.Timetag.FractionalSecond())
		if t.Timetag == osc.TimetagImmediate {
			evt = evt.Bool("immediate", true)
		}
		evt.Int("elements", len(t.Elements)).Msg("#bundle")

		for _, el := range t.Elements {
			dump(logger, addr, el)
		}
	}
}
