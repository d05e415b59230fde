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
	Config string `arg:"" help:"Path to the TOML route table."`
	Debug  bool   `help:"Enable debug logging."`
}

type route struct {
	matcher *osc.Message // address pattern the route fires on
	client  *osc.Client
	to      string
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("oscroute"),
		kong.Description("Forward OSC messages to UDP destinations by address pattern."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if args.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Str("app", "oscroute").Logger()

	cfg, err := loadConfig(args.Config)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	routes := make([]*route, 0, len(cfg.Routes))
	for _, rc := range cfg.Routes {
		client, err := osc.Dial(rc.To)
		if err != nil {
			logger.Fatal().Err(err).Str("to", rc.To).Msg("cannot dial destination")
		}
		defer client.Close()
		routes = append(routes, &route{
			matcher: osc.NewMessage(rc.Pattern),
			client:  client,
			to:      rc.To,
		})
	}

	conn, err := net.ListenPacket("udp", cfg.Listen)
	if err != nil {
		logger.Fatal().Err(err).Str("listen", cfg.Listen).Msg("cannot listen")
	}
	defer conn.Close()

	logger.Info().Str("listen", conn.LocalAddr().String()).Int("routes", len(routes)).Msg("forwarding OSC")

	server := &osc.Server{Logger: &logger}
	for {
		p, _, err := server.ReceivePacket(conn)
		if err != nil {
			if _, ok := err.(net.Error); ok {
				logger.Fatal().Err(err).Msg("read failed")
			}
			logger.Warn().Err(err).Msg("dropping malformed packet")
			continue
		}
		forward(logger, routes, p)
	}
}

// forward routes messages to every matching destination. Bundles are
// flattened: each contained message is routed on its own.
func forward(logger zerolog.Logger, routes []*route, p osc.Packet) {
	switch t := p.(type) {
	case *osc.Message:
		for _, r := range routes {
			if !r.matcher.Match(t.Address) {
				continue
			}
			if err := r.client.Send(t); err != nil {
				logger.Error().Err(err).Str("to", r.to).Str("address", t.Address).Msg("forward failed")
				continue
			}
			logger.Debug().Str("to", r.to).Str("address", t.Address).Msg("forwarded")
		}

	case *osc.Bundle:
		for _, el := range t.Elements {
			forward(logger, routes, el)
		}
	}
}
