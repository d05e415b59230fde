package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the oscroute TOML route table:
//
//	listen = ":9000"
//
//	[[route]]
//	pattern = "/mixer/*"
//	to = "10.0.0.5:9001"
type fileConfig struct {
	Listen string        `toml:"listen"`
	Routes []routeConfig `toml:"route"`
}

type routeConfig struct {
	Pattern string `toml:"pattern"`
	To      string `toml:"to"`
}

func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("loadConfig: %w", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":9000"
	}
	if len(cfg.Routes) == 0 {
		return nil, fmt.Errorf("loadConfig: no routes defined in %s", path)
	}
	for i, r := range cfg.Routes {
		if !strings.HasPrefix(r.Pattern, "/") && r.Pattern != "*" {
			return nil, fmt.Errorf("loadConfig: route %d: pattern %q must start with '/'", i, r.Pattern)
		}
		if r.To == "" {
			return nil, fmt.Errorf("loadConfig: route %d: missing destination", i)
		}
	}

	return &cfg, nil
}
