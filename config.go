package main

import (
	"os"
	"strconv"
	"time"

	"github.com/perryradau/space-music/constant"
)

// appConfig holds process-level settings read once at startup
type appConfig struct {
	Nodes int
	Seed  int64
}

// loadAppConfig reads settings from environment variables, falling back to
// defaults on anything unset or unparsable. A fixed SPACE_MUSIC_SEED makes a
// session's chaining reproducible.
func loadAppConfig() appConfig {
	cfg := appConfig{
		Nodes: constant.DefaultNodeCount,
		Seed:  time.Now().UnixNano(),
	}

	if nodes := os.Getenv("SPACE_MUSIC_NODES"); nodes != "" {
		if val, err := strconv.Atoi(nodes); err == nil && val >= 1 && val <= 16 {
			cfg.Nodes = val
		}
	}

	if seed := os.Getenv("SPACE_MUSIC_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	return cfg
}
