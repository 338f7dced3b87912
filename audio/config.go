package audio

import (
	"os"
	"strconv"

	"github.com/perryradau/space-music/constant"
)

// Config holds the audio settings fixed at engine creation. Tempo,
// transposition and volume remain adjustable live.
type Config struct {
	Enabled bool
	Volume  float64 // 0.0-1.0
	BPM     int
}

// DefaultConfig returns the out-of-the-box audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Volume:  0.8,
		BPM:     constant.DefaultBPM,
	}
}

// LoadConfig loads audio configuration from environment variables,
// falling back to defaults on anything unset or unparsable.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SPACE_MUSIC_AUDIO"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume given as 0-100
	if volume := os.Getenv("SPACE_MUSIC_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			v := float64(val) / 100.0
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			cfg.Volume = v
		}
	}

	if bpm := os.Getenv("SPACE_MUSIC_BPM"); bpm != "" {
		if val, err := strconv.Atoi(bpm); err == nil && val >= constant.MinBPM && val <= constant.MaxBPM {
			cfg.BPM = val
		}
	}

	return cfg
}
