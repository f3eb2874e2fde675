package cli

import (
	"os"
	"strconv"
	"time"
)

// Config holds the CLI's render and watch settings. Flags override the
// values loaded here.
type Config struct {
	Output       string
	Width        float64 // inches
	Height       float64 // inches
	PollInterval time.Duration
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output:       "gantt.png",
		Width:        10,
		Height:       4,
		PollInterval: time.Second,
	}
}

// LoadConfig reads configuration from GANTT_* environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GANTT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("GANTT_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Width = f
		}
	}
	if v := os.Getenv("GANTT_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Height = f
		}
	}
	if v := os.Getenv("GANTT_POLL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PollInterval = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}
