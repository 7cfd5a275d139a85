// Package logging builds the zerolog logger used by the CLI and app.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/chazu/vectorize/internal/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr as configured.
func New(cfg config.Config) zerolog.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter returns a logger writing to w. Console output is human
// readable; anything else is one JSON object per line. Unknown levels
// fall back to info.
func NewWithWriter(w io.Writer, cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.LogFormat != config.FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
