// Package config loads vectorize settings from the environment.
//
// Every setting has a default and can be overridden with a VECTORIZE_*
// variable. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrNoThickness is returned when no stock thickness was configured.
var ErrNoThickness = errors.New("stock thickness must be positive")

// Environment variables.
const (
	EnvThickness = "VECTORIZE_THICKNESS"
	EnvLogLevel  = "VECTORIZE_LOG_LEVEL"
	EnvLogFormat = "VECTORIZE_LOG_FORMAT"
	EnvSegments  = "VECTORIZE_SEGMENTS"
	EnvMaterial  = "VECTORIZE_MATERIAL"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the runtime settings.
type Config struct {
	// Thickness is the stock thickness parts are cut from. Zero means it
	// must come from a flag.
	Thickness float64
	LogLevel  string
	LogFormat string
	// Segments is the number of sides used to approximate a dowel.
	Segments int
	// Material is the tag painted onto the faces chosen as part
	// orientations.
	Material string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: FormatConsole,
		Segments:  32,
		Material:  "Vectorized",
	}
}

// Load reads the configuration from the environment. Malformed numbers
// fall back to their defaults.
func Load() Config {
	def := Default()
	return Config{
		Thickness: getEnvAsFloat(EnvThickness, def.Thickness),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, def.LogLevel)),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, def.LogFormat)),
		Segments:  getEnvAsInt(EnvSegments, def.Segments),
		Material:  getEnv(EnvMaterial, def.Material),
	}
}

// Validate checks the settings needed to build parts.
func (c Config) Validate() error {
	if c.Thickness <= 0 {
		return fmt.Errorf("config: %w (got %g)", ErrNoThickness, c.Thickness)
	}
	if c.Segments < 3 {
		return fmt.Errorf("config: segments must be at least 3, got %d", c.Segments)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
