package config

import (
	"io"
	"os"
	"time"

	"github.com/rohanthewiz/serr"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel = "RWEB_LOG_LEVEL"

	DefaultLogLevel = "info"
)

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level string `toml:"level" env:"RWEB_LOG_LEVEL"`
	// Pretty switches from JSON lines to console output.
	Pretty bool `toml:"pretty" env:"RWEB_LOG_PRETTY"`
}

// Logger builds a logger writing to w, os.Stderr when w is nil.
func (c *LoggingConfig) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func (c *LoggingConfig) loadDefaults() {
	if c.Level == "" {
		c.Level = DefaultLogLevel
	}
}

func (c *LoggingConfig) validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return serr.Wrap(err, "invalid level", "level", c.Level)
	}
	return nil
}
