// Package config loads the server configuration from a TOML file,
// applies defaults and lets environment variables override single values.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	I18n    I18nConfig    `toml:"i18n"`
	Logging LoggingConfig `toml:"logging"`
}

// Load reads the TOML file at path, then applies defaults and environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, serr.Wrap(err, "unable to read config", "path", path)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, serr.Wrap(err, "unable to parse config", "path", path)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides and validates the configuration.
func (c *Config) Finalize() error {
	c.Server.loadDefaults()
	c.I18n.loadDefaults()
	c.Logging.loadDefaults()

	if err := env.Parse(c); err != nil {
		return serr.Wrap(err, "unable to parse environment")
	}
	return c.Validate()
}

// Validate reports the first invalid section.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return serr.Wrap(err, "section", "server")
	}
	if err := c.I18n.validate(); err != nil {
		return serr.Wrap(err, "section", "i18n")
	}
	if err := c.Logging.validate(); err != nil {
		return serr.Wrap(err, "section", "logging")
	}
	return nil
}
