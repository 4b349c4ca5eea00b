package config

import (
	"strings"

	"github.com/rohanthewiz/serr"
)

const (
	// EnvAddress overrides the listen address.
	EnvAddress = "RWEB_ADDRESS"

	DefaultAddress = ":8080"
)

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Address string `toml:"address" env:"RWEB_ADDRESS"`
	Verbose bool   `toml:"verbose" env:"RWEB_VERBOSE"`
}

func (c *ServerConfig) loadDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
}

func (c *ServerConfig) validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return serr.New("address is required")
	}
	return nil
}
