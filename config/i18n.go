package config

import (
	"strings"

	"github.com/rohanthewiz/rweb-i18n/i18n"
	"github.com/rohanthewiz/serr"
)

const (
	EnvDefaultLocale  = "RWEB_DEFAULT_LOCALE"
	EnvBundleDir      = "RWEB_BUNDLE_DIR"
	EnvBundleBasename = "RWEB_BUNDLE_BASENAME"

	DefaultBundleDir = "locales"
)

// I18nConfig locates the route translation bundles.
type I18nConfig struct {
	// DefaultLocale is always emitted as a localized route, e.g. "en-US".
	DefaultLocale string `toml:"default_locale" env:"RWEB_DEFAULT_LOCALE"`
	// BundleDir holds files named <basename>.<locale>.<toml|yaml|yml|json>.
	BundleDir string `toml:"bundle_dir" env:"RWEB_BUNDLE_DIR"`
	Basename  string `toml:"basename" env:"RWEB_BUNDLE_BASENAME"`
}

// Locale returns the parsed default locale. Call it on a validated config.
func (c *I18nConfig) Locale() i18n.Locale {
	l, err := i18n.ParseLocale(c.DefaultLocale)
	if err != nil {
		return i18n.DefaultLocale
	}
	return l
}

func (c *I18nConfig) loadDefaults() {
	if c.DefaultLocale == "" {
		c.DefaultLocale = i18n.DefaultLocale.Tag().String()
	}
	if c.BundleDir == "" {
		c.BundleDir = DefaultBundleDir
	}
	if c.Basename == "" {
		c.Basename = i18n.DefaultBasename
	}
}

func (c *I18nConfig) validate() error {
	if _, err := i18n.ParseLocale(c.DefaultLocale); err != nil {
		return serr.Wrap(err, "invalid default_locale")
	}
	if strings.ContainsAny(c.Basename, "./") {
		return serr.New("basename must not contain dots or slashes", "basename", c.Basename)
	}
	return nil
}
