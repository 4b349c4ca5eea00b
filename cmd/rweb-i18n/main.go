// Command rweb-i18n lists and serves localized controller routes.
//
//	rweb-i18n routes --bundles ./locales
//	rweb-i18n serve --config config.toml
package main

import (
	"os"

	"github.com/rohanthewiz/rweb-i18n/config"
	"github.com/rohanthewiz/rweb-i18n/i18n"
	"github.com/rohanthewiz/serr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	bundleDir     string
	defaultLocale string
)

var rootCmd = &cobra.Command{
	Use:           "rweb-i18n",
	Short:         "Localized controller routing for rweb",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&bundleDir, "bundles", "", "directory of route bundles (overrides config)")
	rootCmd.PersistentFlags().StringVar(&defaultLocale, "default-locale", "", "locale always emitted, e.g. en-US (overrides config)")

	rootCmd.AddCommand(routesCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Error().Err(err).Msg("rweb-i18n failed")
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and reads the bundles.
func setup() (*config.Config, *i18n.Resources, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	if bundleDir != "" {
		cfg.I18n.BundleDir = bundleDir
	}
	if defaultLocale != "" {
		cfg.I18n.DefaultLocale = defaultLocale
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	logger := cfg.Logging.Logger(os.Stderr)

	resources, err := i18n.LoadResources(os.DirFS(cfg.I18n.BundleDir), ".", cfg.I18n.Basename)
	if err != nil {
		return nil, nil, logger, serr.Wrap(err, "unable to load bundles", "dir", cfg.I18n.BundleDir)
	}

	logger.Debug().Str("dir", cfg.I18n.BundleDir).Strs("files", resources.Files()).Msg("bundles loaded")
	return cfg, resources, logger, nil
}
