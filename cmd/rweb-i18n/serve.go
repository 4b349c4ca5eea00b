package main

import (
	"github.com/rohanthewiz/rweb-i18n"
	"github.com/spf13/cobra"
)

var (
	serveAddress  string
	serveRedirect bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo controllers on their localized routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := newServer()
		if err != nil {
			return err
		}

		s.Use(rweb.RequestInfo)
		if serveRedirect {
			s.Use(rweb.LocaleRedirect(s.Locales(), s.Locales()[0]))
		}
		s.Get("/_routes", rweb.RoutesPage)

		address := cfg.Server.Address
		if serveAddress != "" {
			address = serveAddress
		}

		return s.Run(address, rweb.RunOpts{Verbose: true})
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveRedirect, "redirect", false, "redirect unprefixed GETs by Accept-Language")
}
