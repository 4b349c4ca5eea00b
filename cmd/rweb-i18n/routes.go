package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rohanthewiz/rweb-i18n"
	"github.com/rohanthewiz/rweb-i18n/config"
	"github.com/rohanthewiz/rweb-i18n/i18n"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the routes derived for the demo controllers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := newServer()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tLOCALE\tHANDLER")
		for _, row := range s.Router().Table() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Method, row.Path, row.Locale, row.HandlerRef)
		}
		return w.Flush()
	},
}

// newServer builds a server with the localized parser and mounts the demo controllers.
func newServer() (*rweb.Server, *config.Config, error) {
	cfg, resources, logger, err := setup()
	if err != nil {
		return nil, nil, err
	}

	s := rweb.NewServer(rweb.ServerOptions{
		Verbose: cfg.Server.Verbose,
		Logger:  &logger,
		Parser: rweb.LocalizedParser(resources,
			i18n.WithDefaultLocale(cfg.I18n.Locale()),
			i18n.WithLogger(logger),
		),
	})

	for _, c := range demoControllers() {
		if err := s.Controller(c); err != nil {
			return nil, nil, err
		}
	}
	return s, cfg, nil
}
