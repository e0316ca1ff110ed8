package main

import (
	"github.com/spf13/cobra"

	"github.com/07AMIT10/PresentationGen/internal/config"
	"github.com/07AMIT10/PresentationGen/internal/logging"
	"github.com/07AMIT10/PresentationGen/internal/server"
)

func serveCmd() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server with the upload form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
			defer func() { _ = logger.Sync() }()

			runner, err := buildRunner(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			srv, err := server.New(runner, cfg.Deck.TemplatePath, logger)
			if err != nil {
				return err
			}
			listen := cfg.Server.Addr
			if addr != "" {
				listen = addr
			}
			return srv.ListenAndServe(listen)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
