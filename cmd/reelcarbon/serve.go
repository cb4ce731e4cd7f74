package main

import (
	"github.com/spf13/cobra"

	"github.com/reelcarbon/reelcarbon/internal/config"
	"github.com/reelcarbon/reelcarbon/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation engine over HTTP",
		Long: "Start the JSON HTTP API. Configuration comes from the environment " +
			"(PORT, DEBUG, LOG_LEVEL), with .env support for local development.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Load()
			return server.Run(cfg, logger)
		},
	}
}
