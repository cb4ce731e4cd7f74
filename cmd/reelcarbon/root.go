package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger shared by all subcommands. It writes to
// stderr so stdout stays clean for report output.
var logger zerolog.Logger

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:     "reelcarbon",
		Short:   "Production carbon calculator",
		Long:    "ReelCarbon: estimate film/TV production greenhouse-gas emissions from activity data",
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newCalculateCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newFactorsCmd())

	return cmd
}
