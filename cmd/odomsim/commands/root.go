// Package commands implements the odomsim command line.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zeusync/motion/internal/core/observability/log"
)

var (
	logLevel string
	level    log.Level
)

func Execute() error {
	return newRoot().ExecuteContext(context.Background())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "odomsim",
		Short:        "Replay odometry through a sampled motion model",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			level, err = log.ParseLevel(logLevel)
			return err
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error, off)")

	root.AddCommand(runCmd(), validateCmd())
	return root
}
