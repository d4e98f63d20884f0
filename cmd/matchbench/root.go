// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	dev bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "matchbench",
		Short:         "Benchmark maximum matching on generated graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&flags.dev, "dev", false, "human-readable debug logging")

	cmd.AddCommand(newRunCmd(flags), newSolveCmd(flags))

	return cmd
}

// logger builds the production JSON logger, or the development console
// logger with --dev.
func (f *rootFlags) logger() (*zap.Logger, error) {
	if f.dev {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
