// Package cli provides the palettectl command-line interface.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the palettectl command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "palettectl",
		Short: "Generate five-colour harmony palettes in the terminal",
		Long: `palettectl generates five-colour palettes from a random base colour using
one of six colour-harmony rules, and prints each colour as a swatch with the
text colour that stays readable on top of it.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	logger := func() hclog.Logger {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "palettectl",
			Level:  hclog.LevelFromString(logLevel),
			Output: rootCmd.ErrOrStderr(),
		})
	}

	rootCmd.AddCommand(newGenerateCmd(logger))
	rootCmd.AddCommand(newHarmoniesCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
