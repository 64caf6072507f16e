// Package cli implements the solarfocus command-line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/solarfocus/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the solarfocus CLI.
// It loads configuration, wires up logging and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "solarfocus",
		Short:   "Residential solar savings estimator",
		Long:    "solarfocus: size a residential solar installation and estimate its cost, payback and avoided CO2",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $SOLARFOCUS_HOME/config.yaml)")
	cmd.PersistentFlags().String("locale", "", "number formatting locale: en or pt-BR (overrides config)")
	cmd.PersistentFlags().String("currency", "", "ISO 4217 display currency, e.g. BRL (overrides config)")

	cmd.AddCommand(
		NewEstimateCmd(),
		NewBatchCmd(),
		NewReportCmd(),
		NewServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate a household consuming 300 kWh with a 250 monthly bill
  solarfocus estimate --consumption 300 --bill 250

  # Same estimate as JSON, with the comparison chart on the terminal
  solarfocus estimate --consumption 300 --bill 250 --output json
  solarfocus estimate --consumption 300 --bill 250 --chart

  # Fill in the numbers interactively
  solarfocus estimate --interactive

  # Estimate every household in a spreadsheet
  solarfocus batch --file households.xlsx --concurrency 8

  # Write a PDF report
  solarfocus report --consumption 300 --bill 250 --format pdf --out estimate.pdf

  # Serve the web form and JSON API
  solarfocus serve --addr :8080

  # Initialize configuration
  solarfocus config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
