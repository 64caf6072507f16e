package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// By default it writes the global $SOLARFOCUS_HOME/config.yaml; with --project
// it writes a .solarfocus.yaml overlay in the working directory instead.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The global file lives at $SOLARFOCUS_HOME/config.yaml (default ~/.solarfocus).
With --project, a .solarfocus.yaml overlay is written to the current directory;
each top-level section it contains replaces the global one.`,
		Example: `  # Create global configuration
  solarfocus config init

  # Create a project overlay
  solarfocus config init --project

  # Create configuration, overwriting existing
  solarfocus config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.DefaultPath()
			if project {
				path = config.ProjectOverlayFile
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "write a .solarfocus.yaml overlay in the current directory")

	return cmd
}

// initConfig writes the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}
