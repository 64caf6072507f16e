package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/config"
	"github.com/rshade/solarfocus/internal/engine/cache"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the config file, any project
overlay, .env and SOLARFOCUS_* environment variables.

This includes:
- Config version compatibility
- Output format and locale
- Display currency
- Server address and rate limit
- Cache backend and Redis address`,
		Example: `  # Validate current configuration
  solarfocus config validate

  # Validate and show detailed information
  solarfocus config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config version: %s\n", cfg.Version)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Locale: %s\n", cfg.Output.Locale)
	cmd.Printf("  Currency: %s\n", cfg.Display.Currency)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)

	ttl := cache.FormatDuration(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		cmd.Printf("  Cache: redis at %s (ttl %s)\n", cfg.Cache.RedisAddr, ttl)
	case config.CacheBackendNone:
		cmd.Printf("  Cache: %s\n", cfg.Cache.Backend)
	default:
		cmd.Printf("  Cache: %s (ttl %s)\n", cfg.Cache.Backend, ttl)
	}
}
