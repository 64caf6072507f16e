package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/config"
	"github.com/rshade/solarfocus/internal/engine/cache"
)

// keyCacheTTL accepts durations ("1h", "90m") as well as seconds.
const keyCacheTTL = "cache.ttl_seconds"

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Example: `  solarfocus config get output.default_format
  solarfocus config get display.currency`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

// NewConfigSetCmd creates the config set command. It edits the file named by
// --config, or the global config file.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value in the config file",
		Example: `  solarfocus config set output.default_format json
  solarfocus config set output.locale pt-BR
  solarfocus config set cache.backend redis
  solarfocus config set cache.ttl_seconds 2h`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultPath()
			}

			// Edit the file alone so environment overrides are not persisted.
			cfg := config.Default()
			if err := cfg.LoadFile(path); err != nil && !isNotExist(err) {
				return err
			}
			key, value := args[0], args[1]
			if key == keyCacheTTL {
				seconds, err := cache.ParseTTL(value)
				if err != nil {
					return err
				}
				value = strconv.Itoa(seconds)
			}

			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("refusing to save invalid configuration: %w", err)
			}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Set %s = %s\n", key, value)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key and its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			for _, key := range config.Keys() {
				v, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
