package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/config"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/cache"
	"github.com/rshade/solarfocus/internal/render"
)

// loadConfig builds the effective configuration for this run and installs
// it as the global config. An explicit --config file replaces the global
// file; environment variables and the --locale and --currency flags apply on
// top either way.
func loadConfig(cmd *cobra.Command) error {
	var cfg *config.Config

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		cfg = config.New()
	} else {
		cfg = config.Default()
		if err := cfg.LoadFile(path); err != nil {
			return err
		}
		_ = config.LoadDotEnv()
		cfg.ApplyEnv(os.LookupEnv)
	}

	if locale, _ := cmd.Flags().GetString("locale"); locale != "" {
		cfg.Output.Locale = locale
	}
	if currency, _ := cmd.Flags().GetString("currency"); currency != "" {
		if err := cfg.Set("display.currency", currency); err != nil {
			return err
		}
		cfg.Display.Symbol = ""
	}

	if err := config.CheckVersion(cfg.Version); err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// newFormatter builds the display formatter from the global config.
func newFormatter() (*render.Formatter, error) {
	cfg := config.GetGlobalConfig()
	return render.NewFormatter(cfg.Output.Locale, cfg.Display.Currency, cfg.Display.Symbol)
}

// newEngine builds an engine backed by the configured cache. Callers must
// Close it.
func newEngine(ctx context.Context) (*engine.Engine, error) {
	store, err := cache.Open(ctx, config.GetGlobalConfig().Cache)
	if err != nil {
		return nil, fmt.Errorf("opening estimate cache: %w", err)
	}
	if store == nil {
		return engine.New(), nil
	}
	return engine.New(engine.WithCache(store)), nil
}

// outputFormat resolves --output, falling back to the configured default.
func outputFormat(flag string) (render.Format, error) {
	if flag == "" {
		flag = config.GetDefaultOutputFormat()
	}
	return render.ParseFormat(flag)
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
