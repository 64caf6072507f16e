package cli

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/solarfocus/internal/config"
	"github.com/rshade/solarfocus/internal/httpapi"
	"github.com/rshade/solarfocus/internal/logging"
)

// NewServeCmd creates the "serve" command that runs the web interface.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator web page and JSON API",
		Long: `Serve the HTML estimator, the JSON API, PDF/XLSX downloads, a health check
and Prometheus metrics.

Routes:
  GET  /                         form page
  GET  /estimate                 results page with the comparison chart
  POST /api/v1/estimate          JSON estimate
  GET  /api/v1/report.pdf|.xlsx  report download
  GET  /healthz                  health check
  GET  /metrics                  Prometheus metrics`,
		Example: `  # Listen on the configured address
  solarfocus serve

  # Listen on port 9000 with a Redis cache
  SOLARFOCUS_CACHE_BACKEND=redis SOLARFOCUS_REDIS_ADDR=localhost:6379 solarfocus serve --addr :9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func executeServe(cmd *cobra.Command, addr string) error {
	cfg := config.GetGlobalConfig()
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f, err := newFormatter()
	if err != nil {
		return err
	}
	eng, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	// Access logs are info records, which the default warn level would hide.
	base := *logging.FromContext(ctx)
	if base.GetLevel() > zerolog.InfoLevel && base.GetLevel() <= zerolog.WarnLevel {
		base = base.Level(zerolog.InfoLevel)
	}

	srv := httpapi.New(httpapi.Options{
		Engine:    eng,
		Formatter: f,
		Locale:    cfg.Output.Locale,
		Config:    cfg.Server,
		Logger:    base,
	})
	return srv.ListenAndServe(ctx)
}
