// Package httpapi serves the estimator over HTTP: an HTML page with the
// comparison chart, a JSON API, PDF/XLSX downloads, health and metrics.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/rshade/solarfocus/internal/config"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

const (
	shutdownTimeout = 10 * time.Second

	// DefaultCacheSweepInterval is how often expired in-memory estimates are
	// dropped while serving.
	DefaultCacheSweepInterval = time.Minute
)

// Server wires the engine to HTTP routes.
type Server struct {
	engine    *engine.Engine
	formatter *render.Formatter
	lang      string
	cfg       config.ServerConfig
	logger    zerolog.Logger
	metrics   *Metrics
	limiter   *IPRateLimiter

	sweepInterval time.Duration
}

// Options configures a Server.
type Options struct {
	Engine    *engine.Engine
	Formatter *render.Formatter
	// Locale is the page language, "en" or "pt-BR".
	Locale  string
	Config  config.ServerConfig
	Logger  zerolog.Logger
	Metrics *Metrics

	// CacheSweepInterval defaults to DefaultCacheSweepInterval.
	CacheSweepInterval time.Duration
}

// New creates a Server. Missing Engine, Formatter and Metrics get defaults.
func New(opts Options) *Server {
	if opts.Engine == nil {
		opts.Engine = engine.New()
	}
	if opts.Formatter == nil {
		opts.Formatter = render.DefaultFormatter()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	if opts.Locale == "" {
		opts.Locale = render.LocaleEnglish
	}
	if opts.CacheSweepInterval <= 0 {
		opts.CacheSweepInterval = DefaultCacheSweepInterval
	}

	s := &Server{
		engine:    opts.Engine,
		formatter: opts.Formatter,
		lang:      opts.Locale,
		cfg:       opts.Config,
		logger:    opts.Logger,
		metrics:   opts.Metrics,

		sweepInterval: opts.CacheSweepInterval,
	}
	if opts.Config.RateLimitPerSecond > 0 && opts.Config.RateLimitBurst > 0 {
		s.limiter = NewIPRateLimiter(rate.Limit(opts.Config.RateLimitPerSecond), opts.Config.RateLimitBurst)
		s.limiter.onReject = s.metrics.RateLimited
	}
	return s
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestContext(s.logger), accessLog)

	r.Handle("/healthz", s.metrics.WrapHandler("healthz", http.HandlerFunc(s.handleHealth))).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	limited := r.NewRoute().Subrouter()
	if s.limiter != nil {
		limited.Use(s.limiter.LimitMiddleware)
	}
	limited.Handle("/", s.metrics.WrapHandler("index", http.HandlerFunc(s.handleIndex))).Methods(http.MethodGet)
	limited.Handle("/estimate", s.metrics.WrapHandler("estimate_page", http.HandlerFunc(s.handleEstimatePage))).
		Methods(http.MethodGet)

	api := limited.PathPrefix("/api/v1").Subrouter()
	api.Handle("/estimate", s.metrics.WrapHandler("api_estimate", http.HandlerFunc(s.handleAPIEstimate))).
		Methods(http.MethodPost)
	api.Handle("/report.{format:pdf|xlsx}", s.metrics.WrapHandler("api_report", http.HandlerFunc(s.handleReport))).
		Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, http.StatusNotFound, "not found")
	})

	var h http.Handler = r
	h = cors(s.cfg.AllowedOrigins)(h)
	h = recovery(s.logger)(h)
	return h
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// The cache sweeper runs for as long as the server does.
func (s *Server) ListenAndServe(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		s.sweepCache(sweepCtx)
	}()
	defer func() {
		stopSweep()
		<-sweepDone
	}()

	readTimeout := time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second
	if readTimeout <= 0 {
		readTimeout = 15 * time.Second
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      2 * readTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("component", "httpapi").Str("addr", s.cfg.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.logger.Info().Str("component", "httpapi").Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// sweepCache drops expired estimates every sweepInterval until ctx ends.
func (s *Server) sweepCache(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, remaining := s.engine.SweepCache()
			s.metrics.ObserveSweep(removed, remaining)
			if removed > 0 {
				s.logger.Debug().
					Str("component", "httpapi").
					Int("removed", removed).
					Int("remaining", remaining).
					Msg("swept expired cache entries")
			}
		}
	}
}
