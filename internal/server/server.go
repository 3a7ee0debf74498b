// Package server hosts the browser UI and the JSON API behind it. The flow is
// the single-user meeting-assistant loop: upload a recording, volume-check it,
// analyze, then optionally post the notes to Slack.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/eunah0807-bit/csm17-meeting-assistant/config"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/app"
)

type Server struct {
	server    *http.Server
	logger    zerolog.Logger
	cfg       *config.Config
	app       *app.App
	startTime time.Time
}

func New(cfg *config.Config, application *app.App, logger zerolog.Logger) *Server {
	s := &Server{
		logger:    logger,
		cfg:       cfg,
		app:       application,
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
		// Analysis uploads can be large and the upstream model call is slow;
		// only the read side gets a bound.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.withMetrics("/", s.handleIndex))
	mux.HandleFunc("POST /api/volume", s.withMetrics("/api/volume", s.handleVolume))
	mux.HandleFunc("POST /api/analyze", s.withMetrics("/api/analyze", s.handleAnalyze))
	mux.HandleFunc("POST /api/notify", s.withMetrics("/api/notify", s.handleNotify))
	mux.HandleFunc("GET /api/session", s.withMetrics("/api/session", s.handleSession))
	mux.HandleFunc("GET /healthz", s.withMetrics("/healthz", s.handleHealth))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.app.Registry, promhttp.HandlerOpts{}))
}

// Start begins serving and blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("http server shutting down")
	return s.server.Shutdown(ctx)
}

// withMetrics wraps a handler with request counting and timing.
func (s *Server) withMetrics(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(ww, r)

		duration := time.Since(start).Seconds()
		s.app.Metrics.HTTPRequests.WithLabelValues(r.Method, endpoint, fmt.Sprintf("%d", ww.statusCode)).Inc()
		s.app.Metrics.HTTPRequestDuration.WithLabelValues(endpoint).Observe(duration)

		s.logger.Debug().
			Str("method", r.Method).
			Str("endpoint", endpoint).
			Int("status", ww.statusCode).
			Float64("duration_s", duration).
			Msg("request handled")
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
