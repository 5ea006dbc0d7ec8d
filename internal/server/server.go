package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sourcegraph/conc"

	"github.com/preston-bernstein/nhl-results-service/internal/app/results"
	"github.com/preston-bernstein/nhl-results-service/internal/config"
	httpserver "github.com/preston-bernstein/nhl-results-service/internal/http"
	"github.com/preston-bernstein/nhl-results-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-results-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-results-service/internal/http/views"
	"github.com/preston-bernstein/nhl-results-service/internal/logging"
	"github.com/preston-bernstein/nhl-results-service/internal/metrics"
	"github.com/preston-bernstein/nhl-results-service/internal/providers"
	"github.com/preston-bernstein/nhl-results-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	results       *results.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	listeners     conc.WaitGroup
}

// New constructs a server with the configured provider.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScoresProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ScoresProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewInstrumentedProvider(provider, normalizeProviderName(cfg.Provider, provider), recorder, logger)
	}

	dates := results.NewReferenceDates(results.ReferenceOptions{
		TestMode:  cfg.TestDates.Enabled,
		Today:     cfg.TestDates.Today,
		Yesterday: cfg.TestDates.Yesterday,
		Logger:    logger,
	})
	svc := results.NewService(provider, dates, recorder, logger)

	httpSrv, err := buildHTTPServer(cfg, svc, logger, recorder)
	if err != nil {
		return nil, err
	}

	logConfiguration(logger, cfg, dates)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		results:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc *results.Service, logger *slog.Logger, recorder *metrics.Recorder) (httpServer, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	handler := handlers.NewHandler(svc, renderer, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}, nil
}

func logConfiguration(logger *slog.Logger, cfg config.Config, dates *results.ReferenceDates) {
	mode := "live"
	if dates.TestMode() {
		mode = "test"
	}
	logging.Info(logger, "server configuration",
		slog.String("mode", mode),
		slog.String(logging.FieldProvider, cfg.Provider),
		slog.String("today", timeutil.CanonicalDate(dates.Today())),
		slog.String("yesterday", timeutil.CanonicalDate(dates.Yesterday())),
	)
}

// Run starts the listeners, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
	s.listeners.Wait()
}

func (s *Server) startServer(stop context.CancelFunc) {
	s.launchServer("http", s.httpServer, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	s.launchServer("metrics", s.metricsServer, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func (s *Server) launchServer(name string, srv httpServer, onError func(error)) {
	logger := s.logger
	s.listeners.Go(func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	})
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
