package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	appdepthchart "github.com/preston-bernstein/depth-chart-service/internal/app/depthchart"
	appplayers "github.com/preston-bernstein/depth-chart-service/internal/app/players"
	appteams "github.com/preston-bernstein/depth-chart-service/internal/app/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/catalog"
	"github.com/preston-bernstein/depth-chart-service/internal/config"
	httpserver "github.com/preston-bernstein/depth-chart-service/internal/http"
	"github.com/preston-bernstein/depth-chart-service/internal/http/handlers"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/metrics"
	"github.com/preston-bernstein/depth-chart-service/internal/seed"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
	"github.com/preston-bernstein/depth-chart-service/internal/storage"
	"github.com/preston-bernstein/depth-chart-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	backend       snapshots.Backend
	store         *store.Store
	catalog       *catalog.Catalog
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New opens storage, seeds it when enabled, loads the catalog and builds the
// HTTP stack.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	backend, err := storage.NewFactory(logger, recorder).Build(cfg.Storage)
	if err != nil {
		stopMetrics(metricsShutdown, logger)
		return nil, err
	}

	st, cat, err := prepareData(ctx, cfg, backend, logger)
	if err != nil {
		if cerr := backend.Close(); cerr != nil {
			logger.Warn("backend close failed", "error", cerr)
		}
		stopMetrics(metricsShutdown, logger)
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		backend:       backend,
		store:         st,
		catalog:       cat,
		httpServer:    buildHTTPServer(cfg, st, cat, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, backend snapshots.Backend, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		backend:    backend,
		httpServer: httpSrv,
	}
}

func prepareData(ctx context.Context, cfg config.Config, backend snapshots.Backend, logger *slog.Logger) (*store.Store, *catalog.Catalog, error) {
	st := store.New(backend, logger)

	if cfg.Seed.Enabled {
		if _, err := seed.Bootstrap(ctx, backend, st, cfg.Seed.File, seed.Options{SampleCharts: cfg.Seed.SampleCharts}, logger); err != nil {
			return nil, nil, err
		}
	}

	cat, err := catalog.Load(ctx, backend)
	if err != nil {
		return nil, nil, err
	}
	if len(cat.Leagues()) == 0 {
		logger.Warn("position catalog is empty, charts will group every position as Other")
	}
	logging.Info(logger, "catalog loaded", logging.FieldCount, len(cat.Teams()))
	return st, cat, nil
}

func buildHTTPServer(cfg config.Config, st *store.Store, cat *catalog.Catalog, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	depthSvc := appdepthchart.NewService(st, cat, appdepthchart.Options{
		Logger:        logger,
		Metrics:       recorder,
		DefaultLeague: cfg.DefaultLeague,
	})
	handler := handlers.NewHandler(depthSvc, appteams.NewService(cat), appplayers.NewService(st), st.Ping, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// gracefulShutdown drains HTTP before closing storage so in-flight mutations
// finish their writes.
func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	stopMetricsCtx(shutdownCtx, s.metricsStop, s.logger)

	if s.backend != nil {
		if err := s.backend.Close(); err != nil && s.logger != nil {
			s.logger.Error("failed to close storage", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func stopMetrics(stop func(context.Context) error, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	stopMetricsCtx(ctx, stop, logger)
}

func stopMetricsCtx(ctx context.Context, stop func(context.Context) error, logger *slog.Logger) {
	if stop == nil {
		return
	}
	if err := stop(ctx); err != nil && logger != nil {
		logger.Warn("metrics shutdown failed", "error", err)
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
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
