// Package storage selects and opens the configured snapshot backend.
package storage

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/depth-chart-service/internal/config"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/metrics"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots/badgerkv"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots/sqlite"
)

// Factory opens a backend and wraps it with retry and storage metrics.
type Factory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func NewFactory(logger *slog.Logger, recorder *metrics.Recorder) Factory {
	return Factory{logger: logger, metrics: recorder}
}

// Build opens cfg.Backend. The caller owns the returned backend and must
// Close it.
func (f Factory) Build(cfg config.StorageConfig) (snapshots.Backend, error) {
	base, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	if f.logger != nil {
		f.logger.Info("storage backend ready",
			slog.String(logging.FieldBackend, Name(cfg)),
			slog.String("data_dir", cfg.DataDir),
		)
	}
	return snapshots.NewRetryingBackend(base, f.logger, f.metrics, cfg.RetryAttempts, cfg.RetryBackoff), nil
}

// Name reports the backend Build would open, resolving the empty default.
func Name(cfg config.StorageConfig) string {
	if cfg.Backend == "" {
		return config.BackendFS
	}
	return cfg.Backend
}

func open(cfg config.StorageConfig) (snapshots.Backend, error) {
	switch Name(cfg) {
	case config.BackendMemory:
		return snapshots.NewMemoryBackend(), nil
	case config.BackendBadger:
		return badgerkv.Open(cfg.BadgerDir())
	case config.BackendSQLite:
		return sqlite.Open(cfg.SQLitePath())
	case config.BackendFS:
		return snapshots.NewFSBackend(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
