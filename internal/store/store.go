// Package store persists depth chart buckets and the player directory behind
// a single lock. Every mutation is load, mutate, save-whole-snapshot under
// that lock, so readers never observe a half-shifted bucket.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

// ErrTeamRequired rejects calls without a team identifier.
var ErrTeamRequired = errors.New("team required")

// Store owns RankEntry lifetimes and the roster directory.
type Store struct {
	mu      sync.RWMutex
	backend snapshots.Backend
	logger  *slog.Logger
}

// New constructs a Store over backend.
func New(backend snapshots.Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
	}
}

// Ping verifies the backend answers.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.backend.List(ctx)
	return err
}

func teamKey(team string) (string, error) {
	team = teams.NormalizeID(team)
	if team == "" {
		return "", ErrTeamRequired
	}
	return team, nil
}
