package players

import (
	"context"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
)

// Store defines the contract for reading a team's roster.
type Store interface {
	Directory(ctx context.Context, team string) (players.Directory, error)
}

// Service exposes roster reads. Writes go through the depth chart service.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Roster returns a team's players ordered by jersey number.
func (s *Service) Roster(ctx context.Context, teamID string) ([]players.Player, error) {
	dir, err := s.store.Directory(ctx, teams.NormalizeID(teamID))
	if err != nil {
		return nil, err
	}
	return dir.Players(), nil
}

// PlayerByNumber returns a single roster record if present.
func (s *Service) PlayerByNumber(ctx context.Context, teamID string, number int) (players.Player, bool, error) {
	dir, err := s.store.Directory(ctx, teams.NormalizeID(teamID))
	if err != nil {
		return players.Player{}, false, err
	}
	p, ok := dir.Lookup(number)
	return p, ok, nil
}
