// Package depthchart is the validation boundary for depth chart operations.
// It normalizes inputs, calls the ranking store and assembles client views.
package depthchart

import (
	"context"
	"log/slog"
	"strings"

	domaindepthchart "github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/positions"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/metrics"
)

// Store defines the ranking and roster persistence the Service drives.
type Store interface {
	RankPlayer(ctx context.Context, p players.Player, position string, depth *int) (domaindepthchart.RankEntry, error)
	Remove(ctx context.Context, team, position string, number int) (domaindepthchart.RankEntry, bool, error)
	Backups(ctx context.Context, team, position string, number int) ([]domaindepthchart.RankEntry, error)
	FullChart(ctx context.Context, team string) (domaindepthchart.TeamChart, error)
	UpsertPlayer(ctx context.Context, p players.Player) error
	Directory(ctx context.Context, team string) (players.Directory, error)
}

// Catalog supplies read-only reference data.
type Catalog interface {
	Resolve(league, code string) positions.Metadata
	Team(id string) (teams.Team, bool)
}

// Options carries optional collaborators.
type Options struct {
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	DefaultLeague string
}

// Service holds no state of its own; every effect goes through Store.
type Service struct {
	store         Store
	catalog       Catalog
	assembler     *Assembler
	logger        *slog.Logger
	metrics       *metrics.Recorder
	defaultLeague string
}

func NewService(store Store, catalog Catalog, opts Options) *Service {
	return &Service{
		store:         store,
		catalog:       catalog,
		assembler:     NewAssembler(catalog),
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		defaultLeague: positions.NormalizeLeague(opts.DefaultLeague),
	}
}

// AddPlayer records the player in the roster and ranks them at position.
// depth nil appends; out-of-range depths are clamped. Re-adding moves.
func (s *Service) AddPlayer(ctx context.Context, teamID, position string, player players.Player, depth *int) error {
	team, pos, err := normalizeSlot(teamID, position)
	if err != nil {
		return err
	}
	if player.Number < 0 {
		return nonNegative("player.Number")
	}
	name := strings.TrimSpace(player.Name)
	if name == "" {
		return required("player.Name")
	}

	entry, err := s.store.RankPlayer(ctx, players.Player{TeamID: team, Number: player.Number, Name: name}, pos, depth)
	if err == nil {
		s.log(ctx).Info("player added to depth chart",
			logging.FieldTeam, team,
			logging.FieldPosition, pos,
			logging.FieldPlayer, player.Number,
			logging.FieldDepth, entry.Depth,
		)
	}
	s.metrics.RecordMutation("add", err)
	return err
}

// RemovePlayer unranks number at position. ok is false when the player was
// not ranked there; that is not an error.
func (s *Service) RemovePlayer(ctx context.Context, teamID, position string, number int) (players.Player, bool, error) {
	team, pos, err := normalizeSlot(teamID, position)
	if err != nil {
		return players.Player{}, false, err
	}
	if number < 0 {
		return players.Player{}, false, nonNegative("playerNumber")
	}

	dir, err := s.store.Directory(ctx, team)
	if err != nil {
		s.metrics.RecordMutation("remove", err)
		return players.Player{}, false, err
	}
	entry, ok, err := s.store.Remove(ctx, team, pos, number)
	if err != nil {
		s.metrics.RecordMutation("remove", err)
		return players.Player{}, false, err
	}
	if !ok {
		return players.Player{}, false, nil
	}
	s.metrics.RecordMutation("remove", nil)
	s.log(ctx).Info("player removed from depth chart",
		logging.FieldTeam, team,
		logging.FieldPosition, pos,
		logging.FieldPlayer, number,
	)
	return dir.Resolve(entry.PlayerNumber), true, nil
}

// Backups returns the players ranked behind number, shallowest first. An
// unknown player or position yields an empty list.
func (s *Service) Backups(ctx context.Context, teamID, position string, number int) ([]players.Player, error) {
	team, pos, err := normalizeSlot(teamID, position)
	if err != nil {
		return nil, err
	}
	if number < 0 {
		return nil, nonNegative("playerNumber")
	}

	entries, err := s.store.Backups(ctx, team, pos, number)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []players.Player{}, nil
	}
	dir, err := s.store.Directory(ctx, team)
	if err != nil {
		return nil, err
	}
	return decorate(entries, dir), nil
}

// FullChart returns the team's chart grouped by the league taxonomy. An empty
// league falls back to the team's league, then the configured default.
func (s *Service) FullChart(ctx context.Context, teamID, league string) (domaindepthchart.GroupedChart, error) {
	team, err := normalizeTeam(teamID)
	if err != nil {
		return domaindepthchart.GroupedChart{}, err
	}
	league = s.resolveLeague(team, league)
	if league == "" {
		return domaindepthchart.GroupedChart{}, required("league")
	}

	chart, err := s.store.FullChart(ctx, team)
	if err != nil {
		return domaindepthchart.GroupedChart{}, err
	}
	dir, err := s.store.Directory(ctx, team)
	if err != nil {
		return domaindepthchart.GroupedChart{}, err
	}
	return s.assembler.Assemble(team, league, chart, dir), nil
}

// UpsertPlayer creates or renames a roster record. It does not touch any
// bucket.
func (s *Service) UpsertPlayer(ctx context.Context, player players.Player) (players.Player, error) {
	team, err := normalizeTeam(player.TeamID)
	if err != nil {
		return players.Player{}, err
	}
	if player.Number < 0 {
		return players.Player{}, nonNegative("player.Number")
	}
	name := strings.TrimSpace(player.Name)
	if name == "" {
		return players.Player{}, required("player.Name")
	}

	stored := players.Player{TeamID: team, Number: player.Number, Name: name}
	err = s.store.UpsertPlayer(ctx, stored)
	s.metrics.RecordMutation("upsert_player", err)
	if err != nil {
		return players.Player{}, err
	}
	s.log(ctx).Info("player upserted", logging.FieldTeam, team, logging.FieldPlayer, player.Number)
	return stored, nil
}

func (s *Service) resolveLeague(team, league string) string {
	if l := positions.NormalizeLeague(league); l != "" {
		return l
	}
	if s.catalog != nil {
		if t, ok := s.catalog.Team(team); ok && t.League != "" {
			return positions.NormalizeLeague(t.League)
		}
	}
	return s.defaultLeague
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx, s.logger); logger != nil {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

func normalizeTeam(teamID string) (string, error) {
	team := teams.NormalizeID(teamID)
	if team == "" {
		return "", required("teamId")
	}
	return team, nil
}

func normalizeSlot(teamID, position string) (string, string, error) {
	team, err := normalizeTeam(teamID)
	if err != nil {
		return "", "", err
	}
	pos := positions.NormalizeCode(position)
	if pos == "" {
		return "", "", required("position")
	}
	return team, pos, nil
}
