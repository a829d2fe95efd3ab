package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
	"github.com/preston-bernstein/depth-chart-service/internal/store"
)

// Options selects what Run writes beyond reference data.
type Options struct {
	SampleCharts bool
}

// Result reports what a seeding run wrote.
type Result struct {
	Resources []string
	Players   int
	Charts    []string
}

// Seeder writes a Dataset through the store and storage port.
type Seeder struct {
	backend snapshots.Backend
	store   *store.Store
	dataset Dataset
	logger  *slog.Logger
}

func NewSeeder(backend snapshots.Backend, st *store.Store, dataset Dataset, logger *slog.Logger) *Seeder {
	return &Seeder{
		backend: backend,
		store:   st,
		dataset: dataset,
		logger:  logger,
	}
}

// Run writes positions, teams and players when their resources are missing,
// then, with SampleCharts, fills every team whose chart is empty.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	wrote, err := s.writeIfMissing(ctx, snapshots.ResourcePositions, s.dataset.Positions)
	if err != nil {
		return res, err
	}
	if wrote {
		res.Resources = append(res.Resources, snapshots.ResourcePositions)
	}

	wrote, err = s.writeIfMissing(ctx, snapshots.ResourceTeams, s.dataset.Teams)
	if err != nil {
		return res, err
	}
	if wrote {
		res.Resources = append(res.Resources, snapshots.ResourceTeams)
	}

	if _, err := s.backend.Load(ctx, snapshots.ResourcePlayers); snapshots.IsNotFound(err) {
		n, err := s.store.SeedPlayers(ctx, s.dataset.Players)
		if err != nil {
			return res, fmt.Errorf("seed players: %w", err)
		}
		res.Players = n
		res.Resources = append(res.Resources, snapshots.ResourcePlayers)
	} else if err != nil {
		return res, fmt.Errorf("load players: %w", err)
	}

	if opts.SampleCharts {
		charts, err := s.seedCharts(ctx)
		if err != nil {
			return res, err
		}
		res.Charts = charts
	}

	logging.Info(s.logger, "seed complete",
		"resources", res.Resources,
		"players", res.Players,
		"charts", res.Charts,
	)
	return res, nil
}

func (s *Seeder) writeIfMissing(ctx context.Context, name string, payload any) (bool, error) {
	_, err := s.backend.Load(ctx, name)
	if err == nil {
		return false, nil
	}
	if !snapshots.IsNotFound(err) {
		return false, fmt.Errorf("load %s: %w", name, err)
	}
	if err := snapshots.SaveJSON(ctx, s.backend, name, payload); err != nil {
		return false, err
	}
	logging.Info(s.logger, "seeded reference data", logging.FieldResource, name)
	return true, nil
}

func (s *Seeder) seedCharts(ctx context.Context) ([]string, error) {
	var stored []teams.Team
	if _, err := snapshots.LoadJSON(ctx, s.backend, snapshots.ResourceTeams, &stored); err != nil {
		return nil, err
	}

	seeded := []string{}
	for _, team := range stored {
		existing, err := s.store.FullChart(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		if len(existing.Positions()) > 0 {
			logging.Info(s.logger, "depth chart exists, skipping seed", logging.FieldTeam, team.ID)
			continue
		}
		chart, ok := s.dataset.SampleChart(team.ID)
		if !ok {
			continue
		}
		if err := s.store.ReplaceChart(ctx, team.ID, chart); err != nil {
			return nil, fmt.Errorf("seed chart %s: %w", team.ID, err)
		}
		seeded = append(seeded, team.ID)
	}
	return seeded, nil
}

// Bootstrap loads the dataset at path, or the embedded default when path is
// empty, and runs it against backend.
func Bootstrap(ctx context.Context, backend snapshots.Backend, st *store.Store, path string, opts Options, logger *slog.Logger) (Result, error) {
	dataset, err := Load(path)
	if err != nil {
		return Result{}, fmt.Errorf("seed dataset: %w", err)
	}
	return NewSeeder(backend, st, dataset, logger).Run(ctx, opts)
}
