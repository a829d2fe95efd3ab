package store

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

// RankPlayer ranks p.Number at position, moving it when already present, and
// records p in the roster when p.Name is set. Both writes happen under one
// lock: the chart is saved first, and a failed roster save restores the
// previous chart. depth nil appends; out-of-range depths are clamped.
func (s *Store) RankPlayer(ctx context.Context, p players.Player, position string, depth *int) (depthchart.RankEntry, error) {
	team, err := teamKey(p.TeamID)
	if err != nil {
		return depthchart.RankEntry{}, err
	}
	p.TeamID = team

	s.mu.Lock()
	defer s.mu.Unlock()

	chart, err := s.loadChart(ctx, team)
	if err != nil {
		return depthchart.RankEntry{}, err
	}
	var roster map[string]players.Player
	if p.Name != "" {
		if roster, err = s.loadRoster(ctx); err != nil {
			return depthchart.RankEntry{}, err
		}
	}

	bucket := chart.Bucket(position).Insert(p.Number, depth)
	if err := s.saveChart(ctx, team, chart.With(position, bucket)); err != nil {
		return depthchart.RankEntry{}, err
	}
	if roster != nil {
		roster[p.Key()] = p
		if err := s.saveRoster(ctx, roster); err != nil {
			if rbErr := s.saveChart(ctx, team, chart); rbErr != nil {
				logging.Error(logging.FromContext(ctx, s.logger), "failed to restore depth chart", rbErr,
					logging.FieldTeam, team,
				)
			}
			return depthchart.RankEntry{}, err
		}
	}
	return bucket[bucket.IndexOf(p.Number)], nil
}

// Remove drops number from position. ok is false, and nothing is written,
// when the player is not ranked there.
func (s *Store) Remove(ctx context.Context, team, position string, number int) (depthchart.RankEntry, bool, error) {
	team, err := teamKey(team)
	if err != nil {
		return depthchart.RankEntry{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chart, err := s.loadChart(ctx, team)
	if err != nil {
		return depthchart.RankEntry{}, false, err
	}

	bucket, removed, ok := chart.Bucket(position).Remove(number)
	if !ok {
		return depthchart.RankEntry{}, false, nil
	}
	if err := s.saveChart(ctx, team, chart.With(position, bucket)); err != nil {
		return depthchart.RankEntry{}, false, err
	}
	return removed, true, nil
}

// Backups returns the entries ranked behind number, shallowest first. Unknown
// buckets and players yield an empty slice.
func (s *Store) Backups(ctx context.Context, team, position string, number int) ([]depthchart.RankEntry, error) {
	team, err := teamKey(team)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	chart, err := s.loadChart(ctx, team)
	if err != nil {
		return nil, err
	}
	return chart.Bucket(position).Backups(number), nil
}

// FullChart returns every non-empty bucket for team.
func (s *Store) FullChart(ctx context.Context, team string) (depthchart.TeamChart, error) {
	team, err := teamKey(team)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadChart(ctx, team)
}

// ReplaceChart overwrites a team's chart wholesale. Buckets are normalized
// before writing. Used by seeding and imports.
func (s *Store) ReplaceChart(ctx context.Context, team string, chart depthchart.TeamChart) error {
	team, err := teamKey(team)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveChart(ctx, team, chart)
}

func (s *Store) loadChart(ctx context.Context, team string) (depthchart.TeamChart, error) {
	chart := depthchart.TeamChart{}
	if _, err := snapshots.LoadJSON(ctx, s.backend, snapshots.TeamChartResource(team), &chart); err != nil {
		return nil, fmt.Errorf("load chart %s: %w", team, err)
	}
	normalized := chart.Normalize()
	if repaired(chart, normalized) {
		logging.Warn(logging.FromContext(ctx, s.logger), "repaired stored depth chart", logging.FieldTeam, team)
	}
	return normalized, nil
}

func (s *Store) saveChart(ctx context.Context, team string, chart depthchart.TeamChart) error {
	if err := snapshots.SaveJSON(ctx, s.backend, snapshots.TeamChartResource(team), chart.Normalize()); err != nil {
		return fmt.Errorf("save chart %s: %w", team, err)
	}
	return nil
}

func repaired(before, after depthchart.TeamChart) bool {
	for pos, b := range before {
		if len(b) == 0 {
			continue
		}
		if b.Validate() != nil || len(after[pos]) != len(b) {
			return true
		}
	}
	return false
}
