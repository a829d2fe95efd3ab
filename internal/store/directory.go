package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

// UpsertPlayer creates or renames the roster record keyed by (team, number).
func (s *Store) UpsertPlayer(ctx context.Context, p players.Player) error {
	team, err := teamKey(p.TeamID)
	if err != nil {
		return err
	}
	p.TeamID = team

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.loadRoster(ctx)
	if err != nil {
		return err
	}
	roster[p.Key()] = p
	return s.saveRoster(ctx, roster)
}

// Directory returns the roster for one team.
func (s *Store) Directory(ctx context.Context, team string) (players.Directory, error) {
	team, err := teamKey(team)
	if err != nil {
		return players.Directory{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, err := s.loadRoster(ctx)
	if err != nil {
		return players.Directory{}, err
	}
	list := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		list = append(list, p)
	}
	return players.NewDirectory(team, list), nil
}

// SeedPlayers adds roster records that do not exist yet and reports how many
// were written. Existing names are kept.
func (s *Store) SeedPlayers(ctx context.Context, seed []players.Player) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.loadRoster(ctx)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, p := range seed {
		team, err := teamKey(p.TeamID)
		if err != nil {
			return 0, err
		}
		p.TeamID = team
		if _, ok := roster[p.Key()]; ok {
			continue
		}
		roster[p.Key()] = p
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.saveRoster(ctx, roster)
}

func (s *Store) loadRoster(ctx context.Context) (map[string]players.Player, error) {
	var list []players.Player
	if _, err := snapshots.LoadJSON(ctx, s.backend, snapshots.ResourcePlayers, &list); err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	roster := make(map[string]players.Player, len(list))
	for _, p := range list {
		roster[p.Key()] = p
	}
	return roster, nil
}

func (s *Store) saveRoster(ctx context.Context, roster map[string]players.Player) error {
	list := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].TeamID != list[j].TeamID {
			return list[i].TeamID < list[j].TeamID
		}
		return list[i].Number < list[j].Number
	})
	if err := snapshots.SaveJSON(ctx, s.backend, snapshots.ResourcePlayers, list); err != nil {
		return fmt.Errorf("save players: %w", err)
	}
	return nil
}
