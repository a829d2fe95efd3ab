// Package catalog holds read-only reference data: each league's position
// taxonomy and the team list. It is loaded once at startup.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/positions"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	positions map[string]map[string]positions.Metadata
	teams     []teams.Team
	teamByID  map[string]teams.Team
}

// New indexes metadata by (league, code) and teams by ID. Keys are
// normalized; later duplicates win.
func New(meta []positions.Metadata, teamList []teams.Team) *Catalog {
	c := &Catalog{
		positions: make(map[string]map[string]positions.Metadata),
		teamByID:  make(map[string]teams.Team, len(teamList)),
	}
	for _, m := range meta {
		m.League = positions.NormalizeLeague(m.League)
		m.Code = positions.NormalizeCode(m.Code)
		if m.League == "" || m.Code == "" {
			continue
		}
		if m.Name == "" {
			m.Name = m.Code
		}
		if strings.TrimSpace(m.Group) == "" {
			m.Group = positions.OtherGroup
		}
		byCode, ok := c.positions[m.League]
		if !ok {
			byCode = make(map[string]positions.Metadata)
			c.positions[m.League] = byCode
		}
		byCode[m.Code] = m
	}
	for _, t := range teamList {
		t.ID = teams.NormalizeID(t.ID)
		if t.ID == "" {
			continue
		}
		t.League = positions.NormalizeLeague(t.League)
		c.teamByID[t.ID] = t
	}
	c.teams = make([]teams.Team, 0, len(c.teamByID))
	for _, t := range c.teamByID {
		c.teams = append(c.teams, t)
	}
	sort.Slice(c.teams, func(i, j int) bool { return c.teams[i].ID < c.teams[j].ID })
	return c
}

// Load reads the positions and teams resources. Missing resources yield an
// empty catalog.
func Load(ctx context.Context, backend snapshots.Backend) (*Catalog, error) {
	var meta []positions.Metadata
	if _, err := snapshots.LoadJSON(ctx, backend, snapshots.ResourcePositions, &meta); err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}
	var teamList []teams.Team
	if _, err := snapshots.LoadJSON(ctx, backend, snapshots.ResourceTeams, &teamList); err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	return New(meta, teamList), nil
}

// Lookup finds metadata for code in league, case-insensitively.
func (c *Catalog) Lookup(league, code string) (positions.Metadata, bool) {
	if c == nil {
		return positions.Metadata{}, false
	}
	m, ok := c.positions[positions.NormalizeLeague(league)][positions.NormalizeCode(code)]
	return m, ok
}

// Resolve returns catalogued metadata or the synthetic "Other" entry.
func (c *Catalog) Resolve(league, code string) positions.Metadata {
	if m, ok := c.Lookup(league, code); ok {
		return m
	}
	u := positions.Unknown(code)
	u.League = positions.NormalizeLeague(league)
	return u
}

// Positions lists a league's taxonomy in display order.
func (c *Catalog) Positions(league string) []positions.Metadata {
	if c == nil {
		return []positions.Metadata{}
	}
	byCode := c.positions[positions.NormalizeLeague(league)]
	out := make([]positions.Metadata, 0, len(byCode))
	for _, m := range byCode {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return positions.Less(out[i], out[j]) })
	return out
}

// Leagues lists leagues with at least one catalogued position.
func (c *Catalog) Leagues() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, 0, len(c.positions))
	for league := range c.positions {
		out = append(out, league)
	}
	sort.Strings(out)
	return out
}

// Teams returns every team ordered by ID.
func (c *Catalog) Teams() []teams.Team {
	if c == nil {
		return []teams.Team{}
	}
	out := make([]teams.Team, len(c.teams))
	copy(out, c.teams)
	return out
}

// Team finds a team by ID, case-insensitively.
func (c *Catalog) Team(id string) (teams.Team, bool) {
	if c == nil {
		return teams.Team{}, false
	}
	t, ok := c.teamByID[teams.NormalizeID(id)]
	return t, ok
}
