package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/depth-chart-service/internal/catalog"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/positions"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
	"github.com/preston-bernstein/depth-chart-service/internal/store"
)

// SamplePositions is a trimmed NFL and NBA taxonomy.
func SamplePositions() []positions.Metadata {
	return []positions.Metadata{
		{League: "NFL", Code: "QB", Name: "Quarterback", Group: "Offense", SortOrder: 1},
		{League: "NFL", Code: "RB", Name: "Running Back", Group: "Offense", SortOrder: 2},
		{League: "NFL", Code: "LWR", Name: "Left Wide Receiver", Group: "Offense", SortOrder: 10},
		{League: "NFL", Code: "LB", Name: "Linebacker", Group: "Defense", SortOrder: 37},
		{League: "NFL", Code: "K", Name: "Kicker", Group: "Special Teams", SortOrder: 50},
		{League: "NBA", Code: "PG", Name: "Point Guard", Group: "Guards", SortOrder: 1},
	}
}

// SampleTeams pairs with SamplePositions.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: "TB", Name: "Tampa Bay Buccaneers", League: "NFL"},
		{ID: "KC", Name: "Kansas City Chiefs", League: "NFL"},
		{ID: "LAL", Name: "Los Angeles Lakers", League: "NBA"},
	}
}

// SampleCatalog builds a catalog from the sample taxonomy and teams.
func SampleCatalog() *catalog.Catalog {
	return catalog.New(SamplePositions(), SampleTeams())
}

// NewMemoryStore returns a store over a fresh in-memory backend.
func NewMemoryStore() *store.Store {
	return store.New(snapshots.NewMemoryBackend(), nil)
}

// SaveReference writes the sample positions and teams into backend so
// catalog.Load can read them back.
func SaveReference(t *testing.T, backend snapshots.Backend) {
	t.Helper()
	ctx := context.Background()
	if err := snapshots.SaveJSON(ctx, backend, snapshots.ResourcePositions, SamplePositions()); err != nil {
		t.Fatalf("save positions: %v", err)
	}
	if err := snapshots.SaveJSON(ctx, backend, snapshots.ResourceTeams, SampleTeams()); err != nil {
		t.Fatalf("save teams: %v", err)
	}
}
