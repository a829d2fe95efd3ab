package catalog

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/positions"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

func sampleCatalog() *Catalog {
	return New(
		[]positions.Metadata{
			{League: "nfl", Code: "qb", Name: "Quarterback", Group: "Offense", SortOrder: 1},
			{League: "NFL", Code: "LWR", Name: "Left Wide Receiver", Group: "Offense", SortOrder: 3},
			{League: "NFL", Code: "RB", Name: "Running Back", Group: "Offense", SortOrder: 2},
			{League: "NFL", Code: "K", Group: " "},
			{League: "", Code: "X"},
		},
		[]teams.Team{
			{ID: "ne", Name: "New England Patriots", League: "nfl"},
			{ID: "TB", Name: "Tampa Bay Buccaneers", League: "NFL"},
			{ID: " "},
		},
	)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c := sampleCatalog()

	m, ok := c.Lookup("Nfl", " Qb ")
	require.True(t, ok)
	assert.Equal(t, "Quarterback", m.Name)
	assert.Equal(t, "QB", m.Code)

	_, ok = c.Lookup("NBA", "QB")
	assert.False(t, ok)
}

func TestResolveFallsBackToOther(t *testing.T) {
	c := sampleCatalog()

	m := c.Resolve("NFL", "LS")
	assert.Equal(t, positions.OtherGroup, m.Group)
	assert.Equal(t, "LS", m.Name)
	assert.Equal(t, math.MaxInt, m.SortOrder)
}

func TestMissingFieldsAreDefaulted(t *testing.T) {
	c := sampleCatalog()

	m, ok := c.Lookup("NFL", "K")
	require.True(t, ok)
	assert.Equal(t, "K", m.Name)
	assert.Equal(t, positions.OtherGroup, m.Group)
	assert.Equal(t, []string{"NFL"}, c.Leagues())
}

func TestPositionsAreInDisplayOrder(t *testing.T) {
	c := sampleCatalog()

	var codes []string
	for _, m := range c.Positions("nfl") {
		codes = append(codes, m.Code)
	}
	assert.Equal(t, []string{"K", "QB", "RB", "LWR"}, codes)
	assert.Empty(t, c.Positions("MLB"))
}

func TestTeamsSortedAndNormalized(t *testing.T) {
	c := sampleCatalog()

	list := c.Teams()
	require.Len(t, list, 2)
	assert.Equal(t, "NE", list[0].ID)
	assert.Equal(t, "NFL", list[0].League)

	tb, ok := c.Team("tb")
	require.True(t, ok)
	assert.Equal(t, "Tampa Bay Buccaneers", tb.Name)

	list[0].Name = "mutated"
	again, _ := c.Team("NE")
	assert.Equal(t, "New England Patriots", again.Name)
}

func TestLoadFromBackend(t *testing.T) {
	ctx := context.Background()
	backend := snapshots.NewMemoryBackend()

	empty, err := Load(ctx, backend)
	require.NoError(t, err)
	assert.Empty(t, empty.Teams())

	require.NoError(t, snapshots.SaveJSON(ctx, backend, snapshots.ResourcePositions, []positions.Metadata{
		{League: "NFL", Code: "QB", Name: "Quarterback", Group: "Offense", SortOrder: 1},
	}))
	require.NoError(t, snapshots.SaveJSON(ctx, backend, snapshots.ResourceTeams, []teams.Team{
		{ID: "TB", Name: "Tampa Bay Buccaneers", League: "NFL"},
	}))

	c, err := Load(ctx, backend)
	require.NoError(t, err)
	_, ok := c.Lookup("NFL", "QB")
	assert.True(t, ok)
	assert.Len(t, c.Teams(), 1)
}

func TestLoadReportsCorruptResource(t *testing.T) {
	ctx := context.Background()
	backend := snapshots.NewMemoryBackend()
	require.NoError(t, backend.Save(ctx, snapshots.ResourcePositions, []byte("{")))

	_, err := Load(ctx, backend)
	assert.ErrorContains(t, err, "load positions")
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Empty(t, c.Teams())
	assert.Empty(t, c.Positions("NFL"))
	assert.Equal(t, positions.OtherGroup, c.Resolve("NFL", "QB").Group)
}

func TestEmptyCatalogListsNoTeams(t *testing.T) {
	got := New(nil, nil).Teams()
	require.NotNil(t, got)
	assert.Empty(t, got)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
