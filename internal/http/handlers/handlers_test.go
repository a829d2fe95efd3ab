package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	appdepthchart "github.com/preston-bernstein/depth-chart-service/internal/app/depthchart"
	appplayers "github.com/preston-bernstein/depth-chart-service/internal/app/players"
	appteams "github.com/preston-bernstein/depth-chart-service/internal/app/teams"
	domaindepthchart "github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/testutil"
)

func newTestHandler(t *testing.T, ready ReadyFunc) *Handler {
	t.Helper()
	st := testutil.NewMemoryStore()
	cat := testutil.SampleCatalog()
	logger, _ := testutil.NewBufferLogger()
	depth := appdepthchart.NewService(st, cat, appdepthchart.Options{Logger: logger, DefaultLeague: "NFL"})
	return NewHandler(depth, appteams.NewService(cat), appplayers.NewService(st), ready, logger)
}

func routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func addPlayer(t *testing.T, srv http.Handler, team, position string, number int, name string, depth *int) {
	t.Helper()
	body := map[string]any{
		"position": position,
		"player":   map[string]any{"number": number, "name": name},
	}
	if depth != nil {
		body["positionDepth"] = *depth
	}
	rr := testutil.ServeJSON(t, srv, http.MethodPost, "/depthchart/"+team+"/players", body)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func intPtr(v int) *int { return &v }

func TestHealth(t *testing.T) {
	srv := routes(newTestHandler(t, nil))

	rr := testutil.Serve(srv, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	srv := routes(newTestHandler(t, func(context.Context) error { return nil }))
	testutil.AssertStatus(t, testutil.Serve(srv, http.MethodGet, "/ready", nil), http.StatusOK)

	failing := routes(newTestHandler(t, func(context.Context) error { return errors.New("disk gone") }))
	rr := testutil.Serve(failing, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if strings.Contains(rr.Body.String(), "disk gone") {
		t.Fatalf("expected storage detail to stay out of the body")
	}
}

func TestTeams(t *testing.T) {
	srv := routes(newTestHandler(t, nil))

	rr := testutil.Serve(srv, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var got []teams.Team
	testutil.DecodeJSON(t, rr, &got)
	if len(got) != len(testutil.SampleTeams()) {
		t.Fatalf("expected %d teams, got %d", len(testutil.SampleTeams()), len(got))
	}
}

func TestAddRemoveBackupsFlow(t *testing.T) {
	srv := routes(newTestHandler(t, nil))

	addPlayer(t, srv, "TB", "QB", 12, "Tom Brady", intPtr(0))
	addPlayer(t, srv, "TB", "QB", 11, "Blaine Gabbert", intPtr(1))
	addPlayer(t, srv, "TB", "QB", 2, "Kyle Trask", nil)

	rr := testutil.Serve(srv, http.MethodGet, "/depthchart/TB/positions/QB/players/12/backups", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var backups []players.Player
	testutil.DecodeJSON(t, rr, &backups)
	if len(backups) != 2 || backups[0].Number != 11 || backups[1].Number != 2 {
		t.Fatalf("unexpected backups %+v", backups)
	}

	rr = testutil.Serve(srv, http.MethodDelete, "/depthchart/TB/positions/qb/players/11", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var removed players.Player
	testutil.DecodeJSON(t, rr, &removed)
	if removed.Number != 11 || removed.Name != "Blaine Gabbert" {
		t.Fatalf("unexpected removed player %+v", removed)
	}

	rr = testutil.Serve(srv, http.MethodDelete, "/depthchart/TB/positions/QB/players/11", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(srv, http.MethodGet, "/depthchart/TB/positions/QB/players/2/backups", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	backups = nil
	testutil.DecodeJSON(t, rr, &backups)
	if len(backups) != 0 {
		t.Fatalf("expected no backups for last player, got %+v", backups)
	}
}

func TestFullChart(t *testing.T) {
	srv := routes(newTestHandler(t, nil))
	addPlayer(t, srv, "TB", "LB", 54, "Lavonte David", nil)
	addPlayer(t, srv, "TB", "QB", 12, "Tom Brady", nil)

	rr := testutil.Serve(srv, http.MethodGet, "/depthchart/tb", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var chart domaindepthchart.GroupedChart
	testutil.DecodeJSON(t, rr, &chart)
	if chart.TeamID != "TB" || chart.League != "NFL" {
		t.Fatalf("unexpected chart header %+v", chart)
	}
	if len(chart.Groups) != 2 || chart.Groups[0].Group != "Offense" || chart.Groups[1].Group != "Defense" {
		t.Fatalf("unexpected groups %+v", chart.Groups)
	}
}

func TestFullChartUnknownTeamWithoutDefaultLeague(t *testing.T) {
	st := testutil.NewMemoryStore()
	cat := testutil.SampleCatalog()
	h := NewHandler(appdepthchart.NewService(st, cat, appdepthchart.Options{}), appteams.NewService(cat), appplayers.NewService(st), nil, nil)

	rr := testutil.Serve(routes(h), http.MethodGet, "/depthchart/XYZ", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["field"] != "league" {
		t.Fatalf("expected league validation error, got %v", body)
	}
}

func TestAddPlayerValidation(t *testing.T) {
	srv := routes(newTestHandler(t, nil))

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing position", body: `{"player":{"number":12,"name":"Tom Brady"}}`, field: "position"},
		{name: "missing number", body: `{"position":"QB","player":{"name":"Tom Brady"}}`, field: "player.Number"},
		{name: "missing name", body: `{"position":"QB","player":{"number":12}}`, field: "player.Name"},
		{name: "negative number", body: `{"position":"QB","player":{"number":-1,"name":"X"}}`, field: "player.Number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.Serve(srv, http.MethodPost, "/depthchart/TB/players", strings.NewReader(tc.body))
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
			var body map[string]string
			testutil.DecodeJSON(t, rr, &body)
			if body["field"] != tc.field {
				t.Fatalf("expected field %s, got %v", tc.field, body)
			}
		})
	}
}

func TestAddPlayerRejectsMalformedBody(t *testing.T) {
	srv := routes(newTestHandler(t, nil))

	for _, body := range []string{"", "{", `{"position":"QB","extra":1}`, `{"position":"QB"} {}`} {
		rr := testutil.Serve(srv, http.MethodPost, "/depthchart/TB/players", strings.NewReader(body))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestPathNumbersMustBeIntegers(t *testing.T) {
	srv := routes(newTestHandler(t, nil))

	testutil.AssertStatus(t, testutil.Serve(srv, http.MethodDelete, "/depthchart/TB/positions/QB/players/abc", nil), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(srv, http.MethodGet, "/depthchart/TB/positions/QB/players/abc/backups", nil), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(srv, http.MethodPut, "/depthchart/TB/players/abc", strings.NewReader(`{"name":"X"}`)), http.StatusBadRequest)
}

func TestUpsertPlayerAndRoster(t *testing.T) {
	srv := routes(newTestHandler(t, nil))
	addPlayer(t, srv, "TB", "QB", 12, "Tom Brady", nil)

	rr := testutil.Serve(srv, http.MethodPut, "/depthchart/TB/players/12", strings.NewReader(`{"name":"T. Brady"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var stored players.Player
	testutil.DecodeJSON(t, rr, &stored)
	if stored.Name != "T. Brady" || stored.TeamID != "TB" {
		t.Fatalf("unexpected upserted player %+v", stored)
	}

	rr = testutil.Serve(srv, http.MethodGet, "/teams/TB/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var roster []players.Player
	testutil.DecodeJSON(t, rr, &roster)
	if len(roster) != 1 || roster[0].Name != "T. Brady" {
		t.Fatalf("unexpected roster %+v", roster)
	}
}
