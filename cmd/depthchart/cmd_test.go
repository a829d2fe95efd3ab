package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	domaindepthchart "github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
)

// execute runs the CLI against dir with the given backend and returns
// combined output.
func execute(t *testing.T, backend, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEED_ENABLED", "true")
	t.Setenv("DEFAULT_LEAGUE", "NFL")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--backend", backend, "--data-dir", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := execute(t, "fs", dir, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

func TestRootCmdMetadata(t *testing.T) {
	root := newRootCmd()
	if root.Use != "depthchart" {
		t.Errorf("expected Use 'depthchart', got %q", root.Use)
	}
	for _, name := range []string{"backend", "data-dir", "log-level", "seed-file"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q", name)
		}
	}
	for _, name := range []string{"add", "remove", "backups", "chart", "teams", "seed", "export"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q", name)
		}
	}
}

func TestAddBackupsRemove(t *testing.T) {
	dir := t.TempDir()

	out := mustExecute(t, dir, "add", "TB", "QB", "12", "Tom", "Brady")
	if !strings.Contains(out, "Added #12 Tom Brady to TB QB") {
		t.Fatalf("unexpected add output: %s", out)
	}
	mustExecute(t, dir, "add", "tb", "qb", "11", "Blaine", "Gabbert")
	mustExecute(t, dir, "add", "TB", "QB", "2", "Kyle", "Trask", "--depth", "1")

	out = mustExecute(t, dir, "backups", "TB", "QB", "12")
	trask := strings.Index(out, "#2 Kyle Trask")
	gabbert := strings.Index(out, "#11 Blaine Gabbert")
	if trask < 0 || gabbert < 0 || trask > gabbert {
		t.Fatalf("expected Trask ahead of Gabbert, got: %s", out)
	}

	out = mustExecute(t, dir, "remove", "TB", "QB", "2")
	if !strings.Contains(out, "Removed #2 Kyle Trask") {
		t.Fatalf("unexpected remove output: %s", out)
	}

	if _, err := execute(t, "fs", dir, "remove", "TB", "QB", "2"); err == nil {
		t.Fatalf("expected error removing an unranked player")
	}

	out = mustExecute(t, dir, "backups", "TB", "QB", "11")
	if !strings.Contains(out, "(none)") {
		t.Fatalf("expected no backups for last player, got: %s", out)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "fs", dir, "add", "TB", "QB", "twelve", "Tom"); err == nil {
		t.Fatalf("expected error for non-numeric number")
	}
	if _, err := execute(t, "fs", dir, "add", "TB", "QB", "12"); err == nil {
		t.Fatalf("expected error when name is missing")
	}
	if _, err := execute(t, "fs", dir, "add", "TB", "", "12", "Tom"); err == nil {
		t.Fatalf("expected validation error for empty position")
	}
}

func TestTeamsListsSeededTeams(t *testing.T) {
	out := mustExecute(t, t.TempDir(), "teams")
	for _, id := range []string{"TB", "KC", "SF"} {
		if !strings.Contains(out, id) {
			t.Fatalf("expected team %s in output: %s", id, out)
		}
	}
}

func TestSeedSampleChartsThenChart(t *testing.T) {
	dir := t.TempDir()

	out := mustExecute(t, dir, "seed", "--sample-charts")
	if !strings.Contains(out, "Seed complete") || !strings.Contains(out, "TB") {
		t.Fatalf("unexpected seed output: %s", out)
	}

	out = mustExecute(t, dir, "seed")
	if !strings.Contains(out, "nothing to seed") {
		t.Fatalf("expected second seed to be a no-op, got: %s", out)
	}

	out = mustExecute(t, dir, "chart", "TB")
	for _, want := range []string{"TB depth chart (NFL)", "Offense", "#12 Tom Brady"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in chart output: %s", want, out)
		}
	}
}

func TestChartJSON(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "add", "KC", "QB", "15", "Patrick", "Mahomes")

	out := mustExecute(t, dir, "chart", "KC", "--json")
	var chart domaindepthchart.GroupedChart
	if err := json.Unmarshal([]byte(out), &chart); err != nil {
		t.Fatalf("expected JSON chart, got %v: %s", err, out)
	}
	if chart.TeamID != "KC" || len(chart.Groups) != 1 {
		t.Fatalf("unexpected chart %+v", chart)
	}
	if got := chart.Groups[0].Positions[0].Players[0].Name; got != "Patrick Mahomes" {
		t.Fatalf("expected Patrick Mahomes, got %q", got)
	}
}

func TestExportChartsOnly(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "add", "TB", "QB", "12", "Tom", "Brady")

	path := filepath.Join(t.TempDir(), "charts.yaml")
	out := mustExecute(t, dir, "export", "--charts", "-o", path)
	if !strings.Contains(out, "Exported 1 resources") {
		t.Fatalf("unexpected export output: %s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("expected YAML export: %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("expected only depth charts, got keys %v", doc)
	}
	if _, ok := doc["depthcharts-tb"]; !ok {
		t.Fatalf("expected depthcharts-tb in export, got keys %v", doc)
	}
}

func TestExportWritesYAML(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "add", "TB", "QB", "12", "Tom", "Brady")

	path := filepath.Join(t.TempDir(), "export.yaml")
	out := mustExecute(t, dir, "export", "-o", path)
	if !strings.Contains(out, "Exported 4 resources") {
		t.Fatalf("unexpected export output: %s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("expected YAML export: %v", err)
	}
	for _, key := range []string{"positions", "teams", "players", "depthcharts-tb"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("expected %s in export, got keys %v", key, doc)
		}
	}
}

func TestBackendsPersistAcrossInvocations(t *testing.T) {
	for _, backend := range []string{"badger", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			if out, err := execute(t, backend, dir, "add", "GB", "QB", "12", "Aaron", "Rodgers"); err != nil {
				t.Fatalf("add failed: %v\n%s", err, out)
			}
			out, err := execute(t, backend, dir, "backups", "GB", "QB", "12")
			if err != nil {
				t.Fatalf("backups failed: %v\n%s", err, out)
			}
			out, err = execute(t, backend, dir, "chart", "GB")
			if err != nil || !strings.Contains(out, "#12 Aaron Rodgers") {
				t.Fatalf("expected persisted chart, got %v: %s", err, out)
			}
		})
	}
}

func TestUnknownBackendFails(t *testing.T) {
	if _, err := execute(t, "tape", t.TempDir(), "teams"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
