// Package seed writes default reference data and optional sample depth
// charts into an empty store.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/positions"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
)

//go:embed default.yaml
var defaultDataset []byte

type positionDoc struct {
	League    string `yaml:"league"`
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Group     string `yaml:"group"`
	SortOrder int    `yaml:"sortOrder"`
}

type teamDoc struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	League string `yaml:"league"`
}

// Placeholder is the chart given to teams without a sample chart.
type Placeholder struct {
	Position string `yaml:"position"`
	Number   int    `yaml:"number"`
}

type datasetDoc struct {
	Positions   []positionDoc               `yaml:"positions"`
	Teams       []teamDoc                   `yaml:"teams"`
	Players     map[string]map[int]string   `yaml:"players"`
	Charts      map[string]map[string][]int `yaml:"charts"`
	Placeholder *Placeholder                `yaml:"placeholder"`
}

// Dataset is the decoded seed file.
type Dataset struct {
	Positions   []positions.Metadata
	Teams       []teams.Team
	Players     []players.Player
	Charts      map[string]depthchart.TeamChart
	Placeholder *Placeholder
}

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	return Parse(defaultDataset)
}

// Load reads a dataset from path, or the embedded default when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset. Team and position codes are normalized;
// chart lists are starter first.
func Parse(data []byte) (Dataset, error) {
	var doc datasetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Dataset{}, fmt.Errorf("parse seed: %w", err)
	}

	ds := Dataset{
		Positions: make([]positions.Metadata, 0, len(doc.Positions)),
		Teams:     make([]teams.Team, 0, len(doc.Teams)),
		Charts:    make(map[string]depthchart.TeamChart, len(doc.Charts)),
	}
	for _, p := range doc.Positions {
		ds.Positions = append(ds.Positions, positions.Metadata{
			League:    positions.NormalizeLeague(p.League),
			Code:      positions.NormalizeCode(p.Code),
			Name:      p.Name,
			Group:     p.Group,
			SortOrder: p.SortOrder,
		})
	}
	for _, t := range doc.Teams {
		ds.Teams = append(ds.Teams, teams.Team{
			ID:     teams.NormalizeID(t.ID),
			Name:   t.Name,
			League: positions.NormalizeLeague(t.League),
		})
	}
	seen := make(map[string]bool)
	for team, roster := range doc.Players {
		id := teams.NormalizeID(team)
		for number, name := range roster {
			if number < 0 || name == "" {
				return Dataset{}, fmt.Errorf("invalid seed player %s #%d", team, number)
			}
			p := players.Player{TeamID: id, Number: number, Name: name}
			if seen[p.Key()] {
				return Dataset{}, fmt.Errorf("duplicate seed player %s #%d", id, number)
			}
			seen[p.Key()] = true
			ds.Players = append(ds.Players, p)
		}
	}
	sort.Slice(ds.Players, func(i, j int) bool {
		if ds.Players[i].TeamID != ds.Players[j].TeamID {
			return ds.Players[i].TeamID < ds.Players[j].TeamID
		}
		return ds.Players[i].Number < ds.Players[j].Number
	})
	for team, byPosition := range doc.Charts {
		id := teams.NormalizeID(team)
		if _, dup := ds.Charts[id]; dup {
			return Dataset{}, fmt.Errorf("duplicate seed chart for team %s", id)
		}
		chart := depthchart.TeamChart{}
		for pos, numbers := range byPosition {
			code := positions.NormalizeCode(pos)
			if _, dup := chart[code]; dup {
				return Dataset{}, fmt.Errorf("duplicate seed chart position %s %s", id, code)
			}
			var b depthchart.Bucket
			for _, n := range numbers {
				b = b.Insert(n, nil)
			}
			chart[code] = b
		}
		ds.Charts[id] = chart.Normalize()
	}
	if doc.Placeholder != nil {
		ph := *doc.Placeholder
		ph.Position = positions.NormalizeCode(ph.Position)
		if ph.Position != "" && ph.Number >= 0 {
			ds.Placeholder = &ph
		}
	}
	return ds, nil
}

// SampleChart returns the chart seeded for team: its listed chart, or the
// placeholder entry. ok is false when the dataset has neither.
func (d Dataset) SampleChart(team string) (depthchart.TeamChart, bool) {
	if chart, ok := d.Charts[teams.NormalizeID(team)]; ok && len(chart) > 0 {
		return chart, true
	}
	if d.Placeholder == nil {
		return nil, false
	}
	return depthchart.TeamChart{
		d.Placeholder.Position: {{PlayerNumber: d.Placeholder.Number, Depth: 0}},
	}, true
}
