package depthchart

import (
	"sort"
	"strings"

	domaindepthchart "github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/positions"
)

// Assembler joins raw buckets with position metadata and roster names. It
// never mutates its inputs.
type Assembler struct {
	catalog Catalog
}

func NewAssembler(catalog Catalog) *Assembler {
	return &Assembler{catalog: catalog}
}

type placed struct {
	meta   positions.Metadata
	bucket domaindepthchart.Bucket
}

// Assemble groups chart by the league taxonomy. Positions within a group are
// ordered by (sortOrder, code); groups follow their first position in that
// same order. Group labels compare case-insensitively.
func (a *Assembler) Assemble(teamID, league string, chart domaindepthchart.TeamChart, dir players.Directory) domaindepthchart.GroupedChart {
	entries := make([]placed, 0, len(chart))
	for _, code := range chart.Positions() {
		meta := a.resolve(league, code)
		meta.Code = code
		entries = append(entries, placed{meta: meta, bucket: chart[code]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return positions.Less(entries[i].meta, entries[j].meta)
	})

	out := domaindepthchart.GroupedChart{
		TeamID: teamID,
		League: league,
		Groups: []domaindepthchart.PositionGroup{},
	}
	index := make(map[string]int)
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.meta.Group))
		i, ok := index[key]
		if !ok {
			i = len(out.Groups)
			index[key] = i
			out.Groups = append(out.Groups, domaindepthchart.PositionGroup{
				Group:     e.meta.Group,
				Positions: []domaindepthchart.PositionChart{},
			})
		}
		out.Groups[i].Positions = append(out.Groups[i].Positions, domaindepthchart.PositionChart{
			Position: e.meta.Code,
			Name:     e.meta.Name,
			Players:  decorate(e.bucket, dir),
		})
	}
	return out
}

func (a *Assembler) resolve(league, code string) positions.Metadata {
	if a.catalog == nil {
		return positions.Unknown(code)
	}
	return a.catalog.Resolve(league, code)
}

func decorate(entries []domaindepthchart.RankEntry, dir players.Directory) []players.Player {
	out := make([]players.Player, 0, len(entries))
	for _, e := range entries {
		out = append(out, dir.Resolve(e.PlayerNumber))
	}
	return out
}
