package depthchart

import (
	"strings"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
)

// PositionChart is one position's ranked players, starter first.
type PositionChart struct {
	Position string           `json:"position"`
	Name     string           `json:"name"`
	Players  []players.Player `json:"players"`
}

// PositionGroup collects positions sharing a taxonomy group.
type PositionGroup struct {
	Group     string          `json:"group"`
	Positions []PositionChart `json:"positions"`
}

// GroupedChart is the client-facing depth chart for a team.
type GroupedChart struct {
	TeamID string          `json:"teamId"`
	League string          `json:"league"`
	Groups []PositionGroup `json:"groups"`
}

// Group finds a group by label, case-insensitively.
func (g GroupedChart) Group(name string) (PositionGroup, bool) {
	for _, grp := range g.Groups {
		if strings.EqualFold(grp.Group, name) {
			return grp, true
		}
	}
	return PositionGroup{}, false
}
