package snapshots

import (
	"errors"
	"fmt"
	"strings"
)

// Reference and directory resources.
const (
	ResourcePositions = "positions"
	ResourceTeams     = "teams"
	ResourcePlayers   = "players"
)

const teamChartPrefix = "depthcharts-"

// TeamChartResource names the snapshot holding one team's buckets.
func TeamChartResource(teamID string) string {
	return teamChartPrefix + strings.ToLower(teamID)
}

// IsTeamChartResource reports whether name holds a team chart.
func IsTeamChartResource(name string) bool {
	return strings.HasPrefix(name, teamChartPrefix) && len(name) > len(teamChartPrefix)
}

// ErrInvalidName rejects names that are empty or could escape the storage root.
var ErrInvalidName = errors.New("invalid snapshot name")

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return nil
}
