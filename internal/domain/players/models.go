package players

import "fmt"

// Player is a roster record. TeamID and Number together form the durable
// identity; Name is display-only.
type Player struct {
	TeamID string `json:"teamId"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Key returns the identity key used by directory snapshots.
func (p Player) Key() string {
	return Key(p.TeamID, p.Number)
}

// Key builds the "<team>_<number>" identity key.
func Key(teamID string, number int) string {
	return fmt.Sprintf("%s_%d", teamID, number)
}

// Placeholder is the stand-in for a ranked player with no directory record.
func Placeholder(teamID string, number int) Player {
	return Player{
		TeamID: teamID,
		Number: number,
		Name:   fmt.Sprintf("Player #%d", number),
	}
}
