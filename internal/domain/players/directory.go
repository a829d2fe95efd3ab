package players

import "sort"

// Directory is a read-only view of one team's roster keyed by jersey number.
type Directory struct {
	teamID   string
	byNumber map[int]Player
}

// NewDirectory indexes roster entries belonging to teamID. Entries for other
// teams are ignored.
func NewDirectory(teamID string, roster []Player) Directory {
	byNumber := make(map[int]Player, len(roster))
	for _, p := range roster {
		if p.TeamID != teamID {
			continue
		}
		byNumber[p.Number] = p
	}
	return Directory{teamID: teamID, byNumber: byNumber}
}

// TeamID reports which team the directory covers.
func (d Directory) TeamID() string {
	return d.teamID
}

// Lookup returns the stored player for number, if any.
func (d Directory) Lookup(number int) (Player, bool) {
	p, ok := d.byNumber[number]
	return p, ok
}

// Resolve returns the stored player or, when the roster has no record for
// number, a Placeholder. Charts must render with incomplete rosters.
func (d Directory) Resolve(number int) Player {
	if p, ok := d.Lookup(number); ok {
		return p
	}
	return Placeholder(d.teamID, number)
}

// Players returns the roster ordered by jersey number.
func (d Directory) Players() []Player {
	out := make([]Player, 0, len(d.byNumber))
	for _, p := range d.byNumber {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Len reports how many players the directory holds.
func (d Directory) Len() int {
	return len(d.byNumber)
}
