package positions

import (
	"math"
	"strings"
)

// OtherGroup collects positions missing from a league's taxonomy.
const OtherGroup = "Other"

// Metadata describes one position code within a league.
type Metadata struct {
	League    string `json:"league"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	SortOrder int    `json:"sortOrder"`
}

// NormalizeCode trims and upper-cases a position code so "qb", " QB " and
// "QB" address the same bucket.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeLeague applies the same rule to league identifiers.
func NormalizeLeague(league string) string {
	return strings.ToUpper(strings.TrimSpace(league))
}

// Unknown synthesizes metadata for a code absent from the catalog. It sorts
// after every catalogued position.
func Unknown(code string) Metadata {
	return Metadata{
		Code:      code,
		Name:      code,
		Group:     OtherGroup,
		SortOrder: math.MaxInt,
	}
}

// Less orders positions by sort order, then code case-insensitively.
func Less(a, b Metadata) bool {
	if a.SortOrder != b.SortOrder {
		return a.SortOrder < b.SortOrder
	}
	return strings.ToLower(a.Code) < strings.ToLower(b.Code)
}
