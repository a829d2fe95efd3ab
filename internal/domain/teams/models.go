package teams

import "strings"

// Team is reference data: an identifier, a display name and the league whose
// position taxonomy applies to its depth chart.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	League string `json:"league"`
}

// NormalizeID canonicalizes a team identifier: trimmed and upper-cased.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
