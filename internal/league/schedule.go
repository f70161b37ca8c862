package league

import (
	"sort"
	"time"
)

// ScheduleMatch is one fixture of a league round.
type ScheduleMatch struct {
	Round    int       `json:"round"`
	Date     time.Time `json:"date"`
	DateText string    `json:"date_text"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	Venue    string    `json:"venue,omitempty"`
	Address  string    `json:"address,omitempty"`
}

// SortSchedule orders matches chronologically, rounds as a tie breaker for
// matches without a parseable date.
func SortSchedule(matches []ScheduleMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].Round < matches[j].Round
	})
}

// Involves reports whether the given team plays in this match.
func (m ScheduleMatch) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}
