package league

// Record is a won/lost tally for one game format.
type Record struct {
	Won  int `json:"won"`
	Lost int `json:"lost"`
}

// Percentage returns the win rate as a percentage, 0 when no games were played.
func (r Record) Percentage() float64 {
	total := r.Won + r.Lost
	if total == 0 {
		return 0
	}
	return float64(r.Won) / float64(total) * 100
}

// PlayerStats holds one player's accumulated season statistics for a team.
type PlayerStats struct {
	Name               string  `json:"name"`
	Team               string  `json:"team"`
	Average            float64 `json:"average"`
	SinglesWon         int     `json:"singles_won"`
	SinglesLost        int     `json:"singles_lost"`
	SinglesPercentage  float64 `json:"singles_percentage"`
	DoublesWon         int     `json:"doubles_won"`
	DoublesLost        int     `json:"doubles_lost"`
	DoublesPercentage  float64 `json:"doubles_percentage"`
	CombinedPercentage float64 `json:"combined_percentage"`
}

// Partial carries the fields one extraction pass produced for a player.
// The sections of a team page (averages, singles, doubles) are extracted
// independently, so each field group is optional.
type Partial struct {
	Name    string
	Team    string
	Average *float64
	Singles *Record
	Doubles *Record
}

// MergePlayer folds a partial record into the list, find-or-create by the
// (name, team) key. Only the field groups the partial carries are touched,
// which makes the final list independent of the order sections were
// extracted in.
func MergePlayer(players []PlayerStats, p Partial) []PlayerStats {
	for i := range players {
		if players[i].Name == p.Name && players[i].Team == p.Team {
			applyPartial(&players[i], p)
			return players
		}
	}
	ps := PlayerStats{Name: p.Name, Team: p.Team}
	applyPartial(&ps, p)
	return append(players, ps)
}

func applyPartial(ps *PlayerStats, p Partial) {
	if p.Average != nil {
		ps.Average = *p.Average
	}
	if p.Singles != nil {
		ps.SinglesWon = p.Singles.Won
		ps.SinglesLost = p.Singles.Lost
		ps.SinglesPercentage = p.Singles.Percentage()
	}
	if p.Doubles != nil {
		ps.DoublesWon = p.Doubles.Won
		ps.DoublesLost = p.Doubles.Lost
		ps.DoublesPercentage = p.Doubles.Percentage()
	}
}

// FinalizeCombined recomputes every player's combined percentage across
// singles and doubles. Call once after all partials for a page have been
// merged.
func FinalizeCombined(players []PlayerStats) {
	for i := range players {
		won := players[i].SinglesWon + players[i].DoublesWon
		total := won + players[i].SinglesLost + players[i].DoublesLost
		if total == 0 {
			players[i].CombinedPercentage = 0
			continue
		}
		players[i].CombinedPercentage = float64(won) / float64(total) * 100
	}
}
