package league

// Game is one singles or doubles line score within a match. Singles carry
// two players (home, away); doubles carry four (home pair, away pair).
type Game struct {
	Players   []string `json:"players"`
	HomeScore int      `json:"home_score"`
	AwayScore int      `json:"away_score"`
	// ScoreOK is false when a score cell was not numeric. The game is kept
	// so the validator can reject the whole report.
	ScoreOK bool `json:"score_ok"`
}

// Checkout lists one player's leg finishes in a match. An empty Finishes
// slice means the player recorded none.
type Checkout struct {
	Player   string `json:"player"`
	Finishes []int  `json:"finishes"`
}

// Totals is a home/away pair of aggregate counts.
type Totals struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// MatchReport is the parsed detail page of a single match, seen from the
// scraped team's perspective. It is built fresh per scrape and validated
// as a whole before anything derived from it is kept.
type MatchReport struct {
	MatchID   string     `json:"match_id"`
	Opponent  string     `json:"opponent"`
	Score     string     `json:"score"` // "H-A"
	Lineup    []string   `json:"lineup"`
	Singles   []Game     `json:"singles"`
	Doubles   []Game     `json:"doubles"`
	Checkouts []Checkout `json:"checkouts"`
	TotalLegs Totals     `json:"total_legs"`
	TotalSets Totals     `json:"total_sets"`
}

// ComputeTotals derives the leg and set totals from the line scores.
// A set goes to whichever side won the game; drawn games count for neither.
func (r *MatchReport) ComputeTotals() {
	r.TotalLegs = Totals{}
	r.TotalSets = Totals{}
	for _, g := range append(append([]Game{}, r.Singles...), r.Doubles...) {
		r.TotalLegs.Home += g.HomeScore
		r.TotalLegs.Away += g.AwayScore
		switch {
		case g.HomeScore > g.AwayScore:
			r.TotalSets.Home++
		case g.AwayScore > g.HomeScore:
			r.TotalSets.Away++
		}
	}
}
