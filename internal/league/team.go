package league

// TeamStats holds one team's season summary: three-dart average plus the
// singles and doubles match records.
type TeamStats struct {
	Average float64 `json:"average"`
	Singles Record  `json:"singles"`
	Doubles Record  `json:"doubles"`
}

// Standing is one row of the league table.
type Standing struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Games  int    `json:"games"`
	Points int    `json:"points"`
}

// Tally counts a special statistic (180s) for one player.
type Tally struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
}

// Finish is one high-finish entry for a player.
type Finish struct {
	Player string `json:"player"`
	Value  int    `json:"value"`
}

// SpecialStats groups the league's special-statistic leaderboards.
type SpecialStats struct {
	OneEighties  []Tally  `json:"one_eighties"`
	HighFinishes []Finish `json:"high_finishes"`
}
