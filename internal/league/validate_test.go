package league

import "testing"

func validFixtureReport() *MatchReport {
	return &MatchReport{
		Opponent: "DV Adler",
		Score:    "9-3",
		Lineup:   []string{"Hans Meier", "Petra Kurz", "Jens Roth", "Timo Beck"},
		Singles: []Game{
			{Players: []string{"Hans Meier", "Uwe Lang"}, HomeScore: 3, AwayScore: 1, ScoreOK: true},
			{Players: []string{"Petra Kurz", "Ralf Dorn"}, HomeScore: 3, AwayScore: 2, ScoreOK: true},
		},
		Doubles: []Game{
			{Players: []string{"Hans Meier", "Petra Kurz", "Uwe Lang", "Ralf Dorn"}, HomeScore: 3, AwayScore: 0, ScoreOK: true},
		},
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"Hans Meier", false},
		{"[Spieler 4]", true},
		{"[Name]", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPlaceholder(tt.name); got != tt.expected {
			t.Errorf("IsPlaceholder(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestValidReport(t *testing.T) {
	if !ValidReport(validFixtureReport()) {
		t.Fatal("expected fixture report to be valid")
	}

	t.Run("placeholder in lineup", func(t *testing.T) {
		r := validFixtureReport()
		r.Lineup[2] = "[Spieler 3]"
		if ValidReport(r) {
			t.Error("report with placeholder lineup entry must be invalid")
		}
	})

	t.Run("placeholder in doubles game", func(t *testing.T) {
		r := validFixtureReport()
		r.Doubles[0].Players[3] = "[Name]"
		if ValidReport(r) {
			t.Error("report with placeholder game player must be invalid")
		}
	})

	t.Run("unparseable score", func(t *testing.T) {
		r := validFixtureReport()
		r.Singles[1].ScoreOK = false
		if ValidReport(r) {
			t.Error("report with non-numeric score must be invalid")
		}
	})

	t.Run("nil report", func(t *testing.T) {
		if ValidReport(nil) {
			t.Error("nil report must be invalid")
		}
	})
}

func TestComputeTotals(t *testing.T) {
	r := validFixtureReport()
	r.ComputeTotals()

	if r.TotalLegs != (Totals{Home: 9, Away: 3}) {
		t.Errorf("total legs = %+v, expected {9 3}", r.TotalLegs)
	}
	if r.TotalSets != (Totals{Home: 3, Away: 0}) {
		t.Errorf("total sets = %+v, expected {3 0}", r.TotalSets)
	}
}
