package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tkessler/liga-stats/internal/league"
	"github.com/tkessler/liga-stats/internal/teamview"
)

func sampleView() *teamview.TeamView {
	return &teamview.TeamView{
		Team:     "DC Falken",
		Season:   "2025/26",
		Position: 2,
		Stats: league.TeamStats{
			Average: 43.5,
			Singles: league.Record{Won: 12, Lost: 9},
			Doubles: league.Record{Won: 3, Lost: 1},
		},
		Players: []league.PlayerStats{
			{Name: "Hans Meier", Team: "DC Falken", Average: 46.5, SinglesWon: 5, SinglesLost: 2, SinglesPercentage: 71.43},
		},
		AverageHistory: []float64{42, 43.5},
	}
}

func TestWriteTeamViewText(t *testing.T) {
	var buf strings.Builder
	if err := WriteTeamView(&buf, sampleView(), FormatText); err != nil {
		t.Fatalf("WriteTeamView failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"DC Falken", "Tabellenplatz: 2", "Team-Average: 43.50", "Hans Meier"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTeamViewJSON(t *testing.T) {
	var buf strings.Builder
	if err := WriteTeamView(&buf, sampleView(), FormatJSON); err != nil {
		t.Fatalf("WriteTeamView failed: %v", err)
	}

	var decoded teamview.TeamView
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Team != "DC Falken" || decoded.Position != 2 {
		t.Errorf("decoded view = %+v", decoded)
	}
}

func TestWriteScheduleTextGroupsRounds(t *testing.T) {
	matches := []league.ScheduleMatch{
		{Round: 1, DateText: "15.09.2025", HomeTeam: "DC Falken", AwayTeam: "DV Adler"},
		{Round: 1, DateText: "15.09.2025", HomeTeam: "PDV Neustadt", AwayTeam: "DSC Eiche"},
		{Round: 2, DateText: "22.09.2025", HomeTeam: "DSC Eiche", AwayTeam: "DC Falken"},
	}

	var buf strings.Builder
	if err := WriteSchedule(&buf, matches, FormatText); err != nil {
		t.Fatalf("WriteSchedule failed: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "Runde 1") != 1 {
		t.Errorf("round header must appear once per round:\n%s", out)
	}
	if !strings.Contains(out, "Runde 2 - 22.09.2025") {
		t.Errorf("missing second round header:\n%s", out)
	}
}
