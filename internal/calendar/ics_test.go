package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/tkessler/liga-stats/internal/league"
)

func TestGenerateICS(t *testing.T) {
	matches := []league.ScheduleMatch{
		{
			Round:    1,
			Date:     time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
			HomeTeam: "DC Falken",
			AwayTeam: "DV Adler",
			Venue:    "Gaststätte Krone",
			Address:  "Hauptstraße 12, Neustadt",
		},
		{
			Round:    2,
			Date:     time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC),
			HomeTeam: "DSC Eiche",
			AwayTeam: "DC Falken",
		},
	}

	ics := GenerateICS(matches, "2025/26")

	required := []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"SUMMARY:Runde 1: DC Falken - DV Adler",
		"SUMMARY:Runde 2: DSC Eiche - DC Falken",
		"DTSTART:20250915T193000Z",
		"LOCATION:Gaststätte Krone\\, Hauptstraße 12\\, Neustadt",
		"UID:runde1-dc-falken-dv-adler-2025-26@liga-stats",
	}
	for _, want := range required {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS output missing %q", want)
		}
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
}

func TestGenerateICSSkipsUndatedMatches(t *testing.T) {
	matches := []league.ScheduleMatch{
		{Round: 1, HomeTeam: "DC Falken", AwayTeam: "DV Adler"},
	}

	ics := GenerateICS(matches, "2025/26")

	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("undated match must not produce an event")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{"a\nb", `a\nb`},
		{`a\b`, `a\\b`},
	}

	for _, tt := range tests {
		if got := escapeICS(tt.input); got != tt.expected {
			t.Errorf("escapeICS(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
