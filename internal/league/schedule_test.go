package league

import (
	"testing"
	"time"
)

func TestSortSchedule(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, time.September, d, 0, 0, 0, 0, time.UTC) }

	matches := []ScheduleMatch{
		{Round: 3, Date: day(29), HomeTeam: "DC Falken", AwayTeam: "PDV Neustadt"},
		{Round: 1, Date: day(15), HomeTeam: "DC Falken", AwayTeam: "DV Adler"},
		{Round: 2, Date: day(22), HomeTeam: "DSC Eiche", AwayTeam: "DC Falken"},
	}

	SortSchedule(matches)

	for i, expected := range []int{1, 2, 3} {
		if matches[i].Round != expected {
			t.Errorf("position %d: expected round %d, got %d", i, expected, matches[i].Round)
		}
	}
}

func TestInvolves(t *testing.T) {
	m := ScheduleMatch{HomeTeam: "DC Falken", AwayTeam: "DV Adler"}

	if !m.Involves("DC Falken") || !m.Involves("DV Adler") {
		t.Error("expected both participating teams to be involved")
	}
	if m.Involves("DSC Eiche") {
		t.Error("uninvolved team reported as involved")
	}
}
