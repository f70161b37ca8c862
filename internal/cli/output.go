package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tkessler/liga-stats/internal/league"
	"github.com/tkessler/liga-stats/internal/teamview"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteTeamView writes an assembled team view in the chosen format.
func WriteTeamView(w io.Writer, view *teamview.TeamView, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, view)
	}

	fmt.Fprintf(w, "%s (Saison %s)\n", view.Team, view.Season)
	if view.Position > 0 {
		fmt.Fprintf(w, "Tabellenplatz: %d\n", view.Position)
	}
	fmt.Fprintf(w, "Team-Average: %.2f  Einzel: %d-%d  Doppel: %d-%d\n",
		view.Stats.Average,
		view.Stats.Singles.Won, view.Stats.Singles.Lost,
		view.Stats.Doubles.Won, view.Stats.Doubles.Lost)
	if view.Venue != nil {
		fmt.Fprintf(w, "Spielstätte: %s, %s, %s\n", view.Venue.Name, view.Venue.Address, view.Venue.City)
	}

	if len(view.Players) > 0 {
		fmt.Fprintln(w, "\nSpieler:")
		for _, p := range view.Players {
			fmt.Fprintf(w, "  %-20s Avg %6.2f  Einzel %d-%d (%.1f%%)  Doppel %d-%d (%.1f%%)  Gesamt %.1f%%\n",
				p.Name, p.Average,
				p.SinglesWon, p.SinglesLost, p.SinglesPercentage,
				p.DoublesWon, p.DoublesLost, p.DoublesPercentage,
				p.CombinedPercentage)
		}
	}

	if len(view.Reports) > 0 {
		fmt.Fprintln(w, "\nSpielberichte:")
		for _, r := range view.Reports {
			fmt.Fprintf(w, "  vs %-20s %s  (Legs %d-%d, Sets %d-%d)\n",
				r.Opponent, r.Score,
				r.TotalLegs.Home, r.TotalLegs.Away,
				r.TotalSets.Home, r.TotalSets.Away)
		}
	}

	if len(view.AverageHistory) > 0 {
		fmt.Fprintf(w, "\nAverage-Verlauf: %v\n", view.AverageHistory)
	}
	return nil
}

// WriteSchedule writes the league schedule in the chosen format.
func WriteSchedule(w io.Writer, matches []league.ScheduleMatch, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, matches)
	}

	round := -1
	for _, m := range matches {
		if m.Round != round {
			round = m.Round
			fmt.Fprintf(w, "Runde %d - %s\n", m.Round, m.DateText)
		}
		fmt.Fprintf(w, "  %s - %s\n", m.HomeTeam, m.AwayTeam)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
