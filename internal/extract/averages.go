package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkessler/liga-stats/internal/dom"
)

// The "Average" section table:
//
//	0: position, 1: player (linked when resolved), 2: legs, 3: per-leg average
//
// The summary row carries the team total with "Gesamt" in the player column.
// The site shows per-leg averages; the league convention displays the
// three-dart value, hence the factor of 3.
const averageFactor = 3

// minLegsForAverage excludes players whose sample is too small to be a
// meaningful average.
const minLegsForAverage = 3

// summaryRowLabel marks the team-total row of a section table.
const summaryRowLabel = "Gesamt"

var averageHeading = regexp.MustCompile(`^Average$`)

// PlayerAverage is one player row of an "Average" section.
type PlayerAverage struct {
	Name    string
	Legs    int
	Average float64
}

// TeamAverages is the output of one "Average" section: the team's three-dart
// average plus the per-player averages that passed the minimum-legs filter.
type TeamAverages struct {
	TeamAverage float64
	Players     []PlayerAverage
}

// Averages extracts the team and player averages from a team page. A page
// without an "Average" section yields the zero value.
func Averages(doc *goquery.Document) TeamAverages {
	var out TeamAverages
	sec := dom.FindSection(doc, averageHeading)
	if sec == nil {
		return out
	}

	for _, row := range sec.DataRows() {
		name := dom.CellText(row, 1)
		if name == "" {
			continue
		}
		avg := parseDecimal(dom.CellText(row, 3)) * averageFactor
		if name == summaryRowLabel {
			out.TeamAverage = avg
			continue
		}
		legs := parseInt(dom.CellText(row, 2))
		if legs < minLegsForAverage {
			continue
		}
		out.Players = append(out.Players, PlayerAverage{Name: name, Legs: legs, Average: avg})
	}
	return out
}

// The league comparison page reuses the "Average" table layout with teams in
// the name column:
//
//	0: position, 1: team, 2: legs, 3: per-leg average

// ComparisonRow is one team's average on the league comparison page.
type ComparisonRow struct {
	Team    string
	Average float64
}

// Comparison extracts the league-wide team averages used by the dashboard's
// comparison chart.
func Comparison(doc *goquery.Document) []ComparisonRow {
	sec := dom.FindSection(doc, averageHeading)
	if sec == nil {
		return nil
	}

	var rows []ComparisonRow
	for _, row := range sec.DataRows() {
		team := dom.CellText(row, 1)
		if team == "" || team == summaryRowLabel {
			continue
		}
		rows = append(rows, ComparisonRow{
			Team:    team,
			Average: parseDecimal(dom.CellText(row, 3)) * averageFactor,
		})
	}
	return rows
}
