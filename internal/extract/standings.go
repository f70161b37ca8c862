package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkessler/liga-stats/internal/dom"
	"github.com/tkessler/liga-stats/internal/league"
)

// The league table under the "Tabelle" heading:
//
//	0: rank, 1: team, 2: games played, 3: points
var standingsHeading = regexp.MustCompile(`^Tabelle$`)

// Standings extracts the league table.
func Standings(doc *goquery.Document) []league.Standing {
	sec := dom.FindSection(doc, standingsHeading)
	if sec == nil {
		return nil
	}

	var standings []league.Standing
	for _, row := range sec.DataRows() {
		team := dom.CellText(row, 1)
		if team == "" {
			continue
		}
		standings = append(standings, league.Standing{
			Rank:   parseInt(dom.CellText(row, 0)),
			Team:   team,
			Games:  parseInt(dom.CellText(row, 2)),
			Points: parseInt(dom.CellText(row, 3)),
		})
	}
	return standings
}

// Position returns a team's rank in the standings, 0 when the team is not
// listed.
func Position(standings []league.Standing, team string) int {
	for _, s := range standings {
		if s.Team == team {
			return s.Rank
		}
	}
	return 0
}
