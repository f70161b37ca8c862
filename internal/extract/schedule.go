package extract

import (
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkessler/liga-stats/internal/dom"
	"github.com/tkessler/liga-stats/internal/league"
)

// Each league round is its own section headed "Runde N - DD.MM.YYYY",
// followed by a fixture table:
//
//	0: home team, 1: away team
//
// Played rounds append a result cell; it is ignored here, results come from
// the match reports.
var roundHeading = regexp.MustCompile(`^Runde (\d+) - (\d{2}\.\d{2}\.\d{4})$`)

const scheduleDateLayout = "02.01.2006"

// Schedule extracts all rounds of the league schedule, sorted
// chronologically.
func Schedule(doc *goquery.Document) []league.ScheduleMatch {
	var matches []league.ScheduleMatch
	for _, sec := range dom.FindSections(doc, roundHeading) {
		round := parseInt(sec.Matches[1])
		dateText := sec.Matches[2]
		// An unparseable date keeps the zero time; the fixtures of the
		// round are still extracted.
		date, _ := time.Parse(scheduleDateLayout, dateText)

		for _, row := range sec.DataRows() {
			home := dom.CellText(row, 0)
			away := dom.CellText(row, 1)
			if home == "" || away == "" {
				continue
			}
			matches = append(matches, league.ScheduleMatch{
				Round:    round,
				Date:     date,
				DateText: dateText,
				HomeTeam: home,
				AwayTeam: away,
			})
		}
	}
	league.SortSchedule(matches)
	return matches
}
