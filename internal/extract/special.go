package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkessler/liga-stats/internal/dom"
	"github.com/tkessler/liga-stats/internal/league"
)

// Special-statistic leaderboards share a two-column layout:
//
//	"180er" table:       0: player, 1: count
//	"High Finish" table: 0: player, 1: finish value
var (
	oneEightyHeading  = regexp.MustCompile(`^180er$`)
	highFinishHeading = regexp.MustCompile(`^High Finish(es)?$`)
)

// SpecialStats extracts the 180 and high-finish leaderboards from the
// special-stats page. Sections the page does not carry yield empty slices.
func SpecialStats(doc *goquery.Document) league.SpecialStats {
	var out league.SpecialStats

	if sec := dom.FindSection(doc, oneEightyHeading); sec != nil {
		for _, row := range sec.DataRows() {
			player := dom.CellText(row, 0)
			if player == "" {
				continue
			}
			out.OneEighties = append(out.OneEighties, league.Tally{
				Player: player,
				Count:  parseInt(dom.CellText(row, 1)),
			})
		}
	}

	if sec := dom.FindSection(doc, highFinishHeading); sec != nil {
		for _, row := range sec.DataRows() {
			player := dom.CellText(row, 0)
			if player == "" {
				continue
			}
			out.HighFinishes = append(out.HighFinishes, league.Finish{
				Player: player,
				Value:  parseInt(dom.CellText(row, 1)),
			})
		}
	}

	return out
}
