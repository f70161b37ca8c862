package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkessler/liga-stats/internal/dom"
)

// The "Einzel" and "Doppel" section tables share a layout:
//
//	0: position, 1: player, 2: won, 3: lost
//
// The summary row ("Gesamt") carries the team totals. Doppel totals count
// each player of a pair separately, so the team's doubles record is halved
// (floor) to get match pairs; the per-player rows are kept as-is.

var (
	singlesHeading = regexp.MustCompile(`^Einzel$`)
	doublesHeading = regexp.MustCompile(`^Doppel$`)
)

// PlayerRecord is one player's won/lost row in a game-format section.
type PlayerRecord struct {
	Name string
	Won  int
	Lost int
}

// GameRecords is the output of one "Einzel" or "Doppel" section.
type GameRecords struct {
	TeamWon  int
	TeamLost int
	Players  []PlayerRecord
}

// Singles extracts the singles win/loss records from a team page.
func Singles(doc *goquery.Document) GameRecords {
	return gameRecords(doc, singlesHeading, false)
}

// Doubles extracts the doubles win/loss records from a team page, halving
// the team totals.
func Doubles(doc *goquery.Document) GameRecords {
	return gameRecords(doc, doublesHeading, true)
}

func gameRecords(doc *goquery.Document, heading *regexp.Regexp, halveTeam bool) GameRecords {
	var out GameRecords
	sec := dom.FindSection(doc, heading)
	if sec == nil {
		return out
	}

	for _, row := range sec.DataRows() {
		name := dom.CellText(row, 1)
		if name == "" {
			continue
		}
		won := parseInt(dom.CellText(row, 2))
		lost := parseInt(dom.CellText(row, 3))
		if name == summaryRowLabel {
			if halveTeam {
				won /= 2
				lost /= 2
			}
			out.TeamWon = won
			out.TeamLost = lost
			continue
		}
		out.Players = append(out.Players, PlayerRecord{Name: name, Won: won, Lost: lost})
	}
	return out
}
