package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tkessler/liga-stats/internal/dom"
	"github.com/tkessler/liga-stats/internal/league"
)

// A match-report page is made of four sections:
//
//	"Ergebnis":    one row, 0: home team, 1: away team, 2: final score "H-A"
//	"Aufstellung": the scraped team's lineup, 0: player
//	"Einzel":      line scores, 0: home player, 1: score "3-1", 2: away player
//	"Doppel":      line scores, 0: home pair "A / B", 1: score, 2: away pair
//	"Checkouts":   one encoded list per row, "Name: 132, 96" or "Name: -"
var (
	resultHeading   = regexp.MustCompile(`^Ergebnis$`)
	lineupHeading   = regexp.MustCompile(`^Aufstellung$`)
	checkoutHeading = regexp.MustCompile(`^Checkouts$`)
)

// pairSeparator splits a doubles pair cell into its two players.
const pairSeparator = " / "

// ReportLink points at one match-report page linked from a team page.
type ReportLink struct {
	MatchID string
	Href    string
}

var matchIDPattern = regexp.MustCompile(`match=(\d+)`)

// ReportLinks collects the match-report links on a team page. The site has
// no stable player or team ids, but report links do carry an opaque numeric
// match id, which later keys the per-match average pages.
func ReportLinks(doc *goquery.Document) []ReportLink {
	var links []ReportLink
	seen := make(map[string]bool)
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "spielbericht") {
			return
		}
		m := matchIDPattern.FindStringSubmatch(href)
		if m == nil || seen[m[1]] {
			return
		}
		seen[m[1]] = true
		links = append(links, ReportLink{MatchID: m[1], Href: href})
	})
	return links
}

// Report parses one match-report page from the given team's perspective.
// Returns nil when the page carries no "Ergebnis" section at all; otherwise
// the report is returned as parsed and left to the validator to judge.
func Report(doc *goquery.Document, team string) *league.MatchReport {
	result := dom.FindSection(doc, resultHeading)
	if result == nil {
		return nil
	}

	var r league.MatchReport
	if rows := result.DataRows(); len(rows) > 0 {
		home := dom.CellText(rows[0], 0)
		away := dom.CellText(rows[0], 1)
		r.Score = normalizeScore(dom.CellText(rows[0], 2))
		r.Opponent = away
		if team != "" && team == away {
			r.Opponent = home
		}
	}

	if sec := dom.FindSection(doc, lineupHeading); sec != nil {
		for _, row := range sec.DataRows() {
			if name := dom.CellText(row, 0); name != "" {
				r.Lineup = append(r.Lineup, name)
			}
		}
	}

	if sec := dom.FindSection(doc, singlesHeading); sec != nil {
		r.Singles = lineScores(sec, false)
	}
	if sec := dom.FindSection(doc, doublesHeading); sec != nil {
		r.Doubles = lineScores(sec, true)
	}

	if sec := dom.FindSection(doc, checkoutHeading); sec != nil {
		for _, row := range sec.DataRows() {
			if c, ok := ParseCheckoutLine(dom.CellText(row, 0)); ok {
				r.Checkouts = append(r.Checkouts, c)
			}
		}
	}

	r.ComputeTotals()
	return &r
}

// lineScores parses the rows of one "Einzel" or "Doppel" report section.
func lineScores(sec *dom.Section, pairs bool) []league.Game {
	var games []league.Game
	for _, row := range sec.DataRows() {
		home := dom.CellText(row, 0)
		away := dom.CellText(row, 2)
		if home == "" || away == "" {
			continue
		}
		var players []string
		if pairs {
			players = append(splitPair(home), splitPair(away)...)
		} else {
			players = []string{home, away}
		}
		h, a, ok := parseScorePair(dom.CellText(row, 1))
		games = append(games, league.Game{
			Players:   players,
			HomeScore: h,
			AwayScore: a,
			ScoreOK:   ok,
		})
	}
	return games
}

func splitPair(cell string) []string {
	parts := strings.Split(cell, pairSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// normalizeScore renders a final score as "H-A" regardless of the separator
// the page used.
func normalizeScore(s string) string {
	if h, a, ok := parseScorePair(s); ok {
		return strconv.Itoa(h) + "-" + strconv.Itoa(a)
	}
	return strings.TrimSpace(s)
}

// ParseCheckoutLine parses an encoded checkout list such as
// "Hans Meier: 132, 96". A literal dash after the name means the player
// recorded no checkouts, which is a valid empty list. ok is false when the
// line has no "name: values" shape at all.
func ParseCheckoutLine(s string) (league.Checkout, bool) {
	name, rest, found := strings.Cut(s, ": ")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return league.Checkout{}, false
	}

	c := league.Checkout{Player: name}
	rest = strings.TrimSpace(rest)
	if rest == "-" || rest == "" {
		return c, true
	}
	for _, part := range strings.Split(rest, ", ") {
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			c.Finishes = append(c.Finishes, v)
		}
	}
	return c, true
}

// MatchAverage extracts the scraped team's three-dart average from a
// per-match averages page, which reuses the "Average" table layout. Returns
// 0 when the page has no summary row.
func MatchAverage(doc *goquery.Document) float64 {
	return Averages(doc).TeamAverage
}
