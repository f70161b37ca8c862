package teamview

import (
	"fmt"
	"net/url"
	"strings"
)

// URLs constructs the results site's endpoint URLs for one season. The site
// keys everything by display name and an opaque per-match id; there are no
// stable entity ids.
type URLs struct {
	Base   string
	Season string
}

func (u URLs) season() string {
	// The site encodes "2025/26" as "2025-26" in query strings.
	return url.QueryEscape(strings.ReplaceAll(u.Season, "/", "-"))
}

// TeamPage is the team's combined averages/singles/doubles page, which also
// links the match reports.
func (u URLs) TeamPage(team string) string {
	return fmt.Sprintf("%s/team.php?name=%s&saison=%s", u.Base, url.QueryEscape(team), u.season())
}

// Standings is the league table page.
func (u URLs) Standings() string {
	return fmt.Sprintf("%s/tabelle.php?saison=%s", u.Base, u.season())
}

// Schedule is the round-by-round fixture list.
func (u URLs) Schedule() string {
	return fmt.Sprintf("%s/spielplan.php?saison=%s", u.Base, u.season())
}

// Comparison is the league-wide team average page.
func (u URLs) Comparison() string {
	return fmt.Sprintf("%s/liga-average.php?saison=%s", u.Base, u.season())
}

// SpecialStats is the 180/high-finish leaderboard page.
func (u URLs) SpecialStats() string {
	return fmt.Sprintf("%s/statistiken.php?saison=%s", u.Base, u.season())
}

// Venues is the venue directory page.
func (u URLs) Venues() string {
	return fmt.Sprintf("%s/spielstaetten.php?saison=%s", u.Base, u.season())
}

// MatchReport resolves a report link from a team page, which the site emits
// relative to its root.
func (u URLs) MatchReport(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return u.Base + "/" + strings.TrimPrefix(href, "/")
}

// MatchAverages is the per-match average page, keyed by the opaque match id.
func (u URLs) MatchAverages(matchID string) string {
	return fmt.Sprintf("%s/match-average.php?match=%s&saison=%s", u.Base, url.QueryEscape(matchID), u.season())
}
