package league

import "regexp"

// placeholderPattern matches the site's unresolved-name tokens, which appear
// as bracketed entries like "[Spieler 4]" until a lineup is confirmed.
var placeholderPattern = regexp.MustCompile(`^\[.*\]$`)

// IsPlaceholder reports whether a scraped name is an unresolved placeholder
// rather than a real player.
func IsPlaceholder(name string) bool {
	return placeholderPattern.MatchString(name)
}

// ValidReport reports whether a match report is complete enough to persist.
// A single placeholder player or unparseable score poisons the whole report:
// its derived totals and averages would be meaningless, so partially valid
// reports are discarded rather than partially kept.
func ValidReport(r *MatchReport) bool {
	if r == nil {
		return false
	}
	for _, name := range r.Lineup {
		if IsPlaceholder(name) {
			return false
		}
	}
	for _, g := range append(append([]Game{}, r.Singles...), r.Doubles...) {
		if !g.ScoreOK {
			return false
		}
		for _, p := range g.Players {
			if IsPlaceholder(p) {
				return false
			}
		}
	}
	return true
}
