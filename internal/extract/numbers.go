package extract

import (
	"strconv"
	"strings"
)

// parseDecimal converts a comma-decimal cell ("8,50") to a float. Malformed
// values yield 0 so one bad cell cannot sink the surrounding table.
func parseDecimal(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt converts an integer cell, defaulting to 0 on malformed input.
func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// parseScorePair splits a line score of the form "3-1" or "3:1" into its
// home and away legs. ok is false when either side is not numeric.
func parseScorePair(s string) (home, away int, ok bool) {
	s = strings.TrimSpace(s)
	sep := "-"
	if strings.Contains(s, ":") {
		sep = ":"
	}
	left, right, found := strings.Cut(s, sep)
	if !found {
		return 0, 0, false
	}
	h, errH := strconv.Atoi(strings.TrimSpace(left))
	a, errA := strconv.Atoi(strings.TrimSpace(right))
	if errH != nil || errA != nil {
		return 0, 0, false
	}
	return h, a, true
}
