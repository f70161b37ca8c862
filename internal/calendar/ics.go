// Package calendar renders league schedules as iCalendar feeds for the
// dashboard's export link.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/tkessler/liga-stats/internal/league"
)

// Match evenings start at 19:30 local convention; blocks are generous since
// a full match runs several hours.
const (
	matchStartHour   = 19
	matchStartMinute = 30
	matchDuration    = 4 * time.Hour
)

// GenerateICS renders the given matches as one iCalendar document.
func GenerateICS(matches []league.ScheduleMatch, season string) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//liga-stats//liga-stats//DE\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, m := range matches {
		writeEvent(&ics, m, season, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, m league.ScheduleMatch, season string, stamp time.Time) {
	date := m.Date
	if date.IsZero() {
		// Undated fixtures stay out of the feed rather than landing on a
		// made-up day.
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")

	// Round plus pairing is unique within one season.
	uid := fmt.Sprintf("runde%d-%s-%s-%s@liga-stats", m.Round, slug(m.HomeTeam), slug(m.AwayTeam), slug(season))
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", uid))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))

	start := time.Date(date.Year(), date.Month(), date.Day(), matchStartHour, matchStartMinute, 0, 0, time.UTC)
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(matchDuration))))

	summary := fmt.Sprintf("Runde %d: %s - %s", m.Round, m.HomeTeam, m.AwayTeam)
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	if m.Venue != "" {
		location := m.Venue
		if m.Address != "" {
			location = fmt.Sprintf("%s, %s", m.Venue, m.Address)
		}
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, "/", "-")
}
