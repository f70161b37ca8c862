// Package cli implements the Cobra-based command-line interface.
//
// The cli package wires the fetcher, team-view builder, and SQLite store
// together: "team" builds and prints the dashboard payload for one team
// (optionally persisting it), "schedule" prints the league schedule or
// exports it as an iCalendar feed.
package cli
