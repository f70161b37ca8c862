// Package league provides the domain types for scraped dart-league data and
// the logic that reconciles them: merging per-section partial records into
// player statistics, deriving percentages and running averages, and
// validating match reports before they reach persistence.
//
// The results site identifies players and teams only by display name, so
// players are keyed by the composite (name, team) pair. The same display
// name on two rosters is two distinct records.
package league
