// Package storage persists normalized league records in SQLite. All finds
// and saves are keyed by team name and season string; the scraping core
// never sees this schema.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tkessler/liga-stats/internal/league"
)

const schema = `
CREATE TABLE IF NOT EXISTS team_stats (
	team        TEXT NOT NULL,
	season      TEXT NOT NULL,
	average     REAL NOT NULL,
	singles_won  INTEGER NOT NULL,
	singles_lost INTEGER NOT NULL,
	doubles_won  INTEGER NOT NULL,
	doubles_lost INTEGER NOT NULL,
	updated_at  TEXT NOT NULL,
	PRIMARY KEY (team, season)
);
CREATE TABLE IF NOT EXISTS player_stats (
	name        TEXT NOT NULL,
	team        TEXT NOT NULL,
	season      TEXT NOT NULL,
	average     REAL NOT NULL,
	singles_won  INTEGER NOT NULL,
	singles_lost INTEGER NOT NULL,
	doubles_won  INTEGER NOT NULL,
	doubles_lost INTEGER NOT NULL,
	PRIMARY KEY (name, team, season)
);
CREATE TABLE IF NOT EXISTS schedule_matches (
	season    TEXT NOT NULL,
	round     INTEGER NOT NULL,
	date      TEXT NOT NULL,
	home_team TEXT NOT NULL,
	away_team TEXT NOT NULL,
	venue     TEXT NOT NULL DEFAULT '',
	address   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (season, round, home_team, away_team)
);
CREATE TABLE IF NOT EXISTS match_reports (
	match_id TEXT NOT NULL,
	team     TEXT NOT NULL,
	season   TEXT NOT NULL,
	opponent TEXT NOT NULL,
	score    TEXT NOT NULL,
	details  TEXT NOT NULL,
	PRIMARY KEY (match_id, team, season)
);
`

// Store is the SQLite-backed repository for scraped league data.
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the database at path. Use
// ":memory:" for tests.
func Open(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on", path, (5 * time.Second).Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTeamStats upserts one team's season summary.
func (s *Store) SaveTeamStats(team, season string, stats league.TeamStats) error {
	_, err := s.db.Exec(`
		INSERT INTO team_stats (team, season, average, singles_won, singles_lost, doubles_won, doubles_lost, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (team, season) DO UPDATE SET
			average = excluded.average,
			singles_won = excluded.singles_won,
			singles_lost = excluded.singles_lost,
			doubles_won = excluded.doubles_won,
			doubles_lost = excluded.doubles_lost,
			updated_at = excluded.updated_at`,
		team, season, stats.Average,
		stats.Singles.Won, stats.Singles.Lost,
		stats.Doubles.Won, stats.Doubles.Lost,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving team stats: %w", err)
	}
	return nil
}

// FindTeamStats returns a team's season summary, or nil when none is stored.
func (s *Store) FindTeamStats(team, season string) (*league.TeamStats, error) {
	var stats league.TeamStats
	err := s.db.QueryRow(`
		SELECT average, singles_won, singles_lost, doubles_won, doubles_lost
		FROM team_stats WHERE team = ? AND season = ?`,
		team, season,
	).Scan(&stats.Average, &stats.Singles.Won, &stats.Singles.Lost, &stats.Doubles.Won, &stats.Doubles.Lost)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding team stats: %w", err)
	}
	return &stats, nil
}

// SavePlayerStats upserts the player rows for one team and season in a
// single transaction. Derived percentages are not stored; they are
// recomputed on read.
func (s *Store) SavePlayerStats(team, season string, players []league.PlayerStats) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range players {
		if _, err := tx.Exec(`
			INSERT INTO player_stats (name, team, season, average, singles_won, singles_lost, doubles_won, doubles_lost)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (name, team, season) DO UPDATE SET
				average = excluded.average,
				singles_won = excluded.singles_won,
				singles_lost = excluded.singles_lost,
				doubles_won = excluded.doubles_won,
				doubles_lost = excluded.doubles_lost`,
			p.Name, team, season, p.Average,
			p.SinglesWon, p.SinglesLost, p.DoublesWon, p.DoublesLost,
		); err != nil {
			return fmt.Errorf("saving player %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// FindPlayerStats returns the stored players of a team with derived
// percentages recomputed.
func (s *Store) FindPlayerStats(team, season string) ([]league.PlayerStats, error) {
	rows, err := s.db.Query(`
		SELECT name, average, singles_won, singles_lost, doubles_won, doubles_lost
		FROM player_stats WHERE team = ? AND season = ? ORDER BY average DESC`,
		team, season,
	)
	if err != nil {
		return nil, fmt.Errorf("finding player stats: %w", err)
	}
	defer rows.Close()

	var players []league.PlayerStats
	for rows.Next() {
		p := league.PlayerStats{Team: team}
		if err := rows.Scan(&p.Name, &p.Average, &p.SinglesWon, &p.SinglesLost, &p.DoublesWon, &p.DoublesLost); err != nil {
			return nil, fmt.Errorf("scanning player row: %w", err)
		}
		p.SinglesPercentage = league.Record{Won: p.SinglesWon, Lost: p.SinglesLost}.Percentage()
		p.DoublesPercentage = league.Record{Won: p.DoublesWon, Lost: p.DoublesLost}.Percentage()
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating player rows: %w", err)
	}
	league.FinalizeCombined(players)
	return players, nil
}

// SaveSchedule replaces the stored schedule of a season.
func (s *Store) SaveSchedule(season string, matches []league.ScheduleMatch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedule_matches WHERE season = ?`, season); err != nil {
		return fmt.Errorf("clearing schedule: %w", err)
	}
	for _, m := range matches {
		if _, err := tx.Exec(`
			INSERT INTO schedule_matches (season, round, date, home_team, away_team, venue, address)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			season, m.Round, m.Date.UTC().Format(time.RFC3339), m.HomeTeam, m.AwayTeam, m.Venue, m.Address,
		); err != nil {
			return fmt.Errorf("saving round %d fixture: %w", m.Round, err)
		}
	}
	return tx.Commit()
}

// FindSchedule returns the stored schedule of a season in chronological
// order.
func (s *Store) FindSchedule(season string) ([]league.ScheduleMatch, error) {
	rows, err := s.db.Query(`
		SELECT round, date, home_team, away_team, venue, address
		FROM schedule_matches WHERE season = ? ORDER BY date, round`,
		season,
	)
	if err != nil {
		return nil, fmt.Errorf("finding schedule: %w", err)
	}
	defer rows.Close()

	var matches []league.ScheduleMatch
	for rows.Next() {
		var m league.ScheduleMatch
		var date string
		if err := rows.Scan(&m.Round, &date, &m.HomeTeam, &m.AwayTeam, &m.Venue, &m.Address); err != nil {
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}
		m.Date, _ = time.Parse(time.RFC3339, date)
		m.DateText = m.Date.Format("02.01.2006")
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}
	return matches, nil
}

// SaveMatchReport upserts one validated match report. The caller is
// responsible for filtering through league.ValidReport first; invalid
// reports never reach the store.
func (s *Store) SaveMatchReport(team, season string, r *league.MatchReport) error {
	details, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report details: %w", err)
	}
	if _, err := s.db.Exec(`
		INSERT INTO match_reports (match_id, team, season, opponent, score, details)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_id, team, season) DO UPDATE SET
			opponent = excluded.opponent,
			score = excluded.score,
			details = excluded.details`,
		r.MatchID, team, season, r.Opponent, r.Score, string(details),
	); err != nil {
		return fmt.Errorf("saving match report: %w", err)
	}
	return nil
}

// FindMatchReports returns the stored reports of a team for a season.
func (s *Store) FindMatchReports(team, season string) ([]league.MatchReport, error) {
	rows, err := s.db.Query(`
		SELECT details FROM match_reports WHERE team = ? AND season = ? ORDER BY match_id`,
		team, season,
	)
	if err != nil {
		return nil, fmt.Errorf("finding match reports: %w", err)
	}
	defer rows.Close()

	var reports []league.MatchReport
	for rows.Next() {
		var details string
		if err := rows.Scan(&details); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		var r league.MatchReport
		if err := json.Unmarshal([]byte(details), &r); err != nil {
			return nil, fmt.Errorf("decoding report details: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report rows: %w", err)
	}
	return reports, nil
}
