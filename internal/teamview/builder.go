// Package teamview orchestrates the scraping pipeline for one team: it
// fans out over the site's independent pages, extracts and reconciles the
// records, filters match reports through validation, and assembles the
// dashboard payload.
package teamview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tkessler/liga-stats/internal/extract"
	"github.com/tkessler/liga-stats/internal/fetch"
	"github.com/tkessler/liga-stats/internal/league"
	"github.com/tkessler/liga-stats/internal/venue"
)

// ErrMissingTeam is returned before any network I/O when no team name was
// given.
var ErrMissingTeam = errors.New("missing team name")

// buildState tracks where in the pipeline a build currently is. There are
// no retries within a build; a failed build is re-triggered from outside.
type buildState int

const (
	statePending buildState = iota
	stateFetchingIndependent
	stateFetchingMatchList
	stateFetchingMatchReports
	stateFiltering
	stateFetchingAverages
	stateAssembled
	stateFailed
)

func (s buildState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateFetchingIndependent:
		return "fetching-independent"
	case stateFetchingMatchList:
		return "fetching-match-list"
	case stateFetchingMatchReports:
		return "fetching-match-reports"
	case stateFiltering:
		return "filtering"
	case stateFetchingAverages:
		return "fetching-averages"
	case stateAssembled:
		return "assembled"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// TeamView is the assembled dashboard payload for one team.
type TeamView struct {
	Team       string                  `json:"team"`
	Season     string                  `json:"season"`
	Position   int                     `json:"position"`
	Stats      league.TeamStats        `json:"stats"`
	Players    []league.PlayerStats    `json:"players"`
	Standings  []league.Standing       `json:"standings"`
	Comparison []extract.ComparisonRow `json:"comparison"`
	Schedule   []league.ScheduleMatch  `json:"schedule"`
	Special    league.SpecialStats     `json:"special"`
	Venue      *venue.Info             `json:"venue,omitempty"`
	Reports    []league.MatchReport    `json:"reports"`
	// AverageHistory is the running team average over the validated
	// matches, chart ready.
	AverageHistory []float64 `json:"average_history"`
}

// Builder runs team-view builds against one site and season.
type Builder struct {
	fetcher       *fetch.Client
	venues        *venue.Client
	urls          URLs
	log           *zap.Logger
	reportWorkers int
}

// NewBuilder wires a builder. reportWorkers caps the concurrent match-report
// fetches; values below 1 fall back to 1.
func NewBuilder(fetcher *fetch.Client, venues *venue.Client, urls URLs, log *zap.Logger, reportWorkers int) *Builder {
	if reportWorkers < 1 {
		reportWorkers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		fetcher:       fetcher,
		venues:        venues,
		urls:          urls,
		log:           log,
		reportWorkers: reportWorkers,
	}
}

// Build assembles the team view. Each independent branch that fails is
// logged and contributes its zero value; only when every branch fails is
// the build itself an error.
func (b *Builder) Build(ctx context.Context, team string) (*TeamView, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil, ErrMissingTeam
	}

	state := statePending
	b.advance(&state, stateFetchingIndependent, team)

	var (
		teamDoc       *goquery.Document
		standingsDoc  *goquery.Document
		scheduleDoc   *goquery.Document
		comparisonDoc *goquery.Document
		specialDoc    *goquery.Document
		venueInfo     *venue.Info
	)
	branchErrs := make([]error, 6)

	var g errgroup.Group
	g.Go(func() error {
		teamDoc, branchErrs[0] = b.fetchBranch(ctx, "team-page", b.urls.TeamPage(team))
		return nil
	})
	g.Go(func() error {
		standingsDoc, branchErrs[1] = b.fetchBranch(ctx, "standings", b.urls.Standings())
		return nil
	})
	g.Go(func() error {
		scheduleDoc, branchErrs[2] = b.fetchBranch(ctx, "schedule", b.urls.Schedule())
		return nil
	})
	g.Go(func() error {
		comparisonDoc, branchErrs[3] = b.fetchBranch(ctx, "comparison", b.urls.Comparison())
		return nil
	})
	g.Go(func() error {
		specialDoc, branchErrs[4] = b.fetchBranch(ctx, "special-stats", b.urls.SpecialStats())
		return nil
	})
	g.Go(func() error {
		info, err := b.venues.Lookup(ctx, team)
		if err != nil {
			branchErrs[5] = err
			b.log.Warn("branch failed", zap.String("branch", "venue"), zap.Error(err))
			return nil
		}
		venueInfo = info
		return nil
	})
	g.Wait()

	if failed := countErrs(branchErrs); failed == len(branchErrs) {
		b.advance(&state, stateFailed, team)
		return nil, fmt.Errorf("building team view for %s: %w", team, errors.Join(branchErrs...))
	}

	view := &TeamView{Team: team, Season: b.urls.Season, Venue: venueInfo}
	b.assembleIndependent(view, teamDoc, standingsDoc, scheduleDoc, comparisonDoc, specialDoc)

	b.advance(&state, stateFetchingMatchList, team)
	var links []extract.ReportLink
	if teamDoc != nil {
		links = extract.ReportLinks(teamDoc)
	}

	b.advance(&state, stateFetchingMatchReports, team)
	reports := b.fetchReports(ctx, team, links)

	b.advance(&state, stateFiltering, team)
	for _, r := range reports {
		if !league.ValidReport(r) {
			b.log.Info("discarding incomplete match report",
				zap.String("team", team),
				zap.String("match_id", matchID(r)))
			continue
		}
		view.Reports = append(view.Reports, *r)
	}

	b.advance(&state, stateFetchingAverages, team)
	view.AverageHistory = league.RunningAverages(b.fetchMatchAverages(ctx, view.Reports))

	b.advance(&state, stateAssembled, team)
	return view, nil
}

// fetchBranch fetches one independent page, converting failure into a
// logged nil document.
func (b *Builder) fetchBranch(ctx context.Context, name, url string) (*goquery.Document, error) {
	doc, err := b.fetcher.Get(ctx, url)
	if err != nil {
		b.log.Warn("branch failed", zap.String("branch", name), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

// assembleIndependent extracts and reconciles everything the independent
// branches produced.
func (b *Builder) assembleIndependent(view *TeamView, teamDoc, standingsDoc, scheduleDoc, comparisonDoc, specialDoc *goquery.Document) {
	if teamDoc != nil {
		averages := extract.Averages(teamDoc)
		singles := extract.Singles(teamDoc)
		doubles := extract.Doubles(teamDoc)

		view.Stats = league.TeamStats{
			Average: averages.TeamAverage,
			Singles: league.Record{Won: singles.TeamWon, Lost: singles.TeamLost},
			Doubles: league.Record{Won: doubles.TeamWon, Lost: doubles.TeamLost},
		}

		// The three sections reference the same players; merge them by the
		// (name, team) key so section order cannot matter.
		var players []league.PlayerStats
		for _, p := range averages.Players {
			avg := p.Average
			players = league.MergePlayer(players, league.Partial{Name: p.Name, Team: view.Team, Average: &avg})
		}
		for _, p := range singles.Players {
			players = league.MergePlayer(players, league.Partial{Name: p.Name, Team: view.Team, Singles: &league.Record{Won: p.Won, Lost: p.Lost}})
		}
		for _, p := range doubles.Players {
			players = league.MergePlayer(players, league.Partial{Name: p.Name, Team: view.Team, Doubles: &league.Record{Won: p.Won, Lost: p.Lost}})
		}
		league.FinalizeCombined(players)
		view.Players = players
	}

	if standingsDoc != nil {
		view.Standings = extract.Standings(standingsDoc)
		view.Position = extract.Position(view.Standings, view.Team)
	}
	if scheduleDoc != nil {
		view.Schedule = extract.Schedule(scheduleDoc)
		if view.Venue != nil {
			for i := range view.Schedule {
				if view.Schedule[i].HomeTeam == view.Team {
					view.Schedule[i].Venue = view.Venue.Name
					view.Schedule[i].Address = view.Venue.Address
				}
			}
		}
	}
	if comparisonDoc != nil {
		view.Comparison = extract.Comparison(comparisonDoc)
	}
	if specialDoc != nil {
		view.Special = extract.SpecialStats(specialDoc)
	}
}

// fetchReports fetches and parses the linked match-report pages in
// parallel. A failed fetch contributes a nil slot.
func (b *Builder) fetchReports(ctx context.Context, team string, links []extract.ReportLink) []*league.MatchReport {
	reports := make([]*league.MatchReport, len(links))

	var g errgroup.Group
	g.SetLimit(b.reportWorkers)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			doc, err := b.fetcher.Get(ctx, b.urls.MatchReport(link.Href))
			if err != nil {
				b.log.Warn("match report fetch failed",
					zap.String("match_id", link.MatchID), zap.Error(err))
				return nil
			}
			if r := extract.Report(doc, team); r != nil {
				r.MatchID = link.MatchID
				reports[i] = r
			}
			return nil
		})
	}
	g.Wait()

	out := reports[:0]
	for _, r := range reports {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// fetchMatchAverages fetches the per-match average page of every validated
// report, in report order. Pages that fail or carry no summary are skipped
// so they cannot drag the running average to zero.
func (b *Builder) fetchMatchAverages(ctx context.Context, reports []league.MatchReport) []float64 {
	avgs := make([]float64, len(reports))

	var g errgroup.Group
	g.SetLimit(b.reportWorkers)
	for i, r := range reports {
		i, r := i, r
		g.Go(func() error {
			doc, err := b.fetcher.Get(ctx, b.urls.MatchAverages(r.MatchID))
			if err != nil {
				b.log.Warn("match averages fetch failed",
					zap.String("match_id", r.MatchID), zap.Error(err))
				return nil
			}
			avgs[i] = extract.MatchAverage(doc)
			return nil
		})
	}
	g.Wait()

	out := avgs[:0]
	for _, v := range avgs {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}

func (b *Builder) advance(state *buildState, next buildState, team string) {
	*state = next
	b.log.Debug("build state", zap.String("team", team), zap.Stringer("state", next))
}

func countErrs(errs []error) int {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}
	return n
}

func matchID(r *league.MatchReport) string {
	if r == nil {
		return ""
	}
	return r.MatchID
}
