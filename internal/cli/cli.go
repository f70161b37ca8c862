package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tkessler/liga-stats/internal/calendar"
	"github.com/tkessler/liga-stats/internal/config"
	"github.com/tkessler/liga-stats/internal/extract"
	"github.com/tkessler/liga-stats/internal/fetch"
	"github.com/tkessler/liga-stats/internal/league"
	"github.com/tkessler/liga-stats/internal/logging"
	"github.com/tkessler/liga-stats/internal/storage"
	"github.com/tkessler/liga-stats/internal/teamview"
	"github.com/tkessler/liga-stats/internal/venue"
)

var (
	flagBaseURL string
	flagSeason  string
	flagDBPath  string
	flagFormat  string
	flagSave    bool
	flagICS     bool
	flagVerbose bool
)

// NewRootCmd creates the root command with environment defaults applied to
// its flags.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "liga-stats",
		Short: "Scrape and aggregate dart-league results",
		Long: `Scrapes the league results site, normalizes team, player, and match
data, and prints or persists it for the dashboard.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", cfg.BaseURL, "Base URL of the results site")
	root.PersistentFlags().StringVar(&flagSeason, "season", cfg.Season, "Season string, e.g. 2025/26")
	root.PersistentFlags().StringVar(&flagDBPath, "db", cfg.DBPath, "Path to the SQLite database")
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	teamCmd := &cobra.Command{
		Use:   "team <name>",
		Short: "Build the aggregated view for one team",
		Args:  cobra.ExactArgs(1),
		RunE:  runTeam,
	}
	teamCmd.Flags().BoolVar(&flagSave, "save", false, "Persist the scraped records to the database")
	root.AddCommand(teamCmd)

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the league schedule",
		RunE:  runSchedule,
	}
	scheduleCmd.Flags().BoolVar(&flagICS, "ics", false, "Emit the schedule as an iCalendar feed")
	root.AddCommand(scheduleCmd)

	return root
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newBuilder(cfg *config.Config, log *zap.Logger) *teamview.Builder {
	fetcher := fetch.NewWithPolicy(fetch.Policy{
		Timeout:    cfg.FetchTimeout,
		MaxRetries: uint64(cfg.FetchRetries),
	})
	urls := teamview.URLs{Base: strings.TrimSuffix(flagBaseURL, "/"), Season: flagSeason}
	venues := venue.NewClient(fetcher, urls.Venues())
	return teamview.NewBuilder(fetcher, venues, urls, log, cfg.ReportWorkers)
}

func runTeam(cmd *cobra.Command, args []string) error {
	team := strings.TrimSpace(args[0])
	if team == "" {
		return fmt.Errorf("team name must not be empty")
	}
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg := config.Load()
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	view, err := newBuilder(cfg, log).Build(cmd.Context(), team)
	if err != nil {
		return fmt.Errorf("building team view: %w", err)
	}

	if flagSave {
		if err := persistTeamView(view); err != nil {
			return err
		}
		log.Info("persisted team view",
			zap.String("team", view.Team),
			zap.String("season", view.Season),
			zap.Int("players", len(view.Players)),
			zap.Int("reports", len(view.Reports)))
	}

	return WriteTeamView(os.Stdout, view, format)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	fetcher := fetch.NewWithPolicy(fetch.Policy{
		Timeout:    cfg.FetchTimeout,
		MaxRetries: uint64(cfg.FetchRetries),
	})
	urls := teamview.URLs{Base: strings.TrimSuffix(flagBaseURL, "/"), Season: flagSeason}

	doc, err := fetcher.Get(cmd.Context(), urls.Schedule())
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}
	matches := extract.Schedule(doc)

	if flagICS {
		fmt.Fprint(os.Stdout, calendar.GenerateICS(matches, flagSeason))
		return nil
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return WriteSchedule(os.Stdout, matches, format)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	return logging.New(level, cfg.Env)
}

// persistTeamView saves everything the build produced: team and player
// stats, the schedule matches the team is involved in, and the validated
// match reports. Invalid reports were filtered during the build and never
// reach the store.
func persistTeamView(view *teamview.TeamView) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	if err := store.SaveTeamStats(view.Team, view.Season, view.Stats); err != nil {
		return err
	}
	if err := store.SavePlayerStats(view.Team, view.Season, view.Players); err != nil {
		return err
	}
	var involved []league.ScheduleMatch
	for _, m := range view.Schedule {
		if m.Involves(view.Team) {
			involved = append(involved, m)
		}
	}
	if err := store.SaveSchedule(view.Season, involved); err != nil {
		return err
	}
	for i := range view.Reports {
		if err := store.SaveMatchReport(view.Team, view.Season, &view.Reports[i]); err != nil {
			return err
		}
	}
	return nil
}
