// Command matchctl reads matches, standings and cricket scores from a
// running match-tracker API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/match-tracker/internal/client"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/store"
)

const usage = `usage: matchctl [flags] <command> [args]

commands:
  matches                      upcoming matches
  today                        today's matches
  previous                     matches of the last week
  competition <code> [season]  matches of one competition
  standings <code> [season]    competition table
  scorers <code> [season]      top scorers
  match <id>                   one match
  cricket [live|previous|ipl]  cricket matches
  cricket-match <id>           cricket match detail, -watch polls while live
  series                       cricket series
  news                         cricket news
  clear-cache                  drop the server's response cache

flags:
`

type options struct {
	apiURL     string
	sport      sport.Sport
	timeout    time.Duration
	adminToken string
	watch      bool
	interval   time.Duration
	location   *time.Location
	logger     *logging.Logger
}

func main() {
	var (
		apiURL     = flag.String("url", getEnv("MATCHCTL_API_URL", "http://localhost:5000"), "match-tracker API base URL")
		sportName  = flag.String("sport", getEnv("SPORT_TYPE", string(sport.Football)), "football or basketball")
		timeout    = flag.Duration("timeout", client.DefaultTimeout, "per-request timeout")
		adminToken = flag.String("token", os.Getenv("ADMIN_TOKEN"), "admin token for clear-cache")
		watch      = flag.Bool("watch", false, "keep refreshing a live cricket match")
		interval   = flag.Duration("interval", store.DefaultPollInterval, "refresh interval with -watch")
		tz         = flag.String("tz", "Local", "time zone for match dates")
		verbose    = flag.Bool("v", false, "log store activity to stderr")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	sp, err := sport.Parse(*sportName, sport.Football)
	if err != nil {
		fatalf("%v", err)
	}
	loc, err := time.LoadLocation(*tz)
	if err != nil {
		fatalf("load time zone %q: %v", *tz, err)
	}

	level := logging.LevelError
	if *verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewJSON(level, logging.WithOutput(os.Stderr), logging.WithService("matchctl", ""))
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		apiURL:     *apiURL,
		sport:      sp,
		timeout:    *timeout,
		adminToken: *adminToken,
		watch:      *watch,
		interval:   *interval,
		location:   loc,
		logger:     logger,
	}
	api := client.New(opts.apiURL, client.WithTimeout(opts.timeout))
	if err := run(ctx, api, opts, flag.Args(), os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

var errUsage = errors.New("invalid usage")

// API is what the commands need from the HTTP client.
type API interface {
	store.MatchesAPI
	store.CricketAPI
	ClearCache(ctx context.Context, adminToken string) error
}

func run(ctx context.Context, api API, opts options, args []string, out io.Writer) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "matches", "today", "previous", "competition", "standings", "scorers", "match":
		if opts.sport == sport.Cricket {
			return fmt.Errorf("%s: use the cricket commands for cricket", cmd)
		}
		return runMatches(ctx, api, opts, cmd, rest, out)
	case "cricket", "cricket-match", "series", "news":
		return runCricket(ctx, api, opts, cmd, rest, out)
	case "clear-cache":
		if opts.adminToken == "" {
			return fmt.Errorf("clear-cache: -token or ADMIN_TOKEN is required")
		}
		if err := api.ClearCache(ctx, opts.adminToken); err != nil {
			return err
		}
		fmt.Fprintln(out, "Cache cleared.")
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runMatches(ctx context.Context, api store.MatchesAPI, opts options, cmd string, args []string, out io.Writer) error {
	s := store.NewMatchesStore(api, opts.sport, store.WithMatchesLogger(opts.logger))

	switch cmd {
	case "matches":
		s.FetchMatches(ctx)
		st := s.State()
		renderBanner(out, st.Error, st.Offline)
		renderMatches(out, st.Matches, opts.location)
	case "today":
		s.FetchTodaysMatches(ctx)
		st := s.State()
		renderBanner(out, st.Error, st.Offline)
		renderMatches(out, st.TodayMatches, opts.location)
	case "previous":
		s.FetchPreviousMatches(ctx)
		st := s.State()
		renderBanner(out, st.Error, st.Offline)
		renderMatches(out, st.PreviousMatches, opts.location)
	case "competition", "standings", "scorers":
		if len(args) == 0 {
			return fmt.Errorf("%w: %s needs a competition code", errUsage, cmd)
		}
		code, season := args[0], ""
		if len(args) > 1 {
			season = args[1]
		}
		switch cmd {
		case "competition":
			s.FetchCompetitionMatches(ctx, code, season)
			st := s.State()
			renderBanner(out, st.Error, st.Offline)
			renderMatches(out, st.CompetitionMatches, opts.location)
		case "standings":
			s.FetchCompetitionStandings(ctx, code, season)
			st := s.State()
			renderBanner(out, st.Error, st.Offline)
			renderStandings(out, st.Standings)
		default:
			s.FetchCompetitionScorers(ctx, code, season)
			st := s.State()
			renderBanner(out, st.Error, st.Offline)
			renderScorers(out, st.Scorers)
		}
	case "match":
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return fmt.Errorf("%w: match needs an id", errUsage)
		}
		s.FetchMatchByID(ctx, args[0])
		st := s.State()
		renderBanner(out, st.Error, st.Offline)
		if st.CurrentMatch == nil {
			fmt.Fprintln(out, "Match not found.")
			return nil
		}
		renderMatch(out, *st.CurrentMatch, opts.location)
	}
	return nil
}

func runCricket(ctx context.Context, api store.CricketAPI, opts options, cmd string, args []string, out io.Writer) error {
	s := store.NewCricketStore(api, store.WithCricketLogger(opts.logger))

	switch cmd {
	case "cricket":
		view := "live"
		if len(args) > 0 {
			view = args[0]
		}
		switch view {
		case "live":
			s.FetchMatches(ctx)
			st := s.State()
			renderBanner(out, st.Error, st.Offline)
			renderCricketMatches(out, st.Matches)
		case "previous":
			s.FetchPreviousMatches(ctx)
			st := s.State()
			renderBanner(out, st.Error, st.Offline)
			renderCricketMatches(out, st.PreviousMatches)
		case "ipl":
			s.FetchIPLMatches(ctx)
			st := s.State()
			renderBanner(out, st.Error, st.Offline)
			renderCricketMatches(out, st.IPLMatches)
		default:
			return fmt.Errorf("%w: unknown cricket view %q", errUsage, view)
		}
	case "series":
		s.FetchSeries(ctx)
		st := s.State()
		renderBanner(out, st.Error, st.Offline)
		renderSeries(out, st.Series)
	case "news":
		s.FetchNews(ctx)
		st := s.State()
		renderBanner(out, st.Error, st.Offline)
		renderNews(out, st.News)
	case "cricket-match":
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return fmt.Errorf("%w: cricket-match needs an id", errUsage)
		}
		return watchCricketMatch(ctx, s, opts, args[0], out)
	}
	return nil
}

// watchCricketMatch prints the match once and, with -watch, again after
// every poll until ctx is cancelled.
func watchCricketMatch(ctx context.Context, s *store.CricketStore, opts options, matchID string, out io.Writer) error {
	if err := s.LoadMatchDetail(ctx, matchID); err != nil {
		opts.logger.Debug("match detail partially loaded", "match_id", matchID, "error", err)
	}
	st := s.State()
	renderBanner(out, st.Error, st.Offline)
	renderCricketDetail(out, st)

	if !opts.watch {
		return nil
	}

	cycles := make(chan struct{}, 1)
	poller, err := store.NewLivePoller(s,
		store.WithPollInterval(opts.interval),
		store.WithPollerLogger(opts.logger),
		store.WithCycleHook(func(string, error) {
			select {
			case cycles <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("start live poller: %w", err)
	}
	defer poller.Close()

	if !poller.Watch(ctx, matchID, st.CurrentState) {
		fmt.Fprintf(out, "Match is %q, not polling.\n", st.CurrentState)
		return nil
	}
	fmt.Fprintf(out, "Refreshing every %s, Ctrl-C to stop.\n", opts.interval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-cycles:
			fmt.Fprintln(out)
			renderCricketDetail(out, s.State())
		}
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "matchctl: "+format+"\n", args...)
	os.Exit(1)
}
