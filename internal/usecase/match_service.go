package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
)

const (
	previousWindowDays = 7
	dateLayout         = "2006-01-02"
)

// SportFeed pairs a live provider with the fixtures that stand in for it.
// A nil Live provider forces mock mode for the sport.
type SportFeed struct {
	Live     feed.MatchProvider
	Fixtures feed.MatchProvider
	MockMode bool
	// HeadToHeadFallback replaces the fixture head-to-head when the live
	// call fails, keeping the payload's own shape.
	HeadToHeadFallback func() feed.Payload
}

type MatchServiceConfig struct {
	Feeds   map[sport.Sport]SportFeed
	Cache   feed.ResultCache
	Logger  *logging.Logger
	Metrics *metrics.Recorder
	Now     func() time.Time
}

// MatchService serves football and basketball reads.
type MatchService struct {
	feeds    map[sport.Sport]SportFeed
	resolver *resolver
	now      func() time.Time
}

func NewMatchService(cfg MatchServiceConfig) *MatchService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		feeds:    cfg.Feeds,
		resolver: newResolver(cfg.Cache, logger.Named("usecase.matches"), cfg.Metrics),
		now:      now,
	}
}

// MockMode reports whether s is served from fixtures only.
func (s *MatchService) MockMode(sp sport.Sport) bool {
	f, ok := s.feeds[sp]
	return ok && (f.MockMode || f.Live == nil)
}

func (s *MatchService) UpcomingMatches(ctx context.Context, sp sport.Sport) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpcomingMatches")
	defer span.End()

	f, err := s.feed(sp)
	if err != nil {
		return feed.Result{}, err
	}
	season := s.season(sp, "")
	return s.resolver.resolve(ctx, s.op(sp, f, "upcoming", key(sp, "upcoming", season),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.UpcomingMatches(ctx, season)
		}))
}

func (s *MatchService) TodayMatches(ctx context.Context, sp sport.Sport) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.TodayMatches")
	defer span.End()

	f, err := s.feed(sp)
	if err != nil {
		return feed.Result{}, err
	}
	today := s.now()
	season := s.season(sp, "")
	return s.resolver.resolve(ctx, s.op(sp, f, "today", key(sp, "today", today.UTC().Format(dateLayout), season),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.TodayMatches(ctx, today, season)
		}))
}

// PreviousMatches covers the trailing seven days.
func (s *MatchService) PreviousMatches(ctx context.Context, sp sport.Sport) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PreviousMatches")
	defer span.End()

	f, err := s.feed(sp)
	if err != nil {
		return feed.Result{}, err
	}
	to := s.now()
	from := to.AddDate(0, 0, -previousWindowDays)
	season := s.season(sp, "")
	return s.resolver.resolve(ctx, s.op(sp, f, "previous", key(sp, "previous", from.UTC().Format(dateLayout), to.UTC().Format(dateLayout)),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.PreviousMatches(ctx, from, to, season)
		}))
}

func (s *MatchService) CompetitionMatches(ctx context.Context, sp sport.Sport, competition, season string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CompetitionMatches")
	defer span.End()

	f, competition, season, err := s.competitionArgs(sp, competition, season)
	if err != nil {
		return feed.Result{}, err
	}
	return s.resolver.resolve(ctx, s.op(sp, f, "competition_matches", key(sp, "competition", competition, season),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.CompetitionMatches(ctx, competition, season)
		}))
}

func (s *MatchService) Standings(ctx context.Context, sp sport.Sport, competition, season string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Standings")
	defer span.End()

	f, competition, season, err := s.competitionArgs(sp, competition, season)
	if err != nil {
		return feed.Result{}, err
	}
	return s.resolver.resolve(ctx, s.op(sp, f, "standings", key(sp, "standings", competition, season),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.Standings(ctx, competition, season)
		}))
}

func (s *MatchService) Scorers(ctx context.Context, sp sport.Sport, competition, season string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Scorers")
	defer span.End()

	f, competition, season, err := s.competitionArgs(sp, competition, season)
	if err != nil {
		return feed.Result{}, err
	}
	return s.resolver.resolve(ctx, s.op(sp, f, "scorers", key(sp, "scorers", competition, season),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.Scorers(ctx, competition, season)
		}))
}

func (s *MatchService) Match(ctx context.Context, sp sport.Sport, matchID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Match")
	defer span.End()

	f, err := s.feed(sp)
	if err != nil {
		return feed.Result{}, err
	}
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return feed.Result{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.resolver.resolve(ctx, s.op(sp, f, "match", key(sp, "match", matchID),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.Match(ctx, matchID)
		}))
}

func (s *MatchService) Team(ctx context.Context, sp sport.Sport, teamID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Team")
	defer span.End()

	f, err := s.feed(sp)
	if err != nil {
		return feed.Result{}, err
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return feed.Result{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return s.resolver.resolve(ctx, s.op(sp, f, "team", key(sp, "team", teamID),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.Team(ctx, teamID)
		}))
}

// HeadToHead keeps the providers' asymmetry: football answers with an
// informational message when it has no data, basketball with a game list.
func (s *MatchService) HeadToHead(ctx context.Context, sp sport.Sport, team1ID, team2ID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.HeadToHead")
	defer span.End()

	f, err := s.feed(sp)
	if err != nil {
		return feed.Result{}, err
	}
	team1ID, team2ID = strings.TrimSpace(team1ID), strings.TrimSpace(team2ID)
	if team1ID == "" || team2ID == "" {
		return feed.Result{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}

	op := s.op(sp, f, "head_to_head", key(sp, "h2h", team1ID, team2ID),
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.HeadToHead(ctx, team1ID, team2ID)
		})
	if sp == sport.Football {
		op.fixtureShape = feed.ShapeMessage
	}
	if f.HeadToHeadFallback != nil {
		payload := f.HeadToHeadFallback()
		op.fallback = func(context.Context) ([]byte, error) { return payload.Body, nil }
		op.fallbackShape = payload.Shape
	}
	return s.resolver.resolve(ctx, op)
}

func (s *MatchService) feed(sp sport.Sport) (SportFeed, error) {
	f, ok := s.feeds[sp]
	if !ok || f.Fixtures == nil {
		return SportFeed{}, fmt.Errorf("%w: match listings are not available for %q", ErrInvalidInput, sp)
	}
	return f, nil
}

func (s *MatchService) competitionArgs(sp sport.Sport, competition, season string) (SportFeed, string, string, error) {
	f, err := s.feed(sp)
	if err != nil {
		return SportFeed{}, "", "", err
	}
	competition = strings.ToUpper(strings.TrimSpace(competition))
	if competition == "" {
		return SportFeed{}, "", "", fmt.Errorf("%w: competition code is required", ErrInvalidInput)
	}
	if sp != sport.Basketball {
		return f, competition, "", nil
	}
	season = strings.TrimSpace(season)
	if season != "" && !sport.ValidSeason(season) {
		return SportFeed{}, "", "", fmt.Errorf("%w: season must look like 2023-2024", ErrInvalidInput)
	}
	return f, competition, s.season(sp, season), nil
}

// season fills in the current basketball season. Football-data has no
// season parameter on these routes, so any season given for football is
// dropped and never reaches the provider or the cache key.
func (s *MatchService) season(sp sport.Sport, season string) string {
	if sp != sport.Basketball {
		return ""
	}
	if season != "" {
		return season
	}
	return sport.CurrentSeason(s.now())
}

func (s *MatchService) op(sp sport.Sport, f SportFeed, name, cacheKey string, call func(context.Context, feed.MatchProvider) ([]byte, error)) operation {
	op := operation{
		sport: sp.String(),
		name:  name,
		key:   cacheKey,
		mock:  f.MockMode || f.Live == nil,
		shape: feed.ShapeOf(sp),
		fixture: func(ctx context.Context) ([]byte, error) {
			return call(ctx, f.Fixtures)
		},
	}
	if f.Live != nil {
		op.live = func(ctx context.Context) ([]byte, error) {
			return call(ctx, f.Live)
		}
	}
	return op
}

// key builds "<sport>:<operation>:<param>..." dropping empty params.
func key(sp sport.Sport, name string, params ...string) string {
	parts := make([]string, 0, len(params)+2)
	parts = append(parts, sp.String(), name)
	for _, p := range params {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ":")
}
