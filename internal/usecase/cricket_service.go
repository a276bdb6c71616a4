package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
)

type CricketServiceConfig struct {
	Live     feed.CricketProvider
	Fixtures feed.CricketProvider
	MockMode bool
	// CommentaryFallback is served when live commentary fails.
	CommentaryFallback func() ([]byte, error)
	Cache              feed.ResultCache
	Logger             *logging.Logger
	Metrics            *metrics.Recorder
}

// CricketService serves Cricbuzz reads. Scorecard, commentary and overs
// change ball by ball and bypass the result cache.
type CricketService struct {
	live               feed.CricketProvider
	fixtures           feed.CricketProvider
	mockMode           bool
	commentaryFallback func() ([]byte, error)
	resolver           *resolver
}

func NewCricketService(cfg CricketServiceConfig) *CricketService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &CricketService{
		live:               cfg.Live,
		fixtures:           cfg.Fixtures,
		mockMode:           cfg.MockMode || cfg.Live == nil,
		commentaryFallback: cfg.CommentaryFallback,
		resolver:           newResolver(cfg.Cache, logger.Named("usecase.cricket"), cfg.Metrics),
	}
}

func (s *CricketService) MockMode() bool {
	return s.mockMode
}

// Matches lists live and upcoming matches.
func (s *CricketService) Matches(ctx context.Context) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.Matches")
	defer span.End()

	return s.resolver.resolve(ctx, s.op("matches", key(sport.Cricket, "matches"), false,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.Matches(ctx)
		}))
}

func (s *CricketService) RecentMatches(ctx context.Context) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.RecentMatches")
	defer span.End()

	return s.resolver.resolve(ctx, s.op("recent_matches", key(sport.Cricket, "recent"), false,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.RecentMatches(ctx)
		}))
}

func (s *CricketService) IPLMatches(ctx context.Context) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.IPLMatches")
	defer span.End()

	return s.resolver.resolve(ctx, s.op("ipl_matches", key(sport.Cricket, "ipl"), false,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.IPLMatches(ctx)
		}))
}

func (s *CricketService) MatchInfo(ctx context.Context, matchID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.MatchInfo")
	defer span.End()

	matchID, err := requireMatchID(matchID)
	if err != nil {
		return feed.Result{}, err
	}
	return s.resolver.resolve(ctx, s.op("match_info", key(sport.Cricket, "info", matchID), false,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.MatchInfo(ctx, matchID)
		}))
}

func (s *CricketService) Scorecard(ctx context.Context, matchID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.Scorecard")
	defer span.End()

	matchID, err := requireMatchID(matchID)
	if err != nil {
		return feed.Result{}, err
	}
	return s.resolver.resolve(ctx, s.op("scorecard", key(sport.Cricket, "scorecard", matchID), true,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.Scorecard(ctx, matchID)
		}))
}

func (s *CricketService) Commentary(ctx context.Context, matchID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.Commentary")
	defer span.End()

	matchID, err := requireMatchID(matchID)
	if err != nil {
		return feed.Result{}, err
	}
	op := s.op("commentary", key(sport.Cricket, "commentary", matchID), true,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.Commentary(ctx, matchID)
		})
	if s.commentaryFallback != nil {
		fallback := s.commentaryFallback
		op.fallback = func(context.Context) ([]byte, error) { return fallback() }
	}
	return s.resolver.resolve(ctx, op)
}

func (s *CricketService) Overs(ctx context.Context, matchID string) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.Overs")
	defer span.End()

	matchID, err := requireMatchID(matchID)
	if err != nil {
		return feed.Result{}, err
	}
	return s.resolver.resolve(ctx, s.op("overs", key(sport.Cricket, "overs", matchID), true,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.Overs(ctx, matchID)
		}))
}

func (s *CricketService) Series(ctx context.Context) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.Series")
	defer span.End()

	return s.resolver.resolve(ctx, s.op("series", key(sport.Cricket, "series"), false,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.Series(ctx)
		}))
}

func (s *CricketService) News(ctx context.Context) (feed.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.News")
	defer span.End()

	return s.resolver.resolve(ctx, s.op("news", key(sport.Cricket, "news"), false,
		func(ctx context.Context, p feed.CricketProvider) ([]byte, error) {
			return p.News(ctx)
		}))
}

func (s *CricketService) op(name, cacheKey string, uncached bool, call func(context.Context, feed.CricketProvider) ([]byte, error)) operation {
	op := operation{
		sport:    sport.Cricket.String(),
		name:     name,
		key:      cacheKey,
		mock:     s.mockMode,
		shape:    feed.ShapeCricket,
		uncached: uncached,
	}
	if s.fixtures != nil {
		op.fixture = func(ctx context.Context) ([]byte, error) {
			return call(ctx, s.fixtures)
		}
	}
	if s.live != nil {
		op.live = func(ctx context.Context) ([]byte, error) {
			return call(ctx, s.live)
		}
	}
	return op
}

func requireMatchID(raw string) (string, error) {
	matchID := strings.TrimSpace(raw)
	if matchID == "" {
		return "", fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return matchID, nil
}
