package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/match-tracker/external/apisports"
	"github.com/riskibarqy/match-tracker/external/cricbuzz"
	"github.com/riskibarqy/match-tracker/external/footballdata"
	"github.com/riskibarqy/match-tracker/internal/config"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/cache"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/fixture"
	"github.com/riskibarqy/match-tracker/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/match-tracker/internal/platform/cache"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
	"github.com/riskibarqy/match-tracker/internal/platform/resilience"
	"github.com/riskibarqy/match-tracker/internal/usecase"
)

// NewHTTPServer wires providers, caches and services into the API server.
// The returned cleanup closes the shared cache connection, if any.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	recorder := metrics.NewRecorder()

	results, cleanup, err := newResultCache(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.UpstreamCircuitEnabled,
		FailureThreshold: cfg.UpstreamCircuitFailureCount,
		OpenTimeout:      cfg.UpstreamCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpenMaxReq,
	}
	logger.Info("upstream circuit breaker configured", breaker.LogFields()...)

	var footballLive, basketballLive feed.MatchProvider
	if cfg.FootballAPIKey != "" {
		footballLive = footballdata.NewClient(footballdata.ClientConfig{
			BaseURL:        cfg.FootballBaseURL,
			Token:          cfg.FootballAPIKey,
			Competition:    cfg.FootballCompetition,
			Timeout:        cfg.UpstreamTimeout,
			MaxRetries:     cfg.UpstreamMaxRetries,
			Logger:         logger.Named("external.footballdata"),
			Metrics:        recorder,
			CircuitBreaker: breaker,
		})
	}
	if cfg.BasketballAPIKey != "" {
		basketballLive = apisports.NewClient(apisports.ClientConfig{
			BaseURL:        cfg.BasketballBaseURL,
			APIKey:         cfg.BasketballAPIKey,
			LeagueID:       cfg.BasketballLeagueID,
			Timeout:        cfg.UpstreamTimeout,
			MaxRetries:     cfg.UpstreamMaxRetries,
			Logger:         logger.Named("external.apisports"),
			Metrics:        recorder,
			CircuitBreaker: breaker,
		})
	}
	var cricketLive feed.CricketProvider
	if cfg.CricketAPIKey != "" {
		cricketLive = cricbuzz.NewClient(cricbuzz.ClientConfig{
			BaseURL:        cfg.CricketBaseURL,
			APIKey:         cfg.CricketAPIKey,
			Host:           cfg.CricketAPIHost,
			Timeout:        cfg.UpstreamTimeout,
			MaxRetries:     cfg.UpstreamMaxRetries,
			Logger:         logger.Named("external.cricbuzz"),
			Metrics:        recorder,
			CircuitBreaker: breaker,
		})
	}

	matchSvc := usecase.NewMatchService(usecase.MatchServiceConfig{
		Feeds: map[sport.Sport]usecase.SportFeed{
			sport.Football: {
				Live:     footballLive,
				Fixtures: fixture.NewFootball(),
				MockMode: cfg.MockMode(sport.Football),
				HeadToHeadFallback: func() feed.Payload {
					return fixture.Message(fixture.FootballHeadToHeadUnavailable)
				},
			},
			sport.Basketball: {
				Live:     basketballLive,
				Fixtures: fixture.NewBasketball(),
				MockMode: cfg.MockMode(sport.Basketball),
			},
		},
		Cache:   results,
		Logger:  logger,
		Metrics: recorder,
	})
	cricketSvc := usecase.NewCricketService(usecase.CricketServiceConfig{
		Live:     cricketLive,
		Fixtures: fixture.NewCricket(),
		MockMode: cfg.MockMode(sport.Cricket),
		CommentaryFallback: func() ([]byte, error) {
			return fixture.CommentaryBody(fixture.CommentaryUnavailable)
		},
		Cache:   results,
		Logger:  logger,
		Metrics: recorder,
	})
	cacheSvc := usecase.NewCacheService(results, logger)

	for _, sp := range sport.All {
		logger.Info("sport data source", "sport", sp.String(), "mock_mode", cfg.MockMode(sp))
	}

	handler := httpapi.NewHandler(matchSvc, cricketSvc, cacheSvc, cfg.DefaultSport, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:             logger,
		Metrics:            recorder,
		MetricsEnabled:     cfg.MetricsEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
		RateLimiter: httpapi.NewRateLimiter(
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			httpapi.WithRateLimitMetrics(recorder),
		),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// newResultCache builds the in-process cache, fronting Redis when
// CACHE_REDIS_URL is set.
func newResultCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (feed.ResultCache, func() error, error) {
	local := cache.NewMemoryResultCache(basecache.NewStore(cfg.CacheTTL, cfg.CacheMaxEntries))
	if cfg.CacheRedisURL == "" {
		return local, func() error { return nil }, nil
	}

	client, err := cache.Connect(ctx, cfg.CacheRedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect result cache: %w", err)
	}
	logger.Info("shared result cache enabled", "backend", "redis")

	shared := cache.NewRedisResultCache(client, cfg.CacheTTL, logger.Named("cache.redis"))
	return cache.NewTieredResultCache(local, shared), client.Close, nil
}
