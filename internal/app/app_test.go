package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/riskibarqy/match-tracker/internal/config"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		DefaultSport:       sport.Football,
		CORSAllowedOrigins: []string{"*"},
		UpstreamTimeout:    time.Second,
		CacheTTL:           time.Minute,
		CacheMaxEntries:    32,
		RateLimitRequests:  10,
		RateLimitWindow:    time.Minute,
		MetricsEnabled:     true,
	}
}

func TestNewHTTPServer_ServesFixturesWithoutKeys(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/matches?sportType=basketball", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Data-Provenance"); got != "mock" {
		t.Fatalf("unexpected provenance %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Boston Celtics") {
		t.Fatalf("expected basketball fixtures, got %s", rec.Body.String())
	}
}

func TestNewHTTPServer_HeadToHeadMockMessage(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/matches/head-to-head/1/2", nil))
	if !strings.Contains(rec.Body.String(), "Head-to-head mock data") {
		t.Fatalf("unexpected head-to-head body %s", rec.Body.String())
	}
}

func TestNewHTTPServer_RedisTier(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.CacheRedisURL = "redis://" + mr.Addr()

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cricket/news", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(mr.Keys()) == 0 {
		t.Fatalf("expected the result to be written to redis")
	}
}

func TestNewHTTPServer_RejectsUnreachableRedis(t *testing.T) {
	cfg := testConfig()
	cfg.CacheRedisURL = "not-a-redis-url"

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for invalid CACHE_REDIS_URL")
	}
}
