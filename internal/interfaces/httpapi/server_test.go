package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/cache"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/fixture"
	basecache "github.com/riskibarqy/match-tracker/internal/platform/cache"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
	"github.com/riskibarqy/match-tracker/internal/usecase"
)

const testAdminToken = "admin-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	results := cache.NewMemoryResultCache(basecache.NewStore(5*time.Minute, 64))
	recorder := metrics.NewRecorder()

	matchService := usecase.NewMatchService(usecase.MatchServiceConfig{
		Feeds: map[sport.Sport]usecase.SportFeed{
			sport.Football:   {Fixtures: fixture.NewFootball()},
			sport.Basketball: {Fixtures: fixture.NewBasketball()},
		},
		Cache:   results,
		Metrics: recorder,
	})
	cricketService := usecase.NewCricketService(usecase.CricketServiceConfig{
		Fixtures: fixture.NewCricket(),
		Cache:    results,
		Metrics:  recorder,
	})
	handler := NewHandler(matchService, cricketService, usecase.NewCacheService(results, nil), sport.Football, nil)

	return NewRouter(handler, RouterConfig{
		Metrics:            recorder,
		MetricsEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
		AdminToken:         testAdminToken,
		RateLimiter:        NewRateLimiter(500, 15*time.Minute),
	})
}

func serve(router http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Root(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != rootBanner {
		t.Fatalf("unexpected root response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/cricket/news", nil)
	if got := rec.Header().Get(requestIDHeader); len(got) != 32 {
		t.Fatalf("expected a generated request id, got %q", got)
	}
}

func TestRouter_MatchRoutesServeFixturesInMockMode(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		target     string
		shape      feed.Shape
		wantInBody string
	}{
		{name: "basketball upcoming", target: "/api/matches?sportType=basketball", shape: feed.ShapeBasketball, wantInBody: "Boston Celtics"},
		{name: "football default sport", target: "/api/matches", shape: feed.ShapeFootball, wantInBody: `"matches"`},
		{name: "football standings lowercase code", target: "/api/matches/competitions/pl/standings", shape: feed.ShapeFootball, wantInBody: "Liverpool FC"},
		{name: "football standings ignore season", target: "/api/matches/competitions/PL/standings?season=2024", shape: feed.ShapeFootball, wantInBody: "Liverpool FC"},
		{name: "basketball standings", target: "/api/matches/competitions/12/standings?sportType=basketball&season=2023-2024", shape: feed.ShapeBasketball, wantInBody: "Eastern Conference"},
		{name: "football head to head", target: "/api/matches/head-to-head/57/65", shape: feed.ShapeMessage, wantInBody: fixture.FootballHeadToHeadMock},
		{name: "team", target: "/api/teams/64?sportType=basketball", shape: feed.ShapeBasketball, wantInBody: "Basketball Team 64"},
		{name: "previous", target: "/api/matches/previous", shape: feed.ShapeFootball, wantInBody: "FINISHED"},
		{name: "today", target: "/api/matches/today/all?sportType=basketball", shape: feed.ShapeBasketball, wantInBody: "Milwaukee Bucks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get(provenanceHeader); got != string(feed.ProvenanceMock) {
				t.Fatalf("unexpected provenance: %q", got)
			}
			if got := rec.Header().Get(shapeHeader); got != string(tt.shape) {
				t.Fatalf("unexpected shape: %q", got)
			}
			if !strings.Contains(rec.Body.String(), tt.wantInBody) {
				t.Fatalf("expected body to contain %q, got %s", tt.wantInBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_CricketRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target     string
		wantInBody string
	}{
		{target: "/api/cricket/matches", wantInBody: `"matches"`},
		{target: "/api/cricket/matches/list", wantInBody: `"matches"`},
		{target: "/api/cricket/matches/ipl", wantInBody: "IPL"},
		{target: "/api/cricket/matches/get-overs?matchId=1", wantInBody: `{"overs":[]}`},
		{target: "/api/cricket/matches/1/commentary", wantInBody: fixture.CommentaryMock},
		{target: "/api/cricket/series", wantInBody: "The Ashes"},
		{target: "/api/cricket/news", wantInBody: "IPL auction results"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantInBody) {
				t.Fatalf("expected body to contain %q, got %s", tt.wantInBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		target  string
		message string
	}{
		{name: "unknown sport", target: "/api/matches?sportType=tennis", message: "Failed to fetch matches"},
		{name: "malformed season", target: "/api/matches/competitions/12/scorers?sportType=basketball&season=2024", message: "Failed to fetch competition scorers"},
		{name: "cricket on match route", target: "/api/matches/today/all?sportType=cricket", message: "Failed to fetch today's matches"},
		{name: "missing overs match id", target: "/api/cricket/matches/get-overs", message: "Failed to fetch cricket overs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.target, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var body errorResponse
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal error body: %v", err)
			}
			if body.Message != tt.message || body.Error == "" {
				t.Fatalf("unexpected error body: %+v", body)
			}
		})
	}
}

func TestRouter_ClearCacheRequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)

	if rec := serve(router, http.MethodDelete, "/api/cache", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := serve(router, http.MethodDelete, "/api/cache", map[string]string{adminTokenHeader: "wrong"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rec.Code)
	}
	rec := serve(router, http.MethodDelete, "/api/cache", map[string]string{adminTokenHeader: testAdminToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with admin token, got %d", rec.Code)
	}
}

func TestRouter_MetricsAndHealth(t *testing.T) {
	router := newTestRouter(t)
	serve(router, http.MethodGet, "/api/matches", nil)
	serve(router, http.MethodGet, "/api/matches", nil)

	if rec := serve(router, http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}

	rec := serve(router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `matchtracker_cache_lookups_total{result="hit"} 1`) {
		t.Fatalf("expected a cache hit to be recorded, got %s", rec.Body.String())
	}
}

func TestRouter_RateLimitHeadersOnAPI(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/cricket/news", nil)
	if got := rec.Header().Get("RateLimit-Limit"); got != "500" {
		t.Fatalf("unexpected RateLimit-Limit: %q", got)
	}
	if got := rec.Header().Get("RateLimit-Remaining"); got != "499" {
		t.Fatalf("unexpected RateLimit-Remaining: %q", got)
	}
}
