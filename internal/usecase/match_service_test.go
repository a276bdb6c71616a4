package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/match"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/domain/standing"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/cache"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/fixture"
	feedmock "github.com/riskibarqy/match-tracker/internal/mocks/domain/feed"
	basecache "github.com/riskibarqy/match-tracker/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func clockAt(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newMatchService(t *testing.T, feeds map[sport.Sport]SportFeed) (*MatchService, *cache.MemoryResultCache) {
	t.Helper()
	results := cache.NewMemoryResultCache(basecache.NewStore(5*time.Minute, 64, basecache.WithClock(clockAt(fixedNow))))
	return NewMatchService(MatchServiceConfig{
		Feeds: feeds,
		Cache: results,
		Now:   clockAt(fixedNow),
	}), results
}

func footballFeed(live feed.MatchProvider) SportFeed {
	return SportFeed{
		Live:               live,
		Fixtures:           fixture.NewFootball(fixture.WithClock(clockAt(fixedNow))),
		HeadToHeadFallback: func() feed.Payload { return fixture.Message(fixture.FootballHeadToHeadUnavailable) },
	}
}

func basketballFeed(live feed.MatchProvider, mockMode bool) SportFeed {
	return SportFeed{
		Live:     live,
		Fixtures: fixture.NewBasketball(fixture.WithClock(clockAt(fixedNow))),
		MockMode: mockMode,
	}
}

func TestMatchService_UpcomingMatches_CachesLiveResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	body := []byte(`{"matches":[{"id":1,"status":"SCHEDULED"}]}`)
	live.On("UpcomingMatches", mock.Anything, "").Return(body, nil).Once()

	service, results := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(live)})

	first, err := service.UpcomingMatches(ctx, sport.Football)
	if err != nil {
		t.Fatalf("first upcoming matches: %v", err)
	}
	second, err := service.UpcomingMatches(ctx, sport.Football)
	if err != nil {
		t.Fatalf("second upcoming matches: %v", err)
	}

	if first.Provenance != feed.ProvenanceLive || second.Provenance != feed.ProvenanceLive {
		t.Fatalf("unexpected provenance: first=%s second=%s", first.Provenance, second.Provenance)
	}
	if string(first.Payload.Body) != string(body) || string(second.Payload.Body) != string(body) {
		t.Fatalf("expected verbatim provider body, got first=%s second=%s", first.Payload.Body, second.Payload.Body)
	}
	if second.Payload.Shape != feed.ShapeFootball {
		t.Fatalf("unexpected shape: %s", second.Payload.Shape)
	}
	if results.Len() != 1 {
		t.Fatalf("expected one cached entry, got %d", results.Len())
	}
}

func TestMatchService_UpcomingMatches_RefetchesAfterTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := fixedNow
	results := cache.NewMemoryResultCache(basecache.NewStore(5*time.Minute, 64, basecache.WithClock(func() time.Time { return now })))

	live := feedmock.NewMatchProvider(t)
	live.On("UpcomingMatches", mock.Anything, "").Return([]byte(`{"matches":[]}`), nil).Twice()

	service := NewMatchService(MatchServiceConfig{
		Feeds: map[sport.Sport]SportFeed{sport.Football: footballFeed(live)},
		Cache: results,
		Now:   clockAt(fixedNow),
	})

	if _, err := service.UpcomingMatches(ctx, sport.Football); err != nil {
		t.Fatalf("first upcoming matches: %v", err)
	}
	now = now.Add(4 * time.Minute)
	if _, err := service.UpcomingMatches(ctx, sport.Football); err != nil {
		t.Fatalf("cached upcoming matches: %v", err)
	}
	live.AssertNumberOfCalls(t, "UpcomingMatches", 1)

	now = now.Add(time.Minute + time.Second)
	got, err := service.UpcomingMatches(ctx, sport.Football)
	if err != nil {
		t.Fatalf("expired upcoming matches: %v", err)
	}
	if got.Provenance != feed.ProvenanceLive {
		t.Fatalf("unexpected provenance: %s", got.Provenance)
	}
	live.AssertNumberOfCalls(t, "UpcomingMatches", 2)
}

func TestMatchService_Standings_FootballIgnoresSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	live.On("Standings", mock.Anything, "PL", "").Return([]byte(`{"standings":[]}`), nil).Once()

	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(live)})

	got, err := service.Standings(ctx, sport.Football, "PL", "2024")
	if err != nil {
		t.Fatalf("standings with season: %v", err)
	}
	if got.Provenance != feed.ProvenanceLive {
		t.Fatalf("unexpected provenance: %s", got.Provenance)
	}
	// Same cache entry as the request without a season.
	if _, err := service.Standings(ctx, sport.Football, "PL", ""); err != nil {
		t.Fatalf("standings without season: %v", err)
	}
}

func TestMatchService_Standings_FallsBackToFixtureOnUpstreamError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	live.On("Standings", mock.Anything, "PL", "").
		Return(nil, errors.New("football-data: unexpected status 500")).
		Times(2)

	service, results := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(live)})

	got, err := service.Standings(ctx, sport.Football, "pl", "")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if !got.IsFallback() {
		t.Fatalf("expected fallback provenance, got %s", got.Provenance)
	}

	table, err := standing.Parse(sport.Football, got.Payload.Body)
	if err != nil {
		t.Fatalf("parse fallback standings: %v", err)
	}
	leader := table.Default().Rows[0]
	if leader.Team != "Liverpool FC" || leader.Position != 1 || leader.Points != 38 {
		t.Fatalf("unexpected leader: %+v", leader)
	}

	if results.Len() != 0 {
		t.Fatalf("expected fallback result not to be cached")
	}
	if _, err := service.Standings(ctx, sport.Football, "PL", ""); err != nil {
		t.Fatalf("second standings: %v", err)
	}
}

func TestMatchService_TodayMatches_BasketballMockMode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Basketball: basketballFeed(live, true)})

	got, err := service.TodayMatches(ctx, sport.Basketball)
	if err != nil {
		t.Fatalf("today matches: %v", err)
	}
	if got.Provenance != feed.ProvenanceMock {
		t.Fatalf("expected mock provenance, got %s", got.Provenance)
	}

	matches := match.NormalizeAll(got.Payload)
	if len(matches) != 2 {
		t.Fatalf("expected two fixture games, got %d", len(matches))
	}
	if matches[0].HomeTeam != "Boston Celtics" || matches[1].HomeTeam != "Milwaukee Bucks" {
		t.Fatalf("unexpected fixture teams: %+v", matches)
	}
	if !service.MockMode(sport.Basketball) {
		t.Fatalf("expected basketball to report mock mode")
	}
}

func TestMatchService_TodayMatches_BasketballDefaultsSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	body := []byte(`{"response":[]}`)
	live.On("TodayMatches", mock.Anything, fixedNow, "2023-2024").Return(body, nil).Once()

	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Basketball: basketballFeed(live, false)})

	got, err := service.TodayMatches(ctx, sport.Basketball)
	if err != nil {
		t.Fatalf("today matches: %v", err)
	}
	if got.Provenance != feed.ProvenanceLive || got.Payload.Shape != feed.ShapeBasketball {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMatchService_PreviousMatches_UsesSevenDayWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	from := fixedNow.AddDate(0, 0, -7)
	live.On("PreviousMatches", mock.Anything, from, fixedNow, "").Return([]byte(`{"matches":[]}`), nil).Once()

	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(live)})

	if _, err := service.PreviousMatches(ctx, sport.Football); err != nil {
		t.Fatalf("previous matches: %v", err)
	}
}

func TestMatchService_HeadToHead_FootballMessageOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	live.On("HeadToHead", mock.Anything, "57", "65").Return(nil, errors.New("timeout")).Once()

	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(live)})

	got, err := service.HeadToHead(ctx, sport.Football, "57", "65")
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if got.Payload.Shape != feed.ShapeMessage {
		t.Fatalf("expected message shape, got %s", got.Payload.Shape)
	}
	if msg := feed.Message(got.Payload); msg != fixture.FootballHeadToHeadUnavailable {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestMatchService_HeadToHead_FootballMockMessage(t *testing.T) {
	t.Parallel()

	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(nil)})

	got, err := service.HeadToHead(context.Background(), sport.Football, "57", "65")
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if got.Provenance != feed.ProvenanceMock || feed.Message(got.Payload) != fixture.FootballHeadToHeadMock {
		t.Fatalf("unexpected mock head to head: %+v", got)
	}
}

func TestMatchService_HeadToHead_BasketballReturnsGameOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	live := feedmock.NewMatchProvider(t)
	live.On("HeadToHead", mock.Anything, "133", "145").Return(nil, errors.New("circuit open")).Once()

	service, _ := newMatchService(t, map[sport.Sport]SportFeed{sport.Basketball: basketballFeed(live, false)})

	got, err := service.HeadToHead(ctx, sport.Basketball, "133", "145")
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if got.Payload.Shape != feed.ShapeBasketball || !got.IsFallback() {
		t.Fatalf("unexpected result: shape=%s provenance=%s", got.Payload.Shape, got.Provenance)
	}
	if !strings.Contains(string(got.Payload.Body), "Boston Celtics") {
		t.Fatalf("expected first fixture game, got %s", got.Payload.Body)
	}
}

func TestMatchService_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _ := newMatchService(t, map[sport.Sport]SportFeed{
		sport.Football:   footballFeed(nil),
		sport.Basketball: basketballFeed(nil, true),
	})

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "cricket has no match listings",
			call: func() error {
				_, err := service.UpcomingMatches(ctx, sport.Cricket)
				return err
			},
		},
		{
			name: "malformed season",
			call: func() error {
				_, err := service.Standings(ctx, sport.Basketball, "12", "2023/24")
				return err
			},
		},
		{
			name: "empty competition",
			call: func() error {
				_, err := service.Scorers(ctx, sport.Football, " ", "")
				return err
			},
		},
		{
			name: "missing team",
			call: func() error {
				_, err := service.HeadToHead(ctx, sport.Football, "57", "")
				return err
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCacheService_ClearDropsEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, results := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(nil)})
	if _, err := service.Standings(ctx, sport.Football, "PL", ""); err != nil {
		t.Fatalf("standings: %v", err)
	}
	if results.Len() != 1 {
		t.Fatalf("expected mock result to be cached")
	}

	if err := NewCacheService(results, nil).Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if results.Len() != 0 {
		t.Fatalf("expected empty cache after clear, got %d", results.Len())
	}
}

func TestMatchService_CallerCancelDoesNotAbortSharedLoad(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	providerCtxErr := make(chan error, 1)

	live := feedmock.NewMatchProvider(t)
	live.On("UpcomingMatches", mock.Anything, "").
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			providerCtxErr <- args.Get(0).(context.Context).Err()
		}).
		Return([]byte(`{"matches":[]}`), nil).
		Once()

	service, results := newMatchService(t, map[sport.Sport]SportFeed{sport.Football: footballFeed(live)})

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := service.UpcomingMatches(ctx, sport.Football)
		errs <- err
	}()

	<-started
	cancel()
	if err := <-errs; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the cancelled caller to get context.Canceled, got %v", err)
	}
	close(release)
	if err := <-providerCtxErr; err != nil {
		t.Fatalf("provider saw a cancelled context: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for results.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected the shared load to be cached")
		}
		time.Sleep(5 * time.Millisecond)
	}
	got, err := service.UpcomingMatches(context.Background(), sport.Football)
	if err != nil {
		t.Fatalf("upcoming matches: %v", err)
	}
	if got.Provenance != feed.ProvenanceLive {
		t.Fatalf("expected cached live result, got %s", got.Provenance)
	}
}
