package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/riskibarqy/match-tracker/internal/client"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/fixture"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

// fakeCricketAPI serves the cricket fixtures; any endpoint listed in fail
// returns an error instead.
type fakeCricketAPI struct {
	fixtures *fixture.Cricket
	fail     map[string]error

	mu    sync.Mutex
	calls map[string]int
}

func newFakeCricketAPI() *fakeCricketAPI {
	return &fakeCricketAPI{
		fixtures: fixture.NewCricket(),
		fail:     map[string]error{},
		calls:    map[string]int{},
	}
}

func (f *fakeCricketAPI) serve(name string, load func() ([]byte, error)) (client.Response, error) {
	f.mu.Lock()
	f.calls[name]++
	err := f.fail[name]
	f.mu.Unlock()
	if err != nil {
		return client.Response{}, err
	}
	body, err := load()
	if err != nil {
		return client.Response{}, err
	}
	return client.Response{Payload: feed.NewPayload(feed.ShapeCricket, body), Provenance: feed.ProvenanceLive}, nil
}

func (f *fakeCricketAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeCricketAPI) CricketMatches(ctx context.Context) (client.Response, error) {
	return f.serve("matches", func() ([]byte, error) { return f.fixtures.Matches(ctx) })
}

func (f *fakeCricketAPI) CricketPreviousMatches(ctx context.Context) (client.Response, error) {
	return f.serve("previous", func() ([]byte, error) { return f.fixtures.RecentMatches(ctx) })
}

func (f *fakeCricketAPI) CricketIPLMatches(ctx context.Context) (client.Response, error) {
	return f.serve("ipl", func() ([]byte, error) { return f.fixtures.IPLMatches(ctx) })
}

func (f *fakeCricketAPI) CricketMatch(ctx context.Context, matchID string) (client.Response, error) {
	return f.serve("info", func() ([]byte, error) { return f.fixtures.MatchInfo(ctx, matchID) })
}

func (f *fakeCricketAPI) CricketScorecard(ctx context.Context, matchID string) (client.Response, error) {
	return f.serve("scorecard", func() ([]byte, error) { return f.fixtures.Scorecard(ctx, matchID) })
}

func (f *fakeCricketAPI) CricketCommentary(ctx context.Context, matchID string) (client.Response, error) {
	return f.serve("commentary", func() ([]byte, error) { return f.fixtures.Commentary(ctx, matchID) })
}

func (f *fakeCricketAPI) CricketOvers(ctx context.Context, matchID string) (client.Response, error) {
	return f.serve("overs", func() ([]byte, error) { return f.fixtures.Overs(ctx, matchID) })
}

func (f *fakeCricketAPI) CricketSeries(ctx context.Context) (client.Response, error) {
	return f.serve("series", func() ([]byte, error) { return f.fixtures.Series(ctx) })
}

func (f *fakeCricketAPI) CricketNews(ctx context.Context) (client.Response, error) {
	return f.serve("news", func() ([]byte, error) { return f.fixtures.News(ctx) })
}

func TestCricketStore_Lists(t *testing.T) {
	api := newFakeCricketAPI()
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))
	ctx := context.Background()

	s.FetchMatches(ctx)
	s.FetchPreviousMatches(ctx)
	s.FetchIPLMatches(ctx)
	s.FetchSeries(ctx)
	s.FetchNews(ctx)

	st := s.State()
	if st.Error != "" || st.Offline {
		t.Fatalf("unexpected state flags: %+v", st)
	}
	if len(st.Matches) == 0 || len(st.PreviousMatches) == 0 || len(st.IPLMatches) == 0 {
		t.Fatalf("expected match lists, got %d/%d/%d", len(st.Matches), len(st.PreviousMatches), len(st.IPLMatches))
	}
	for _, m := range st.IPLMatches {
		if !strings.Contains(m.Series, "IPL") {
			t.Fatalf("unexpected IPL series %q", m.Series)
		}
	}
	if len(st.Series) != 3 || len(st.News) != 3 {
		t.Fatalf("expected 3 series and 3 news items, got %d and %d", len(st.Series), len(st.News))
	}
}

func TestCricketStore_LoadMatchDetail(t *testing.T) {
	api := newFakeCricketAPI()
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))

	if err := s.LoadMatchDetail(context.Background(), "cricket-match-1"); err != nil {
		t.Fatalf("LoadMatchDetail() error = %v", err)
	}

	st := s.State()
	if st.CurrentMatch == nil || st.CurrentMatch.ID != "cricket-match-1" {
		t.Fatalf("unexpected current match: %+v", st.CurrentMatch)
	}
	if st.CurrentState != "In Progress" {
		t.Fatalf("unexpected current state %q", st.CurrentState)
	}
	if st.Scorecard == nil {
		t.Fatal("expected scorecard")
	}
	if got := feed.String(st.Commentary, "commentary"); got != fixture.CommentaryMock {
		t.Fatalf("unexpected commentary %q", got)
	}
	if st.Overs == nil {
		t.Fatal("expected an empty overs list, got nil")
	}
}

func TestCricketStore_LoadMatchDetailFailureDoesNotCancelOthers(t *testing.T) {
	api := newFakeCricketAPI()
	api.fail["scorecard"] = errors.New("upstream 500")
	api.fail["overs"] = errors.New("upstream 500")
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))

	err := s.LoadMatchDetail(context.Background(), "cricket-match-1")
	if err == nil {
		t.Fatal("expected joined error")
	}

	for _, name := range []string{"info", "scorecard", "commentary", "overs"} {
		if api.count(name) != 1 {
			t.Fatalf("expected %s to be fetched once, got %d", name, api.count(name))
		}
	}
	st := s.State()
	if st.CurrentMatch == nil {
		t.Fatal("expected match info despite scorecard failure")
	}
	if len(st.Overs) != 0 {
		t.Fatalf("expected empty overs, got %d", len(st.Overs))
	}
	if !st.Offline {
		t.Fatal("expected the fixture scorecard to mark the store offline")
	}
}

func TestCricketStore_CommentaryFailureShowsUnavailable(t *testing.T) {
	api := newFakeCricketAPI()
	api.fail["commentary"] = errors.New("timeout")
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))

	if err := s.FetchCommentary(context.Background(), "cricket-match-1"); err == nil {
		t.Fatal("expected error")
	}

	st := s.State()
	if got := feed.String(st.Commentary, "commentary"); got != fixture.CommentaryUnavailable {
		t.Fatalf("unexpected commentary %q", got)
	}
	if st.Error != "Failed to load commentary. Please try again later." {
		t.Fatalf("unexpected error message %q", st.Error)
	}
}

func TestCricketStore_ClearCurrentMatch(t *testing.T) {
	s := NewCricketStore(newFakeCricketAPI(), WithCricketLogger(logging.NewNop()))
	if err := s.LoadMatchDetail(context.Background(), "cricket-match-1"); err != nil {
		t.Fatalf("LoadMatchDetail() error = %v", err)
	}

	s.ClearCurrentMatch()

	st := s.State()
	if st.CurrentMatch != nil || st.CurrentState != "" || st.Scorecard != nil || st.Commentary != nil {
		t.Fatalf("expected detail to be cleared, got %+v", st)
	}
}

func TestCricketStore_RefreshLiveSkipsInfo(t *testing.T) {
	api := newFakeCricketAPI()
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))

	if err := s.RefreshLive(context.Background(), "cricket-match-1"); err != nil {
		t.Fatalf("RefreshLive() error = %v", err)
	}
	fetched := 0
	for _, name := range []string{"scorecard", "commentary", "overs"} {
		fetched += api.count(name)
	}
	if fetched != 3 || api.count("info") != 0 {
		t.Fatalf("unexpected fetches: live=%d info=%d", fetched, api.count("info"))
	}
}

// cancellingCricketAPI cancels the caller's context while the scorecard
// request is in flight.
type cancellingCricketAPI struct {
	*fakeCricketAPI
	cancel context.CancelFunc
}

func (c *cancellingCricketAPI) CricketScorecard(ctx context.Context, _ string) (client.Response, error) {
	c.cancel()
	return client.Response{}, ctx.Err()
}

func TestCricketStore_CancelledFetchLeavesStateAlone(t *testing.T) {
	api := newFakeCricketAPI()
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))
	if err := s.LoadMatchDetail(context.Background(), "cricket-match-1"); err != nil {
		t.Fatalf("LoadMatchDetail() error = %v", err)
	}
	before := s.State()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.RefreshLive(ctx, "cricket-match-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	st := s.State()
	if st.Error != "" || st.Offline || st.Loading {
		t.Fatalf("cancelled refresh changed flags: error=%q offline=%v loading=%v", st.Error, st.Offline, st.Loading)
	}
	if st.Scorecard == nil || feed.String(st.Commentary, "commentary") != feed.String(before.Commentary, "commentary") {
		t.Fatalf("cancelled refresh replaced the detail view: %+v", st)
	}
	for _, name := range []string{"scorecard", "commentary", "overs"} {
		if api.count(name) != 1 {
			t.Fatalf("expected no new %s request, got %d", name, api.count(name))
		}
	}
}

func TestCricketStore_CancelDuringFetchSkipsFixture(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api := &cancellingCricketAPI{fakeCricketAPI: newFakeCricketAPI(), cancel: cancel}
	s := NewCricketStore(api, WithCricketLogger(logging.NewNop()))

	if err := s.FetchScorecard(ctx, "cricket-match-1"); err == nil {
		t.Fatal("expected an error")
	}

	st := s.State()
	if st.Error != "" || st.Offline || st.Loading || st.Scorecard != nil {
		t.Fatalf("expected untouched state, got error=%q offline=%v loading=%v scorecard=%v",
			st.Error, st.Offline, st.Loading, st.Scorecard != nil)
	}
}
