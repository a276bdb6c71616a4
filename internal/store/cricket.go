package store

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/match-tracker/internal/client"
	"github.com/riskibarqy/match-tracker/internal/domain/cricket"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/fixture"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type CricketState struct {
	Matches         []cricket.Summary
	PreviousMatches []cricket.Summary
	IPLMatches      []cricket.Summary
	CurrentMatch    *cricket.Summary
	// CurrentState is matchInfo.state of the current match; it decides polling.
	CurrentState string
	Scorecard    feed.Record
	Commentary   feed.Record
	Overs        []feed.Record
	Series       []cricket.SeriesItem
	News         []cricket.NewsItem
	Loading      bool
	Error        string
	Offline      bool
}

type CricketStore struct {
	api      CricketAPI
	fixtures feed.CricketProvider
	logger   *logging.Logger

	mu    sync.Mutex
	state CricketState
}

type CricketOption func(*CricketStore)

func WithCricketFixtures(fixtures feed.CricketProvider) CricketOption {
	return func(s *CricketStore) {
		if fixtures != nil {
			s.fixtures = fixtures
		}
	}
}

func WithCricketLogger(logger *logging.Logger) CricketOption {
	return func(s *CricketStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewCricketStore(api CricketAPI, opts ...CricketOption) *CricketStore {
	s := &CricketStore{
		api:      api,
		fixtures: fixture.NewCricket(),
		logger:   logging.Default(),
		state:    CricketState{Overs: []feed.Record{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CricketStore) State() CricketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// begin marks a fetch as started. It reports false, leaving state alone,
// when ctx is already done.
func (s *CricketStore) begin(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = true
	s.state.Error = ""
	return true
}

func (s *CricketStore) finish(ctx context.Context, err error, failMsg string, offline bool, apply func(*CricketState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if ctx.Err() != nil {
		return
	}
	apply(&s.state)
	if offline {
		s.state.Offline = true
	}
	if err != nil {
		s.logger.WarnContext(ctx, "cricket store fetch failed", "message", failMsg, "error", err)
		s.state.Error = failMsg
	}
}

// load returns the API body, or the fixture body when the API fails. The
// returned error is the API error either way.
func (s *CricketStore) load(
	ctx context.Context,
	remote func(context.Context) (client.Response, error),
	local func(context.Context) ([]byte, error),
) ([]byte, bool, error) {
	resp, err := remote(ctx)
	if err == nil {
		return resp.Payload.Body, degraded(resp), nil
	}
	if local == nil {
		return nil, false, err
	}
	body, fixtureErr := local(ctx)
	if fixtureErr != nil {
		return nil, false, err
	}
	return body, true, err
}

func (s *CricketStore) FetchMatches(ctx context.Context) {
	if !s.begin(ctx) {
		return
	}
	body, offline, err := s.load(ctx, s.api.CricketMatches, s.fixtures.Matches)
	s.finish(ctx, err, "Failed to load cricket matches. Please try again later.", offline, func(st *CricketState) {
		st.Matches = cricket.ParseMatches(body)
	})
}

func (s *CricketStore) FetchPreviousMatches(ctx context.Context) {
	if !s.begin(ctx) {
		return
	}
	body, offline, err := s.load(ctx, s.api.CricketPreviousMatches, s.fixtures.RecentMatches)
	s.finish(ctx, err, "Failed to load previous cricket matches. Please try again later.", offline, func(st *CricketState) {
		st.PreviousMatches = cricket.ParseMatches(body)
	})
}

func (s *CricketStore) FetchIPLMatches(ctx context.Context) {
	if !s.begin(ctx) {
		return
	}
	body, offline, err := s.load(ctx, s.api.CricketIPLMatches, s.fixtures.IPLMatches)
	s.finish(ctx, err, "Failed to load IPL matches. Please try again later.", offline, func(st *CricketState) {
		st.IPLMatches = cricket.ParseMatches(body)
	})
}

func (s *CricketStore) FetchMatchInfo(ctx context.Context, matchID string) error {
	if !s.begin(ctx) {
		return ctx.Err()
	}
	body, offline, err := s.load(ctx,
		func(ctx context.Context) (client.Response, error) { return s.api.CricketMatch(ctx, matchID) },
		func(ctx context.Context) ([]byte, error) { return s.fixtures.MatchInfo(ctx, matchID) },
	)
	info, ok := cricket.ParseInfo(body)
	state := cricket.StateOf(body)
	s.finish(ctx, err, "Failed to load match details. Please try again later.", offline, func(st *CricketState) {
		if ok {
			st.CurrentMatch = &info
		} else {
			st.CurrentMatch = nil
		}
		st.CurrentState = state
	})
	return err
}

func (s *CricketStore) FetchScorecard(ctx context.Context, matchID string) error {
	if !s.begin(ctx) {
		return ctx.Err()
	}
	body, offline, err := s.load(ctx,
		func(ctx context.Context) (client.Response, error) { return s.api.CricketScorecard(ctx, matchID) },
		func(ctx context.Context) ([]byte, error) { return s.fixtures.Scorecard(ctx, matchID) },
	)
	scorecard, _ := feed.Decode(body)
	s.finish(ctx, err, "Failed to load scorecard. Please try again later.", offline, func(st *CricketState) {
		st.Scorecard = scorecard
	})
	return err
}

func (s *CricketStore) FetchCommentary(ctx context.Context, matchID string) error {
	if !s.begin(ctx) {
		return ctx.Err()
	}
	body, offline, err := s.load(ctx,
		func(ctx context.Context) (client.Response, error) { return s.api.CricketCommentary(ctx, matchID) },
		func(context.Context) ([]byte, error) { return fixture.CommentaryBody(fixture.CommentaryUnavailable) },
	)
	commentary, _ := feed.Decode(body)
	s.finish(ctx, err, "Failed to load commentary. Please try again later.", offline, func(st *CricketState) {
		st.Commentary = commentary
	})
	return err
}

// FetchOvers never reports an error to the view; a failure is an empty list.
func (s *CricketStore) FetchOvers(ctx context.Context, matchID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := s.api.CricketOvers(ctx, matchID)
	overs := []feed.Record{}
	if err == nil {
		overs = cricket.ParseOvers(resp.Payload.Body)
	} else {
		s.logger.WarnContext(ctx, "cricket overs unavailable", "match_id", matchID, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() == nil {
		s.state.Overs = overs
	}
	return err
}

func (s *CricketStore) FetchSeries(ctx context.Context) {
	if !s.begin(ctx) {
		return
	}
	body, offline, err := s.load(ctx, s.api.CricketSeries, s.fixtures.Series)
	s.finish(ctx, err, "Failed to load cricket series. Please try again later.", offline, func(st *CricketState) {
		st.Series = cricket.ParseSeries(body)
	})
}

func (s *CricketStore) FetchNews(ctx context.Context) {
	if !s.begin(ctx) {
		return
	}
	body, offline, err := s.load(ctx, s.api.CricketNews, s.fixtures.News)
	s.finish(ctx, err, "Failed to load cricket news. Please try again later.", offline, func(st *CricketState) {
		st.News = cricket.ParseNews(body)
	})
}

// LoadMatchDetail fetches info, scorecard, commentary and overs at once.
// A failed fetch does not cancel the others.
func (s *CricketStore) LoadMatchDetail(ctx context.Context, matchID string) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil
	}

	p := pool.New().WithErrors().WithMaxGoroutines(4)
	p.Go(func() error { return s.FetchMatchInfo(ctx, matchID) })
	p.Go(func() error { return s.FetchScorecard(ctx, matchID) })
	p.Go(func() error { return s.FetchCommentary(ctx, matchID) })
	p.Go(func() error { return s.FetchOvers(ctx, matchID) })
	return p.Wait()
}

// RefreshLive refetches the parts of a detail view that change during play.
func (s *CricketStore) RefreshLive(ctx context.Context, matchID string) error {
	p := pool.New().WithErrors()
	p.Go(func() error { return s.FetchScorecard(ctx, matchID) })
	p.Go(func() error { return s.FetchCommentary(ctx, matchID) })
	p.Go(func() error { return s.FetchOvers(ctx, matchID) })
	return p.Wait()
}

func (s *CricketStore) ClearCurrentMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentMatch = nil
	s.state.CurrentState = ""
	s.state.Scorecard = nil
	s.state.Commentary = nil
	s.state.Overs = []feed.Record{}
}
