package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/match-tracker/internal/client"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/match"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/domain/standing"
	"github.com/riskibarqy/match-tracker/internal/infrastructure/fixture"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

// Scorer is one row of a top scorers list.
type Scorer struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Goals  int    `json:"goals"`
}

type MatchesState struct {
	Sport              sport.Sport
	Matches            []match.Match
	TodayMatches       []match.Match
	PreviousMatches    []match.Match
	CompetitionMatches []match.Match
	CurrentMatch       *match.Match
	Standings          standing.Table
	Scorers            []Scorer
	Loading            bool
	Error              string
	// Offline is set once any view shows fixture data.
	Offline bool
}

// MatchesStore holds football and basketball listings for one sport at a
// time. The last completed fetch wins.
type MatchesStore struct {
	api      MatchesAPI
	fixtures map[sport.Sport]feed.MatchProvider
	logger   *logging.Logger

	mu    sync.Mutex
	state MatchesState
}

type MatchesOption func(*MatchesStore)

// WithMatchFixtures replaces the local stand-ins used when the API fails.
func WithMatchFixtures(fixtures map[sport.Sport]feed.MatchProvider) MatchesOption {
	return func(s *MatchesStore) {
		if fixtures != nil {
			s.fixtures = fixtures
		}
	}
}

func WithMatchesLogger(logger *logging.Logger) MatchesOption {
	return func(s *MatchesStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewMatchesStore(api MatchesAPI, sp sport.Sport, opts ...MatchesOption) *MatchesStore {
	if !sp.Valid() || sp == sport.Cricket {
		sp = sport.Football
	}
	s := &MatchesStore{
		api: api,
		fixtures: map[sport.Sport]feed.MatchProvider{
			sport.Football:   fixture.NewFootball(),
			sport.Basketball: fixture.NewBasketball(),
		},
		logger: logging.Default(),
		state:  MatchesState{Sport: sp},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MatchesStore) State() MatchesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *MatchesStore) SetSport(sp sport.Sport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sport = sp
}

func (s *MatchesStore) currentSport() sport.Sport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Sport
}

// begin marks a fetch as started. It reports false, leaving state alone,
// when ctx is already done.
func (s *MatchesStore) begin(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = true
	s.state.Error = ""
	return true
}

// finish applies the outcome of one fetch. failMsg is shown when err is set.
func (s *MatchesStore) finish(ctx context.Context, err error, failMsg string, offline bool, apply func(*MatchesState)) {
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
		s.logger.WarnContext(ctx, "match store fetch failed", "message", failMsg, "error", err)
		s.state.Error = failMsg
	}
}

// load calls the API and, on failure, the local fixture of the same sport.
func (s *MatchesStore) load(
	ctx context.Context,
	sp sport.Sport,
	remote func(context.Context) (client.Response, error),
	local func(context.Context, feed.MatchProvider) ([]byte, error),
) (feed.Payload, bool, error) {
	resp, err := remote(ctx)
	if err == nil {
		return resp.Payload, degraded(resp), nil
	}

	provider, ok := s.fixtures[sp]
	if !ok {
		return feed.Payload{}, false, err
	}
	body, fixtureErr := local(ctx, provider)
	if fixtureErr != nil {
		return feed.Payload{}, false, err
	}
	return feed.NewPayload(feed.ShapeOf(sp), body), true, err
}

func (s *MatchesStore) FetchMatches(ctx context.Context) {
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.UpcomingMatches(ctx, sp) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) { return p.UpcomingMatches(ctx, "") },
	)
	s.finish(ctx, err, "Failed to load matches. Please try again later.", offline, func(st *MatchesState) {
		st.Matches = match.NormalizeAll(payload)
	})
}

func (s *MatchesStore) FetchTodaysMatches(ctx context.Context) {
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.TodayMatches(ctx, sp) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) { return p.TodayMatches(ctx, time.Now(), "") },
	)
	s.finish(ctx, err, "Failed to load today's matches. Please try again later.", offline, func(st *MatchesState) {
		st.TodayMatches = match.NormalizeAll(payload)
	})
}

func (s *MatchesStore) FetchPreviousMatches(ctx context.Context) {
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.PreviousMatches(ctx, sp) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) {
			return p.PreviousMatches(ctx, time.Time{}, time.Time{}, "")
		},
	)
	s.finish(ctx, err, "Failed to load previous matches. Please try again later.", offline, func(st *MatchesState) {
		st.PreviousMatches = match.NormalizeAll(payload)
	})
}

func (s *MatchesStore) FetchCompetitionMatches(ctx context.Context, code, season string) {
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.CompetitionMatches(ctx, sp, code, season) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) { return p.CompetitionMatches(ctx, code, season) },
	)
	msg := fmt.Sprintf("Failed to load matches for %s. Please try again later.", code)
	s.finish(ctx, err, msg, offline, func(st *MatchesState) {
		st.CompetitionMatches = match.NormalizeAll(payload)
	})
}

// FetchCompetitionStandings parses with the sport the payload is tagged
// with; untagged bodies fall back to the competition id heuristic.
func (s *MatchesStore) FetchCompetitionStandings(ctx context.Context, code, season string) {
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.Standings(ctx, sp, code, season) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) { return p.Standings(ctx, code, season) },
	)

	var table standing.Table
	if payload.Shape == feed.ShapeUnknown {
		table, _ = standing.ParseByCompetition(code, payload.Body)
	} else {
		table, _ = standing.Parse(sportOfShape(payload.Shape, sp), payload.Body)
	}
	msg := fmt.Sprintf("Failed to load standings for %s. Please try again later.", code)
	s.finish(ctx, err, msg, offline, func(st *MatchesState) {
		st.Standings = table
	})
}

func (s *MatchesStore) FetchCompetitionScorers(ctx context.Context, code, season string) {
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.Scorers(ctx, sp, code, season) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) { return p.Scorers(ctx, code, season) },
	)
	msg := fmt.Sprintf("Failed to load scorers for %s. Please try again later.", code)
	s.finish(ctx, err, msg, offline, func(st *MatchesState) {
		st.Scorers = parseScorers(payload)
	})
}

func (s *MatchesStore) FetchMatchByID(ctx context.Context, matchID string) {
	if strings.TrimSpace(matchID) == "" {
		return
	}
	sp := s.currentSport()
	if !s.begin(ctx) {
		return
	}
	payload, offline, err := s.load(ctx, sp,
		func(ctx context.Context) (client.Response, error) { return s.api.Match(ctx, sp, matchID) },
		func(ctx context.Context, p feed.MatchProvider) ([]byte, error) { return p.Match(ctx, matchID) },
	)

	var current *match.Match
	if rec, ok := match.Detail(payload); ok {
		m := match.Normalize(rec)
		m.Source = payload.Shape
		current = &m
	}
	s.finish(ctx, err, "Failed to load match details. Please try again later.", offline, func(st *MatchesState) {
		st.CurrentMatch = current
	})
}

func (s *MatchesStore) ClearCurrentMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentMatch = nil
}

// parseScorers reads football-data "scorers" or api-sports "response".
func parseScorers(p feed.Payload) []Scorer {
	root, ok := feed.Decode(p.Body)
	if !ok {
		return []Scorer{}
	}
	items, isList := root["response"].([]any)
	if !isList {
		items, _ = root["scorers"].([]any)
	}

	out := make([]Scorer, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		goals, ok := feed.Int(rec, "goals")
		if !ok {
			goals, _ = feed.Int(rec, "points")
		}
		out = append(out, Scorer{
			Player: feed.String(rec, "player", "name"),
			Team:   feed.String(rec, "team", "name"),
			Goals:  goals,
		})
	}
	return out
}
