package feed

import (
	"context"
	"time"
)

// MatchProvider is implemented by the football and basketball upstream
// clients and by their fixture stand-ins. Every method returns the provider
// body verbatim. Providers that have no notion of a season ignore it.
type MatchProvider interface {
	UpcomingMatches(ctx context.Context, season string) ([]byte, error)
	TodayMatches(ctx context.Context, day time.Time, season string) ([]byte, error)
	PreviousMatches(ctx context.Context, from, to time.Time, season string) ([]byte, error)
	CompetitionMatches(ctx context.Context, competition, season string) ([]byte, error)
	Standings(ctx context.Context, competition, season string) ([]byte, error)
	Scorers(ctx context.Context, competition, season string) ([]byte, error)
	Match(ctx context.Context, matchID string) ([]byte, error)
	Team(ctx context.Context, teamID string) ([]byte, error)
	HeadToHead(ctx context.Context, team1ID, team2ID string) ([]byte, error)
}

// CricketProvider is implemented by the Cricbuzz client and its fixtures.
type CricketProvider interface {
	Matches(ctx context.Context) ([]byte, error)
	RecentMatches(ctx context.Context) ([]byte, error)
	IPLMatches(ctx context.Context) ([]byte, error)
	MatchInfo(ctx context.Context, matchID string) ([]byte, error)
	Scorecard(ctx context.Context, matchID string) ([]byte, error)
	Commentary(ctx context.Context, matchID string) ([]byte, error)
	Overs(ctx context.Context, matchID string) ([]byte, error)
	Series(ctx context.Context) ([]byte, error)
	News(ctx context.Context) ([]byte, error)
}

// ResultCache stores orchestrated results by operation key.
type ResultCache interface {
	Get(ctx context.Context, key string) (Result, bool)
	Set(ctx context.Context, key string, result Result)
	Clear(ctx context.Context) error
}
