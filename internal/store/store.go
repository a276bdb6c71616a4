// Package store keeps view-ready state built from match-tracker API
// responses. Every response is classified by its own shape, never by the
// sport currently on screen. When the API cannot be reached the stores keep
// an error message and fill in local fixtures so views are never empty.
package store

import (
	"context"

	"github.com/riskibarqy/match-tracker/internal/client"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
)

// MatchesAPI is the part of the API client used by MatchesStore.
type MatchesAPI interface {
	UpcomingMatches(ctx context.Context, sp sport.Sport) (client.Response, error)
	TodayMatches(ctx context.Context, sp sport.Sport) (client.Response, error)
	PreviousMatches(ctx context.Context, sp sport.Sport) (client.Response, error)
	CompetitionMatches(ctx context.Context, sp sport.Sport, code, season string) (client.Response, error)
	Standings(ctx context.Context, sp sport.Sport, code, season string) (client.Response, error)
	Scorers(ctx context.Context, sp sport.Sport, code, season string) (client.Response, error)
	Match(ctx context.Context, sp sport.Sport, matchID string) (client.Response, error)
}

// CricketAPI is the part of the API client used by CricketStore.
type CricketAPI interface {
	CricketMatches(ctx context.Context) (client.Response, error)
	CricketPreviousMatches(ctx context.Context) (client.Response, error)
	CricketIPLMatches(ctx context.Context) (client.Response, error)
	CricketMatch(ctx context.Context, matchID string) (client.Response, error)
	CricketScorecard(ctx context.Context, matchID string) (client.Response, error)
	CricketCommentary(ctx context.Context, matchID string) (client.Response, error)
	CricketOvers(ctx context.Context, matchID string) (client.Response, error)
	CricketSeries(ctx context.Context) (client.Response, error)
	CricketNews(ctx context.Context) (client.Response, error)
}

// degraded reports whether a response was not live provider data.
func degraded(resp client.Response) bool {
	return resp.Provenance == feed.ProvenanceFallback || resp.Provenance == feed.ProvenanceMock
}

func sportOfShape(shape feed.Shape, fallback sport.Sport) sport.Sport {
	switch shape {
	case feed.ShapeFootball:
		return sport.Football
	case feed.ShapeBasketball:
		return sport.Basketball
	case feed.ShapeCricket:
		return sport.Cricket
	default:
		return fallback
	}
}
