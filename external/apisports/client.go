package apisports

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/match-tracker/external/upstream"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
	"github.com/riskibarqy/match-tracker/internal/platform/resilience"
)

const (
	DefaultBaseURL  = "https://v1.basketball.api-sports.io"
	DefaultLeagueID = "12"
	previousWindow  = 7 * 24 * time.Hour
	dateLayout      = "2006-01-02"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	LeagueID       string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to api-sports basketball v1. Competition codes are numeric
// league ids; an empty season means the current one.
type Client struct {
	http     *upstream.Client
	leagueID string
	now      func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	leagueID := strings.TrimSpace(cfg.LeagueID)
	if leagueID == "" {
		leagueID = DefaultLeagueID
	}

	return &Client{
		http: upstream.New(upstream.Config{
			Provider:       "basketball",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			Headers:        map[string]string{"x-apisports-key": cfg.APIKey},
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         cfg.Logger,
			Metrics:        cfg.Metrics,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		leagueID: leagueID,
		now:      time.Now,
	}
}

func (c *Client) UpcomingMatches(ctx context.Context, season string) ([]byte, error) {
	return c.TodayMatches(ctx, c.now(), season)
}

func (c *Client) TodayMatches(ctx context.Context, day time.Time, season string) ([]byte, error) {
	if day.IsZero() {
		day = c.now()
	}
	return c.http.Get(ctx, "/games", url.Values{
		"date":   {day.UTC().Format(dateLayout)},
		"league": {c.leagueID},
		"season": {c.season(season)},
	})
}

func (c *Client) PreviousMatches(ctx context.Context, from, to time.Time, season string) ([]byte, error) {
	if from.IsZero() || to.IsZero() {
		to = c.now()
		from = to.Add(-previousWindow)
	}
	return c.http.Get(ctx, "/games", url.Values{
		"league":  {c.leagueID},
		"season":  {c.season(season)},
		"dates[]": {from.UTC().Format(dateLayout), to.UTC().Format(dateLayout)},
	})
}

func (c *Client) CompetitionMatches(ctx context.Context, leagueID, season string) ([]byte, error) {
	return c.http.Get(ctx, "/games", c.leagueQuery(leagueID, season))
}

func (c *Client) Standings(ctx context.Context, leagueID, season string) ([]byte, error) {
	return c.http.Get(ctx, "/standings", c.leagueQuery(leagueID, season))
}

func (c *Client) Scorers(ctx context.Context, leagueID, season string) ([]byte, error) {
	return c.http.Get(ctx, "/players/topscorers", c.leagueQuery(leagueID, season))
}

func (c *Client) Match(ctx context.Context, gameID string) ([]byte, error) {
	return c.http.Get(ctx, "/games", url.Values{"id": {gameID}})
}

func (c *Client) Team(ctx context.Context, teamID string) ([]byte, error) {
	return c.http.Get(ctx, "/teams", url.Values{"id": {teamID}})
}

func (c *Client) HeadToHead(ctx context.Context, team1ID, team2ID string) ([]byte, error) {
	return c.http.Get(ctx, "/games/h2h", url.Values{"h2h": {team1ID + "-" + team2ID}})
}

func (c *Client) leagueQuery(leagueID, season string) url.Values {
	if strings.TrimSpace(leagueID) == "" {
		leagueID = c.leagueID
	}
	return url.Values{
		"league": {leagueID},
		"season": {c.season(season)},
	}
}

func (c *Client) season(season string) string {
	if season = strings.TrimSpace(season); season != "" {
		return season
	}
	return sport.CurrentSeason(c.now())
}
