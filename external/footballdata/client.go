package footballdata

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/match-tracker/external/upstream"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
	"github.com/riskibarqy/match-tracker/internal/platform/resilience"
)

const (
	DefaultBaseURL     = "https://api.football-data.org/v4"
	DefaultCompetition = "PL"
	previousWindow     = 7 * 24 * time.Hour
	dateLayout         = "2006-01-02"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Competition    string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to football-data.org v4. Seasons are ignored; the provider
// scopes every call to the current season.
type Client struct {
	http        *upstream.Client
	competition string
	now         func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	competition := strings.ToUpper(strings.TrimSpace(cfg.Competition))
	if competition == "" {
		competition = DefaultCompetition
	}

	return &Client{
		http: upstream.New(upstream.Config{
			Provider:       "football",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			Headers:        map[string]string{"X-Auth-Token": cfg.Token},
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         cfg.Logger,
			Metrics:        cfg.Metrics,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		competition: competition,
		now:         time.Now,
	}
}

func (c *Client) UpcomingMatches(ctx context.Context, _ string) ([]byte, error) {
	return c.http.Get(ctx, "/competitions/"+url.PathEscape(c.competition)+"/matches", url.Values{"status": {"SCHEDULED"}})
}

// TodayMatches lists today's matches of the subscribed competitions. The
// provider defaults to today, so no date filter is sent.
func (c *Client) TodayMatches(ctx context.Context, _ time.Time, _ string) ([]byte, error) {
	return c.http.Get(ctx, "/matches", nil)
}

func (c *Client) PreviousMatches(ctx context.Context, from, to time.Time, _ string) ([]byte, error) {
	if from.IsZero() || to.IsZero() {
		to = c.now()
		from = to.Add(-previousWindow)
	}
	return c.http.Get(ctx, "/matches", url.Values{
		"dateFrom": {from.UTC().Format(dateLayout)},
		"dateTo":   {to.UTC().Format(dateLayout)},
		"status":   {"FINISHED"},
	})
}

func (c *Client) CompetitionMatches(ctx context.Context, competition, _ string) ([]byte, error) {
	return c.http.Get(ctx, "/competitions/"+url.PathEscape(competition)+"/matches", nil)
}

func (c *Client) Standings(ctx context.Context, competition, _ string) ([]byte, error) {
	return c.http.Get(ctx, "/competitions/"+url.PathEscape(competition)+"/standings", nil)
}

func (c *Client) Scorers(ctx context.Context, competition, _ string) ([]byte, error) {
	return c.http.Get(ctx, "/competitions/"+url.PathEscape(competition)+"/scorers", nil)
}

func (c *Client) Match(ctx context.Context, matchID string) ([]byte, error) {
	return c.http.Get(ctx, "/matches/"+url.PathEscape(matchID), nil)
}

func (c *Client) Team(ctx context.Context, teamID string) ([]byte, error) {
	return c.http.Get(ctx, "/teams/"+url.PathEscape(teamID), nil)
}

func (c *Client) HeadToHead(ctx context.Context, team1ID, team2ID string) ([]byte, error) {
	return c.http.Get(ctx, "/teams/"+url.PathEscape(team1ID)+"/matches", url.Values{
		"status":   {"FINISHED"},
		"opponent": {team2ID},
	})
}
