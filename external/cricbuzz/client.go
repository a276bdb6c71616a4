package cricbuzz

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
	DefaultBaseURL = "https://cricbuzz-cricket.p.rapidapi.com"
	DefaultHost    = "cricbuzz-cricket.p.rapidapi.com"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Host           string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to Cricbuzz through RapidAPI.
type Client struct {
	http *upstream.Client
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = DefaultHost
	}

	return &Client{
		http: upstream.New(upstream.Config{
			Provider:   "cricket",
			HTTPClient: cfg.HTTPClient,
			BaseURL:    baseURL,
			Headers: map[string]string{
				"X-RapidAPI-Key":  cfg.APIKey,
				"X-RapidAPI-Host": host,
			},
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         cfg.Logger,
			Metrics:        cfg.Metrics,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
	}
}

func (c *Client) Matches(ctx context.Context) ([]byte, error) {
	return c.http.Get(ctx, "/matches/list", nil)
}

func (c *Client) RecentMatches(ctx context.Context) ([]byte, error) {
	return c.http.Get(ctx, "/matches/list", url.Values{"status": {"completed"}})
}

func (c *Client) IPLMatches(ctx context.Context) ([]byte, error) {
	return c.http.Get(ctx, "/matches/list", url.Values{"tournament": {"ipl"}})
}

func (c *Client) MatchInfo(ctx context.Context, matchID string) ([]byte, error) {
	return c.http.Get(ctx, "/matches/get-info", url.Values{"matchId": {matchID}})
}

func (c *Client) Scorecard(ctx context.Context, matchID string) ([]byte, error) {
	return c.http.Get(ctx, "/matches/get-scorecard", url.Values{"matchId": {matchID}})
}

func (c *Client) Commentary(ctx context.Context, matchID string) ([]byte, error) {
	return c.http.Get(ctx, "/matches/get-commentaries", url.Values{"matchId": {matchID}})
}

func (c *Client) Overs(ctx context.Context, matchID string) ([]byte, error) {
	return c.http.Get(ctx, "/matches/get-overs", url.Values{"matchId": {matchID}})
}

func (c *Client) Series(ctx context.Context) ([]byte, error) {
	return c.http.Get(ctx, "/series/list", nil)
}

func (c *Client) News(ctx context.Context) ([]byte, error) {
	return c.http.Get(ctx, "/news/list", nil)
}
