// Package client calls the match-tracker HTTP API. It is what the store
// layer and the matchctl CLI use to reach the server.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout = 10 * time.Second

	provenanceHeader = "X-Data-Provenance"
	shapeHeader      = "X-Data-Shape"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api status %d: %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    &fasthttp.Client{Name: "matchctl"},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is an API answer: the provider body and where it came from.
type Response struct {
	Payload    feed.Payload
	Provenance feed.Provenance
}

// Get issues a GET and returns the body verbatim. The payload is tagged from
// the shape header only; without it the body stays untagged and is sniffed
// when parsed, never assumed to match the requested sport.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return Response{}, fmt.Errorf("GET %s: timed out after %s: %w", path, c.timeout, err)
		}
		return Response{}, fmt.Errorf("GET %s: %w", path, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < 200 || status >= 300 {
		return Response{}, decodeError(status, body)
	}

	return Response{
		Payload:    feed.NewPayload(feed.Shape(resp.Header.Peek(shapeHeader)), body),
		Provenance: feed.Provenance(resp.Header.Peek(provenanceHeader)),
	}, nil
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	var decoded struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := jsoniter.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		apiErr.Message = decoded.Message
		apiErr.Detail = decoded.Error
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = fasthttp.StatusMessage(status)
	}
	return apiErr
}

func sportQuery(sp sport.Sport, season string) url.Values {
	q := url.Values{}
	q.Set("sportType", sp.String())
	if season != "" {
		q.Set("season", season)
	}
	return q
}

func (c *Client) UpcomingMatches(ctx context.Context, sp sport.Sport) (Response, error) {
	return c.Get(ctx, "/api/matches", sportQuery(sp, ""))
}

func (c *Client) TodayMatches(ctx context.Context, sp sport.Sport) (Response, error) {
	return c.Get(ctx, "/api/matches/today/all", sportQuery(sp, ""))
}

func (c *Client) PreviousMatches(ctx context.Context, sp sport.Sport) (Response, error) {
	return c.Get(ctx, "/api/matches/previous", sportQuery(sp, ""))
}

func (c *Client) CompetitionMatches(ctx context.Context, sp sport.Sport, code, season string) (Response, error) {
	return c.Get(ctx, "/api/matches/competitions/"+url.PathEscape(code)+"/all", sportQuery(sp, season))
}

func (c *Client) Standings(ctx context.Context, sp sport.Sport, code, season string) (Response, error) {
	return c.Get(ctx, "/api/matches/competitions/"+url.PathEscape(code)+"/standings", sportQuery(sp, season))
}

func (c *Client) Scorers(ctx context.Context, sp sport.Sport, code, season string) (Response, error) {
	return c.Get(ctx, "/api/matches/competitions/"+url.PathEscape(code)+"/scorers", sportQuery(sp, season))
}

func (c *Client) Match(ctx context.Context, sp sport.Sport, matchID string) (Response, error) {
	return c.Get(ctx, "/api/matches/"+url.PathEscape(matchID), sportQuery(sp, ""))
}

func (c *Client) Team(ctx context.Context, sp sport.Sport, teamID string) (Response, error) {
	return c.Get(ctx, "/api/teams/"+url.PathEscape(teamID), sportQuery(sp, ""))
}

func (c *Client) HeadToHead(ctx context.Context, sp sport.Sport, team1ID, team2ID string) (Response, error) {
	path := "/api/matches/head-to-head/" + url.PathEscape(team1ID) + "/" + url.PathEscape(team2ID)
	return c.Get(ctx, path, sportQuery(sp, ""))
}

func (c *Client) CricketMatches(ctx context.Context) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/list", nil)
}

func (c *Client) CricketPreviousMatches(ctx context.Context) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/previous", nil)
}

func (c *Client) CricketIPLMatches(ctx context.Context) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/ipl", nil)
}

func (c *Client) CricketMatch(ctx context.Context, matchID string) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/"+url.PathEscape(matchID), nil)
}

func (c *Client) CricketScorecard(ctx context.Context, matchID string) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/"+url.PathEscape(matchID)+"/scorecard", nil)
}

func (c *Client) CricketCommentary(ctx context.Context, matchID string) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/"+url.PathEscape(matchID)+"/commentary", nil)
}

func (c *Client) CricketOvers(ctx context.Context, matchID string) (Response, error) {
	return c.Get(ctx, "/api/cricket/matches/get-overs", url.Values{"matchId": {matchID}})
}

func (c *Client) CricketSeries(ctx context.Context) (Response, error) {
	return c.Get(ctx, "/api/cricket/series", nil)
}

func (c *Client) CricketNews(ctx context.Context) (Response, error) {
	return c.Get(ctx, "/api/cricket/news", nil)
}

// ClearCache calls the admin endpoint.
func (c *Client) ClearCache(ctx context.Context, adminToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/api/cache")
	req.Header.SetMethod(fasthttp.MethodDelete)
	req.Header.Set("X-Admin-Token", adminToken)

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return fmt.Errorf("DELETE /api/cache: %w", err)
	}
	if status := resp.StatusCode(); status < 200 || status >= 300 {
		return decodeError(status, append([]byte(nil), resp.Body()...))
	}
	return nil
}
