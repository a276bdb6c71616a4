package upstream

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
	"github.com/riskibarqy/match-tracker/internal/platform/resilience"
	"github.com/riskibarqy/match-tracker/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 6 << 20
)

var errTransient = crerr.New("upstream transient failure")

// StatusError is returned for a non-2xx provider response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s status=%d body=%s", e.Provider, e.StatusCode, e.Body)
}

type Config struct {
	Provider   string
	HTTPClient *http.Client
	BaseURL    string
	// Headers are sent on every request, typically the API key.
	Headers        map[string]string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client is the JSON GET transport shared by the provider clients. Bodies
// are returned verbatim; decoding is left to the caller.
type Client struct {
	provider   string
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	secrets    []string
	maxRetries int
	logger     *logging.Logger
	metrics    *metrics.Recorder
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	headers := make(map[string]string, len(cfg.Headers))
	secrets := make([]string, 0, len(cfg.Headers))
	for key, value := range cfg.Headers {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		headers[key] = value
		if isSecretHeader(key) {
			secrets = append(secrets, value)
		}
	}

	provider := strings.TrimSpace(cfg.Provider)
	if provider == "" {
		provider = "upstream"
	}

	c := &Client{
		provider:   provider,
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		headers:    headers,
		secrets:    secrets,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger.Named("upstream." + provider),
		metrics:    cfg.Metrics,
		breaker:    resilience.NewCircuitBreaker(provider, cfg.CircuitBreaker),
	}
	c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
		c.metrics.SetCircuitState(c.provider, string(to))
		c.logger.Warn("circuit breaker state changed", "from", string(from), "to", string(to))
	})
	return c
}

func (c *Client) Provider() string {
	return c.provider
}

// Get issues GET baseURL+path?query. Concurrent identical requests share
// one round trip.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// The shared request outlives any single waiter; each waiter still
	// gives up when its own ctx ends.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(fullURL, func() (any, error) {
		started := time.Now()
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(flightCtx, fullURL)
			return reqErr
		}, isCircuitFailure)
		c.metrics.ObserveUpstream(c.provider, outcome(execErr), time.Since(started))

		if stderrors.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(flightCtx, "circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %s is temporarily unavailable", usecase.ErrDependencyUnavailable, c.provider)
		}
		return raw, execErr
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	raw, ok := res.Val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", res.Val)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		for key, value := range c.headers {
			req.Header.Set(key, value)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errTransient, "send request: %s", c.redact(err.Error()))
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			default:
				statusErr := &StatusError{Provider: c.provider, StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
				if !isRetryableStatus(resp.StatusCode) {
					c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", statusErr)
					return nil, statusErr
				}
				lastErr = crerr.Mark(statusErr, errTransient)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%s request failed", c.provider)
	}
	c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxBodyBytes)); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func (c *Client) redact(value string) string {
	value = strings.TrimSpace(value)
	for _, secret := range c.secrets {
		value = strings.ReplaceAll(value, secret, "REDACTED")
	}
	return value
}

func isSecretHeader(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "key") || strings.Contains(lower, "token")
}

// IsTransient reports whether err is a network failure, timeout or a
// retryable status.
func IsTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return IsTransient(err) || stderrors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case stderrors.Is(err, resilience.ErrCircuitOpen):
		return "circuit_open"
	default:
		return "error"
	}
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
