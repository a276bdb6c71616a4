package httpapi

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimiter counts requests per client IP in fixed windows. The window of
// an IP starts with its first request.
type RateLimiter struct {
	limit   int
	window  time.Duration
	now     func() time.Time
	metrics *metrics.Recorder

	mu      sync.Mutex
	clients map[string]*rateWindow
	swept   time.Time
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

type RateLimiterOption func(*RateLimiter)

func WithRateLimitClock(now func() time.Time) RateLimiterOption {
	return func(l *RateLimiter) {
		if now != nil {
			l.now = now
		}
	}
}

func WithRateLimitMetrics(recorder *metrics.Recorder) RateLimiterOption {
	return func(l *RateLimiter) {
		l.metrics = recorder
	}
}

func NewRateLimiter(limit int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	l := &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*rateWindow),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.swept = l.now()
	return l
}

// Allow records one request from ip and returns the remaining budget and the
// window reset time.
func (l *RateLimiter) Allow(ip string) (bool, int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.clients[ip]
	if !ok || !now.Before(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(l.window)}
		l.clients[ip] = w
	}
	w.count++

	remaining := l.limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return w.count <= l.limit, remaining, w.resetAt
}

// sweep drops expired windows at most once per window.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.swept) < l.window {
		return
	}
	for ip, w := range l.clients {
		if !now.Before(w.resetAt) {
			delete(l.clients, ip)
		}
	}
	l.swept = now
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RateLimiter")
		defer span.End()

		allowed, remaining, resetAt := l.Allow(clientIPFrom(r))

		resetIn := int(resetAt.Sub(l.now()).Round(time.Second) / time.Second)
		if resetIn < 0 {
			resetIn = 0
		}
		h := w.Header()
		h.Set("RateLimit-Limit", strconv.Itoa(l.limit))
		h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("RateLimit-Reset", strconv.Itoa(resetIn))

		if !allowed {
			l.metrics.CountRateLimited()
			h.Set("Retry-After", strconv.Itoa(resetIn))
			writeText(ctx, w, http.StatusTooManyRequests, rateLimitMessage)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
