package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-tracker/internal/domain/cricket"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

const DefaultPollInterval = 30 * time.Second

// Ticker is the part of time.Ticker the poller needs.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) Chan() <-chan time.Time { return t.C }

// Refresher reloads the live parts of one match.
type Refresher interface {
	RefreshLive(ctx context.Context, matchID string) error
}

// LivePoller refreshes a single cricket match while its state is live.
// Watching another match or calling Stop ends the current poll.
type LivePoller struct {
	refresher Refresher
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	onCycle   func(matchID string, err error)
	logger    *logging.Logger
	pool      *ants.Pool

	mu      sync.Mutex
	matchID string
	cancel  context.CancelFunc
	done    chan struct{}
}

type PollerOption func(*LivePoller)

func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *LivePoller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

func WithTicker(newTicker func(time.Duration) Ticker) PollerOption {
	return func(p *LivePoller) {
		if newTicker != nil {
			p.newTicker = newTicker
		}
	}
}

// WithCycleHook is called after every completed refresh.
func WithCycleHook(hook func(matchID string, err error)) PollerOption {
	return func(p *LivePoller) {
		p.onCycle = hook
	}
}

func WithPollerLogger(logger *logging.Logger) PollerOption {
	return func(p *LivePoller) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewLivePoller(refresher Refresher, opts ...PollerOption) (*LivePoller, error) {
	p := &LivePoller{
		refresher: refresher,
		interval:  DefaultPollInterval,
		newTicker: func(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} },
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Refreshes run one at a time.
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, fmt.Errorf("create poll pool: %w", err)
	}
	p.pool = pool
	return p, nil
}

// Watch starts polling matchID when state is live and reports whether it
// did. Any previous poll is stopped first.
func (p *LivePoller) Watch(ctx context.Context, matchID, state string) bool {
	p.Stop()
	if !cricket.IsLive(state) {
		return false
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := p.newTicker(p.interval)

	p.mu.Lock()
	p.matchID = matchID
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "live polling started", "match_id", matchID, "interval", p.interval.String())
	go p.loop(pollCtx, matchID, ticker, done)
	return true
}

func (p *LivePoller) loop(ctx context.Context, matchID string, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.tick(ctx, matchID)
		}
	}
}

func (p *LivePoller) tick(ctx context.Context, matchID string) {
	err := p.pool.Submit(func() {
		// A cycle queued behind a slow one may start after Stop.
		if ctx.Err() != nil {
			return
		}
		refreshErr := p.refresher.RefreshLive(ctx, matchID)
		if refreshErr != nil && ctx.Err() == nil {
			p.logger.WarnContext(ctx, "live refresh failed", "match_id", matchID, "error", refreshErr)
		}
		if p.onCycle != nil {
			p.onCycle(matchID, refreshErr)
		}
	})
	if errors.Is(err, ants.ErrPoolClosed) {
		return
	}
	if err != nil {
		p.logger.WarnContext(ctx, "submit live refresh", "match_id", matchID, "error", err)
	}
}

// Watching returns the polled match id, or "" when idle.
func (p *LivePoller) Watching() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.matchID
}

func (p *LivePoller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.matchID, p.cancel, p.done = "", nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Close stops polling and releases the worker pool.
func (p *LivePoller) Close() {
	p.Stop()
	p.pool.Release()
}
