package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
	"golang.org/x/sync/singleflight"
)

type fetchFunc func(ctx context.Context) ([]byte, error)

// operation describes one logical read: how to fetch it live, what to serve
// in mock mode and what to serve when the live call fails.
type operation struct {
	sport string
	name  string
	key   string

	mock  bool
	shape feed.Shape
	live  fetchFunc

	fixture      fetchFunc
	fixtureShape feed.Shape
	// fallback defaults to fixture when nil.
	fallback      fetchFunc
	fallbackShape feed.Shape

	// uncached operations are re-fetched on every call.
	uncached bool
}

// resolver runs cache, then mock fixture, then upstream, then fallback
// fixture. Fallback results are returned but not cached so the next call
// retries the provider.
type resolver struct {
	cache   feed.ResultCache
	logger  *logging.Logger
	metrics *metrics.Recorder
	flight  singleflight.Group
}

func newResolver(cache feed.ResultCache, logger *logging.Logger, recorder *metrics.Recorder) *resolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &resolver{cache: cache, logger: logger, metrics: recorder}
}

func (r *resolver) resolve(ctx context.Context, op operation) (feed.Result, error) {
	if !op.uncached && r.cache != nil {
		if result, ok := r.cache.Get(ctx, op.key); ok {
			r.metrics.CountCacheLookup(true)
			return result, nil
		}
		r.metrics.CountCacheLookup(false)
	}

	// Loads run detached so a disconnecting caller does not hand the
	// others a fallback.
	flightCtx := context.WithoutCancel(ctx)
	ch := r.flight.DoChan(op.key, func() (any, error) {
		return r.load(flightCtx, op)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return feed.Result{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return feed.Result{}, res.Err
	}
	result, ok := res.Val.(feed.Result)
	if !ok {
		return feed.Result{}, fmt.Errorf("unexpected result type %T", res.Val)
	}
	return result, nil
}

func (r *resolver) load(ctx context.Context, op operation) (feed.Result, error) {
	if op.mock {
		if op.fixture == nil {
			return feed.Result{}, fmt.Errorf("%w: %s %s", ErrNoFixture, op.sport, op.name)
		}
		body, err := op.fixture(ctx)
		if err != nil {
			return feed.Result{}, fmt.Errorf("%w: %s %s: %v", ErrNoFixture, op.sport, op.name, err)
		}
		result := feed.Result{Payload: feed.NewPayload(shapeOr(op.fixtureShape, op.shape), body), Provenance: feed.ProvenanceMock}
		r.store(ctx, op, result)
		return result, nil
	}

	started := time.Now()
	body, err := op.live(ctx)
	if err == nil {
		result := feed.Result{Payload: feed.NewPayload(op.shape, body), Provenance: feed.ProvenanceLive}
		r.store(ctx, op, result)
		return result, nil
	}

	r.logger.WarnContext(ctx, "upstream request failed, serving fixture",
		"sport", op.sport,
		"operation", op.name,
		"took", time.Since(started),
		"error", err,
	)
	r.metrics.CountFallback(op.sport, op.name)

	fallback, shape := op.fallback, op.fallbackShape
	if fallback == nil {
		fallback, shape = op.fixture, op.fixtureShape
	}
	if fallback == nil {
		return feed.Result{}, fmt.Errorf("%w: %s %s: %v", ErrNoFixture, op.sport, op.name, err)
	}
	body, fixtureErr := fallback(ctx)
	if fixtureErr != nil {
		return feed.Result{}, fmt.Errorf("%w: %s %s: %v", ErrNoFixture, op.sport, op.name, fixtureErr)
	}
	return feed.Result{Payload: feed.NewPayload(shapeOr(shape, op.shape), body), Provenance: feed.ProvenanceFallback}, nil
}

func (r *resolver) store(ctx context.Context, op operation, result feed.Result) {
	if op.uncached || r.cache == nil {
		return
	}
	r.cache.Set(ctx, op.key, result)
}

func shapeOr(shape, fallback feed.Shape) feed.Shape {
	if shape == feed.ShapeUnknown {
		return fallback
	}
	return shape
}
