// Package observability starts and stops the process-wide tracing,
// profiling and pprof endpoints.
package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/riskibarqy/match-tracker/internal/config"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

// Stack is what Start brought up. Shutdown stops it in reverse order.
type Stack struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start enables Uptrace, Pyroscope and pprof as configured. When one piece
// fails, the pieces already running are stopped before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{
		logger:          logger.Named("observability"),
		shutdownTracing: func(context.Context) error { return nil },
		stopProfiler:    func() error { return nil },
	}

	shutdownTracing, err := startTracing(cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.shutdownTracing = shutdownTracing

	stopProfiler, err := startProfiler(cfg, s.logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	s.stopProfiler = stopProfiler

	srv, err := startPprof(cfg, s.logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	s.pprof = srv

	return s, nil
}

// Shutdown stops pprof, then the profiler, then flushes traces. Every step
// runs even when an earlier one fails.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.pprof != nil {
		if err := s.pprof.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		} else {
			s.logger.Info("pprof server stopped")
		}
		s.pprof = nil
	}
	if err := s.stopProfiler(); err != nil {
		errs = append(errs, err)
	}
	if err := s.shutdownTracing(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
