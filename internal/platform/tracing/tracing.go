// Package tracing starts child spans for internal layers. Spans are only
// created under an existing request span, so filtered routes such as
// /healthz never produce orphan root spans.
package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

type Scope struct {
	tracer trace.Tracer
	allow  func(name string) bool
}

type Option func(*Scope)

// WithPrefix limits the scope to span names starting with prefix.
func WithPrefix(prefix string) Option {
	return func(s *Scope) {
		s.allow = func(name string) bool { return strings.HasPrefix(name, prefix) }
	}
}

func New(instrumentation string, opts ...Option) Scope {
	s := Scope{
		tracer: otel.Tracer(instrumentation),
		allow:  func(string) bool { return true },
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Scope) Allows(name string) bool {
	return strings.TrimSpace(name) != "" && s.allow(name)
}

// Start returns ctx unchanged and a no-op span when there is no parent span
// or the name is filtered out.
func (s Scope) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !s.Allows(name) {
		return ctx, noopSpan
	}
	return s.tracer.Start(ctx, name, opts...)
}
