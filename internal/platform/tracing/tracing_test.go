package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func parentContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestScope_NoParentSpan(t *testing.T) {
	ctx := context.Background()
	got, span := New("test").Start(ctx, "usecase.MatchService.UpcomingMatches")
	defer span.End()

	if got != ctx {
		t.Fatal("expected context to be returned unchanged without a parent span")
	}
}

func TestScope_WithParentSpan(t *testing.T) {
	ctx := parentContext()
	got, span := New("test").Start(ctx, "usecase.MatchService.UpcomingMatches")
	defer span.End()

	if got == ctx {
		t.Fatal("expected a child span context")
	}
	if span.SpanContext().TraceID() != (trace.TraceID{1}) {
		t.Fatalf("expected child to keep the parent trace id, got %s", span.SpanContext().TraceID())
	}
}

func TestScope_Allows(t *testing.T) {
	scope := New("test", WithPrefix("httpapi.Handler."))
	tests := []struct {
		name string
		want bool
	}{
		{name: "httpapi.Handler.ListMatches", want: true},
		{name: "httpapi.RequestLogging", want: false},
		{name: "httpapi.writeError", want: false},
		{name: "", want: false},
	}
	for _, tt := range tests {
		if got := scope.Allows(tt.name); got != tt.want {
			t.Fatalf("Allows(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	ctx := parentContext()
	if got, _ := scope.Start(ctx, "httpapi.writeError"); got != ctx {
		t.Fatal("expected filtered span name to leave ctx unchanged")
	}
}
