package httpapi

import (
	"context"

	"github.com/riskibarqy/match-tracker/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Only handler spans are recorded; middleware and writers pass through.
var apiSpans = tracing.New("match-tracker/internal/interfaces/httpapi", tracing.WithPrefix("httpapi.Handler."))

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiSpans.Start(ctx, name)
}
