package usecase

import (
	"context"

	"github.com/riskibarqy/match-tracker/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var usecaseSpans = tracing.New("match-tracker/internal/usecase")

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return usecaseSpans.Start(ctx, name)
}
