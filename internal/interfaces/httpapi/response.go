package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/usecase"
)

const (
	provenanceHeader = "X-Data-Provenance"
	shapeHeader      = "X-Data-Shape"
)

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeResult sends the provider body verbatim; provenance and shape travel
// in headers.
func writeResult(ctx context.Context, w http.ResponseWriter, result feed.Result) {
	_, span := startSpan(ctx, "httpapi.writeResult")
	defer span.End()

	h := w.Header()
	h.Set("Content-Type", "application/json")
	if result.Provenance != "" {
		h.Set(provenanceHeader, string(result.Provenance))
	}
	if result.Payload.Shape != feed.ShapeUnknown {
		h.Set(shapeHeader, string(result.Payload.Shape))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Payload.Body)
}

func writeText(ctx context.Context, w http.ResponseWriter, status int, text string) {
	_, span := startSpan(ctx, "httpapi.writeText")
	defer span.End()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

func writeError(ctx context.Context, w http.ResponseWriter, message string, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	writeJSON(ctx, w, mapError(ctx, err), errorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeText(ctx, w, http.StatusInternalServerError, "Something broke!")
}

func mapError(ctx context.Context, err error) int {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
