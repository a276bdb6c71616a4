package httpapi

import (
	"net/http"

	"github.com/riskibarqy/match-tracker/internal/platform/id"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
)

type RouterConfig struct {
	Logger             *logging.Logger
	Metrics            *metrics.Recorder
	MetricsEnabled     bool
	CORSAllowedOrigins []string
	AdminToken         string
	// RateLimiter guards /api. Nil disables limiting.
	RateLimiter *RateLimiter
	// RequestIDs mints X-Request-ID values; nil uses random hex ids.
	RequestIDs id.Generator
	// TrustProxyHeaders reads the client address from proxy headers.
	TrustProxyHeaders bool
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	api := http.NewServeMux()
	registerMatchRoutes(api, handler)
	registerTeamRoutes(api, handler)
	registerCricketRoutes(api, handler)
	registerAdminRoutes(api, handler, cfg.AdminToken)

	ids := cfg.RequestIDs
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	var apiHandler http.Handler = api
	if cfg.RateLimiter != nil {
		apiHandler = cfg.RateLimiter.Middleware(api)
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics, cfg.MetricsEnabled)
	mux.Handle("/api/", apiHandler)

	var h http.Handler = recoverPanic(logger, mux)
	h = CORS(cfg.CORSAllowedOrigins, h)
	h = RequestLogging(logger, h)
	h = ClientIP(cfg.TrustProxyHeaders, h)
	h = RequestID(ids, logger, h)
	return RequestTracing(h)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
