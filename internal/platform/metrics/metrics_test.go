package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_CountsFallbacks(t *testing.T) {
	r := NewRecorder()
	r.CountFallback("football", "standings")
	r.CountFallback("football", "standings")

	if got := testutil.ToFloat64(r.fallbacks.WithLabelValues("football", "standings")); got != 2 {
		t.Fatalf("expected 2 fallbacks, got %v", got)
	}
}

func TestRecorder_HandlerExposesSeries(t *testing.T) {
	r := NewRecorder()
	r.ObserveUpstream("football-data", "error", 20*time.Millisecond)
	r.CountCacheLookup(true)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`matchtracker_upstream_requests_total{outcome="error",provider="football-data"} 1`,
		`matchtracker_cache_lookups_total{result="hit"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected metrics output to contain %q", want)
		}
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.CountFallback("basketball", "today")
	r.CountCacheLookup(false)
	r.ObserveUpstream("api-sports", "ok", time.Second)
	r.CountRateLimited()
	r.SetCircuitState("cricbuzz", "open")
}

func TestRecorder_SetCircuitState(t *testing.T) {
	r := NewRecorder()

	tests := []struct {
		state string
		want  float64
	}{
		{state: "open", want: 1},
		{state: "half_open", want: 0.5},
		{state: "closed", want: 0},
	}
	for _, tt := range tests {
		r.SetCircuitState("football-data", tt.state)
		if got := testutil.ToFloat64(r.circuitOpen.WithLabelValues("football-data")); got != tt.want {
			t.Fatalf("state %s: gauge = %v, want %v", tt.state, got, tt.want)
		}
	}
}
