package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORS(t *testing.T) {
	const site = "https://scores.example.com"

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantVary   bool
	}{
		{name: "configured origin", allowed: []string{" " + site + " "}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, wantOrigin: site, wantVary: true},
		{name: "wildcard", allowed: []string{"*"}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, wantOrigin: "*"},
		{name: "preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: site, wantStatus: http.StatusNoContent, wantOrigin: "*"},
		{name: "other origin", allowed: []string{"https://other.example.com"}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK},
		{name: "no origin", allowed: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/matches", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if reached == (tt.method == http.MethodOptions) {
				t.Fatalf("next reached = %v for %s", reached, tt.method)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := rec.Header().Get("Vary") == "Origin"; got != tt.wantVary {
				t.Fatalf("Vary: Origin = %v, want %v", got, tt.wantVary)
			}
		})
	}
}

func TestCORS_ExposesFeedHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	req := httptest.NewRequest(http.MethodOptions, "/api/cache", nil)
	req.Header.Set("Origin", "https://scores.example.com")
	rec := httptest.NewRecorder()

	CORS([]string{"*"}, next).ServeHTTP(rec, req)

	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	for _, header := range []string{provenanceHeader, shapeHeader, requestIDHeader} {
		if !strings.Contains(exposed, header) {
			t.Fatalf("expected %s in exposed headers %q", header, exposed)
		}
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, http.MethodDelete) {
		t.Fatalf("expected DELETE to be allowed, got %q", methods)
	}
	if allowed := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(allowed, adminTokenHeader) {
		t.Fatalf("expected admin token header to be allowed, got %q", allowed)
	}
}
