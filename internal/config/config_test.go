package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/sport"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DefaultSport != sport.Football {
		t.Fatalf("unexpected DefaultSport: %q", cfg.DefaultSport)
	}
	if cfg.FootballCompetition != "PL" || cfg.BasketballLeagueID != "12" {
		t.Fatalf("unexpected competition defaults: %q %q", cfg.FootballCompetition, cfg.BasketballLeagueID)
	}
	if cfg.CacheTTL != 5*time.Minute || cfg.CacheMaxEntries != 1024 {
		t.Fatalf("unexpected cache defaults: %s %d", cfg.CacheTTL, cfg.CacheMaxEntries)
	}
	if cfg.RateLimitRequests != 500 || cfg.RateLimitWindow != 15*time.Minute {
		t.Fatalf("unexpected rate limit defaults: %d %s", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	if cfg.UpstreamTimeout != 10*time.Second || cfg.UpstreamMaxRetries != 0 {
		t.Fatalf("unexpected upstream defaults: %s %d", cfg.UpstreamTimeout, cfg.UpstreamMaxRetries)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("unexpected PprofAddr: %q", cfg.PprofAddr)
	}
	if cfg.TrustProxyHeaders {
		t.Fatal("proxy headers should not be trusted by default")
	}
}

func TestLoad_SportType(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("basketball", func(t *testing.T) {
		t.Setenv("SPORT_TYPE", "Basketball")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DefaultSport != sport.Basketball {
			t.Fatalf("unexpected DefaultSport: %q", cfg.DefaultSport)
		}
	})

	t.Run("unknown sport", func(t *testing.T) {
		t.Setenv("SPORT_TYPE", "tennis")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown SPORT_TYPE")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar,uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_RejectsInvalidNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "CACHE_TTL", value: "0s"},
		{key: "CACHE_MAX_ENTRIES", value: "0"},
		{key: "RATE_LIMIT_REQUESTS", value: "many"},
		{key: "UPSTREAM_MAX_RETRIES", value: "-1"},
		{key: "UPSTREAM_CIRCUIT_FAILURE_COUNT", value: "0"},
		{key: "USE_MOCK_DATA", value: "sometimes"},
		{key: "TRUST_PROXY_HEADERS", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_MockMode(t *testing.T) {
	cfg := Config{FootballAPIKey: "football-key", CricketAPIKey: "rapid-key"}

	if cfg.MockMode(sport.Football) {
		t.Fatalf("expected football live with a key")
	}
	if !cfg.MockMode(sport.Basketball) {
		t.Fatalf("expected basketball mock without a key")
	}
	if cfg.MockMode(sport.Cricket) {
		t.Fatalf("expected cricket live with a key")
	}

	cfg.UseMockData = true
	if !cfg.MockMode(sport.Football) || !cfg.MockMode(sport.Cricket) {
		t.Fatalf("expected USE_MOCK_DATA to force mock mode")
	}
}
