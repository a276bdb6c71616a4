package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string

	DefaultSport sport.Sport
	UseMockData  bool

	FootballAPIKey      string
	FootballBaseURL     string
	FootballCompetition string

	BasketballAPIKey   string
	BasketballBaseURL  string
	BasketballLeagueID string

	CricketAPIKey  string
	CricketBaseURL string
	CricketAPIHost string

	UpstreamTimeout               time.Duration
	UpstreamMaxRetries            int
	UpstreamCircuitEnabled        bool
	UpstreamCircuitFailureCount   int
	UpstreamCircuitOpenTimeout    time.Duration
	UpstreamCircuitHalfOpenMaxReq int

	CacheTTL        time.Duration
	CacheMaxEntries int
	CacheRedisURL   string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	TrustProxyHeaders bool
	AdminToken        string
	MetricsEnabled    bool

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	defaultSport, err := sport.Parse(getEnv("SPORT_TYPE", string(sport.Football)), sport.Football)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORT_TYPE: %w", err)
	}
	useMockData, err := strconv.ParseBool(getEnv("USE_MOCK_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse USE_MOCK_DATA: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}
	if upstreamTimeout <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT must be > 0")
	}
	upstreamMaxRetries, err := getEnvAsInt("UPSTREAM_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_MAX_RETRIES: %w", err)
	}
	if upstreamMaxRetries < 0 {
		return Config{}, fmt.Errorf("UPSTREAM_MAX_RETRIES must be >= 0")
	}
	upstreamCircuitEnabled, err := strconv.ParseBool(getEnv("UPSTREAM_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_ENABLED: %w", err)
	}
	upstreamCircuitFailureCount, err := getEnvAsInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if upstreamCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	upstreamCircuitOpenTimeout, err := time.ParseDuration(getEnv("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if upstreamCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	upstreamCircuitHalfOpenMaxReq, err := getEnvAsInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if upstreamCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cacheMaxEntries, err := getEnvAsInt("CACHE_MAX_ENTRIES", 1024)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cacheMaxEntries < 1 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be >= 1")
	}

	rateLimitRequests, err := getEnvAsInt("RATE_LIMIT_REQUESTS", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_REQUESTS: %w", err)
	}
	if rateLimitRequests < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_REQUESTS must be >= 1")
	}
	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "15m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_WINDOW: %w", err)
	}
	if rateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}

	trustProxyHeaders, err := strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRUST_PROXY_HEADERS: %w", err)
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "match-tracker-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":5000"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		DefaultSport: defaultSport,
		UseMockData:  useMockData,

		FootballAPIKey:      strings.TrimSpace(getEnv("FOOTBALL_API_KEY", "")),
		FootballBaseURL:     strings.TrimSpace(getEnv("FOOTBALL_BASE_URL", "https://api.football-data.org/v4")),
		FootballCompetition: strings.ToUpper(strings.TrimSpace(getEnv("FOOTBALL_COMPETITION", "PL"))),

		BasketballAPIKey:   strings.TrimSpace(getEnv("BASKETBALL_APISPORTS_KEY", "")),
		BasketballBaseURL:  strings.TrimSpace(getEnv("BASKETBALL_BASE_URL", "https://v1.basketball.api-sports.io")),
		BasketballLeagueID: strings.TrimSpace(getEnv("BASKETBALL_LEAGUE_ID", "12")),

		CricketAPIKey:  strings.TrimSpace(getEnv("RAPIDAPI_KEY", "")),
		CricketBaseURL: strings.TrimSpace(getEnv("CRICKET_BASE_URL", "https://cricbuzz-cricket.p.rapidapi.com")),
		CricketAPIHost: strings.TrimSpace(getEnv("CRICKET_API_HOST", "cricbuzz-cricket.p.rapidapi.com")),

		UpstreamTimeout:               upstreamTimeout,
		UpstreamMaxRetries:            upstreamMaxRetries,
		UpstreamCircuitEnabled:        upstreamCircuitEnabled,
		UpstreamCircuitFailureCount:   upstreamCircuitFailureCount,
		UpstreamCircuitOpenTimeout:    upstreamCircuitOpenTimeout,
		UpstreamCircuitHalfOpenMaxReq: upstreamCircuitHalfOpenMaxReq,

		CacheTTL:        cacheTTL,
		CacheMaxEntries: cacheMaxEntries,
		CacheRedisURL:   strings.TrimSpace(getEnv("CACHE_REDIS_URL", "")),

		RateLimitRequests: rateLimitRequests,
		RateLimitWindow:   rateLimitWindow,
		TrustProxyHeaders: trustProxyHeaders,
		AdminToken:        strings.TrimSpace(getEnv("ADMIN_TOKEN", "")),
		MetricsEnabled:    metricsEnabled,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.FootballCompetition == "" {
		return Config{}, fmt.Errorf("FOOTBALL_COMPETITION cannot be empty")
	}

	return cfg, nil
}

// MockMode reports whether sp is served from fixtures: USE_MOCK_DATA is set
// or the provider key for the sport is missing.
func (c Config) MockMode(sp sport.Sport) bool {
	if c.UseMockData {
		return true
	}
	switch sp {
	case sport.Football:
		return c.FootballAPIKey == ""
	case sport.Basketball:
		return c.BasketballAPIKey == ""
	case sport.Cricket:
		return c.CricketAPIKey == ""
	default:
		return true
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
