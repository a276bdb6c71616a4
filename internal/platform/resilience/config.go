package resilience

import "time"

const (
	defaultFailureThreshold = 3
	defaultOpenTimeout      = 30 * time.Second
	defaultHalfOpenMaxReq   = 1
)

// CircuitBreakerConfig is shared by the provider clients. Each client builds
// its own breaker from it, so one failing provider never opens another.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaultFailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return c
}

// LogFields returns the effective settings as key/value pairs.
func (c CircuitBreakerConfig) LogFields() []any {
	c = c.withDefaults()
	return []any{
		"circuit_enabled", c.Enabled,
		"circuit_failure_threshold", c.FailureThreshold,
		"circuit_open_timeout", c.OpenTimeout.String(),
		"circuit_half_open_max", c.HalfOpenMaxReq,
	}
}
