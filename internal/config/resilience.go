package config

import "time"

// Retry configuration constants
const (
	// Sheets/Drive API request retry configuration
	APIRequestMaxAttempts       = 3
	APIRequestInitialWait       = 1 * time.Second
	APIRequestMaxWait           = 10 * time.Second
	APIRequestBackoffMultiplier = 2.0
	APIRequestTimeout           = 30 * time.Second

	// Drive export downloads move whole files, so they get a longer timeout
	ExportMaxAttempts       = 2
	ExportInitialWait       = 1 * time.Second
	ExportMaxWait           = 10 * time.Second
	ExportBackoffMultiplier = 2.0
	ExportTimeout           = 2 * time.Minute
)

// RetryConfig defines retry behavior for operations
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	APIRequest RetryConfig
	Export     RetryConfig
}

// DefaultResilienceConfig provides sensible defaults
var DefaultResilienceConfig = ResilienceConfig{
	APIRequest: RetryConfig{
		MaxAttempts: APIRequestMaxAttempts,
		InitialWait: APIRequestInitialWait,
		MaxWait:     APIRequestMaxWait,
		Multiplier:  APIRequestBackoffMultiplier,
		Timeout:     APIRequestTimeout,
	},
	Export: RetryConfig{
		MaxAttempts: ExportMaxAttempts,
		InitialWait: ExportInitialWait,
		MaxWait:     ExportMaxWait,
		Multiplier:  ExportBackoffMultiplier,
		Timeout:     ExportTimeout,
	},
}

// NextWait returns the backoff delay after the given attempt (1-based),
// capped at MaxWait.
func (rc RetryConfig) NextWait(attempt int) time.Duration {
	wait := rc.InitialWait
	for i := 1; i < attempt; i++ {
		wait = time.Duration(float64(wait) * rc.Multiplier)
		if wait >= rc.MaxWait {
			return rc.MaxWait
		}
	}
	if wait > rc.MaxWait {
		return rc.MaxWait
	}
	return wait
}
