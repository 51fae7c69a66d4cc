package config

import "time"

// BackoffConfig parameterizes one exponential backoff curve:
// delay(k) = min(Initial × Multiplier^k, Max), jittered by ±JitterFraction.
type BackoffConfig struct {
	Initial        time.Duration `yaml:"initial"`
	Multiplier     float64       `yaml:"multiplier"`
	Max            time.Duration `yaml:"max"`
	JitterFraction float64       `yaml:"jitter_fraction"`
}

// RetryConfig controls failure retry and escalation behavior.
type RetryConfig struct {
	// MaxRetries is the per-(task, subtask) retry budget. Reaching it
	// escalates regardless of failure type.
	MaxRetries int `yaml:"max_retries"`

	// Backoff is the default backoff curve.
	Backoff BackoffConfig `yaml:"backoff"`

	// RateLimitBackoff overrides the curve for RATE_LIMIT failures
	// (providers want substantially longer pauses after a 429).
	RateLimitBackoff BackoffConfig `yaml:"rate_limit_backoff"`

	// TimeoutBackoff overrides the curve for TIMEOUT failures (a tighter
	// cap: long waits rarely help a deadline problem).
	TimeoutBackoff BackoffConfig `yaml:"timeout_backoff"`

	// EscalateQualityFailures, when true, treats QUALITY_FAILURE as
	// non-retryable at the retry layer (the review loop already re-prompts;
	// retrying the identical input rarely changes the judgment).
	EscalateQualityFailures bool `yaml:"escalate_quality_failures"`

	// HistoryWindow is how many recent attempts escalation reports include.
	HistoryWindow int `yaml:"history_window"`
}

// DefaultRetryConfig returns the built-in retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries: 3,
		Backoff: BackoffConfig{
			Initial:        1 * time.Second,
			Multiplier:     2.0,
			Max:            30 * time.Second,
			JitterFraction: 0.10,
		},
		RateLimitBackoff: BackoffConfig{
			Initial:        5 * time.Second,
			Multiplier:     2.0,
			Max:            60 * time.Second,
			JitterFraction: 0.10,
		},
		TimeoutBackoff: BackoffConfig{
			Initial:        1 * time.Second,
			Multiplier:     2.0,
			Max:            10 * time.Second,
			JitterFraction: 0.10,
		},
		EscalateQualityFailures: false,
		HistoryWindow:           5,
	}
}
