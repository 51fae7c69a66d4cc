package config

import (
	"fmt"
	"regexp"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateNamespace(); err != nil {
		return fmt.Errorf("namespace validation failed: %w", err)
	}

	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateLimits(); err != nil {
		return fmt.Errorf("limits validation failed: %w", err)
	}

	if err := v.validateReview(); err != nil {
		return fmt.Errorf("review validation failed: %w", err)
	}

	if err := v.validateRetry(); err != nil {
		return fmt.Errorf("retry validation failed: %w", err)
	}

	if err := v.validatePlanner(); err != nil {
		return fmt.Errorf("planner validation failed: %w", err)
	}

	if err := v.validateExecutor(); err != nil {
		return fmt.Errorf("executor validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateNamespace() error {
	if v.cfg.Namespace == nil {
		return NewValidationError("namespace", "", fmt.Errorf("namespace not resolved"))
	}
	return ValidateNamespace(v.cfg.Namespace.Name)
}

func (v *ConfigValidator) validateServer() error {
	if v.cfg.Server == nil {
		return NewValidationError("server", "", fmt.Errorf("server configuration is nil"))
	}
	s := v.cfg.Server

	if s.Host == "" {
		return NewValidationError("server", "host", fmt.Errorf("host required"))
	}

	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "port", fmt.Errorf("must be in range 1-65535, got %d", s.Port))
	}

	if s.MaxPromptBytes < 1 {
		return NewValidationError("server", "max_prompt_bytes", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	if v.cfg.Queue == nil {
		return NewValidationError("queue", "", fmt.Errorf("queue configuration is nil"))
	}
	q := v.cfg.Queue

	if q.PollerCount < 1 {
		return NewValidationError("queue", "poller_count", fmt.Errorf("must be at least 1"))
	}

	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("must be positive"))
	}

	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must not be negative"))
	}

	if q.PollIntervalJitter >= q.PollInterval {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must be smaller than poll_interval"))
	}

	if q.StaleTaskThreshold <= 0 {
		return NewValidationError("queue", "stale_task_threshold", fmt.Errorf("must be positive"))
	}

	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("must be positive"))
	}

	// A heartbeat slower than the stale threshold means healthy tasks get
	// recovered mid-flight.
	if q.HeartbeatInterval >= q.StaleTaskThreshold {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("must be shorter than stale_task_threshold (%s)", q.StaleTaskThreshold))
	}

	if q.RecoverySweepInterval <= 0 {
		return NewValidationError("queue", "recovery_sweep_interval", fmt.Errorf("must be positive"))
	}

	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateLimits() error {
	if v.cfg.Limits == nil {
		return NewValidationError("limits", "", fmt.Errorf("limits configuration is nil"))
	}
	l := v.cfg.Limits

	if l.MaxFiles < MinMaxFiles || l.MaxFiles > MaxMaxFiles {
		return NewValidationError("limits", "max_files", fmt.Errorf("must be in range %d-%d, got %d", MinMaxFiles, MaxMaxFiles, l.MaxFiles))
	}

	if l.MaxTests < MinMaxTests || l.MaxTests > MaxMaxTests {
		return NewValidationError("limits", "max_tests", fmt.Errorf("must be in range %d-%d, got %d", MinMaxTests, MaxMaxTests, l.MaxTests))
	}

	if l.MaxSeconds < MinMaxSeconds || l.MaxSeconds > MaxMaxSeconds {
		return NewValidationError("limits", "max_seconds", fmt.Errorf("must be in range %d-%d, got %d", MinMaxSeconds, MaxMaxSeconds, l.MaxSeconds))
	}

	return nil
}

func (v *ConfigValidator) validateReview() error {
	if v.cfg.Review == nil {
		return NewValidationError("review", "", fmt.Errorf("review configuration is nil"))
	}
	r := v.cfg.Review

	if r.MaxIterations < 1 {
		return NewValidationError("review", "max_iterations", fmt.Errorf("must be at least 1"))
	}

	if r.FilePreviewBytes < 1 {
		return NewValidationError("review", "file_preview_bytes", fmt.Errorf("must be positive"))
	}

	if r.MaxConsecutiveRetries < 1 {
		return NewValidationError("review", "max_consecutive_retries", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateRetry() error {
	if v.cfg.Retry == nil {
		return NewValidationError("retry", "", fmt.Errorf("retry configuration is nil"))
	}
	r := v.cfg.Retry

	if r.MaxRetries < 0 {
		return NewValidationError("retry", "max_retries", fmt.Errorf("must not be negative"))
	}

	if r.HistoryWindow < 1 {
		return NewValidationError("retry", "history_window", fmt.Errorf("must be at least 1"))
	}

	curves := []struct {
		field string
		b     BackoffConfig
	}{
		{"backoff", r.Backoff},
		{"rate_limit_backoff", r.RateLimitBackoff},
		{"timeout_backoff", r.TimeoutBackoff},
	}
	for _, c := range curves {
		if err := validateBackoff(c.field, c.b); err != nil {
			return err
		}
	}

	return nil
}

func validateBackoff(field string, b BackoffConfig) error {
	if b.Initial <= 0 {
		return NewValidationError("retry", field+".initial", fmt.Errorf("must be positive"))
	}

	if b.Multiplier < 1.0 {
		return NewValidationError("retry", field+".multiplier", fmt.Errorf("must be at least 1.0"))
	}

	if b.Max < b.Initial {
		return NewValidationError("retry", field+".max", fmt.Errorf("must be at least initial (%s)", b.Initial))
	}

	if b.JitterFraction < 0 || b.JitterFraction >= 1.0 {
		return NewValidationError("retry", field+".jitter_fraction", fmt.Errorf("must be in range [0, 1)"))
	}

	return nil
}

func (v *ConfigValidator) validatePlanner() error {
	if v.cfg.Planner == nil {
		return NewValidationError("planner", "", fmt.Errorf("planner configuration is nil"))
	}
	p := v.cfg.Planner

	if p.MinSubtasks < 2 {
		return NewValidationError("planner", "min_subtasks", fmt.Errorf("must be at least 2"))
	}

	if p.MaxSubtasks < p.MinSubtasks {
		return NewValidationError("planner", "max_subtasks", fmt.Errorf("must be at least min_subtasks (%d)", p.MinSubtasks))
	}

	if !p.ExecutionMode.IsValid() {
		return NewValidationError("planner", "execution_mode", fmt.Errorf("invalid mode: %s", p.ExecutionMode))
	}

	return nil
}

func (v *ConfigValidator) validateExecutor() error {
	if v.cfg.Executor == nil {
		return NewValidationError("executor", "", fmt.Errorf("executor configuration is nil"))
	}
	e := v.cfg.Executor

	if !e.UseStub && e.GRPCAddress == "" {
		return NewValidationError("executor", "grpc_address", fmt.Errorf("required unless use_stub is set"))
	}

	if e.RequestTimeout <= 0 {
		return NewValidationError("executor", "request_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	if v.cfg.Retention == nil {
		return NewValidationError("retention", "", fmt.Errorf("retention configuration is nil"))
	}
	r := v.cfg.Retention

	if r.TaskTTL < 0 {
		return NewValidationError("retention", "task_ttl", fmt.Errorf("must not be negative"))
	}

	if r.EventTTL < 0 {
		return NewValidationError("retention", "event_ttl", fmt.Errorf("must not be negative"))
	}

	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateMasking() error {
	if v.cfg.Masking == nil {
		return NewValidationError("masking", "", fmt.Errorf("masking configuration is nil"))
	}

	for i, p := range v.cfg.Masking.CustomPatterns {
		field := fmt.Sprintf("custom_patterns[%d]", i)
		if p.Name == "" {
			return NewValidationError("masking", field, fmt.Errorf("name is required"))
		}
		if p.Pattern == "" {
			return NewValidationError("masking", field, fmt.Errorf("pattern is required"))
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return NewValidationError("masking", field, fmt.Errorf("invalid pattern: %w", err))
		}
	}

	return nil
}
