package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
// Zero TTLs disable the corresponding sweep.
type RetentionConfig struct {
	// TaskTTL is the maximum age of terminal tasks (COMPLETE, ERROR,
	// CANCELLED) before deletion.
	TaskTTL time.Duration `yaml:"task_ttl"`

	// EventTTL is the maximum age of delivered queue events before deletion.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskTTL:         30 * 24 * time.Hour,
		EventTTL:        24 * time.Hour,
		CleanupInterval: 12 * time.Hour,
	}
}
