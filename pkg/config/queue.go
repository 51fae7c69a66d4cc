package config

import "time"

// QueueConfig contains queue polling and crash-recovery configuration.
// These values control how tasks are polled, claimed, and recovered.
type QueueConfig struct {
	// PollerCount is the number of poller goroutines. Each poller holds at
	// most one in-flight task; concurrency beyond that happens inside the
	// pipeline (subtask fan-out).
	PollerCount int `yaml:"poller_count"`

	// PollInterval is the base interval for checking queued tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter applied to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// StaleTaskThreshold is how long a task may sit in RUNNING without a
	// heartbeat before recovery requeues it.
	StaleTaskThreshold time.Duration `yaml:"stale_task_threshold"`

	// RecoverySweepInterval is how often the background stale-task sweep
	// runs while the process is up. Startup always runs one sweep.
	RecoverySweepInterval time.Duration `yaml:"recovery_sweep_interval"`

	// HeartbeatInterval is how often a poller refreshes updated_at on its
	// claimed task so healthy long tasks are not recovered as stale.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight tasks
	// to finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		PollerCount:             1,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		StaleTaskThreshold:      10 * time.Minute,
		RecoverySweepInterval:   5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
