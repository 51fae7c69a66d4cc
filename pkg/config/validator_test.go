package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a fully-populated config that passes ValidateAll,
// for tests to mutate one field at a time.
func validTestConfig() *Config {
	return &Config{
		Namespace: &NamespaceConfig{Name: "team-a", ProjectDir: "/tmp/team-a"},
		StateDir:  "/tmp/state/team-a",
		Server:    DefaultServerConfig(),
		Queue:     DefaultQueueConfig(),
		Limits:    DefaultLimitsConfig(),
		Review:    DefaultReviewConfig(),
		Retry:     DefaultRetryConfig(),
		Planner:   DefaultPlannerConfig(),
		Executor:  DefaultExecutorConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func TestValidateAllWithDefaults(t *testing.T) {
	cfg := validTestConfig()
	err := NewValidator(cfg).ValidateAll()
	require.NoError(t, err)
}

func TestValidateAllFailFast(t *testing.T) {
	cfg := validTestConfig()
	cfg.Namespace = nil

	err := NewValidator(cfg).ValidateAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace validation failed")
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(q *QueueConfig) {},
			wantErr: false,
		},
		{
			name:    "poller count zero",
			mutate:  func(q *QueueConfig) { q.PollerCount = 0 },
			wantErr: true,
			errMsg:  "poller_count",
		},
		{
			name:    "poll interval zero",
			mutate:  func(q *QueueConfig) { q.PollInterval = 0 },
			wantErr: true,
			errMsg:  "poll_interval",
		},
		{
			name:    "negative jitter",
			mutate:  func(q *QueueConfig) { q.PollIntervalJitter = -time.Second },
			wantErr: true,
			errMsg:  "poll_interval_jitter",
		},
		{
			name:    "zero jitter is valid",
			mutate:  func(q *QueueConfig) { q.PollIntervalJitter = 0 },
			wantErr: false,
		},
		{
			name: "jitter equal to poll interval",
			mutate: func(q *QueueConfig) {
				q.PollInterval = time.Second
				q.PollIntervalJitter = time.Second
			},
			wantErr: true,
			errMsg:  "must be smaller than poll_interval",
		},
		{
			name:    "stale threshold zero",
			mutate:  func(q *QueueConfig) { q.StaleTaskThreshold = 0 },
			wantErr: true,
			errMsg:  "stale_task_threshold",
		},
		{
			name:    "heartbeat zero",
			mutate:  func(q *QueueConfig) { q.HeartbeatInterval = 0 },
			wantErr: true,
			errMsg:  "heartbeat_interval",
		},
		{
			name: "heartbeat not shorter than stale threshold",
			mutate: func(q *QueueConfig) {
				q.StaleTaskThreshold = 30 * time.Second
				q.HeartbeatInterval = 30 * time.Second
			},
			wantErr: true,
			errMsg:  "must be shorter than stale_task_threshold",
		},
		{
			name:    "recovery sweep interval zero",
			mutate:  func(q *QueueConfig) { q.RecoverySweepInterval = 0 },
			wantErr: true,
			errMsg:  "recovery_sweep_interval",
		},
		{
			name:    "graceful shutdown timeout zero",
			mutate:  func(q *QueueConfig) { q.GracefulShutdownTimeout = 0 },
			wantErr: true,
			errMsg:  "graceful_shutdown_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Queue)

			err := NewValidator(cfg).validateQueue()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateLimits(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LimitsConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(l *LimitsConfig) {},
			wantErr: false,
		},
		{
			name:    "max files at lower bound",
			mutate:  func(l *LimitsConfig) { l.MaxFiles = MinMaxFiles },
			wantErr: false,
		},
		{
			name:    "max files at upper bound",
			mutate:  func(l *LimitsConfig) { l.MaxFiles = MaxMaxFiles },
			wantErr: false,
		},
		{
			name:    "max files zero",
			mutate:  func(l *LimitsConfig) { l.MaxFiles = 0 },
			wantErr: true,
			errMsg:  "max_files",
		},
		{
			name:    "max files above ceiling",
			mutate:  func(l *LimitsConfig) { l.MaxFiles = 21 },
			wantErr: true,
			errMsg:  "max_files",
		},
		{
			name:    "max tests above ceiling",
			mutate:  func(l *LimitsConfig) { l.MaxTests = 51 },
			wantErr: true,
			errMsg:  "max_tests",
		},
		{
			name:    "max seconds below floor",
			mutate:  func(l *LimitsConfig) { l.MaxSeconds = 29 },
			wantErr: true,
			errMsg:  "max_seconds",
		},
		{
			name:    "max seconds above ceiling",
			mutate:  func(l *LimitsConfig) { l.MaxSeconds = 901 },
			wantErr: true,
			errMsg:  "max_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Limits)

			err := NewValidator(cfg).validateLimits()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ReviewConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(r *ReviewConfig) {},
			wantErr: false,
		},
		{
			name:    "single iteration is valid",
			mutate:  func(r *ReviewConfig) { r.MaxIterations = 1 },
			wantErr: false,
		},
		{
			name:    "zero iterations",
			mutate:  func(r *ReviewConfig) { r.MaxIterations = 0 },
			wantErr: true,
			errMsg:  "max_iterations",
		},
		{
			name:    "zero preview bytes",
			mutate:  func(r *ReviewConfig) { r.FilePreviewBytes = 0 },
			wantErr: true,
			errMsg:  "file_preview_bytes",
		},
		{
			name:    "zero consecutive retries",
			mutate:  func(r *ReviewConfig) { r.MaxConsecutiveRetries = 0 },
			wantErr: true,
			errMsg:  "max_consecutive_retries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Review)

			err := NewValidator(cfg).validateReview()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRetry(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RetryConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(r *RetryConfig) {},
			wantErr: false,
		},
		{
			name:    "zero retries is valid (escalate immediately)",
			mutate:  func(r *RetryConfig) { r.MaxRetries = 0 },
			wantErr: false,
		},
		{
			name:    "negative retries",
			mutate:  func(r *RetryConfig) { r.MaxRetries = -1 },
			wantErr: true,
			errMsg:  "max_retries",
		},
		{
			name:    "zero history window",
			mutate:  func(r *RetryConfig) { r.HistoryWindow = 0 },
			wantErr: true,
			errMsg:  "history_window",
		},
		{
			name:    "zero initial backoff",
			mutate:  func(r *RetryConfig) { r.Backoff.Initial = 0 },
			wantErr: true,
			errMsg:  "backoff.initial",
		},
		{
			name:    "multiplier below one",
			mutate:  func(r *RetryConfig) { r.Backoff.Multiplier = 0.5 },
			wantErr: true,
			errMsg:  "backoff.multiplier",
		},
		{
			name: "max below initial",
			mutate: func(r *RetryConfig) {
				r.Backoff.Initial = 10 * time.Second
				r.Backoff.Max = 5 * time.Second
			},
			wantErr: true,
			errMsg:  "backoff.max",
		},
		{
			name:    "jitter fraction of one",
			mutate:  func(r *RetryConfig) { r.Backoff.JitterFraction = 1.0 },
			wantErr: true,
			errMsg:  "backoff.jitter_fraction",
		},
		{
			name:    "negative jitter fraction",
			mutate:  func(r *RetryConfig) { r.Backoff.JitterFraction = -0.1 },
			wantErr: true,
			errMsg:  "backoff.jitter_fraction",
		},
		{
			name:    "zero jitter fraction is valid",
			mutate:  func(r *RetryConfig) { r.Backoff.JitterFraction = 0 },
			wantErr: false,
		},
		{
			name:    "rate limit curve validated too",
			mutate:  func(r *RetryConfig) { r.RateLimitBackoff.Initial = 0 },
			wantErr: true,
			errMsg:  "rate_limit_backoff.initial",
		},
		{
			name:    "timeout curve validated too",
			mutate:  func(r *RetryConfig) { r.TimeoutBackoff.Multiplier = 0 },
			wantErr: true,
			errMsg:  "timeout_backoff.multiplier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Retry)

			err := NewValidator(cfg).validateRetry()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePlanner(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlannerConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(p *PlannerConfig) {},
			wantErr: false,
		},
		{
			name:    "min subtasks below two",
			mutate:  func(p *PlannerConfig) { p.MinSubtasks = 1 },
			wantErr: true,
			errMsg:  "min_subtasks",
		},
		{
			name: "max below min",
			mutate: func(p *PlannerConfig) {
				p.MinSubtasks = 5
				p.MaxSubtasks = 4
			},
			wantErr: true,
			errMsg:  "max_subtasks",
		},
		{
			name: "min equal to max is valid",
			mutate: func(p *PlannerConfig) {
				p.MinSubtasks = 3
				p.MaxSubtasks = 3
			},
			wantErr: false,
		},
		{
			name:    "unknown execution mode",
			mutate:  func(p *PlannerConfig) { p.ExecutionMode = "round-robin" },
			wantErr: true,
			errMsg:  "execution_mode",
		},
		{
			name:    "forced parallel mode is valid",
			mutate:  func(p *PlannerConfig) { p.ExecutionMode = ExecutionModeParallel },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Planner)

			err := NewValidator(cfg).validatePlanner()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(s *ServerConfig) {},
			wantErr: false,
		},
		{
			name:    "empty host",
			mutate:  func(s *ServerConfig) { s.Host = "" },
			wantErr: true,
			errMsg:  "host",
		},
		{
			name:    "port zero",
			mutate:  func(s *ServerConfig) { s.Port = 0 },
			wantErr: true,
			errMsg:  "port",
		},
		{
			name:    "port above range",
			mutate:  func(s *ServerConfig) { s.Port = 65536 },
			wantErr: true,
			errMsg:  "port",
		},
		{
			name:    "zero prompt cap",
			mutate:  func(s *ServerConfig) { s.MaxPromptBytes = 0 },
			wantErr: true,
			errMsg:  "max_prompt_bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Server)

			err := NewValidator(cfg).validateServer()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateExecutor(t *testing.T) {
	t.Run("missing address without stub", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Executor.GRPCAddress = ""
		cfg.Executor.UseStub = false

		err := NewValidator(cfg).validateExecutor()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "grpc_address")
	})

	t.Run("missing address allowed with stub", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Executor.GRPCAddress = ""
		cfg.Executor.UseStub = true

		require.NoError(t, NewValidator(cfg).validateExecutor())
	})

	t.Run("zero request timeout", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Executor.RequestTimeout = 0

		err := NewValidator(cfg).validateExecutor()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "request_timeout")
	})
}

func TestValidateRetention(t *testing.T) {
	t.Run("zero TTLs disable sweeps and are valid", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Retention.TaskTTL = 0
		cfg.Retention.EventTTL = 0

		require.NoError(t, NewValidator(cfg).validateRetention())
	})

	t.Run("negative task TTL", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Retention.TaskTTL = -time.Hour

		err := NewValidator(cfg).validateRetention()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "task_ttl")
	})

	t.Run("zero cleanup interval", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Retention.CleanupInterval = 0

		err := NewValidator(cfg).validateRetention()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cleanup_interval")
	})
}
