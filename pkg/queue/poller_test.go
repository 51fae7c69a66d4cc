package queue

import (
	"context"
	"testing"
	"time"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		PollerCount:             2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		StaleTaskThreshold:      10 * time.Minute,
		RecoverySweepInterval:   5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}

func TestPollerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	p := NewPoller("test-poller", nil, nil, nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := p.pollInterval()
		assert.GreaterOrEqual(t, d, cfg.PollInterval-cfg.PollIntervalJitter,
			"interval %v below lower bound", d)
		assert.LessOrEqual(t, d, cfg.PollInterval+cfg.PollIntervalJitter,
			"interval %v above upper bound", d)
	}
}

func TestPollerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	p := NewPoller("test-poller", nil, nil, nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, cfg.PollInterval, p.pollInterval())
	}
}

func TestPollerHealth(t *testing.T) {
	cfg := testQueueConfig()
	p := NewPoller("test-poller", nil, nil, nil, cfg, nil, nil)

	h := p.Health()
	assert.Equal(t, "test-poller", h.ID)
	assert.Equal(t, string(PollerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentTaskID)
	assert.Zero(t, h.TasksProcessed)

	p.setWorking("task-1")
	h = p.Health()
	assert.Equal(t, string(PollerStatusWorking), h.Status)
	assert.Equal(t, "task-1", h.CurrentTaskID)
	assert.False(t, h.LastActivity.IsZero())

	p.setIdle()
	h = p.Health()
	assert.Equal(t, string(PollerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentTaskID)
}

func TestSynthesizeResult(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := synthesizeResult(ctx)
		assert.Equal(t, models.TaskStatusCancelled, result.Status)
		assert.Equal(t, "task cancelled", result.ErrorMessage)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
		defer cancel()

		result := synthesizeResult(ctx)
		assert.Equal(t, models.TaskStatusError, result.Status)
		assert.Equal(t, "task deadline exceeded", result.ErrorMessage)
	})

	t.Run("live context", func(t *testing.T) {
		result := synthesizeResult(context.Background())
		assert.Equal(t, models.TaskStatusError, result.Status)
		assert.Equal(t, "pipeline returned no result", result.ErrorMessage)
	})
}
