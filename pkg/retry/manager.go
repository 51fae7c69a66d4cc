package retry

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// Manager makes the pass/retry/escalate decision after each executor
// attempt. All methods are safe for concurrent use; histories are keyed by
// (task_id, subtask_id) so parallel subtasks back off independently.
type Manager struct {
	cfg *config.RetryConfig

	mu      sync.Mutex
	history map[string][]models.RetryAttempt
}

// NewManager creates a retry manager. A nil config falls back to the
// built-in defaults.
func NewManager(cfg *config.RetryConfig) *Manager {
	if cfg == nil {
		cfg = config.DefaultRetryConfig()
	}
	return &Manager{
		cfg:     cfg,
		history: make(map[string][]models.RetryAttempt),
	}
}

// Decide evaluates one attempt. PASS when the verdict passed; ESCALATE when
// the retry budget is spent or the failure type is not retryable; otherwise
// RETRY with the failure type's backoff delay for the current attempt.
func (m *Manager) Decide(taskID, subtaskID string, result *models.TaskResult, verdict *models.Verdict) models.RetryDecision {
	if verdict != nil && verdict.Passed() {
		return models.RetryDecision{Kind: models.RetryPass}
	}

	failureType := Classify(result, verdict)
	attempt := m.attemptCount(taskID, subtaskID)

	m.recordAttempt(taskID, subtaskID, models.RetryAttempt{
		AttemptN:    attempt + 1,
		Status:      resultStatus(result),
		FailureType: failureType,
		Error:       resultError(result),
		DurationMS:  resultDuration(result),
		At:          time.Now().UTC(),
	})

	if attempt >= m.cfg.MaxRetries {
		return models.RetryDecision{
			Kind:        models.RetryEscalate,
			Reason:      fmt.Sprintf("retry budget exhausted after %d attempt(s)", attempt+1),
			FailureType: failureType,
		}
	}
	if !failureType.Retryable() {
		return models.RetryDecision{
			Kind:        models.RetryEscalate,
			Reason:      fmt.Sprintf("failure type %s is not retryable", failureType),
			FailureType: failureType,
		}
	}
	if failureType == models.FailureQuality && m.cfg.EscalateQualityFailures {
		return models.RetryDecision{
			Kind:        models.RetryEscalate,
			Reason:      "quality failures escalate immediately (escalate_quality_failures)",
			FailureType: failureType,
		}
	}

	delay := m.DelayFor(failureType, attempt)
	slog.Debug("Retry scheduled",
		"task_id", taskID,
		"subtask_id", subtaskID,
		"attempt", attempt+1,
		"failure_type", string(failureType),
		"delay", delay)

	return models.RetryDecision{
		Kind:        models.RetryAgain,
		Delay:       delay,
		FailureType: failureType,
	}
}

// DelayFor computes the backoff delay for the given attempt (0-based) by
// stepping a fresh exponential curve. The growth is deterministic per
// attempt; jitter applies per call.
func (m *Manager) DelayFor(failureType models.FailureType, attempt int) time.Duration {
	bo := m.newBackoff(failureType)
	var delay time.Duration
	for i := 0; i <= attempt; i++ {
		delay = bo.NextBackOff()
	}
	return delay
}

// newBackoff builds the exponential curve for a failure type. Rate limits
// start higher and cap higher; timeouts cap low. MaxElapsedTime stays
// disabled: attempts are bounded by max_retries, not wall time.
func (m *Manager) newBackoff(failureType models.FailureType) *backoff.ExponentialBackOff {
	curve := m.cfg.Backoff
	switch failureType {
	case models.FailureRateLimit:
		curve = m.cfg.RateLimitBackoff
	case models.FailureTimeout:
		curve = m.cfg.TimeoutBackoff
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = curve.Initial
	bo.Multiplier = curve.Multiplier
	bo.MaxInterval = curve.Max
	bo.RandomizationFactor = curve.JitterFraction
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

// History returns a copy of the attempts recorded for (taskID, subtaskID).
func (m *Manager) History(taskID, subtaskID string) []models.RetryAttempt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.RetryAttempt(nil), m.history[historyKey(taskID, subtaskID)]...)
}

// Reset clears the history for (taskID, subtaskID), e.g. after a PASS.
func (m *Manager) Reset(taskID, subtaskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.history, historyKey(taskID, subtaskID))
}

func (m *Manager) attemptCount(taskID, subtaskID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history[historyKey(taskID, subtaskID)])
}

func (m *Manager) recordAttempt(taskID, subtaskID string, attempt models.RetryAttempt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := historyKey(taskID, subtaskID)
	m.history[key] = append(m.history[key], attempt)
}

func historyKey(taskID, subtaskID string) string {
	if subtaskID == "" {
		return taskID
	}
	return taskID + "|" + subtaskID
}

func resultStatus(result *models.TaskResult) models.ResultStatus {
	if result == nil {
		return models.ResultStatusInvalid
	}
	return result.Status
}

func resultError(result *models.TaskResult) string {
	if result == nil {
		return ""
	}
	return result.Error
}

func resultDuration(result *models.TaskResult) int64 {
	if result == nil {
		return 0
	}
	return result.DurationMS
}
