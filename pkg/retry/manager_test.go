package retry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/models"
)

func failedResult(status models.ResultStatus, errMsg string) *models.TaskResult {
	return &models.TaskResult{
		Executed: true,
		Status:   status,
		Error:    errMsg,
	}
}

func TestClassify(t *testing.T) {
	rejected := &models.Verdict{
		Decision:    models.DecisionReject,
		FailedGates: []models.GateResult{{Gate: models.GateNoTodo, Passed: false}},
	}

	tests := []struct {
		name    string
		result  *models.TaskResult
		verdict *models.Verdict
		want    models.FailureType
	}{
		{
			name:   "nil result",
			result: nil,
			want:   models.FailureUnknown,
		},
		{
			name:   "timeout status",
			result: failedResult(models.ResultStatusTimeout, ""),
			want:   models.FailureTimeout,
		},
		{
			name:    "rejected verdict",
			result:  failedResult(models.ResultStatusComplete, ""),
			verdict: rejected,
			want:    models.FailureQuality,
		},
		{
			name:   "incomplete status",
			result: failedResult(models.ResultStatusIncomplete, ""),
			want:   models.FailureIncomplete,
		},
		{
			name: "omission marker in output",
			result: &models.TaskResult{
				Executed: true,
				Status:   models.ResultStatusError,
				Output:   "func main() {\n// 残り省略\n}",
			},
			want: models.FailureIncomplete,
		},
		{
			name:   "rate limited",
			result: failedResult(models.ResultStatusError, "upstream returned 429 Too Many Requests"),
			want:   models.FailureRateLimit,
		},
		{
			name:   "auth failure is fatal",
			result: failedResult(models.ResultStatusError, "401 Unauthorized: invalid api key"),
			want:   models.FailureFatal,
		},
		{
			name:   "forbidden is fatal",
			result: failedResult(models.ResultStatusError, "403 Forbidden"),
			want:   models.FailureFatal,
		},
		{
			name:   "5xx is transient",
			result: failedResult(models.ResultStatusError, "backend error: 503 Service Unavailable"),
			want:   models.FailureTransient,
		},
		{
			name:   "connection refused is transient",
			result: failedResult(models.ResultStatusError, "dial tcp 127.0.0.1:50051: connection refused"),
			want:   models.FailureTransient,
		},
		{
			name:   "unrecognized error",
			result: failedResult(models.ResultStatusError, "something odd happened"),
			want:   models.FailureUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.result, tt.verdict))
		})
	}
}

func TestDecidePassShortCircuits(t *testing.T) {
	m := NewManager(config.DefaultRetryConfig())

	decision := m.Decide("task-1", "", &models.TaskResult{Status: models.ResultStatusComplete},
		&models.Verdict{Decision: models.DecisionPass})

	assert.Equal(t, models.RetryPass, decision.Kind)
	assert.Empty(t, m.History("task-1", ""))
}

func TestDecideRetriesThenEscalates(t *testing.T) {
	cfg := config.DefaultRetryConfig()
	cfg.MaxRetries = 2
	m := NewManager(cfg)

	result := failedResult(models.ResultStatusError, "dial tcp: connection refused")

	first := m.Decide("task-1", "", result, nil)
	require.Equal(t, models.RetryAgain, first.Kind)
	assert.Equal(t, models.FailureTransient, first.FailureType)
	assert.Greater(t, first.Delay, time.Duration(0))

	second := m.Decide("task-1", "", result, nil)
	require.Equal(t, models.RetryAgain, second.Kind)

	third := m.Decide("task-1", "", result, nil)
	assert.Equal(t, models.RetryEscalate, third.Kind)
	assert.Contains(t, third.Reason, "retry budget exhausted")

	assert.Len(t, m.History("task-1", ""), 3)
}

func TestDecideFatalEscalatesImmediately(t *testing.T) {
	m := NewManager(config.DefaultRetryConfig())

	decision := m.Decide("task-1", "", failedResult(models.ResultStatusError, "401 Unauthorized"), nil)

	assert.Equal(t, models.RetryEscalate, decision.Kind)
	assert.Equal(t, models.FailureFatal, decision.FailureType)
	assert.Contains(t, decision.Reason, "not retryable")
}

func TestDecideQualityFailureEscalationToggle(t *testing.T) {
	rejected := &models.Verdict{Decision: models.DecisionReject}
	result := failedResult(models.ResultStatusComplete, "")

	t.Run("retryable by default", func(t *testing.T) {
		m := NewManager(config.DefaultRetryConfig())
		decision := m.Decide("task-1", "", result, rejected)
		assert.Equal(t, models.RetryAgain, decision.Kind)
	})

	t.Run("escalates when configured", func(t *testing.T) {
		cfg := config.DefaultRetryConfig()
		cfg.EscalateQualityFailures = true
		m := NewManager(cfg)
		decision := m.Decide("task-1", "", result, rejected)
		assert.Equal(t, models.RetryEscalate, decision.Kind)
	})
}

func TestHistoriesAreIndependentPerSubtask(t *testing.T) {
	m := NewManager(config.DefaultRetryConfig())
	result := failedResult(models.ResultStatusError, "500 internal")

	m.Decide("task-1", "task-1-sub-1", result, nil)
	m.Decide("task-1", "task-1-sub-1", result, nil)
	m.Decide("task-1", "task-1-sub-2", result, nil)

	assert.Len(t, m.History("task-1", "task-1-sub-1"), 2)
	assert.Len(t, m.History("task-1", "task-1-sub-2"), 1)
	assert.Empty(t, m.History("task-1", ""))

	m.Reset("task-1", "task-1-sub-1")
	assert.Empty(t, m.History("task-1", "task-1-sub-1"))
	assert.Len(t, m.History("task-1", "task-1-sub-2"), 1)
}

// Delay for attempt k must stay within
// [initial·mult^k·(1−J), min(max, initial·mult^k)·(1+J)].
func TestDelayEnvelope(t *testing.T) {
	cfg := config.DefaultRetryConfig()
	m := NewManager(cfg)

	for _, failureType := range []models.FailureType{
		models.FailureTransient, models.FailureRateLimit, models.FailureTimeout,
	} {
		curve := cfg.Backoff
		switch failureType {
		case models.FailureRateLimit:
			curve = cfg.RateLimitBackoff
		case models.FailureTimeout:
			curve = cfg.TimeoutBackoff
		}

		for attempt := 0; attempt < 6; attempt++ {
			ideal := float64(curve.Initial) * pow(curve.Multiplier, attempt)
			capped := ideal
			if maxf := float64(curve.Max); capped > maxf {
				capped = maxf
			}
			lo := time.Duration(capped * (1 - curve.JitterFraction))
			hi := time.Duration(capped * (1 + curve.JitterFraction))

			for trial := 0; trial < 20; trial++ {
				delay := m.DelayFor(failureType, attempt)
				assert.GreaterOrEqual(t, delay, lo,
					"%s attempt %d: delay %v below %v", failureType, attempt, delay, lo)
				assert.LessOrEqual(t, delay, hi,
					"%s attempt %d: delay %v above %v", failureType, attempt, delay, hi)
			}
		}
	}
}

func pow(base float64, exp int) float64 {
	out := 1.0
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

func TestRateLimitCurveStartsHigher(t *testing.T) {
	m := NewManager(config.DefaultRetryConfig())

	regular := m.DelayFor(models.FailureTransient, 0)
	rateLimited := m.DelayFor(models.FailureRateLimit, 0)
	assert.Greater(t, rateLimited, regular)
}

func TestTimeoutCurveCapsLow(t *testing.T) {
	cfg := config.DefaultRetryConfig()
	m := NewManager(cfg)

	// Far beyond the cap: delay must respect the timeout ceiling plus jitter.
	delay := m.DelayFor(models.FailureTimeout, 10)
	limit := time.Duration(float64(cfg.TimeoutBackoff.Max) * (1 + cfg.TimeoutBackoff.JitterFraction))
	assert.LessOrEqual(t, delay, limit)
}

func TestBuildEscalationReport(t *testing.T) {
	cfg := config.DefaultRetryConfig()
	cfg.MaxRetries = 10
	cfg.HistoryWindow = 2
	m := NewManager(cfg)

	for i := 0; i < 4; i++ {
		m.Decide("task-1", "", failedResult(models.ResultStatusError, fmt.Sprintf("attempt %d: 503", i)), nil)
	}
	m.Decide("task-1", "", failedResult(models.ResultStatusTimeout, ""), nil)

	report := m.BuildEscalationReport("task-1", "", "retry budget exhausted", "/state/traces/conversation-task-1.jsonl")

	assert.Equal(t, "task-1", report.TaskID)
	assert.Equal(t, 4, report.FailureCounts[models.FailureTransient])
	assert.Equal(t, 1, report.FailureCounts[models.FailureTimeout])
	assert.Len(t, report.RecentHistory, 2)
	assert.Len(t, report.DebugInfo.RetryHistory, 5)
	assert.Equal(t, "/state/traces/conversation-task-1.jsonl", report.DebugInfo.TraceFile)
	assert.NotEmpty(t, report.RecommendedActions)
	assert.Contains(t, report.UserMessage, "task-1")
	assert.False(t, report.GeneratedAt.IsZero())

	// Recent history is the tail, in order.
	assert.Equal(t, 4, report.RecentHistory[0].AttemptN)
	assert.Equal(t, 5, report.RecentHistory[1].AttemptN)
}

func TestChooseRecoveryStrategy(t *testing.T) {
	deps := map[string][]string{
		"t-sub-2": {"t-sub-1"},
		"t-sub-3": {"t-sub-2"},
	}

	t.Run("no failures commits", func(t *testing.T) {
		m := NewManager(config.DefaultRetryConfig())
		strategy := m.ChooseRecoveryStrategy("t", nil, []string{"t-sub-1"}, deps)
		assert.Equal(t, models.RecoveryPartialCommit, strategy)
	})

	t.Run("success built on failure rolls back", func(t *testing.T) {
		m := NewManager(config.DefaultRetryConfig())
		strategy := m.ChooseRecoveryStrategy("t",
			[]string{"t-sub-1"}, []string{"t-sub-2", "t-sub-3"}, deps)
		assert.Equal(t, models.RecoveryRollbackAndRetry, strategy)
	})

	t.Run("independent failure with budget retries alone", func(t *testing.T) {
		m := NewManager(config.DefaultRetryConfig())
		strategy := m.ChooseRecoveryStrategy("t",
			[]string{"t-sub-3"}, []string{"t-sub-1", "t-sub-2"}, deps)
		assert.Equal(t, models.RecoveryRetryFailedOnly, strategy)
	})

	t.Run("exhausted budget with majority success commits partially", func(t *testing.T) {
		cfg := config.DefaultRetryConfig()
		cfg.MaxRetries = 1
		m := NewManager(cfg)
		for i := 0; i < 3; i++ {
			m.Decide("t", "t-sub-3", failedResult(models.ResultStatusError, "503"), nil)
		}
		strategy := m.ChooseRecoveryStrategy("t",
			[]string{"t-sub-3"}, []string{"t-sub-1", "t-sub-2"}, deps)
		assert.Equal(t, models.RecoveryPartialCommit, strategy)
	})
}
