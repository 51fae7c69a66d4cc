package retry

import (
	"fmt"
	"time"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// recommendedActions maps failure types to remediation hints, in the order
// they appear in escalation reports.
var recommendedActions = map[models.FailureType]string{
	models.FailureTimeout:    "Raise max_seconds or split the task into smaller chunks.",
	models.FailureQuality:    "Tighten the prompt; the executor repeatedly failed quality gates.",
	models.FailureIncomplete: "Ask for smaller pieces; the executor keeps eliding content.",
	models.FailureRateLimit:  "Wait for the provider quota to reset or lower the poller count.",
	models.FailureFatal:      "Check executor credentials; authentication failures do not retry.",
	models.FailureTransient:  "The backend was unreachable; verify the executor service is up.",
	models.FailureUnknown:    "Inspect the conversation trace; the failure did not match a known class.",
}

// BuildEscalationReport assembles the user-facing report for an exhausted or
// non-retryable failure. History comes from the manager's records for
// (taskID, subtaskID); recent_history is capped at the configured window.
func (m *Manager) BuildEscalationReport(taskID, subtaskID, reason, traceFile string) *models.EscalationReport {
	history := m.History(taskID, subtaskID)

	counts := make(map[models.FailureType]int, len(history))
	for _, attempt := range history {
		counts[attempt.FailureType]++
	}

	recent := history
	if window := m.cfg.HistoryWindow; window > 0 && len(recent) > window {
		recent = recent[len(recent)-window:]
	}

	var actions []string
	seen := make(map[models.FailureType]struct{}, len(counts))
	for _, attempt := range history {
		if _, dup := seen[attempt.FailureType]; dup {
			continue
		}
		seen[attempt.FailureType] = struct{}{}
		if action, ok := recommendedActions[attempt.FailureType]; ok {
			actions = append(actions, action)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, recommendedActions[models.FailureUnknown])
	}

	subject := taskID
	if subtaskID != "" {
		subject = fmt.Sprintf("%s (subtask %s)", taskID, subtaskID)
	}

	return &models.EscalationReport{
		TaskID:             taskID,
		SubtaskID:          subtaskID,
		Reason:             reason,
		FailureCounts:      counts,
		RecentHistory:      append([]models.RetryAttempt(nil), recent...),
		RecommendedActions: actions,
		UserMessage: fmt.Sprintf("Task %s could not be completed after %d attempt(s): %s",
			subject, len(history), reason),
		DebugInfo: models.EscalationDebugInfo{
			RetryHistory: history,
			TraceFile:    traceFile,
		},
		GeneratedAt: time.Now().UTC(),
	}
}

// ChooseRecoveryStrategy picks the partial-recovery path for a chunked run
// with both failed and succeeded subtasks. deps maps each subtask id to the
// ids it depends on.
//
// A succeeded subtask that transitively depends on a failed one was built on
// a bad foundation, so the whole graph rolls back. Independent failures
// retry alone while budget remains; once spent, a mostly-successful run
// commits partially and anything else escalates.
func (m *Manager) ChooseRecoveryStrategy(taskID string, failed, succeeded []string, deps map[string][]string) models.RecoveryStrategy {
	if len(failed) == 0 {
		return models.RecoveryPartialCommit
	}

	failedSet := make(map[string]struct{}, len(failed))
	for _, id := range failed {
		failedSet[id] = struct{}{}
	}
	for _, id := range succeeded {
		if dependsOnAny(id, failedSet, deps, make(map[string]bool)) {
			return models.RecoveryRollbackAndRetry
		}
	}

	budgetLeft := true
	for _, id := range failed {
		if m.attemptCount(taskID, id) > m.cfg.MaxRetries {
			budgetLeft = false
			break
		}
	}
	switch {
	case budgetLeft:
		return models.RecoveryRetryFailedOnly
	case len(succeeded) > len(failed):
		return models.RecoveryPartialCommit
	default:
		return models.RecoveryEscalate
	}
}

func dependsOnAny(id string, targets map[string]struct{}, deps map[string][]string, visited map[string]bool) bool {
	if visited[id] {
		return false
	}
	visited[id] = true
	for _, dep := range deps[id] {
		if _, hit := targets[dep]; hit {
			return true
		}
		if dependsOnAny(dep, targets, deps, visited) {
			return true
		}
	}
	return false
}
