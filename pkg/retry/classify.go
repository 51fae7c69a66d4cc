// Package retry classifies executor failures, decides between retrying and
// escalating, and computes the backoff delay per failure type. Attempt
// histories are kept per (task_id, subtask_id) so escalation reports can
// show what was tried.
package retry

import (
	"regexp"
	"strings"

	"github.com/pm-runner/pmrunner/pkg/models"
)

var (
	rateLimitPattern = regexp.MustCompile(`(?i)\b429\b|rate.?limit|too many requests|quota exceeded`)
	fatalPattern     = regexp.MustCompile(`(?i)\b40[13]\b|unauthorized|forbidden|invalid api key|authentication|permission denied`)
	transientPattern = regexp.MustCompile(`(?i)\b50[0-9]\b|connection (?:refused|reset)|broken pipe|no such host|network is unreachable|temporarily unavailable|unexpected EOF|unavailable`)
)

// Classify maps an executor result (and the review verdict, when one exists)
// to a failure type. Precedence: timeout, then quality, then incompleteness,
// then error-text classes.
func Classify(result *models.TaskResult, verdict *models.Verdict) models.FailureType {
	if result == nil {
		return models.FailureUnknown
	}
	if result.Status == models.ResultStatusTimeout {
		return models.FailureTimeout
	}
	if verdict != nil && verdict.Decision == models.DecisionReject {
		return models.FailureQuality
	}
	if result.Status == models.ResultStatusIncomplete || containsOmissionMarker(result.Output) {
		return models.FailureIncomplete
	}
	if result.Error != "" {
		switch {
		case rateLimitPattern.MatchString(result.Error):
			return models.FailureRateLimit
		case fatalPattern.MatchString(result.Error):
			return models.FailureFatal
		case transientPattern.MatchString(result.Error):
			return models.FailureTransient
		}
	}
	return models.FailureUnknown
}

func containsOmissionMarker(output string) bool {
	for _, marker := range models.OmissionMarkers {
		if strings.Contains(output, marker) {
			return true
		}
	}
	return false
}
