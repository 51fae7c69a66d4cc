package planner

import (
	"regexp"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// typeRule maps prompt verbs to a task type. First match wins, so the more
// specific classes come before the IMPLEMENTATION catch-all.
type typeRule struct {
	pattern  *regexp.Regexp
	taskType models.TaskType
}

var typeRules = []typeRule{
	{regexp.MustCompile(`(?i)\b(?:what|how|why|where|explain|describe|show me|list|find out|look up)\b`), models.TaskTypeReadInfo},
	{regexp.MustCompile(`(?i)\b(?:report|summarize|summary|analy[sz]e|investigate|audit)\b`), models.TaskTypeReport},
	{regexp.MustCompile(`(?i)\b(?:typo|rename|bump|tweak|reword|one-?line)\b`), models.TaskTypeLightEdit},
	{regexp.MustCompile(`(?i)\b(?:ci|pipeline|workflow|github actions|makefile|dockerfile|\.env|config(?:uration)? file)\b`), models.TaskTypeConfigCIChange},
}

// InferTaskType classifies a prompt when the caller did not provide a task
// type. Anything that doesn't look like a question, a report request, a
// trivial edit, or a CI/config change is treated as implementation work.
func InferTaskType(prompt string) models.TaskType {
	for _, rule := range typeRules {
		if rule.pattern.MatchString(prompt) {
			return rule.taskType
		}
	}
	return models.TaskTypeImplementation
}
