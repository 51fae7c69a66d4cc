package planner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// scoreRule is one additive heuristic. Phrase rules match as case-insensitive
// substrings; pattern rules are word-boundary regexps for terms too short to
// match safely as substrings.
type scoreRule struct {
	phrase  string
	pattern *regexp.Regexp
	points  int
}

// scoreRules is evaluated top to bottom; every matching rule contributes its
// points once. Substring phrases deliberately cover inflections
// ("integrate" also hits "integration").
var scoreRules = []scoreRule{
	{phrase: "implement full", points: 3},
	{phrase: "full implementation", points: 3},
	{phrase: "from scratch", points: 3},
	{phrase: "end-to-end", points: 3},
	{phrase: "end to end", points: 3},
	{phrase: "authentication", points: 2},
	{phrase: "authorization", points: 2},
	{phrase: "database", points: 2},
	{phrase: "api endpoint", points: 2},
	{phrase: "security", points: 2},
	{phrase: "integrate", points: 2},
	{phrase: "migrat", points: 2},
	{phrase: "refactor", points: 2},
	{phrase: "architecture", points: 2},
	{phrase: "concurren", points: 2},
	{phrase: "distributed", points: 2},
	{phrase: "new feature", points: 2},
	{pattern: regexp.MustCompile(`(?i)\btests?\b`), points: 1},
	{pattern: regexp.MustCompile(`(?i)\bbuild\b`), points: 1},
	{pattern: regexp.MustCompile(`(?i)\bcreate\b`), points: 1},
	{pattern: regexp.MustCompile(`(?i)\badd\b`), points: 1},
	{pattern: regexp.MustCompile(`(?i)\bupdate\b`), points: 1},
	{pattern: regexp.MustCompile(`(?i)\bfix\b`), points: 1},
}

// fileRefPattern matches explicit file references in a prompt, e.g.
// "cmd/server/main.go" or "config.yaml".
var fileRefPattern = regexp.MustCompile(`\b[\w./-]*\w\.(?:go|py|js|ts|tsx|jsx|java|rb|rs|c|h|cpp|cs|md|ya?ml|json|toml|sql|sh|proto|tf)\b`)

// categoryFileBase is the file-count floor per size category, used when the
// prompt names fewer files than the category suggests.
var categoryFileBase = map[models.SizeCategory]int{
	models.SizeXS: 1,
	models.SizeS:  2,
	models.SizeM:  4,
	models.SizeL:  8,
	models.SizeXL: 12,
}

// EstimateSize computes the deterministic effort estimate for a prompt.
// Scores start at 1, accumulate rule points, and clamp to 10.
func EstimateSize(prompt string) models.SizeEstimation {
	lower := strings.ToLower(prompt)

	score := 1
	var reasons []string
	for _, rule := range scoreRules {
		switch {
		case rule.phrase != "" && strings.Contains(lower, rule.phrase):
			score += rule.points
			reasons = append(reasons, fmt.Sprintf("%q (+%d)", rule.phrase, rule.points))
		case rule.pattern != nil && rule.pattern.MatchString(prompt):
			score += rule.points
			reasons = append(reasons, fmt.Sprintf("%s (+%d)", rule.pattern.String(), rule.points))
		}
	}
	if score > 10 {
		score = 10
	}

	category := categoryForScore(score)

	fileRefs := len(fileRefPattern.FindAllString(prompt, -1))
	fileCount := categoryFileBase[category]
	if fileRefs > fileCount {
		fileCount = fileRefs
	}
	if fileRefs > 0 {
		reasons = append(reasons, fmt.Sprintf("%d explicit file reference(s)", fileRefs))
	}

	return models.SizeEstimation{
		ComplexityScore:    score,
		EstimatedFileCount: fileCount,
		EstimatedTokens:    estimateTokens(prompt, score),
		SizeCategory:       category,
		EstimationReasons:  reasons,
	}
}

func categoryForScore(score int) models.SizeCategory {
	switch {
	case score <= 2:
		return models.SizeXS
	case score <= 4:
		return models.SizeS
	case score <= 6:
		return models.SizeM
	case score <= 8:
		return models.SizeL
	default:
		return models.SizeXL
	}
}

// estimateTokens is a rough budget: prompt length at ~4 bytes per token
// plus a per-score allowance for the work itself.
func estimateTokens(prompt string, score int) int {
	return len(prompt)/4 + score*800
}
