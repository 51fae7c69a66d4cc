package planner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/models"
)

var (
	// numberedItemPattern splits "1. Build schema 2. Build API" style lists,
	// inline or one per line.
	numberedItemPattern = regexp.MustCompile(`(?:^|\s)\d+[.)]\s+`)

	// bulletItemPattern matches one bullet list item per line.
	bulletItemPattern = regexp.MustCompile(`(?m)^\s*[-*•]\s+(.+)$`)

	// dependencyCuePattern signals ordering between steps.
	dependencyCuePattern = regexp.MustCompile(`(?i)\b(?:after|then|once|following|based on|using)\b`)
)

// Recommend makes the chunk/no-chunk decision for a prompt. Chunking needs
// auto_chunk enabled plus either a size of at least M or two decomposition
// indicators, and the extraction must land within the configured subtask
// bounds.
func (p *Planner) Recommend(prompt string, est models.SizeEstimation) models.ChunkingRecommendation {
	if !p.cfg.ChunkingEnabled() {
		return models.ChunkingRecommendation{
			ShouldChunk: false,
			Reason:      "auto_chunk disabled",
		}
	}

	subtasks, indicators := ExtractSubtasks(prompt)

	bigEnough := est.SizeCategory.AtLeast(models.SizeM)
	if !bigEnough && indicators < 2 {
		return models.ChunkingRecommendation{
			ShouldChunk: false,
			Reason: fmt.Sprintf("size %s below M with %d decomposition indicator(s)",
				est.SizeCategory, indicators),
		}
	}

	if len(subtasks) < p.cfg.MinSubtasks || len(subtasks) > p.cfg.MaxSubtasks {
		return models.ChunkingRecommendation{
			ShouldChunk: false,
			Reason: fmt.Sprintf("extracted %d subtask(s), outside bounds [%d, %d]",
				len(subtasks), p.cfg.MinSubtasks, p.cfg.MaxSubtasks),
		}
	}

	return models.ChunkingRecommendation{
		ShouldChunk:     true,
		Reason:          fmt.Sprintf("size %s, %d decomposition indicator(s)", est.SizeCategory, indicators),
		SubtaskPrompts:  subtasks,
		ExecutionMode:   p.executionMode(prompt),
		EstimatedChunks: len(subtasks),
	}
}

// executionMode resolves the configured mode; auto scans the prompt for
// dependency cues and picks sequential when any is present.
func (p *Planner) executionMode(prompt string) models.ExecutionMode {
	switch p.cfg.ExecutionMode {
	case config.ExecutionModeParallel:
		return models.ExecutionModeParallel
	case config.ExecutionModeSequential:
		return models.ExecutionModeSequential
	}
	if dependencyCuePattern.MatchString(prompt) {
		return models.ExecutionModeSequential
	}
	return models.ExecutionModeParallel
}

// ExtractSubtasks pulls candidate subtask prompts out of a prompt, trying
// numbered lists first, then bullet lists, then comma-separated coordinated
// objects. The second return value is the decomposition indicator count:
// the number of list items (or comma segments) the winning shape produced.
func ExtractSubtasks(prompt string) ([]string, int) {
	if items := extractNumbered(prompt); len(items) >= 2 {
		return items, len(items)
	}
	if items := extractBullets(prompt); len(items) >= 2 {
		return items, len(items)
	}
	if items := extractCommaSeries(prompt); len(items) >= 2 {
		return items, len(items)
	}
	return nil, 0
}

func extractNumbered(prompt string) []string {
	pieces := numberedItemPattern.Split(prompt, -1)
	if len(pieces) < 3 { // preamble + at least two items
		return nil
	}
	items := make([]string, 0, len(pieces)-1)
	for _, piece := range pieces[1:] {
		if item := strings.TrimSpace(piece); item != "" {
			items = append(items, item)
		}
	}
	if len(items) < 2 {
		return nil
	}
	return items
}

func extractBullets(prompt string) []string {
	matches := bulletItemPattern.FindAllStringSubmatch(prompt, -1)
	if len(matches) < 2 {
		return nil
	}
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		if item := strings.TrimSpace(m[1]); item != "" {
			items = append(items, item)
		}
	}
	if len(items) < 2 {
		return nil
	}
	return items
}

// extractCommaSeries splits "set up the database, create the API, build the
// frontend" into its coordinated segments. Applied only to single-line
// prompts with at least two commas so ordinary prose is left alone.
func extractCommaSeries(prompt string) []string {
	if strings.Contains(prompt, "\n") || strings.Count(prompt, ",") < 2 {
		return nil
	}
	segments := strings.Split(prompt, ",")
	items := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		seg = strings.TrimPrefix(seg, "and ")
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		items = append(items, seg)
	}
	if len(items) < 2 {
		return nil
	}
	return items
}
