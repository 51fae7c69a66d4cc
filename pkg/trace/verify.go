package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// maxLineBytes bounds one trace line during verification. Lines carry full
// prompts and responses, so the default scanner limit is far too small.
const maxLineBytes = 4 * 1024 * 1024

// Verify streams the trace file at path and reports per-line validity,
// per-event counts, the derived iteration total, and whether the
// FINAL_SUMMARY discipline holds (at most one, and only as the last line).
// I/O failures return an error; structural problems are reported in the
// result with Valid=false.
func Verify(path string) (*models.TraceVerification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}
	defer f.Close()

	result := &models.TraceVerification{
		Path:        path,
		EventCounts: make(map[models.TraceEvent]int),
	}

	maxIteration := -1
	lastLineIsFinalSummary := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		result.TotalLines++
		lastLineIsFinalSummary = false

		var entry models.TraceEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			result.InvalidLines = append(result.InvalidLines, lineNo)
			continue
		}
		if !entry.Event.IsValid() || entry.Timestamp.IsZero() {
			result.InvalidLines = append(result.InvalidLines, lineNo)
			continue
		}

		result.ValidLines++
		result.EventCounts[entry.Event]++
		lastLineIsFinalSummary = entry.Event == models.TraceFinalSummary

		if entry.IterationIndex != nil && *entry.IterationIndex > maxIteration {
			maxIteration = *entry.IterationIndex
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan trace file: %w", err)
	}

	result.TotalIterations = maxIteration + 1

	summaries := result.EventCounts[models.TraceFinalSummary]
	result.FinalSummaryLast = summaries == 0 ||
		(summaries == 1 && lastLineIsFinalSummary)

	result.Valid = result.TotalLines > 0 &&
		len(result.InvalidLines) == 0 &&
		result.FinalSummaryLast

	return result, nil
}
