package review

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// todoMarkers are the literal work-remaining markers Q2 rejects.
var todoMarkers = []string{"TODO", "FIXME", "TBD"}

// fileCheck is one verified-file claim re-checked against disk.
type fileCheck struct {
	path     string // path as the executor reported it
	resolved string // absolute path used for the disk check
	exists   bool
}

// Judge applies the six quality gates (Q1–Q6) to executor results.
// Verified-file claims are re-checked against disk rather than trusted,
// and file previews are read once and shared by the content gates.
type Judge struct {
	previewBytes int
}

// NewJudge creates a Judge that reads at most previewBytes from each
// verified file for the content scans.
func NewJudge(previewBytes int) *Judge {
	return &Judge{previewBytes: previewBytes}
}

// Judge runs all six gates in order and folds them into a verdict: PASS
// when every gate passed, REJECT otherwise. RETRY is never produced here;
// unjudgeable results are the loop's concern.
func (j *Judge) Judge(result *models.TaskResult, taskType models.TaskType) models.Verdict {
	checks := checkVerifiedFiles(result)
	previews, previewErrs := j.readPreviews(checks)

	gates := make([]models.GateResult, 0, len(models.AllGates))
	gates = append(gates, gateFilesVerified(result, taskType, checks))
	gates = append(gates, gateNoTodo(result, checks, previews, previewErrs))
	gates = append(gates, gateNoOmission(result, checks, previews))
	gates = append(gates, gateSyntaxComplete(result))

	evidence := gateEvidencePresent(result, checks)
	gates = append(gates, evidence)
	gates = append(gates, gateNoEarlyTermination(result, evidence))

	var failed []models.GateResult
	for _, g := range gates {
		if !g.Passed {
			failed = append(failed, g)
		}
	}
	if len(failed) > 0 {
		return models.Verdict{
			Decision:    models.DecisionReject,
			Gates:       gates,
			FailedGates: failed,
		}
	}
	return models.Verdict{Decision: models.DecisionPass, Gates: gates}
}

// checkVerifiedFiles stats every verified-file claim. Relative paths
// resolve against the result's working directory; a path that is missing
// or a directory counts as not existing.
func checkVerifiedFiles(result *models.TaskResult) []fileCheck {
	checks := make([]fileCheck, 0, len(result.VerifiedFiles))
	for _, f := range result.VerifiedFiles {
		resolved := f.Path
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(result.CWD, resolved)
		}
		info, err := os.Stat(resolved)
		checks = append(checks, fileCheck{
			path:     f.Path,
			resolved: resolved,
			exists:   err == nil && !info.IsDir(),
		})
	}
	return checks
}

// readPreviews reads the head of each existing verified file once; Q2 and
// Q3 share the contents. Read failures are returned separately so the
// TODO gate can fail closed on them.
func (j *Judge) readPreviews(checks []fileCheck) (map[string]string, []string) {
	previews := make(map[string]string, len(checks))
	var errs []string
	for _, c := range checks {
		if !c.exists {
			continue
		}
		content, err := readHead(c.resolved, j.previewBytes)
		if err != nil {
			errs = append(errs, fmt.Sprintf("could not preview %s: %v", c.path, err))
			continue
		}
		previews[c.path] = content
	}
	return previews, errs
}

// readHead reads at most limit bytes from the start of path.
func readHead(path string, limit int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	return string(buf[:n]), nil
}

// gateFilesVerified is Q1: every reported verified file exists on disk,
// and task types that expect modifications must have at least one claim.
func gateFilesVerified(result *models.TaskResult, taskType models.TaskType, checks []fileCheck) models.GateResult {
	for _, c := range checks {
		if !c.exists {
			return failGate(models.GateFilesVerified, fmt.Sprintf("reported file not found on disk: %s", c.path))
		}
	}
	if taskType.ExpectsModifications() && len(checks) == 0 {
		return failGate(models.GateFilesVerified, fmt.Sprintf("%s task reported no verified files", taskType))
	}
	return passGate(models.GateFilesVerified)
}

// gateNoTodo is Q2: literal TODO/FIXME/TBD markers must be absent from
// the output and from previewed file contents. Unreadable previews fail
// closed.
func gateNoTodo(result *models.TaskResult, checks []fileCheck, previews map[string]string, previewErrs []string) models.GateResult {
	if len(previewErrs) > 0 {
		return failGate(models.GateNoTodo, previewErrs[0])
	}
	for _, marker := range todoMarkers {
		if strings.Contains(result.Output, marker) {
			return failGate(models.GateNoTodo, fmt.Sprintf("%s marker in output", marker))
		}
	}
	for _, c := range checks {
		content, ok := previews[c.path]
		if !ok {
			continue
		}
		for _, marker := range todoMarkers {
			if strings.Contains(content, marker) {
				return failGate(models.GateNoTodo, fmt.Sprintf("%s marker in %s", marker, c.path))
			}
		}
	}
	return passGate(models.GateNoTodo)
}

// gateNoOmission is Q3: omission markers must be absent from the output
// and from previewed file contents.
func gateNoOmission(result *models.TaskResult, checks []fileCheck, previews map[string]string) models.GateResult {
	for _, marker := range models.OmissionMarkers {
		if strings.Contains(result.Output, marker) {
			return failGate(models.GateNoOmission, fmt.Sprintf("omission marker %q in output", marker))
		}
	}
	for _, c := range checks {
		content, ok := previews[c.path]
		if !ok {
			continue
		}
		for _, marker := range models.OmissionMarkers {
			if strings.Contains(content, marker) {
				return failGate(models.GateNoOmission, fmt.Sprintf("omission marker %q in %s", marker, c.path))
			}
		}
	}
	return passGate(models.GateNoOmission)
}

// gateSyntaxComplete is Q4: delimiter counts in the output must balance
// and every code fence must close.
func gateSyntaxComplete(result *models.TaskResult) models.GateResult {
	pairs := []struct {
		open, close string
		name        string
	}{
		{"{", "}", "braces"},
		{"[", "]", "brackets"},
		{"(", ")", "parentheses"},
	}
	for _, p := range pairs {
		if strings.Count(result.Output, p.open) != strings.Count(result.Output, p.close) {
			return failGate(models.GateSyntaxComplete, fmt.Sprintf("unbalanced %s in output", p.name))
		}
	}
	if strings.Count(result.Output, "```")%2 != 0 {
		return failGate(models.GateSyntaxComplete, "unclosed code fence in output")
	}
	return passGate(models.GateSyntaxComplete)
}

// gateEvidencePresent is Q5: evidence means a verified file on disk, or a
// COMPLETE status backed by reported modifications. A NO_EVIDENCE status
// never passes.
func gateEvidencePresent(result *models.TaskResult, checks []fileCheck) models.GateResult {
	if result.Status == models.ResultStatusNoEvidence {
		return failGate(models.GateEvidencePresent, "executor reported NO_EVIDENCE")
	}
	for _, c := range checks {
		if c.exists {
			return passGate(models.GateEvidencePresent)
		}
	}
	if result.Status == models.ResultStatusComplete && len(result.FilesModified) > 0 {
		return passGate(models.GateEvidencePresent)
	}
	return failGate(models.GateEvidencePresent, "no verified files and no completed modifications")
}

// gateNoEarlyTermination is Q6: terminal phrases in the output are only
// legitimate when the evidence gate passed.
func gateNoEarlyTermination(result *models.TaskResult, evidence models.GateResult) models.GateResult {
	for _, phrase := range models.TerminalPhrases {
		if strings.Contains(result.Output, phrase) {
			if !evidence.Passed {
				return failGate(models.GateNoEarlyTermination, fmt.Sprintf("completion claim %q without evidence", phrase))
			}
			return passGate(models.GateNoEarlyTermination)
		}
	}
	return passGate(models.GateNoEarlyTermination)
}

func passGate(id models.GateID) models.GateResult {
	return models.GateResult{Gate: id, Passed: true}
}

func failGate(id models.GateID, reason string) models.GateResult {
	return models.GateResult{Gate: id, Passed: false, Reason: reason}
}
