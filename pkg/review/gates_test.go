package review

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWorkFile creates one file under dir and returns its relative path.
func writeWorkFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return name
}

// verifiedResult builds a judgeable result claiming the given files, all
// of which must already exist under dir.
func verifiedResult(dir, output string, files ...string) *models.TaskResult {
	result := &models.TaskResult{
		Executed: true,
		Output:   output,
		Status:   models.ResultStatusComplete,
		CWD:      dir,
	}
	for _, f := range files {
		result.FilesModified = append(result.FilesModified, f)
		result.VerifiedFiles = append(result.VerifiedFiles, models.VerifiedFile{Path: f, Exists: true})
	}
	return result
}

func gateByID(t *testing.T, verdict models.Verdict, id models.GateID) models.GateResult {
	t.Helper()
	for _, g := range verdict.Gates {
		if g.Gate == id {
			return g
		}
	}
	t.Fatalf("verdict has no result for gate %s", id)
	return models.GateResult{}
}

func TestJudge_AllGatesPass(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "handler.go", "package api\n\nfunc Health() string { return \"ok\" }\n")

	judge := NewJudge(64 * 1024)
	verdict := judge.Judge(verifiedResult(dir, "Added the health handler.", "handler.go"), models.TaskTypeImplementation)

	assert.Equal(t, models.DecisionPass, verdict.Decision)
	assert.True(t, verdict.Passed())
	require.Len(t, verdict.Gates, 6)
	for _, g := range verdict.Gates {
		assert.True(t, g.Passed, "gate %s: %s", g.Gate, g.Reason)
	}
	assert.Empty(t, verdict.FailedGates)
}

func TestGateFilesVerified(t *testing.T) {
	judge := NewJudge(64 * 1024)

	t.Run("reported file missing on disk fails", func(t *testing.T) {
		dir := t.TempDir()
		result := verifiedResult(dir, "Edited the handler.", "handler.go") // never written

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q1 := gateByID(t, verdict, models.GateFilesVerified)
		assert.False(t, q1.Passed)
		assert.Contains(t, q1.Reason, "handler.go")
		assert.Equal(t, models.DecisionReject, verdict.Decision)
	})

	t.Run("modifying task type with no verified files fails", func(t *testing.T) {
		result := &models.TaskResult{
			Executed:      true,
			Output:        "Changed the config.",
			FilesModified: []string{"config.yaml"},
			Status:        models.ResultStatusComplete,
			CWD:           t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeLightEdit)
		q1 := gateByID(t, verdict, models.GateFilesVerified)
		assert.False(t, q1.Passed)
		assert.Contains(t, q1.Reason, "no verified files")
	})

	t.Run("read task type with no verified files passes", func(t *testing.T) {
		result := &models.TaskResult{
			Executed:      true,
			Output:        "The module uses a layered layout.",
			FilesModified: []string{"NOTES.md"},
			Status:        models.ResultStatusComplete,
			CWD:           t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeReadInfo)
		q1 := gateByID(t, verdict, models.GateFilesVerified)
		assert.True(t, q1.Passed)
	})

	t.Run("disk check overrides a stale exists=false claim", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "present.go", "package p\n")
		result := &models.TaskResult{
			Executed:      true,
			Output:        "Wrote the file.",
			FilesModified: []string{"present.go"},
			VerifiedFiles: []models.VerifiedFile{{Path: "present.go", Exists: false}},
			Status:        models.ResultStatusComplete,
			CWD:           dir,
		}
		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q1 := gateByID(t, verdict, models.GateFilesVerified)
		assert.True(t, q1.Passed)
	})

	t.Run("directory claimed as file fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg"), 0o755))
		result := &models.TaskResult{
			Executed:      true,
			Output:        "Created the package.",
			VerifiedFiles: []models.VerifiedFile{{Path: "pkg", Exists: true}},
			Status:        models.ResultStatusComplete,
			CWD:           dir,
		}
		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q1 := gateByID(t, verdict, models.GateFilesVerified)
		assert.False(t, q1.Passed)
	})
}

func TestGateNoTodo(t *testing.T) {
	judge := NewJudge(64 * 1024)

	t.Run("TODO in output fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "a.go", "package a\n")
		result := verifiedResult(dir, "Done, but TODO: wire the config.", "a.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q2 := gateByID(t, verdict, models.GateNoTodo)
		assert.False(t, q2.Passed)
		assert.Contains(t, q2.Reason, "TODO")
	})

	t.Run("FIXME in previewed file fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "b.go", "package b\n\n// FIXME: handle nil input\nfunc F() {}\n")
		result := verifiedResult(dir, "Implemented F.", "b.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q2 := gateByID(t, verdict, models.GateNoTodo)
		assert.False(t, q2.Passed)
		assert.Contains(t, q2.Reason, "b.go")
	})

	t.Run("marker beyond the preview cap is not seen", func(t *testing.T) {
		dir := t.TempDir()
		head := strings.Repeat("x", 32)
		writeWorkFile(t, dir, "c.go", head+"\nTODO later\n")
		result := verifiedResult(dir, "Wrote c.", "c.go")

		small := NewJudge(len(head))
		verdict := small.Judge(result, models.TaskTypeImplementation)
		q2 := gateByID(t, verdict, models.GateNoTodo)
		assert.True(t, q2.Passed)
	})

	t.Run("TBD in output fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "d.go", "package d\n")
		result := verifiedResult(dir, "Schema is TBD.", "d.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q2 := gateByID(t, verdict, models.GateNoTodo)
		assert.False(t, q2.Passed)
	})
}

func TestGateNoOmission(t *testing.T) {
	judge := NewJudge(64 * 1024)

	t.Run("ellipsis in output fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "a.go", "package a\n")
		result := verifiedResult(dir, "Implemented the first part…", "a.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q3 := gateByID(t, verdict, models.GateNoOmission)
		assert.False(t, q3.Passed)
	})

	t.Run("japanese omission marker in file fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "b.go", "package b\n\nfunc One() {}\n// 残り省略\n")
		result := verifiedResult(dir, "Wrote all functions.", "b.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q3 := gateByID(t, verdict, models.GateNoOmission)
		assert.False(t, q3.Passed)
		assert.Contains(t, q3.Reason, "b.go")
	})

	t.Run("etc comment marker fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "c.go", "package c\n")
		result := verifiedResult(dir, "Added fields a, b, // etc.", "c.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q3 := gateByID(t, verdict, models.GateNoOmission)
		assert.False(t, q3.Passed)
	})
}

func TestGateSyntaxComplete(t *testing.T) {
	judge := NewJudge(64 * 1024)
	dir := t.TempDir()
	writeWorkFile(t, dir, "a.go", "package a\n")

	tests := []struct {
		name   string
		output string
		pass   bool
	}{
		{"balanced output", "func main() { run([]string{\"a\"}) }", true},
		{"unbalanced braces", "func main() {", false},
		{"unbalanced brackets", "items[0 = x", false},
		{"unbalanced parentheses", "call(a, b", false},
		{"unclosed code fence", "```go\nfunc main() {}\n", false},
		{"closed code fences", "```go\nfunc main() {}\n```\n", true},
		{"empty output counts balanced", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := verifiedResult(dir, tt.output, "a.go")
			verdict := judge.Judge(result, models.TaskTypeImplementation)
			q4 := gateByID(t, verdict, models.GateSyntaxComplete)
			assert.Equal(t, tt.pass, q4.Passed, q4.Reason)
		})
	}
}

func TestGateEvidencePresent(t *testing.T) {
	judge := NewJudge(64 * 1024)

	t.Run("verified file on disk passes", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "a.go", "package a\n")
		result := verifiedResult(dir, "Wrote a.go.", "a.go")
		result.FilesModified = nil // verified file alone suffices

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q5 := gateByID(t, verdict, models.GateEvidencePresent)
		assert.True(t, q5.Passed)
	})

	t.Run("complete with modifications passes without verified files", func(t *testing.T) {
		result := &models.TaskResult{
			Executed:      true,
			Output:        "Updated the workflow file.",
			FilesModified: []string{".github/workflows/ci.yaml"},
			Status:        models.ResultStatusComplete,
			CWD:           t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeConfigCIChange)
		q5 := gateByID(t, verdict, models.GateEvidencePresent)
		assert.True(t, q5.Passed)
	})

	t.Run("no evidence status always fails", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "a.go", "package a\n")
		result := verifiedResult(dir, "Finished.", "a.go")
		result.Status = models.ResultStatusNoEvidence

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q5 := gateByID(t, verdict, models.GateEvidencePresent)
		assert.False(t, q5.Passed)
		assert.Contains(t, q5.Reason, "NO_EVIDENCE")
	})

	t.Run("incomplete without files fails", func(t *testing.T) {
		result := &models.TaskResult{
			Executed: true,
			Output:   "Partial notes on the layout.",
			Status:   models.ResultStatusIncomplete,
			CWD:      t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeReadInfo)
		q5 := gateByID(t, verdict, models.GateEvidencePresent)
		assert.False(t, q5.Passed)
	})
}

func TestGateNoEarlyTermination(t *testing.T) {
	judge := NewJudge(64 * 1024)

	t.Run("terminal phrase without evidence fails", func(t *testing.T) {
		result := &models.TaskResult{
			Executed: true,
			Output:   "Done.",
			Status:   models.ResultStatusComplete,
			CWD:      t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q6 := gateByID(t, verdict, models.GateNoEarlyTermination)
		assert.False(t, q6.Passed)
		assert.Contains(t, q6.Reason, "Done.")
	})

	t.Run("terminal phrase with evidence passes", func(t *testing.T) {
		dir := t.TempDir()
		writeWorkFile(t, dir, "a.go", "package a\n")
		result := verifiedResult(dir, "All handlers added. Done.", "a.go")

		verdict := judge.Judge(result, models.TaskTypeImplementation)
		q6 := gateByID(t, verdict, models.GateNoEarlyTermination)
		assert.True(t, q6.Passed)
	})

	t.Run("japanese completion claim without evidence fails", func(t *testing.T) {
		result := &models.TaskResult{
			Executed: true,
			Output:   "実装は完了しました",
			Status:   models.ResultStatusIncomplete,
			CWD:      t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeReadInfo)
		q6 := gateByID(t, verdict, models.GateNoEarlyTermination)
		assert.False(t, q6.Passed)
	})

	t.Run("no terminal phrase passes regardless of evidence", func(t *testing.T) {
		result := &models.TaskResult{
			Executed: true,
			Output:   "Here is what the package exports.",
			Status:   models.ResultStatusIncomplete,
			CWD:      t.TempDir(),
		}
		verdict := judge.Judge(result, models.TaskTypeReadInfo)
		q6 := gateByID(t, verdict, models.GateNoEarlyTermination)
		assert.True(t, q6.Passed)
	})
}

func TestJudge_RelativePathsResolveAgainstCWD(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "internal/svc/svc.go", "package svc\n")

	judge := NewJudge(64 * 1024)
	verdict := judge.Judge(verifiedResult(dir, "Created the service.", "internal/svc/svc.go"), models.TaskTypeImplementation)

	q1 := gateByID(t, verdict, models.GateFilesVerified)
	assert.True(t, q1.Passed)
	assert.Equal(t, models.DecisionPass, verdict.Decision)
}
