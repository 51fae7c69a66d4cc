package models

// ResultStatus is the executor's terminal status for one invocation.
type ResultStatus string

const (
	// ResultStatusComplete means the executor finished the requested work
	ResultStatusComplete ResultStatus = "COMPLETE"
	// ResultStatusIncomplete means the executor stopped with work remaining
	ResultStatusIncomplete ResultStatus = "INCOMPLETE"
	// ResultStatusError means the executor failed
	ResultStatusError ResultStatus = "ERROR"
	// ResultStatusTimeout means the executor exceeded its time budget
	ResultStatusTimeout ResultStatus = "TIMEOUT"
	// ResultStatusNoEvidence means the executor claimed completion without artifacts
	ResultStatusNoEvidence ResultStatus = "NO_EVIDENCE"
	// ResultStatusInvalid means the result shape itself was unusable
	ResultStatusInvalid ResultStatus = "INVALID"
)

// IsValid checks if the result status is known.
func (s ResultStatus) IsValid() bool {
	switch s {
	case ResultStatusComplete, ResultStatusIncomplete, ResultStatusError,
		ResultStatusTimeout, ResultStatusNoEvidence, ResultStatusInvalid:
		return true
	default:
		return false
	}
}

// ExitCode maps a result status to the process exit code contract.
func (s ResultStatus) ExitCode() int {
	switch s {
	case ResultStatusComplete:
		return 0
	case ResultStatusIncomplete:
		return 1
	case ResultStatusNoEvidence:
		return 2
	case ResultStatusError, ResultStatusTimeout:
		return 3
	default:
		return 4
	}
}

// VerifiedFile is the executor's claim about one file it touched, paired
// with its own existence check.
type VerifiedFile struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// TaskResult is the executor's report for one invocation. The wrapper
// chain (chunker → review loop → raw executor) preserves this shape.
type TaskResult struct {
	Executed        bool           `json:"executed"`
	Output          string         `json:"output"`
	FilesModified   []string       `json:"files_modified"`
	VerifiedFiles   []VerifiedFile `json:"verified_files"`
	UnverifiedFiles []string       `json:"unverified_files"`
	DurationMS      int64          `json:"duration_ms"`
	Status          ResultStatus   `json:"status"`
	CWD             string         `json:"cwd"`
	Error           string         `json:"error,omitempty"`
}

// VerifiedPaths returns the paths of all files the executor reported as
// existing on disk.
func (r *TaskResult) VerifiedPaths() []string {
	if r == nil {
		return nil
	}
	paths := make([]string, 0, len(r.VerifiedFiles))
	for _, f := range r.VerifiedFiles {
		if f.Exists {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// AuthStatus reports whether the executor backend is authenticated.
type AuthStatus struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}
