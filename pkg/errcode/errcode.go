// Package errcode defines the coded, structured errors shared by all
// orchestrator components.
//
// Every failure that crosses a component boundary is mapped to one of the
// stable E-codes below and carried as an *Error with a human-readable
// message and optional structured details. Callers branch on codes via
// errors.As / HasCode rather than string matching.
package errcode

import (
	"errors"
	"fmt"
)

// Code is a stable error code (E101 … E502).
type Code string

// E1xx — project / configuration.
const (
	// CodeProjectDirMissing indicates the project settings directory was not found
	CodeProjectDirMissing Code = "E101"
	// CodeSchemaValidation indicates persisted data failed schema validation
	CodeSchemaValidation Code = "E104"
	// CodeConfigCorruption indicates configuration or state file corruption
	CodeConfigCorruption Code = "E105"
)

// E2xx — task lifecycle.
const (
	// CodeTaskDecomposition indicates task decomposition produced an unusable plan
	CodeTaskDecomposition Code = "E205"
	// CodeResourceLimit indicates a per-task budget or parallel ceiling was exceeded
	CodeResourceLimit Code = "E206"
)

// E3xx — evidence integrity.
const (
	// CodeEvidenceCollection indicates an evidence record could not be collected or persisted
	CodeEvidenceCollection Code = "E301"
	// CodeIndexCorruption indicates the evidence index is structurally invalid
	CodeIndexCorruption Code = "E302"
	// CodeRawLogMissing indicates a referenced raw log file does not exist
	CodeRawLogMissing Code = "E303"
	// CodeHashMismatch indicates recomputed content hash diverges from the stored hash
	CodeHashMismatch Code = "E304"
)

// E4xx — locking.
const (
	// CodeLockAcquisition indicates a lock could not be acquired (conflict)
	CodeLockAcquisition Code = "E401"
	// CodeLockRelease indicates a release of an unknown or foreign lock
	CodeLockRelease Code = "E402"
	// CodeSemaphoreExceeded indicates the global executor ceiling was exceeded
	CodeSemaphoreExceeded Code = "E404"
	// CodeForbiddenAutoRelease indicates a time-based lock release was attempted
	CodeForbiddenAutoRelease Code = "E405"
)

// E5xx — integration.
const (
	// CodeSessionIDMissing indicates a required session id was absent
	CodeSessionIDMissing Code = "E501"
	// CodeSessionMismatch indicates evidence or trace data references a different session
	CodeSessionMismatch Code = "E502"
)

// codeNames maps codes to their symbolic failure names.
var codeNames = map[Code]string{
	CodeProjectDirMissing:    "PROJECT_DIR_MISSING",
	CodeSchemaValidation:     "SCHEMA_VALIDATION_FAILURE",
	CodeConfigCorruption:     "CONFIG_CORRUPTION",
	CodeTaskDecomposition:    "TASK_DECOMPOSITION_FAILURE",
	CodeResourceLimit:        "RESOURCE_LIMIT_EXCEEDED",
	CodeEvidenceCollection:   "EVIDENCE_COLLECTION_FAILURE",
	CodeIndexCorruption:      "EVIDENCE_INDEX_CORRUPTION",
	CodeRawLogMissing:        "RAW_LOG_MISSING",
	CodeHashMismatch:         "HASH_MISMATCH",
	CodeLockAcquisition:      "LOCK_ACQUISITION_FAILURE",
	CodeLockRelease:          "LOCK_RELEASE_FAILURE",
	CodeSemaphoreExceeded:    "SEMAPHORE_LIMIT_EXCEEDED",
	CodeForbiddenAutoRelease: "RESOURCE_RELEASE_FAILURE",
	CodeSessionIDMissing:     "SESSION_ID_MISSING",
	CodeSessionMismatch:      "SESSION_ID_MISMATCH",
}

// Name returns the symbolic failure name for the code (e.g. "HASH_MISMATCH").
func (c Code) Name() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN_FAILURE"
}

// Class returns the code class prefix ("E1xx" … "E5xx").
func (c Code) Class() string {
	if len(c) < 2 {
		return "unknown"
	}
	return string(c[:2]) + "xx"
}

// Error is a structured, coded error. It is immutable after construction
// except for detail attachment via WithDetail.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	cause error
}

// New creates a coded error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded error around an underlying cause. The cause remains
// reachable through errors.Is / errors.As.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s %s] %s: %v", e.Code, e.Code.Name(), e.Message, e.cause)
	}
	return fmt.Sprintf("[%s %s] %s", e.Code, e.Code.Name(), e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a structured detail and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// HasCode reports whether err or any error in its chain carries the given code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// CodeOf extracts the code from err's chain. ok is false when no coded
// error is present.
func CodeOf(err error) (Code, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code, true
	}
	return "", false
}
