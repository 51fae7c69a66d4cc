package models

// GateID identifies one of the six fixed quality gates.
type GateID string

const (
	// GateFilesVerified — every reported file exists; expected modifications are present
	GateFilesVerified GateID = "Q1"
	// GateNoTodo — no TODO/FIXME/TBD markers in output or previewed files
	GateNoTodo GateID = "Q2"
	// GateNoOmission — no omission markers in output or previewed files
	GateNoOmission GateID = "Q3"
	// GateSyntaxComplete — balanced delimiters, no detectable truncation
	GateSyntaxComplete GateID = "Q4"
	// GateEvidencePresent — verified files or completed modifications exist
	GateEvidencePresent GateID = "Q5"
	// GateNoEarlyTermination — terminal phrases require evidence
	GateNoEarlyTermination GateID = "Q6"
)

// AllGates lists the gates in judgment order.
var AllGates = []GateID{
	GateFilesVerified,
	GateNoTodo,
	GateNoOmission,
	GateSyntaxComplete,
	GateEvidencePresent,
	GateNoEarlyTermination,
}

// OmissionMarkers are the literal sequences that indicate elided content.
// Q3 fails on any of them; the retry classifier reads them as INCOMPLETE.
// The Japanese markers are kept verbatim: the executor models emit them.
var OmissionMarkers = []string{
	"…",
	"// 残り省略",
	"// etc.",
	"// 以下同様",
}

// TerminalPhrases are completion claims the executor models emit. Q6 treats
// them as early termination unless evidence is present.
var TerminalPhrases = []string{
	"完了しました",
	"これで完了です",
	"以上です",
	"Done.",
}

// GateResult is the outcome of one gate for one executor result.
type GateResult struct {
	Gate   GateID `json:"gate"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// Decision is the review verdict discriminator.
type Decision string

const (
	// DecisionPass means all gates passed; the loop ends
	DecisionPass Decision = "PASS"
	// DecisionReject means one or more gates failed; re-prompt and re-invoke
	DecisionReject Decision = "REJECT"
	// DecisionRetry means the result is unjudgeable (empty output, transient
	// error); re-invoke without a new prompt
	DecisionRetry Decision = "RETRY"
)

// Verdict is the tagged review outcome for one iteration.
// FailedGates is populated only for REJECT; RetryReason only for RETRY.
type Verdict struct {
	Decision    Decision     `json:"decision"`
	Gates       []GateResult `json:"gates,omitempty"`
	FailedGates []GateResult `json:"failed_gates,omitempty"`
	RetryReason string       `json:"retry_reason,omitempty"`
}

// Passed reports whether the verdict is PASS.
func (v Verdict) Passed() bool { return v.Decision == DecisionPass }

// ReviewOutcome summarizes a completed review loop.
type ReviewOutcome struct {
	TaskID       string      `json:"task_id"`
	SubtaskID    string      `json:"subtask_id,omitempty"`
	Iterations   int         `json:"iterations"`
	FinalVerdict Verdict     `json:"final_verdict"`
	Escalated    bool        `json:"escalated"`
	EscalateHint string      `json:"escalate_hint,omitempty"`
	Result       *TaskResult `json:"result,omitempty"`
}
