package models

import "time"

// Artifact is one content item inside an evidence record. The hash of a
// record is computed over artifact contents concatenated in order.
type Artifact struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Content     string `json:"content"`
}

// Evidence is the immutable record of one atomic operation.
// AtomicOperation must be true and Aggregated false on every record;
// the store rejects anything else.
type Evidence struct {
	EvidenceID      string     `json:"evidence_id"`
	SessionID       string     `json:"session_id"`
	OperationID     string     `json:"operation_id,omitempty"`
	OperationType   string     `json:"operation_type"`
	Timestamp       time.Time  `json:"timestamp"`
	AtomicOperation bool       `json:"atomic_operation"`
	Aggregated      bool       `json:"aggregated"`
	Artifacts       []Artifact `json:"artifacts"`
	Hash            string     `json:"hash"`
	RawLogs         string     `json:"raw_logs,omitempty"`
	RawEvidenceRefs []string   `json:"raw_evidence_refs,omitempty"`
}

// EvidenceIndexItem is one manifest row of the session index.
type EvidenceIndexItem struct {
	EvidenceID    string    `json:"evidence_id"`
	OperationType string    `json:"operation_type"`
	Timestamp     time.Time `json:"timestamp"`
	Hash          string    `json:"hash"`
}

// EvidenceIndex is the per-session manifest written at finalization.
// Its serialized bytes are themselves hashed into evidence_index.sha256.
type EvidenceIndex struct {
	SessionID     string              `json:"session_id"`
	CreatedAt     time.Time           `json:"created_at"`
	FinalizedAt   time.Time           `json:"finalized_at"`
	EvidenceItems []EvidenceIndexItem `json:"evidence_items"`
	TotalItems    int                 `json:"total_items"`
}

// EvidenceInventory reconciles registered operations against recorded
// evidence. Missing operations block an overall-COMPLETE verdict.
type EvidenceInventory struct {
	SessionID     string   `json:"session_id"`
	Registered    []string `json:"registered"`
	Recorded      []string `json:"recorded"`
	Missing       []string `json:"missing"`
	Complete      bool     `json:"complete"`
	TotalEvidence int      `json:"total_evidence"`
}

// EvidenceReport is the human-facing report.json written at finalization.
type EvidenceReport struct {
	SessionID   string              `json:"session_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Verdict     ResultStatus        `json:"verdict"`
	TotalItems  int                 `json:"total_items"`
	Operations  EvidenceInventory   `json:"operations"`
	Items       []EvidenceIndexItem `json:"items"`
}
