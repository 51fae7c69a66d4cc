// Package evidence implements the write-once evidence store. Every atomic
// operation of a session is recorded as a JSON file whose hash covers the
// artifact contents; finalization writes a session index, a detached sha256
// of the index bytes, and a human-facing report. Records are never modified
// after they are written; tampering is detected at verify time.
package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pm-runner/pmrunner/pkg/errcode"
	"github.com/pm-runner/pmrunner/pkg/models"
)

const (
	indexFileName  = "evidence_index.json"
	hashFileName   = "evidence_index.sha256"
	reportFileName = "report.json"
	rawLogDirName  = "raw_logs"

	rawLogTimestampLayout = "20060102T150405Z"
)

// Masker scrubs credential-shaped content before it is persisted.
// Implemented by *masking.Service; a nil masker passes content through.
type Masker interface {
	Mask(content string) string
	MaskBytes(content []byte) []byte
}

// Store owns the evidence directory for one namespace. All methods are safe
// for concurrent use; per-session bookkeeping (insertion order, registered
// operations) lives in memory while the records themselves live on disk.
type Store struct {
	baseDir string
	masker  Masker

	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	dir        string
	createdAt  time.Time
	order      []string
	records    map[string]*models.Evidence
	registered []string
	regSet     map[string]struct{}
	recorded   map[string]string // operation_id -> evidence_id
}

// NewStore creates an evidence store rooted at baseDir
// (config.EvidenceDir() in production). The directory is created lazily
// per session.
func NewStore(baseDir string) *Store {
	return &Store{
		baseDir:  baseDir,
		sessions: make(map[string]*sessionState),
	}
}

// SetMasker installs the secret masker applied to artifact contents and raw
// logs before they are hashed and written. Must be called before any record
// is made; masked bytes are what the content hashes cover.
func (s *Store) SetMasker(m Masker) {
	s.masker = m
}

// SessionDir returns the on-disk directory for a session.
func (s *Store) SessionDir(sessionID string) string {
	return filepath.Join(s.baseDir, sessionID)
}

// Initialize creates the session directory layout. Calling it again for the
// same session is a no-op.
func (s *Store) Initialize(sessionID string) error {
	if sessionID == "" {
		return errcode.New(errcode.CodeSessionIDMissing, "session_id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; ok {
		return nil
	}

	dir := s.SessionDir(sessionID)
	if err := os.MkdirAll(filepath.Join(dir, rawLogDirName), 0o755); err != nil {
		return errcode.Wrap(errcode.CodeEvidenceCollection, "failed to create evidence directory", err).
			WithDetail("session_id", sessionID).
			WithDetail("dir", dir)
	}

	s.sessions[sessionID] = &sessionState{
		dir:       dir,
		createdAt: time.Now().UTC(),
		records:   make(map[string]*models.Evidence),
		regSet:    make(map[string]struct{}),
		recorded:  make(map[string]string),
	}

	slog.Debug("Evidence session initialized", "session_id", sessionID, "dir", dir)
	return nil
}

// RecordEvidence validates and persists one evidence record. The record is
// write-once: recording an evidence_id that already exists fails. Records
// with atomic_operation=false or aggregated=true are rejected outright.
// The content hash is computed here; any caller-supplied hash is replaced.
func (s *Store) RecordEvidence(sessionID string, ev *models.Evidence) (*models.Evidence, error) {
	if ev == nil {
		return nil, errcode.New(errcode.CodeEvidenceCollection, "evidence record is nil")
	}
	if !ev.AtomicOperation {
		return nil, errcode.New(errcode.CodeEvidenceCollection,
			"evidence must describe a single atomic operation (atomic_operation=false)").
			WithDetail("session_id", sessionID).
			WithDetail("operation_type", ev.OperationType)
	}
	if ev.Aggregated {
		return nil, errcode.New(errcode.CodeEvidenceCollection,
			"aggregated evidence records are not allowed").
			WithDetail("session_id", sessionID).
			WithDetail("operation_type", ev.OperationType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	rec := *ev
	rec.SessionID = sessionID
	if rec.EvidenceID == "" {
		rec.EvidenceID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	// Mask before hashing so the hash anchors the bytes actually on disk.
	if s.masker != nil {
		rec.Artifacts = append([]models.Artifact(nil), rec.Artifacts...)
		for i := range rec.Artifacts {
			rec.Artifacts[i].Content = s.masker.Mask(rec.Artifacts[i].Content)
		}
	}
	rec.Hash = HashArtifacts(rec.Artifacts)

	if _, exists := sess.records[rec.EvidenceID]; exists {
		return nil, errcode.Newf(errcode.CodeEvidenceCollection,
			"evidence %s already recorded; records are write-once", rec.EvidenceID).
			WithDetail("session_id", sessionID).
			WithDetail("evidence_id", rec.EvidenceID)
	}

	path := filepath.Join(sess.dir, rec.EvidenceID+".json")
	data, err := json.MarshalIndent(&rec, "", "  ")
	if err != nil {
		return nil, errcode.Wrap(errcode.CodeEvidenceCollection, "failed to encode evidence record", err).
			WithDetail("evidence_id", rec.EvidenceID)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return nil, errcode.Wrap(errcode.CodeEvidenceCollection, "failed to write evidence record", err).
			WithDetail("evidence_id", rec.EvidenceID).
			WithDetail("path", path)
	}

	sess.records[rec.EvidenceID] = &rec
	sess.order = append(sess.order, rec.EvidenceID)
	if rec.OperationID != "" {
		sess.recorded[rec.OperationID] = rec.EvidenceID
	}

	slog.Debug("Evidence recorded",
		"session_id", sessionID,
		"evidence_id", rec.EvidenceID,
		"operation_type", rec.OperationType,
		"artifacts", len(rec.Artifacts))

	return &rec, nil
}

// GetEvidence reads one record back from disk.
func (s *Store) GetEvidence(sessionID, evidenceID string) (*models.Evidence, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked(sessionID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(sess.dir, evidenceID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errcode.Wrap(errcode.CodeEvidenceCollection, "evidence record not found", err).
			WithDetail("session_id", sessionID).
			WithDetail("evidence_id", evidenceID)
	}

	var rec models.Evidence
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errcode.Wrap(errcode.CodeEvidenceCollection, "evidence record is corrupt", err).
			WithDetail("session_id", sessionID).
			WithDetail("evidence_id", evidenceID)
	}
	return &rec, nil
}

// ListEvidence returns all records of a session in insertion order.
func (s *Store) ListEvidence(sessionID string) ([]*models.Evidence, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	ids := make([]string, len(sess.order))
	copy(ids, sess.order)
	s.mu.Unlock()

	out := make([]*models.Evidence, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetEvidence(sessionID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// VerifyEvidence re-reads a record and recomputes its hash. A divergence
// between the stored and computed hashes fails with E304; invariant
// violations on the stored record fail with E301.
func (s *Store) VerifyEvidence(sessionID, evidenceID string) error {
	rec, err := s.GetEvidence(sessionID, evidenceID)
	if err != nil {
		return err
	}
	if !rec.AtomicOperation || rec.Aggregated {
		return errcode.Newf(errcode.CodeEvidenceCollection,
			"evidence %s violates record invariants on read", evidenceID).
			WithDetail("atomic_operation", rec.AtomicOperation).
			WithDetail("aggregated", rec.Aggregated)
	}

	computed := HashArtifacts(rec.Artifacts)
	if computed != rec.Hash {
		return errcode.Newf(errcode.CodeHashMismatch,
			"evidence %s hash mismatch", evidenceID).
			WithDetail("session_id", sessionID).
			WithDetail("evidence_id", evidenceID).
			WithDetail("stored_hash", rec.Hash).
			WithDetail("computed_hash", computed)
	}
	return nil
}

// StoreRawLog writes executor output under raw_logs/ and returns the path.
// The path is what callers put into Evidence.RawEvidenceRefs.
func (s *Store) StoreRawLog(sessionID, executorID string, content []byte) (string, error) {
	s.mu.Lock()
	sess, err := s.sessionLocked(sessionID)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}

	if s.masker != nil {
		content = s.masker.MaskBytes(content)
	}

	ts := time.Now().UTC().Format(rawLogTimestampLayout)
	base := filepath.Join(sess.dir, rawLogDirName, fmt.Sprintf("%s-%s", executorID, ts))

	// Same executor can log twice within a second; bump a suffix instead of
	// overwriting.
	path := base + ".log"
	for n := 2; ; n++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			if _, werr := f.Write(content); werr != nil {
				f.Close()
				return "", errcode.Wrap(errcode.CodeEvidenceCollection, "failed to write raw log", werr).
					WithDetail("path", path)
			}
			if cerr := f.Close(); cerr != nil {
				return "", errcode.Wrap(errcode.CodeEvidenceCollection, "failed to close raw log", cerr).
					WithDetail("path", path)
			}
			return path, nil
		}
		if !os.IsExist(err) {
			return "", errcode.Wrap(errcode.CodeEvidenceCollection, "failed to create raw log", err).
				WithDetail("path", path)
		}
		path = fmt.Sprintf("%s-%d.log", base, n)
	}
}

// VerifyRawLogs checks that every raw-log path referenced by a record still
// exists on disk. Missing references fail with E303.
func (s *Store) VerifyRawLogs(sessionID, evidenceID string) error {
	rec, err := s.GetEvidence(sessionID, evidenceID)
	if err != nil {
		return err
	}

	var missing []string
	for _, ref := range rec.RawEvidenceRefs {
		if _, err := os.Stat(ref); err != nil {
			missing = append(missing, ref)
		}
	}
	if len(missing) > 0 {
		return errcode.Newf(errcode.CodeRawLogMissing,
			"evidence %s references %d missing raw log(s)", evidenceID, len(missing)).
			WithDetail("session_id", sessionID).
			WithDetail("evidence_id", evidenceID).
			WithDetail("missing", missing)
	}
	return nil
}

// RegisterOperation declares that an operation is expected to produce
// evidence. Registration order is preserved; duplicates are ignored.
func (s *Store) RegisterOperation(sessionID, operationID string) error {
	if operationID == "" {
		return errcode.New(errcode.CodeEvidenceCollection, "operation_id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return err
	}
	if _, dup := sess.regSet[operationID]; dup {
		return nil
	}
	sess.regSet[operationID] = struct{}{}
	sess.registered = append(sess.registered, operationID)
	return nil
}

// GetInventory reconciles registered operations against recorded evidence.
// Registered operations with no recorded evidence_id are listed as missing;
// any missing operation makes the session incomplete.
func (s *Store) GetInventory(sessionID string) (*models.EvidenceInventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return s.inventoryLocked(sessionID, sess), nil
}

func (s *Store) inventoryLocked(sessionID string, sess *sessionState) *models.EvidenceInventory {
	inv := &models.EvidenceInventory{
		SessionID:     sessionID,
		Registered:    append([]string(nil), sess.registered...),
		TotalEvidence: len(sess.order),
	}
	for _, op := range sess.registered {
		if _, ok := sess.recorded[op]; ok {
			inv.Recorded = append(inv.Recorded, op)
		} else {
			inv.Missing = append(inv.Missing, op)
		}
	}
	inv.Complete = len(inv.Missing) == 0
	return inv
}

// FinalizeSession writes the session index, the detached sha256 of the index
// bytes, and the report. Calling it again rewrites all three coherently, so
// repeated finalization stays observably idempotent.
func (s *Store) FinalizeSession(sessionID string) (*models.EvidenceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	index := models.EvidenceIndex{
		SessionID:   sessionID,
		CreatedAt:   sess.createdAt,
		FinalizedAt: now,
		TotalItems:  len(sess.order),
	}
	for _, id := range sess.order {
		rec := sess.records[id]
		index.EvidenceItems = append(index.EvidenceItems, models.EvidenceIndexItem{
			EvidenceID:    rec.EvidenceID,
			OperationType: rec.OperationType,
			Timestamp:     rec.Timestamp,
			Hash:          rec.Hash,
		})
	}

	indexBytes, err := json.MarshalIndent(&index, "", "  ")
	if err != nil {
		return nil, errcode.Wrap(errcode.CodeIndexCorruption, "failed to encode evidence index", err).
			WithDetail("session_id", sessionID)
	}
	if err := writeFileAtomic(filepath.Join(sess.dir, indexFileName), indexBytes); err != nil {
		return nil, errcode.Wrap(errcode.CodeIndexCorruption, "failed to write evidence index", err).
			WithDetail("session_id", sessionID)
	}

	// The detached hash covers the index file bytes and nothing else.
	sum := sha256.Sum256(indexBytes)
	if err := writeFileAtomic(filepath.Join(sess.dir, hashFileName), []byte(hex.EncodeToString(sum[:]))); err != nil {
		return nil, errcode.Wrap(errcode.CodeIndexCorruption, "failed to write evidence index hash", err).
			WithDetail("session_id", sessionID)
	}

	inv := s.inventoryLocked(sessionID, sess)
	report := &models.EvidenceReport{
		SessionID:   sessionID,
		GeneratedAt: now,
		Verdict:     reportVerdict(inv),
		TotalItems:  index.TotalItems,
		Operations:  *inv,
		Items:       index.EvidenceItems,
	}
	reportBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errcode.Wrap(errcode.CodeEvidenceCollection, "failed to encode evidence report", err).
			WithDetail("session_id", sessionID)
	}
	if err := writeFileAtomic(filepath.Join(sess.dir, reportFileName), reportBytes); err != nil {
		return nil, errcode.Wrap(errcode.CodeEvidenceCollection, "failed to write evidence report", err).
			WithDetail("session_id", sessionID)
	}

	slog.Info("Evidence session finalized",
		"session_id", sessionID,
		"total_items", report.TotalItems,
		"verdict", string(report.Verdict),
		"missing_operations", len(inv.Missing))

	return report, nil
}

// reportVerdict maps an inventory to the session verdict. COMPLETE requires
// every registered operation to have recorded evidence.
func reportVerdict(inv *models.EvidenceInventory) models.ResultStatus {
	switch {
	case !inv.Complete:
		return models.ResultStatusIncomplete
	case inv.TotalEvidence == 0:
		return models.ResultStatusNoEvidence
	default:
		return models.ResultStatusComplete
	}
}

// VerifySessionIntegrity re-reads the finalized index from disk, recomputes
// the sha256 of its bytes and compares it with the detached hash file.
// It works purely from disk, so it also covers sessions finalized by an
// earlier process.
func (s *Store) VerifySessionIntegrity(sessionID string) error {
	dir := s.SessionDir(sessionID)

	indexBytes, err := os.ReadFile(filepath.Join(dir, indexFileName))
	if err != nil {
		return errcode.Wrap(errcode.CodeIndexCorruption, "evidence index is unreadable", err).
			WithDetail("session_id", sessionID)
	}
	var index models.EvidenceIndex
	if err := json.Unmarshal(indexBytes, &index); err != nil {
		return errcode.Wrap(errcode.CodeIndexCorruption, "evidence index is corrupt", err).
			WithDetail("session_id", sessionID)
	}

	storedBytes, err := os.ReadFile(filepath.Join(dir, hashFileName))
	if err != nil {
		return errcode.Wrap(errcode.CodeIndexCorruption, "evidence index hash is unreadable", err).
			WithDetail("session_id", sessionID)
	}
	stored := strings.TrimSpace(string(storedBytes))

	sum := sha256.Sum256(indexBytes)
	computed := hex.EncodeToString(sum[:])
	if computed != stored {
		return errcode.New(errcode.CodeHashMismatch, "evidence index hash mismatch").
			WithDetail("session_id", sessionID).
			WithDetail("stored_hash", stored).
			WithDetail("computed_hash", computed)
	}
	return nil
}

// sessionLocked resolves a session. Caller holds s.mu.
func (s *Store) sessionLocked(sessionID string) (*sessionState, error) {
	if sessionID == "" {
		return nil, errcode.New(errcode.CodeSessionIDMissing, "session_id is required")
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, errcode.Newf(errcode.CodeEvidenceCollection,
			"evidence session %s is not initialized", sessionID).
			WithDetail("session_id", sessionID)
	}
	return sess, nil
}

// HashArtifacts computes the hex sha256 over artifact contents concatenated
// in order. Names and content types are not part of the hash.
func HashArtifacts(artifacts []models.Artifact) string {
	h := sha256.New()
	for _, a := range artifacts {
		h.Write([]byte(a.Content))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// writeFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
