package models

import "time"

// LockType is the access mode of a file lock.
type LockType string

const (
	// LockRead is a shared lock; compatible with other READ locks
	LockRead LockType = "READ"
	// LockWrite is an exclusive lock; conflicts with every other lock
	LockWrite LockType = "WRITE"
)

// IsValid checks if the lock type is known.
func (t LockType) IsValid() bool {
	return t == LockRead || t == LockWrite
}

// CompatibleWith reports whether a new lock of type t may coexist with an
// already-held lock of type held on the same path.
func (t LockType) CompatibleWith(held LockType) bool {
	return t == LockRead && held == LockRead
}

// Lock is one held file lock. ExpiresAt is informational only; locks are
// freed exclusively by explicit release.
type Lock struct {
	LockID     string    `json:"lock_id"`
	FilePath   string    `json:"file_path"`
	HolderID   string    `json:"holder_id"`
	Type       LockType  `json:"type"`
	AcquiredAt time.Time `json:"acquired_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
