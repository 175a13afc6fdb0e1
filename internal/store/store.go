package store

import (
	"context"
	"errors"
	"time"
)

// QueryRecord is one persisted analysis. Append-only: records are never
// updated after insert.
type QueryRecord struct {
	ID         int64
	Symptoms   string
	Response   string
	Model      string
	TokensUsed int64
	CreatedAt  time.Time
}

// Store is the query log. Persistence is optional: when disabled by
// configuration the Disabled implementation is used and every operation is
// a no-op, with no behavioral effect on analysis.
type Store interface {
	// Record appends a query/response pair and returns its identifier.
	Record(ctx context.Context, symptoms, response, model string, tokensUsed int64) (int64, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]QueryRecord, error)

	// Get returns a single record by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*QueryRecord, error)

	// DeleteOlderThan removes records older than the given age and reports
	// how many were deleted.
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)

	// Enabled reports whether persistence is active.
	Enabled() bool

	Close() error
}

var ErrNotFound = errors.New("store: record not found")

// StorageError wraps a write or read failure from the underlying store.
// Callers on the analysis path log it and move on; it never aborts a
// successful analysis.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
