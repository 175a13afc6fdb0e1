package store

import (
	"context"
	"time"
)

// Disabled is the null-object store used when persistence is turned off.
// Every operation succeeds without doing anything so callers need no
// branching.
type Disabled struct{}

func (Disabled) Record(ctx context.Context, symptoms, response, model string, tokensUsed int64) (int64, error) {
	return 0, nil
}

func (Disabled) Recent(ctx context.Context, limit int) ([]QueryRecord, error) {
	return nil, nil
}

func (Disabled) Get(ctx context.Context, id int64) (*QueryRecord, error) {
	return nil, ErrNotFound
}

func (Disabled) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	return 0, nil
}

func (Disabled) Enabled() bool { return false }

func (Disabled) Close() error { return nil }
