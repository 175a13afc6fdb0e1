package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	inputs := []string{"first query", "second query", "third query"}
	for _, symptoms := range inputs {
		id, err := db.Record(ctx, symptoms, "analysis for "+symptoms, "llama-3.3-70b-versatile", 200)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	records, err := db.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first
	assert.Equal(t, "third query", records[0].Symptoms)
	assert.Equal(t, "second query", records[1].Symptoms)
	assert.Equal(t, "first query", records[2].Symptoms)
	assert.Greater(t, records[0].ID, records[1].ID)

	limited, err := db.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRecentEmpty(t *testing.T) {
	db := openTestDB(t)

	records, err := db.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.Record(ctx, "stored symptoms", "stored analysis", "llama-3.3-70b-versatile", 150)
	require.NoError(t, err)

	rec, err := db.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "stored symptoms", rec.Symptoms)
	assert.Equal(t, "stored analysis", rec.Response)
	assert.Equal(t, "llama-3.3-70b-versatile", rec.Model)
	assert.Equal(t, int64(150), rec.TokensUsed)
	assert.False(t, rec.CreatedAt.IsZero())

	_, err = db.Get(ctx, id+1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOlderThan(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Record(ctx, "fresh query text", "fresh analysis", "llama-3.3-70b-versatile", 100)
	require.NoError(t, err)

	// Backdate one record past the retention window
	_, err = db.db.ExecContext(ctx,
		`INSERT INTO queries (symptoms, response, model, tokens_used, created_at)
		 VALUES (?, ?, ?, ?, datetime('now', '-2 days'))`,
		"stale query text", "stale analysis", "llama-3.3-70b-versatile", 100)
	require.NoError(t, err)

	deleted, err := db.DeleteOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	records, err := db.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh query text", records[0].Symptoms)
}

func TestDisabledStore(t *testing.T) {
	var s Store = Disabled{}
	ctx := context.Background()

	id, err := s.Record(ctx, "anything", "anything", "model", 1)
	assert.NoError(t, err)
	assert.Zero(t, id)

	records, err := s.Recent(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, records)

	_, err = s.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := s.DeleteOlderThan(ctx, time.Hour)
	assert.NoError(t, err)
	assert.Zero(t, deleted)

	assert.False(t, s.Enabled())
	assert.NoError(t, s.Close())
}
