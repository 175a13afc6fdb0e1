package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS queries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symptoms TEXT NOT NULL,
	response TEXT NOT NULL,
	model TEXT NOT NULL,
	tokens_used INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// DB is the SQLite-backed query log. Writes are serialized through a mutex
// since the store is a single shared file.
type DB struct {
	db *sql.DB
	mu sync.Mutex
}

func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StorageError{Op: "migrate", Err: err}
	}

	return &DB{db: db}, nil
}

func (s *DB) Record(ctx context.Context, symptoms, response, model string, tokensUsed int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (symptoms, response, model, tokens_used)
		 VALUES (?, ?, ?, ?)`,
		symptoms, response, model, tokensUsed,
	)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

func (s *DB) Recent(ctx context.Context, limit int) ([]QueryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, symptoms, response, model, tokens_used, created_at
		 FROM queries
		 ORDER BY id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, &StorageError{Op: "select recent", Err: err}
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var r QueryRecord
		if err := rows.Scan(&r.ID, &r.Symptoms, &r.Response, &r.Model, &r.TokensUsed, &r.CreatedAt); err != nil {
			return nil, &StorageError{Op: "scan recent", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "select recent", Err: err}
	}
	return records, nil
}

func (s *DB) Get(ctx context.Context, id int64) (*QueryRecord, error) {
	var r QueryRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, symptoms, response, model, tokens_used, created_at
		 FROM queries
		 WHERE id = ?`, id,
	).Scan(&r.ID, &r.Symptoms, &r.Response, &r.Model, &r.TokensUsed, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "select by id", Err: err}
	}
	return &r, nil
}

func (s *DB) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// created_at is written by CURRENT_TIMESTAMP, so compare in SQLite's
	// own datetime space rather than binding a Go time.Time.
	modifier := fmt.Sprintf("-%d seconds", int64(age.Seconds()))
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM queries WHERE created_at < datetime('now', ?)`, modifier)
	if err != nil {
		return 0, &StorageError{Op: "delete old", Err: err}
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, &StorageError{Op: "delete old", Err: err}
	}
	return deleted, nil
}

func (s *DB) Enabled() bool { return true }

func (s *DB) Close() error {
	return s.db.Close()
}
