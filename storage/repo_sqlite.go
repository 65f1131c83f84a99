package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteRepo stores keys in a single kv table.
type SQLiteRepo struct {
	db *sql.DB
}

var _ Repo = (*SQLiteRepo)(nil)

// NewSQLiteRepo opens the database file (":memory:" for a private in-memory db)
// and creates the kv table if needed.
func NewSQLiteRepo(ctx context.Context, path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("[SQLiteRepo] open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("[SQLiteRepo] schema: %w", err)
	}
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("[SQLiteRepo] get %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("[SQLiteRepo] set %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("[SQLiteRepo] delete %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}
