// internal/draftstore/sqlite.go
package draftstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/unclebandit/influencer-campaign-backend/internal/wizard"
)

const schema = `
CREATE TABLE IF NOT EXISTS wizard_drafts (
    storage_key TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    updated_at  TIMESTAMP NOT NULL
)`

// SQLiteStore keeps one JSON draft blob per storage key in a local
// SQLite file, so drafts survive restarts of the API.
type SQLiteStore struct {
	DB *sql.DB
}

// Open opens (or creates) the draft database at path.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open draft db: %w", err)
	}
	// One writer per file.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create draft table: %w", err)
	}
	return &SQLiteStore{DB: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}

func (s *SQLiteStore) Load(ctx context.Context, key string) (*wizard.Draft, error) {
	var payload string
	err := s.DB.QueryRowContext(ctx, `SELECT payload FROM wizard_drafts WHERE storage_key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var d wizard.Draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", key, err)
	}
	return &d, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, d *wizard.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	query := `
        INSERT INTO wizard_drafts (storage_key, payload, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
    `
	_, err = s.DB.ExecContext(ctx, query, key, string(payload), time.Now().UTC())
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM wizard_drafts WHERE storage_key = ?`, key)
	return err
}

var _ wizard.Store = (*SQLiteStore)(nil)
