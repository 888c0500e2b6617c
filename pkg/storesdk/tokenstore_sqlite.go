package storesdk

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// tokenStoreKey is the fixed row key the serialized pair lives under. One
// credential set per database file.
const tokenStoreKey = "tokens"

// SQLiteTokenStore persists the token pair in a local SQLite database. This
// is the durable store the CLI uses so a login survives across invocations.
type SQLiteTokenStore struct {
	db *sql.DB
}

// NewSQLiteTokenStore opens (creating if needed) the credential database at
// the given path.
func NewSQLiteTokenStore(path string) (*SQLiteTokenStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS credentials (
			name       TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init credential db: %w", err)
	}

	return &SQLiteTokenStore{db: db}, nil
}

func (s *SQLiteTokenStore) Close() error { return s.db.Close() }

func (s *SQLiteTokenStore) Get() *TokenPair {
	var payload string
	err := s.db.QueryRowContext(
		context.Background(),
		`SELECT payload FROM credentials WHERE name = ?`,
		tokenStoreKey,
	).Scan(&payload)
	if err != nil {
		return nil
	}

	var pair TokenPair
	if err := json.Unmarshal([]byte(payload), &pair); err != nil {
		return nil
	}
	if pair.Access == "" && pair.Refresh == "" {
		return nil
	}
	return &pair
}

func (s *SQLiteTokenStore) Set(pair *TokenPair) error {
	ctx := context.Background()

	if pair == nil {
		if _, err := s.db.ExecContext(
			ctx,
			`DELETE FROM credentials WHERE name = ?`,
			tokenStoreKey,
		); err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("encode token pair: %w", err)
	}

	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO credentials (name, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		tokenStoreKey, string(raw), time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}
