package store

import (
	"context"
	"database/sql"
	"fmt"

	"bysam-catalog/internal/database"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite is the embedded production Store: one key-value table mapping
// collection names to their JSON payloads.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and brings its schema
// up to date.
func NewSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	if path == "" {
		path = "./catalog.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// modernc sqlite serializes writes through a single connection
	db.SetMaxOpenConns(1)

	if err := database.RunMigrations(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context, collection string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(
		ctx,
		`SELECT data FROM collections WHERE name = ?`,
		collection,
	).Scan(&data)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}

	return data, nil
}

func (s *SQLite) Save(ctx context.Context, collection string, data []byte) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO collections (name, data, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		collection,
		data,
	)
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, collection string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, collection)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
