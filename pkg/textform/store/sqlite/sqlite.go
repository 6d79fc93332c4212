// Package sqlite persists analysis history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/internalerr"
	"github.com/cognicore/textform/pkg/textform/store"
)

// sqliteStore implements store.Store over database/sql.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite history database with WAL
// mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL mode for concurrent readers while a writer appends history.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	input_hash TEXT NOT NULL,
	format TEXT NOT NULL,
	confidence INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_hash ON analyses(input_hash);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRecord inserts or replaces a record by id.
func (s *sqliteStore) SaveRecord(ctx context.Context, r store.Record) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO analyses (id, input_hash, format, confidence, duration_ns, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	input_hash = excluded.input_hash,
	format = excluded.format,
	confidence = excluded.confidence,
	duration_ns = excluded.duration_ns,
	created_at = excluded.created_at`,
		r.ID, r.InputHash, string(r.Format), r.Confidence,
		r.Duration.Nanoseconds(), r.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetRecord fetches one record by id.
func (s *sqliteStore) GetRecord(ctx context.Context, id string) (store.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, input_hash, format, confidence, duration_ns, created_at
FROM analyses WHERE id = ?`, id)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return store.Record{}, internalerr.ErrNotFound
	}
	return r, err
}

// GetByHash returns the most recent record for an input hash.
func (s *sqliteStore) GetByHash(ctx context.Context, hash string) (store.Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, input_hash, format, confidence, duration_ns, created_at
FROM analyses WHERE input_hash = ?
ORDER BY created_at DESC LIMIT 1`, hash)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return store.Record{}, false, nil
	}
	if err != nil {
		return store.Record{}, false, err
	}
	return r, true, nil
}

// ListRecent returns up to limit records, newest first.
func (s *sqliteStore) ListRecent(ctx context.Context, limit int) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, input_hash, format, confidence, duration_ns, created_at
FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountByFormat tallies stored records per predicted format.
func (s *sqliteStore) CountByFormat(ctx context.Context) (map[catalog.Format]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT format, COUNT(*) FROM analyses GROUP BY format`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[catalog.Format]int64)
	for rows.Next() {
		var format string
		var n int64
		if err := rows.Scan(&format, &n); err != nil {
			return nil, err
		}
		counts[catalog.Format(format)] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (store.Record, error) {
	var r store.Record
	var format, createdAt string
	var durationNs int64

	if err := row.Scan(&r.ID, &r.InputHash, &format, &r.Confidence, &durationNs, &createdAt); err != nil {
		return store.Record{}, err
	}

	r.Format = catalog.Format(format)
	r.Duration = time.Duration(durationNs)
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Record{}, err
	}
	r.CreatedAt = ts
	return r, nil
}
