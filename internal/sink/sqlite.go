package sink

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS listings (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	upload_id     TEXT,
	reference     TEXT NOT NULL,
	brand         TEXT,
	currency      TEXT,
	amount        REAL,
	discount_pct  REAL,
	final_amount  REAL,
	conditions    TEXT NOT NULL DEFAULT '[]',
	year          INTEGER,
	completeness  TEXT,
	colors        TEXT NOT NULL DEFAULT '[]',
	bracelet      TEXT,
	source_text   TEXT NOT NULL,
	source_date   TEXT,
	as_of_date    TEXT,
	created_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_listings_brand ON listings (brand);
CREATE INDEX IF NOT EXISTS idx_listings_upload_id ON listings (upload_id);
`

const sqliteInsert = `
INSERT INTO listings (
	upload_id, reference, brand, currency,
	amount, discount_pct, final_amount,
	conditions, year, completeness, colors, bracelet,
	source_text, source_date, as_of_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLiteWriter stores listings in a local SQLite file. Tag lists are stored
// as JSON arrays.
type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens (or creates) the database at path and ensures the
// listings table exists.
func NewSQLiteWriter(ctx context.Context, path string) (*SQLiteWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create output dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// One connection keeps writes serialized on the file.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &SQLiteWriter{db: db}, nil
}

// DB exposes the handle for read-back.
func (s *SQLiteWriter) DB() *sql.DB {
	return s.db
}

// Write inserts every listing in one transaction.
func (s *SQLiteWriter) Write(ctx context.Context, listings []domain.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, sqliteInsert)
	if err != nil {
		return 0, fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // closed with the transaction

	for i := range listings {
		args, err := sqliteArgs(&listings[i])
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("sqlite: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit: %w", err)
	}
	return len(listings), nil
}

// Close closes the database.
func (s *SQLiteWriter) Close() error {
	return s.db.Close()
}

func sqliteArgs(l *domain.Listing) ([]any, error) {
	conditions, err := jsonList(l.Conditions)
	if err != nil {
		return nil, err
	}
	colors, err := jsonList(l.Colors)
	if err != nil {
		return nil, err
	}

	return []any{
		nullString(l.UploadID), l.Reference, nullString(l.Brand), nullString(string(l.Currency)),
		l.Amount, l.DiscountPct, l.FinalAmount,
		conditions, l.Year, nullString(l.Completeness), colors, nullString(l.Bracelet),
		l.Text, nullString(formatDate(l.SourceDate)), nullString(formatDate(&l.AsOfDate)),
	}, nil
}

func jsonList(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("sqlite: encode tags: %w", err)
	}
	return string(b), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
