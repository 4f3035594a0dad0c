// Package runindex records generated runs in a SQLite database so that
// downstream tooling can query the run matrix instead of parsing the flat
// manifest. The index is rebuilt from scratch on every successful
// generation; it is a derived artifact, never the source of truth.
package runindex

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Record describes one generated run.
type Record struct {
	RunName     string
	Dir         string
	P0          float64
	P1          float64
	Direction   string
	Bucket      string
	RampSeconds float64
	DeckSHA256  string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_name     TEXT PRIMARY KEY,
	dir          TEXT NOT NULL,
	p0           REAL NOT NULL,
	p1           REAL NOT NULL,
	direction    TEXT NOT NULL,
	bucket       TEXT NOT NULL,
	ramp_seconds REAL NOT NULL,
	deck_sha256  TEXT NOT NULL,
	created_at   TEXT NOT NULL
);
`

func open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening run index: %w", err)
	}
	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)
	return db, nil
}

// Write replaces the run index at dbPath with records, preserving their
// order via insertion; readers ordering by rowid see generation order.
func Write(ctx context.Context, dbPath string, records []Record) error {
	db, err := open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initializing run index schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning run index transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clearing run index: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO runs (run_name, dir, p0, p1, direction, bucket, ramp_seconds, deck_sha256, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing run index insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.RunName, r.Dir, r.P0, r.P1, r.Direction, r.Bucket, r.RampSeconds, r.DeckSHA256, now,
		); err != nil {
			return fmt.Errorf("indexing run %s: %w", r.RunName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run index: %w", err)
	}
	return nil
}

// List returns all indexed runs in generation order.
func List(ctx context.Context, dbPath string) ([]Record, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT run_name, dir, p0, p1, direction, bucket, ramp_seconds, deck_sha256
		FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying run index: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.RunName, &r.Dir, &r.P0, &r.P1, &r.Direction, &r.Bucket, &r.RampSeconds, &r.DeckSHA256); err != nil {
			return nil, fmt.Errorf("scanning run index row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run index: %w", err)
	}
	return records, nil
}
