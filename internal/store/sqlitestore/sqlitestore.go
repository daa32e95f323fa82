// Package sqlitestore implements store.PuzzleStore against a local
// SQLite file, the default backend selected by DATABASE_TYPE=sqlite.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"timelock/internal/errs"
	"timelock/internal/store"
)

// Store wraps a *sql.DB opened against a sqlite file. It owns no
// process-wide singleton; callers construct one per database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite file at path and
// ensures the rsa_keys/time_lock_puzzles schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.StoreError, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS rsa_keys (
	id TEXT PRIMARY KEY,
	p TEXT NOT NULL,
	q TEXT NOT NULL,
	n TEXT NOT NULL,
	phi TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS time_lock_puzzles (
	id TEXT PRIMARY KEY,
	x TEXT NOT NULL,
	y TEXT NOT NULL,
	n TEXT NOT NULL,
	t TEXT NOT NULL,
	request_id TEXT,
	rsa_id TEXT NOT NULL UNIQUE REFERENCES rsa_keys(id)
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: migrate: %v", errs.StoreError, err)
	}
	return nil
}

// SaveRSA persists an RsaRecord.
func (s *Store) SaveRSA(ctx context.Context, rec store.RsaRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rsa_keys (id, p, q, n, phi) VALUES (?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.PHex, rec.QHex, rec.NHex, rec.PhiHex,
	)
	if err != nil {
		return fmt.Errorf("%w: save rsa: %v", errs.StoreError, err)
	}
	return nil
}

// SavePuzzle persists a PuzzleRecord.
func (s *Store) SavePuzzle(ctx context.Context, rec store.PuzzleRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO time_lock_puzzles (id, x, y, n, t, request_id, rsa_id) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.XHex, rec.YHex, rec.NHex, rec.TDecimal, rec.RequestID, rec.RsaID.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: save puzzle: %v", errs.StoreError, err)
	}
	return nil
}

var _ store.PuzzleStore = (*Store)(nil)
