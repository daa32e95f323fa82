// Package pgstore implements store.PuzzleStore against PostgreSQL,
// selected by DATABASE_TYPE=postgresql.
package pgstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"timelock/internal/errs"
	"timelock/internal/store"
)

// Store wraps a *sql.DB opened against a postgres DSN.
type Store struct {
	db *sql.DB
}

// DSN assembles a postgres connection string from the parts named in
// the spec's environment-variable table.
func DSN(user, password, host, port, name string) string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		user, password, host, port, name)
}

// Open connects to postgres using dsn and ensures the schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
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
		`INSERT INTO rsa_keys (id, p, q, n, phi) VALUES ($1, $2, $3, $4, $5)`,
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
		`INSERT INTO time_lock_puzzles (id, x, y, n, t, request_id, rsa_id) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID.String(), rec.XHex, rec.YHex, rec.NHex, rec.TDecimal, rec.RequestID, rec.RsaID.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: save puzzle: %v", errs.StoreError, err)
	}
	return nil
}

var _ store.PuzzleStore = (*Store)(nil)
