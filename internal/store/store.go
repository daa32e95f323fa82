// Package store defines the boundary contract between the engine core
// and external persistence: a PuzzleStore capability that accepts
// plain hex/decimal records by value. Nothing in this package touches
// math/big directly -- converters live in converter.go so callers
// decide when to cross the hex boundary.
package store

import (
	"context"

	"github.com/google/uuid"
)

// RsaRecord is the hex-encoded boundary DTO for an RsaKey. All hex
// fields are lower-case and unprefixed.
type RsaRecord struct {
	ID     uuid.UUID
	PHex   string
	QHex   string
	NHex   string
	PhiHex string
}

// PuzzleRecord is the hex/decimal-encoded boundary DTO for a Puzzle
// plus its solution. T is stored as a base-10 decimal string since it
// can exceed 2^64. RequestID is populated by a downstream system, not
// by this engine -- the core always writes it nil.
type PuzzleRecord struct {
	ID        uuid.UUID
	XHex      string
	YHex      string
	NHex      string
	TDecimal  string
	RequestID *string
	RsaID     uuid.UUID
}

// PuzzleStore is the capability the engine core depends on. Concrete
// adapters (sqlitestore, pgstore) implement it against a real
// database; the core never imports those adapters directly.
type PuzzleStore interface {
	SaveRSA(ctx context.Context, rec RsaRecord) error
	SavePuzzle(ctx context.Context, rec PuzzleRecord) error
}
