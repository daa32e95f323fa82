package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"timelock/internal/store"
)

func TestSaveAndLinkRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	rsaID := uuid.New()
	rsaRec := store.RsaRecord{
		ID:     rsaID,
		PHex:   "7",
		QHex:   "3",
		NHex:   "15",
		PhiHex: "c",
	}
	if err := s.SaveRSA(ctx, rsaRec); err != nil {
		t.Fatalf("SaveRSA failed: %v", err)
	}

	puzzleRec := store.PuzzleRecord{
		ID:       uuid.New(),
		XHex:     "5",
		YHex:     "10",
		NHex:     "15",
		TDecimal: "2",
		RsaID:    rsaID,
	}
	if err := s.SavePuzzle(ctx, puzzleRec); err != nil {
		t.Fatalf("SavePuzzle failed: %v", err)
	}

	// Re-saving a puzzle linked to the same RSA record must fail: the
	// schema enforces UNIQUE(rsa_id), one-to-one per the spec.
	dup := puzzleRec
	dup.ID = uuid.New()
	if err := s.SavePuzzle(ctx, dup); err == nil {
		t.Fatal("expected UNIQUE(rsa_id) violation, got nil error")
	}
}

var _ store.PuzzleStore = (*Store)(nil)
