package store

import (
	"github.com/google/uuid"

	"timelock/internal/bigint"
	"timelock/internal/factory"
)

// ToRecords converts one factory.Triple into its (RsaRecord,
// PuzzleRecord) pair, generating fresh ids and linking the puzzle
// record to the RSA record via RsaID. The RSA key's trapdoor fields
// must still be populated (call this before Key.Discard).
func ToRecords(triple factory.Triple) (RsaRecord, PuzzleRecord) {
	rsaID := uuid.New()

	rsaRec := RsaRecord{
		ID:     rsaID,
		PHex:   bigint.HexEncode(triple.Key.P),
		QHex:   bigint.HexEncode(triple.Key.Q),
		NHex:   bigint.HexEncode(triple.Key.N),
		PhiHex: bigint.HexEncode(triple.Key.Phi),
	}

	puzzleRec := PuzzleRecord{
		ID:       uuid.New(),
		XHex:     bigint.HexEncode(triple.Puzzle.X()),
		YHex:     bigint.HexEncode(triple.Y),
		NHex:     bigint.HexEncode(triple.Puzzle.N()),
		TDecimal: triple.Puzzle.T().String(),
		RsaID:    rsaID,
	}

	return rsaRec, puzzleRec
}
