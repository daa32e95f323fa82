package factory

import (
	"context"
	"math/big"
	"testing"

	"timelock/internal/solver"
)

func TestCreatePuzzleRoundTrip(t *testing.T) {
	f := Factory{BitSize: 256, T: big.NewInt(20)}
	triple, err := f.CreatePuzzle()
	if err != nil {
		t.Fatalf("CreatePuzzle failed: %v", err)
	}

	if triple.Y.Sign() < 0 || triple.Y.Cmp(triple.Puzzle.N()) >= 0 {
		t.Fatalf("y=%s not in [0,N)", triple.Y)
	}

	var seq solver.Sequential
	want := seq.Solve(triple.Puzzle)
	if triple.Y.Cmp(want) != 0 {
		t.Fatalf("round trip failed: sequential solve = %s, factory y = %s", want, triple.Y)
	}

	var td solver.Trapdoor
	gotTrap, err := td.Solve(triple.Key, triple.Puzzle)
	if err != nil {
		t.Fatalf("trapdoor solve failed: %v", err)
	}
	if gotTrap.Cmp(triple.Y) != 0 {
		t.Fatalf("trapdoor solve = %s, factory y = %s", gotTrap, triple.Y)
	}
}

func TestCreatePuzzlesOrderAndIndependence(t *testing.T) {
	f := Factory{BitSize: 256, T: big.NewInt(4)}
	const n = 5
	triples, err := f.CreatePuzzles(context.Background(), n, 3)
	if err != nil {
		t.Fatalf("CreatePuzzles failed: %v", err)
	}
	if len(triples) != n {
		t.Fatalf("got %d triples, want %d", len(triples), n)
	}

	seen := map[string]bool{}
	for i, triple := range triples {
		key := triple.Puzzle.N().String()
		if seen[key] {
			t.Errorf("triple %d shares N with a previous triple; moduli must be independent", i)
		}
		seen[key] = true

		var seq solver.Sequential
		want := seq.Solve(triple.Puzzle)
		if triple.Y.Cmp(want) != 0 {
			t.Errorf("triple %d: round trip failed", i)
		}
	}
}
