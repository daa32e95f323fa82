// Package factory orchestrates RSA key generation, puzzle
// construction and trapdoor solving into a single (Puzzle, RsaKey, y)
// triple, and fans that pipeline out across a worker pool for batch
// creation.
package factory

import (
	"context"
	"math/big"

	"timelock/internal/puzzle"
	"timelock/internal/rng"
	"timelock/internal/rsakey"
	"timelock/internal/solver"
	"timelock/internal/workerpool"
)

// Factory holds the configuration shared by every puzzle it creates:
// the RSA modulus bit size and the delay parameter T. It owns nothing
// beyond this configuration.
type Factory struct {
	BitSize int
	T       *big.Int
}

// Triple is one independently-owned (Puzzle, RsaKey, y) result. None
// of a batch's triples share state.
type Triple struct {
	Puzzle puzzle.Puzzle
	Key    *rsakey.Key
	Y      *big.Int
}

// CreatePuzzle runs the factory pipeline once: sample a fresh RSA
// keypair, draw a random base x, build the puzzle and solve it with
// the trapdoor.
func (f Factory) CreatePuzzle() (Triple, error) {
	key, err := rsakey.New(f.BitSize)
	if err != nil {
		return Triple{}, err
	}

	state, err := rng.Seed()
	if err != nil {
		return Triple{}, err
	}
	x := rng.URandomBits(state, uint(f.BitSize))

	p, err := puzzle.NewBuilder().SetX(x).SetT(new(big.Int).Set(f.T)).SetN(key.N).Build()
	if err != nil {
		return Triple{}, err
	}

	var td solver.Trapdoor
	y, err := td.Solve(key, p)
	if err != nil {
		return Triple{}, err
	}

	return Triple{Puzzle: p, Key: key, Y: y}, nil
}

// CreatePuzzles builds n independent triples by submitting n
// independent invocations of CreatePuzzle to the worker pool. Output
// order is input order (arbitrary with respect to content, stable
// only by index). Each invocation re-seeds its own RNG inside
// CreatePuzzle, so no two workers can collide on a seed.
func (f Factory) CreatePuzzles(ctx context.Context, n int, degree int) ([]Triple, error) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return workerpool.Map(ctx, indices, degree, func(int) (Triple, error) {
		return f.CreatePuzzle()
	})
}
