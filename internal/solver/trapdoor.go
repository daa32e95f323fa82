// Package solver implements the two solving modes for a time-lock
// puzzle: Trapdoor (fast, needs phi(N)) and Sequential (slow, the
// honest delay path). Each exposes its own Solve (Trapdoor's also takes
// the RSA key); there is no shared interface, and callers pick between
// them explicitly rather than through an open-ended hierarchy.
package solver

import (
	"context"
	"fmt"
	"math/big"

	"timelock/internal/bigint"
	"timelock/internal/errs"
	"timelock/internal/puzzle"
	"timelock/internal/rsakey"
	"timelock/internal/workerpool"
)

// Trapdoor solves puzzles using knowledge of phi(N): d = (2^t) mod
// phi(N), y = x^d mod N. This is Euler's theorem applied to reduce the
// exponent; it only holds when gcd(x, N) = 1, which fails with
// probability roughly (p+q)/(p*q) -- negligible for RSA-sized moduli.
type Trapdoor struct{}

// Pair couples an RSA key with a puzzle for a batch solve.
type Pair struct {
	Key    *rsakey.Key
	Puzzle puzzle.Puzzle
}

// Solve returns y = x^(2^t) mod N using the trapdoor phi(N). It fails
// with errs.ModulusMismatch if the puzzle's N differs from the key's N.
func (Trapdoor) Solve(key *rsakey.Key, p puzzle.Puzzle) (*big.Int, error) {
	if p.N().Cmp(key.N) != 0 {
		return nil, fmt.Errorf("%w", errs.ModulusMismatch)
	}
	d := bigint.Mod(bigint.Pow(bigint.Two(), p.T()), key.Phi)
	return bigint.PowMod(p.X(), d, key.N), nil
}

// SolveMany fans a batch of (key, puzzle) pairs out across the worker
// pool. Results preserve input order; a single failure aborts the
// batch and discards any partial results, per the propagation policy.
func SolveMany(ctx context.Context, pairs []Pair, degree int) ([]*big.Int, error) {
	var td Trapdoor
	return workerpool.Map(ctx, pairs, degree, func(pair Pair) (*big.Int, error) {
		return td.Solve(pair.Key, pair.Puzzle)
	})
}
