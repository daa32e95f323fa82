package solver

import (
	"math/big"

	"timelock/internal/bigint"
	"timelock/internal/puzzle"
)

// Sequential solves a puzzle without the trapdoor, by computing the
// full exponent e = 2^t and a single powmod. This is intentionally the
// slow path: it is the correctness reference and the intended
// verification path for an untrusted solver that claims a y without
// proof.
type Sequential struct{}

// Solve returns y = x^(2^t) mod N with no trapdoor used.
func (Sequential) Solve(p puzzle.Puzzle) *big.Int {
	e := bigint.Pow(bigint.Two(), p.T())
	return bigint.PowMod(p.X(), e, p.N())
}
