// Package puzzle holds the immutable Puzzle value and its staged
// Builder. A Puzzle is not tied to any particular solver.
package puzzle

import "math/big"

// Puzzle is the immutable triple (x, t, N). t is a BigInt because the
// delay parameter can exceed 2^64.
type Puzzle struct {
	x *big.Int
	t *big.Int
	n *big.Int
}

// New constructs a Puzzle directly, bypassing the Builder. Used
// internally once x, t and N are already known to be valid.
func New(x, t, n *big.Int) Puzzle {
	return Puzzle{x: x, t: t, n: n}
}

// X returns the puzzle's base value.
func (p Puzzle) X() *big.Int { return p.x }

// T returns the delay parameter.
func (p Puzzle) T() *big.Int { return p.t }

// N returns the RSA modulus.
func (p Puzzle) N() *big.Int { return p.n }
