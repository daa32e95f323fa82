package puzzle

import (
	"fmt"
	"math/big"

	"timelock/internal/errs"
)

// Builder is a staged constructor enforcing all-or-nothing: Build
// fails unless x, t and N have each been set at least once. Repeated
// calls to a setter overwrite the previous value. A Builder is
// single-use by contract, but reuse after Build is not a fatal error.
type Builder struct {
	x    *big.Int
	t    *big.Int
	n    *big.Int
	setX bool
	setT bool
	setN bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetX sets the puzzle base.
func (b *Builder) SetX(x *big.Int) *Builder {
	b.x, b.setX = x, true
	return b
}

// SetT sets the delay parameter.
func (b *Builder) SetT(t *big.Int) *Builder {
	b.t, b.setT = t, true
	return b
}

// SetN sets the RSA modulus.
func (b *Builder) SetN(n *big.Int) *Builder {
	b.n, b.setN = n, true
	return b
}

// Build materialises the Puzzle. It fails with errs.IncompletePuzzle
// unless x, t and N have each been set.
func (b *Builder) Build() (Puzzle, error) {
	if !b.setX || !b.setT || !b.setN {
		return Puzzle{}, fmt.Errorf("%w", errs.IncompletePuzzle)
	}
	return New(b.x, b.t, b.n), nil
}
