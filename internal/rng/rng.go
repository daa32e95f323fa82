// Package rng seeds a deterministic BigInt random stream from the OS
// CSPRNG and draws primes from it. Two calls with the same seed
// produce identical URandomBits sequences; production callers always
// reseed from OS entropy, never reuse a seed across puzzles.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	mathrand "math/rand"

	"timelock/internal/errs"
)

// RandomState is an opaque, seeded BigInt RNG stream. It is not safe
// for concurrent use by multiple goroutines; each worker must own its
// own instance.
type RandomState struct {
	src *mathrand.Rand
}

// NewRandomState initialises a deterministic-from-seed stream. Two
// calls with the same seed produce identical URandomBits sequences.
func NewRandomState(seed uint64) *RandomState {
	return &RandomState{src: mathrand.New(mathrand.NewSource(int64(seed)))}
}

// Seed draws 64 bits of entropy from the OS CSPRNG and returns a
// freshly seeded RandomState. Callers must never reuse the returned
// state's seed for a second puzzle.
func Seed() (*RandomState, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.EntropyUnavailable, err)
	}
	return NewRandomState(binary.BigEndian.Uint64(buf[:])), nil
}

// URandomBits draws a uniform integer in [0, 2^n) from the stream,
// advancing the stream's internal state.
func URandomBits(state *RandomState, n uint) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	numBytes := (n + 7) / 8
	buf := make([]byte, numBytes)
	state.src.Read(buf) //nolint:errcheck // math/rand.Rand.Read never errors
	z := new(big.Int).SetBytes(buf)

	// Shift out the excess bits so the result stays within [0, 2^n).
	excess := numBytes*8 - n
	if excess > 0 {
		z.Rsh(z, excess)
	}
	return z
}
