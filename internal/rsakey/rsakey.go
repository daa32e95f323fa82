// Package rsakey generates RSA trapdoor keypairs for the time-lock
// engine: N = p*q and phi(N) = (p-1)(q-1), sampled directly rather than
// through crypto/rsa so the bit-length and distinctness invariants in
// the spec are enforced explicitly.
package rsakey

import (
	"fmt"
	"math/big"

	"timelock/internal/errs"
	"timelock/internal/rng"
)

// Key holds p, q, N and phi(N). The trapdoor fields (P, Q, Phi) can be
// discarded independently of N via Discard once a deployment only
// needs N to publish the puzzle.
type Key struct {
	P   *big.Int
	Q   *big.Int
	N   *big.Int
	Phi *big.Int
}

// New samples a fresh RSA keypair with modulus bit width bitSize. It
// fails with errs.BadParameter if bitSize < 16 or the resulting prime
// size would be smaller than 2 bits.
func New(bitSize int) (*Key, error) {
	if bitSize < 16 {
		return nil, fmt.Errorf("%w: bit_size %d too small, minimum is 16", errs.BadParameter, bitSize)
	}
	primeSize := uint(bitSize/2 - 1)
	if primeSize < 2 {
		return nil, fmt.Errorf("%w: prime_size %d too small, minimum is 2", errs.BadParameter, primeSize)
	}

	p, err := rng.Prime(primeSize)
	if err != nil {
		return nil, err
	}

	var q *big.Int
	for {
		q, err = rng.Prime(primeSize)
		if err != nil {
			return nil, err
		}
		if q.Cmp(p) != 0 {
			break
		}
	}

	n := new(big.Int).Mul(p, q)
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	return &Key{P: p, Q: q, N: n, Phi: phi}, nil
}

// Discard sets the trapdoor fields (P, Q, Phi) to nil so the key no
// longer references the factorisation while N stays available for
// publishing. The underlying memory is left to the garbage collector;
// it is not overwritten.
func (k *Key) Discard() {
	k.P = nil
	k.Q = nil
	k.Phi = nil
}
