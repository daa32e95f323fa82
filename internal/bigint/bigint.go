// Package bigint is a thin facade over math/big that gives the rest of
// the engine the handful of operations the spec names (mpz, powmod,
// pow, mod, next_prime) as free functions rather than exposing the rest
// of math/big's surface. The seeded random stream (RandomState,
// URandomBits) lives in package rng. No global state lives here.
package bigint

import (
	"fmt"
	"math/big"
	"strings"

	"timelock/internal/errs"
)

// FromInt64 coerces a machine integer to a BigInt.
func FromInt64(i int64) *big.Int {
	return big.NewInt(i)
}

// Two is the constant base 2, used throughout the solvers to form 2^T.
func Two() *big.Int {
	return big.NewInt(2)
}

// PowMod returns b^e mod m. Panics if m is zero, which is a programmer
// error per the spec's error model.
func PowMod(b, e, m *big.Int) *big.Int {
	if m.Sign() == 0 {
		panic("bigint: PowMod with zero modulus")
	}
	return new(big.Int).Exp(b, e, m)
}

// Pow returns b^e with no modular reduction. Only used by the solvers
// to compute 2^t and by the VDF verifier to compute 2^L; callers should prefer PowMod with an exponent
// already reduced modulo phi(N) when the trapdoor is available.
func Pow(b, e *big.Int) *big.Int {
	return new(big.Int).Exp(b, e, nil)
}

// Mod returns the non-negative remainder of a mod m. Panics if m is
// zero.
func Mod(a, m *big.Int) *big.Int {
	if m.Sign() == 0 {
		panic("bigint: Mod with zero modulus")
	}
	return new(big.Int).Mod(a, m)
}

// NextPrime returns the smallest prime strictly greater than z, using
// a cryptographic (Miller-Rabin) primality test.
func NextPrime(z *big.Int) *big.Int {
	candidate := new(big.Int).Add(z, big.NewInt(1))
	if candidate.Cmp(big.NewInt(2)) <= 0 {
		return big.NewInt(2)
	}
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, big.NewInt(1))
	}
	for !candidate.ProbablyPrime(20) {
		candidate.Add(candidate, big.NewInt(2))
	}
	return candidate
}

// HexEncode renders z as a lower-case, unprefixed hex string. Zero
// encodes as "0", never as the empty string.
func HexEncode(z *big.Int) string {
	return z.Text(16)
}

// HexDecode parses a hex string into a BigInt. It is lenient: it
// accepts an optional "0x"/"0X" prefix and either case, per the
// decoder-leniency contract in the spec's hex design notes.
func HexDecode(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: bigint: empty hex string", errs.BadParameter)
	}
	z, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("%w: bigint: invalid hex string %q", errs.BadParameter, s)
	}
	return z, nil
}
