package puzzle

import (
	"math/big"

	"golang.org/x/crypto/argon2"
)

// KdfParams mirrors the Argon2id tuning knobs used to derive a
// password-seeded x. Kept separate from Puzzle itself: most puzzles
// are seeded from the RNG, not a password.
type KdfParams struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
}

// DefaultKdfParams are conservative Argon2id parameters for deriving
// x from a password: 64 MiB, 3 iterations, single-threaded.
var DefaultKdfParams = KdfParams{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 1,
	KeyLen:      32,
}

// DeriveX derives a puzzle base x from a password and salt instead of
// from the RNG. Any wrong password derives a different x and so a
// different puzzle, forcing a full re-solve -- there is no way to
// detect a wrong password short of solving the puzzle it produces.
// The result is mapped into [2, N-2] with gcd(x, N) = 1.
func DeriveX(password, salt []byte, params KdfParams, n *big.Int) *big.Int {
	keyMaterial := argon2.IDKey(password, salt, params.Time, params.Memory, params.Parallelism, params.KeyLen)
	keyInt := new(big.Int).SetBytes(keyMaterial)

	two := big.NewInt(2)
	nMinus3 := new(big.Int).Sub(n, big.NewInt(3))

	x := new(big.Int).Mod(keyInt, nMinus3)
	x.Add(x, two)

	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	for new(big.Int).GCD(nil, nil, x, n).Cmp(one) != 0 {
		x.Add(x, one)
		if x.Cmp(nMinus1) >= 0 {
			x.Set(two)
		}
	}
	return x
}
