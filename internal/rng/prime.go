package rng

import (
	"math/big"

	"timelock/internal/bigint"
)

// Prime draws a random BigInt of the requested bit width (its top bit
// is forced to 1, so the draw has exactly bits bits) and advances it to
// the next prime via NextPrime.
//
// Because NextPrime walks forward a variable distance, primes very
// close to 2^bits are slightly under-represented in the output
// distribution. This bias is accepted as negligible for bits >= 512
// and is not corrected.
func Prime(bits uint) (*big.Int, error) {
	state, err := Seed()
	if err != nil {
		return nil, err
	}
	r := URandomBits(state, bits)
	if bits > 0 {
		r.SetBit(r, int(bits-1), 1)
	}
	return bigint.NextPrime(r), nil
}
