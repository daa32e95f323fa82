package vdf

import (
	"context"
	"fmt"
	"math/big"

	"timelock/internal/bigint"
	"timelock/internal/errs"
	"timelock/internal/workerpool"
)

// segmentJob describes one segment's independent verification work:
// recompute start^(2^L) mod N and compare against expected.
type segmentJob struct {
	start    *big.Int
	expected *big.Int
	l        *big.Int
	n        *big.Int
}

// ParallelVerify re-computes each of the k segments independently --
// segments have no ordering dependency, so verification is
// embarrassingly parallel -- and checks the checkpoints agree. Unlike
// the prover, a verifier worker is allowed to take the PowMod(start,
// 2^L, N) shortcut instead of L explicit squarings, since
// verification is meant to be fast, not a redo of the delay.
//
// Accepts iff every segment's recomputation matches its checkpoint AND
// proof[k-1] == y. Returns a clean (false, err) for
// ProofLengthMismatch, CheckpointMismatch and FinalMismatch -- these
// are rejections, not fatal errors.
func ParallelVerify(ctx context.Context, n, x, t *big.Int, k int, y *big.Int, proof Proof, degree int) (bool, error) {
	if len(proof) != k {
		return false, fmt.Errorf("%w: want %d got %d", errs.ProofLengthMismatch, k, len(proof))
	}
	if k <= 0 {
		return false, fmt.Errorf("%w: segment count must be positive", errs.BadParameter)
	}

	bigK := big.NewInt(int64(k))
	segLen := new(big.Int).Div(t, bigK)
	exp := bigint.Pow(bigint.Two(), segLen)

	jobs := make([]segmentJob, k)
	for i := 0; i < k; i++ {
		start := x
		if i > 0 {
			start = proof[i-1]
		}
		jobs[i] = segmentJob{start: start, expected: proof[i], l: exp, n: n}
	}

	results, err := workerpool.Map(ctx, jobs, degree, func(j segmentJob) (bool, error) {
		got := bigint.PowMod(j.start, j.l, j.n)
		return got.Cmp(j.expected) == 0, nil
	})
	if err != nil {
		return false, err
	}

	for _, ok := range results {
		if !ok {
			return false, fmt.Errorf("%w", errs.CheckpointMismatch)
		}
	}

	if proof[k-1].Cmp(y) != 0 {
		return false, fmt.Errorf("%w", errs.FinalMismatch)
	}

	return true, nil
}
