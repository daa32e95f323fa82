// Package workerpool resolves the engine's degree of parallelism from
// configuration and maps a unit-of-work function over a slice of
// inputs using up to that many concurrent workers. Results come back
// in input-index order regardless of completion order; a single
// worker failure aborts the whole batch and discards partial results,
// matching the propagation policy in the spec's error handling design.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Degree resolves max(1, cpu_count/divisor). divisor <= 0 is treated
// as 1 (no reduction).
func Degree(divisor int) int {
	if divisor <= 0 {
		divisor = 1
	}
	d := runtime.NumCPU() / divisor
	if d < 1 {
		d = 1
	}
	return d
}

// Map applies fn to each input using up to degree concurrent workers,
// returning results in input order. A worker failure cancels the
// group's context and Map returns the first error; the caller must not
// rely on any of the other results in that case.
func Map[T any, R any](ctx context.Context, inputs []T, degree int, fn func(T) (R, error)) ([]R, error) {
	if degree < 1 {
		degree = 1
	}

	results := make([]R, len(inputs))
	sem := semaphore.NewWeighted(int64(degree))
	g, gctx := errgroup.WithContext(ctx)

	for i, input := range inputs {
		i, input := i, input
		if err := sem.Acquire(gctx, 1); err != nil {
			// Context already cancelled by an earlier failure; stop
			// submitting new work and fall through to g.Wait.
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			r, err := fn(input)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
