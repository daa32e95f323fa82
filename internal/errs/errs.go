// Package errs defines the sentinel error taxonomy shared by the
// puzzle/solver/vdf layers. Callers distinguish error kinds with
// errors.Is rather than string matching.
package errs

import "errors"

var (
	// BadParameter covers bit sizes too small, non-positive counts, or
	// malformed hex input. Surfaced to the caller.
	BadParameter = errors.New("bad parameter")

	// IncompletePuzzle is returned by Builder.Build when x, t or N was
	// never set. Programmer error; surfaced.
	IncompletePuzzle = errors.New("incomplete puzzle: x, t and N must all be set")

	// BadSegmentation is returned by the VDF evaluator when T is not
	// divisible by the requested segment count.
	BadSegmentation = errors.New("segment count does not divide T")

	// ModulusMismatch is returned by the trapdoor solver when the
	// puzzle's N differs from the RSA key's N.
	ModulusMismatch = errors.New("puzzle modulus does not match RSA key modulus")

	// ProofLengthMismatch, CheckpointMismatch and FinalMismatch are
	// clean verifier rejections, never panics.
	ProofLengthMismatch = errors.New("proof length does not match segment count")
	CheckpointMismatch  = errors.New("a segment checkpoint failed to verify")
	FinalMismatch       = errors.New("final proof checkpoint does not match y")

	// EntropyUnavailable signals the OS CSPRNG failed. Fatal; propagate.
	EntropyUnavailable = errors.New("entropy source unavailable")

	// StoreError wraps a rejection from the external PuzzleStore. No
	// automatic retry; the store owns durability.
	StoreError = errors.New("store rejected record")
)
