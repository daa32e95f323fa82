// Command timelock-solve parses (x, t, N) and runs the sequential
// solver, printing y in hex. It never touches the trapdoor: this is
// the untrusted-solver path the puzzle is meant to resist.
package main

import (
	"fmt"
	"math/big"
	"os"

	"timelock/internal/bigint"
	"timelock/internal/puzzle"
	"timelock/internal/solver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: %s <x_hex> <t_decimal> <N_hex>", os.Args[0])
	}

	x, err := bigint.HexDecode(args[0])
	if err != nil {
		return fmt.Errorf("invalid x: %w", err)
	}
	t, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		return fmt.Errorf("invalid t: %q is not a base-10 integer", args[1])
	}
	n, err := bigint.HexDecode(args[2])
	if err != nil {
		return fmt.Errorf("invalid N: %w", err)
	}

	p := puzzle.New(x, t, n)

	var seq solver.Sequential
	y := seq.Solve(p)

	fmt.Printf("y = %s\n", bigint.HexEncode(y))
	return nil
}
