// Command timelock-generate is the generator CLI: it produces one or
// more time-lock puzzles and writes each (RsaRecord, PuzzleRecord)
// pair through the configured store.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"

	"timelock/internal/config"
	"timelock/internal/errs"
	"timelock/internal/factory"
	"timelock/internal/logging"
	"timelock/internal/store"
	"timelock/internal/store/pgstore"
	"timelock/internal/store/sqlitestore"
	"timelock/internal/workerpool"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		bitSize = fs.Int("bit-size", 0, "RSA modulus bit size (default: BIT_SIZE env or 2048)")
		t       = fs.Int64("work", 0, "delay parameter T (default: T env or 3000000)")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [--bit-size N] [--work T] <count>\n", os.Args[0])
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate requires exactly one <count> argument")
	}
	var count int
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &count); err != nil || count <= 0 {
		return fmt.Errorf("%w: invalid count %q: must be a positive integer", errs.BadParameter, fs.Arg(0))
	}

	cfg := config.Load()
	if *bitSize > 0 {
		cfg.BitSize = *bitSize
	}
	if *t > 0 {
		cfg.T = *t
	}

	log := logging.New(os.Stderr)

	puzzleStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	f := factory.Factory{BitSize: cfg.BitSize, T: big.NewInt(cfg.T)}
	degree := workerpool.Degree(cfg.ParallelismDivisor)

	log.Info().Int("count", count).Int("bit_size", cfg.BitSize).Int64("t", cfg.T).Int("degree", degree).Msg("generating puzzles")

	ctx := context.Background()
	triples, err := f.CreatePuzzles(ctx, count, degree)
	if err != nil {
		return fmt.Errorf("batch generation failed: %w", err)
	}

	for _, triple := range triples {
		rsaRec, puzzleRec := store.ToRecords(triple)
		if err := puzzleStore.SaveRSA(ctx, rsaRec); err != nil {
			return err
		}
		if err := puzzleStore.SavePuzzle(ctx, puzzleRec); err != nil {
			return err
		}
	}

	log.Info().Int("count", count).Msg("puzzles saved")
	fmt.Printf("Generated and saved %d puzzle(s).\n", count)
	return nil
}

func openStore(cfg config.Config) (store.PuzzleStore, func(), error) {
	switch cfg.DatabaseType {
	case config.DatabasePostgreSQL:
		s, err := pgstore.Open(pgstore.DSN(cfg.DatabaseUser, cfg.DatabasePassword, cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName))
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		s, err := sqlitestore.Open(cfg.DatabaseName)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}
}
