// Package config reads the engine's environment-variable surface:
// parallelism, database selection and the protocol defaults
// (BIT_SIZE, T). It is a plain struct populated from os.Getenv, not a
// package-level singleton.
package config

import (
	"os"
	"strconv"
)

const (
	// DefaultBitSize is the shipped RSA modulus bit width default.
	DefaultBitSize = 2048
	// DefaultT is the shipped delay parameter default.
	DefaultT = 3_000_000
)

// DatabaseType selects which store adapter to construct.
type DatabaseType string

const (
	DatabaseSQLite     DatabaseType = "sqlite"
	DatabasePostgreSQL DatabaseType = "postgresql"
)

// Config holds every configuration value the spec's environment table
// names. These are deployment configuration, not hard-wired constants.
type Config struct {
	ParallelismDivisor int
	DatabaseType       DatabaseType
	DatabaseName       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseHost       string
	DatabasePort       string
	BitSize            int
	T                  int64
}

// Load reads Config from the process environment, falling back to the
// documented defaults for anything unset or unparsable.
func Load() Config {
	return Config{
		ParallelismDivisor: getInt("PARALLELISM_DIVISOR", 2),
		DatabaseType:       DatabaseType(getString("DATABASE_TYPE", string(DatabaseSQLite))),
		DatabaseName:       getString("DATABASE_NAME", "mydatabase.db"),
		DatabaseUser:       getString("DATABASE_USER", ""),
		DatabasePassword:   getString("DATABASE_PASSWORD", ""),
		DatabaseHost:       getString("DATABASE_HOST", "localhost"),
		DatabasePort:       getString("DATABASE_PORT", "5432"),
		BitSize:            getInt("BIT_SIZE", DefaultBitSize),
		T:                  getInt64("T", DefaultT),
	}
}

func getString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return def
}

func getInt(name string, def int) int {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getInt64(name string, def int64) int64 {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
