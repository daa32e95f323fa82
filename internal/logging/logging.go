// Package logging wraps zerolog the way the rest of the engine wraps
// its other third-party dependencies: a thin facade, not a global
// logger singleton. CLI user-facing narration stays on fmt.Printf
// (matching the teacher's texture); this package carries the
// generator CLI's structured diagnostics on stderr. The store and
// worker-pool packages do not log.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing human-readable console output
// to w. Passing nil defaults to os.Stderr.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}
