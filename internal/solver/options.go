package solver

import (
	"math/rand"
	"time"
)

// Options configures solving behavior.
type Options struct {
	// Randomize shuffles candidate order at each branch point. Used by the
	// generator to obtain varied full solutions from an empty board.
	Randomize bool

	// Rand is the random source used when Randomize is set. A nil Rand with
	// Randomize enabled falls back to a time-seeded source. Passing an
	// explicit source makes solver runs reproducible.
	Rand *rand.Rand

	// Timeout limits total search time. Zero means no limit.
	Timeout time.Duration
}

// DefaultOptions returns standard solver options: deterministic candidate
// order with a generous timeout.
func DefaultOptions() *Options {
	return &Options{
		Randomize: false,
		Timeout:   10 * time.Second,
	}
}
