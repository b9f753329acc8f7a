// Package rng provides the seeded generator handle threaded through the
// simulation. Nothing in the game keeps package-level random state.
package rng

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source produces uniform integers in [0,n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// New returns a PCG-backed generator. A zero seed is replaced with the
// current time so interactive sessions differ between runs.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
