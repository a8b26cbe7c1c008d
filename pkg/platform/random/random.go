// Package random provides the injectable source of randomness used to
// synthesize identifiers. It is not suitable for secrets.
package random

//go:generate mockgen -source=random.go -destination=mocks/mocks.go -package=mocks Source

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed integers in [0, n).
// Implementations must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

// Between returns a uniform integer in the inclusive range [lo, hi].
// It panics if hi < lo.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		panic("random: invalid range")
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

type global struct{}

// New returns a source backed by the process-wide math/rand/v2 generator.
func New() Source {
	return global{}
}

func (global) IntN(n int) int {
	return rand.IntN(n)
}

// Seeded is a deterministic source. The same seed yields the same sequence.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a deterministic source for tests and reproducible fixtures.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sequence replays fixed values, cycling when exhausted. Each value is reduced
// modulo n so a scripted sequence never escapes the requested range.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence returns a source replaying values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
