// Package qstate implements the rotating perturbation state used by the
// fractal encoder's quantum mode. The state is a fixed vector of eight
// 64-bit words, seeded from a pseudo-random source and rotated once per
// encoded frame. It deterministically biases the edge detection,
// coordinate selection, and transform stages; it is not a physical
// quantum process.
package qstate

import (
	"math/rand"
	"time"
)

// Words is the fixed length of the state vector.
const Words = 8

// State is an encoder's perturbation state. A State is owned exclusively
// by one encoder instance and must not be shared across concurrent
// encodes.
type State struct {
	words   [Words]uint64
	enabled bool
}

// Option configures state initialization.
type Option func(*config)

type config struct {
	seed int64
}

// WithSeed fixes the seed for the state words, making an enabled state
// reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// New creates a perturbation state. When disabled, all words are zero and
// stay zero for the lifetime of the instance: rotating an all-zero vector
// is a no-op, so disabled mode is fully deterministic. When enabled, the
// words are drawn from a seeded PRNG.
func New(enabled bool, opts ...Option) *State {
	s := &State{enabled: enabled}
	if !enabled {
		return s
	}

	c := config{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&c)
	}

	rng := rand.New(rand.NewSource(c.seed))
	for i := range s.words {
		s.words[i] = rng.Uint64()
	}
	return s
}

// Enabled reports whether perturbation mode is active.
func (s *State) Enabled() bool { return s.enabled }

// Word returns the state word at index i.
func (s *State) Word(i int) uint64 { return s.words[i] }

// Byte returns the low byte of the state word at index i.
func (s *State) Byte(i int) uint8 { return uint8(s.words[i] & 0xFF) }

// Snapshot returns a copy of the current word vector.
func (s *State) Snapshot() [Words]uint64 { return s.words }

// Rotate performs a single cyclic left rotation: word 0 moves to the end
// and every other word shifts down one index. Called exactly once per
// completed encode, after the transform stage. The state is never resized
// or reseeded mid-run.
func (s *State) Rotate() {
	head := s.words[0]
	copy(s.words[:Words-1], s.words[1:])
	s.words[Words-1] = head
}
