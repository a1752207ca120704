package mcts

import "math/rand"

// RNG owns the single process-wide random stream used by the solver: all tie-breaking during
// selection and any default (uniform-random) simulations draw from it. Capturing State() right
// after construction, before any draws, is enough to replay a search bit-for-bit.
type RNG struct {
	*rand.Rand
	seed int64
}

// NewRNG builds an RNG seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{Rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed reports the seed this RNG was constructed with (informational; does not reflect any state
// mutation that occurred since).
func (r *RNG) Seed() int64 {
	return r.seed
}

// RNGState is an opaque replay snapshot of an RNG. It records only the seed, not the generator's
// position: restoring it restarts the sequence of draws from that seed, not from the point of
// capture.
type RNGState struct {
	seed int64
}

// State captures the current RNG as a replayable snapshot. Because math/rand's default source
// does not expose its internal counters, replay is implemented by re-seeding: this is exact only
// when State is called immediately after NewRNG (i.e. before any draws). The Solver logs the seed
// it adopts, so a run can also be replayed by passing that seed back as SolverOptions.RNGSeed.
func (r *RNG) State() RNGState {
	return RNGState{seed: r.seed}
}

// SetState restores an RNG to a previously captured snapshot.
func (r *RNG) SetState(s RNGState) {
	r.seed = s.seed
	r.Rand = rand.New(rand.NewSource(s.seed))
}
