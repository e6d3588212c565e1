package engine

// RNG is the single seeded small-state PRNG spec.md §4.7 requires:
// reseeded only at construction, then threaded by pointer through
// every function that consumes randomness, so the same seed plus the
// same action log always reproduces the same message log. xorshift32,
// grounded on the teacher's vmath.FastRand (vmath/vmath.go) — this
// implementation inlines the algorithm directly rather than carrying
// the teacher's surrounding Q16.16 fixed-point vector math package,
// none of which this integer-grid core needs.
type RNG struct {
	state uint32
}

// NewRNG seeds the generator. A zero seed is remapped to 1: xorshift32
// never recovers from an all-zero state.
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = 1
	}
	return &RNG{state: seed}
}

// Next returns the next raw 32-bit value in the stream.
func (r *RNG) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// Pick returns a uniformly random index into a slice of the given
// length, used by the AI planner to break ties among equidistant
// target candidates (spec.md §4.5).
func (r *RNG) Pick(length int) int {
	return r.Intn(length)
}
