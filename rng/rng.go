package rng

import "math/rand"

// defaultSeed is the fixed "zero" seed used when a caller passes seed==0,
// so a generator never silently falls back to a time-based source.
const defaultSeed int64 = 1

// Source is the interpreter's single PRNG. It is not goroutine-safe — the
// interpreter runs single-threaded, so no locking is needed.
type Source struct {
	r *rand.Rand
}

// New returns a deterministic Source seeded from seed. seed==0 is mapped to
// defaultSeed so a caller never gets an unseeded generator by accident.
func New(seed int64) *Source {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &Source{r: rand.New(rand.NewSource(s))}
}

// Double returns a uniform value in [0,1).
func (s *Source) Double() float64 {
	return s.r.Float64()
}

// Intn returns a uniform integer in [0,n). Panics if n<=0, matching
// math/rand's own contract.
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Derive mixes this source's next value with a stream identifier to produce
// an independent child Source, using a SplitMix64-style avalanche mixer so
// unrelated subsystems (e.g. ConvChain and WFC running in the same program)
// don't correlate.
func (s *Source) Derive(stream uint64) *Source {
	parent := s.r.Int63()

	return New(splitMix64(parent, stream))
}

func splitMix64(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
