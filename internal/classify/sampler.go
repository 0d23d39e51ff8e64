package classify

import "math/rand"

// Sampler draws k distinct page indices from [0, n). Implementations must
// return exactly min(k, n) indices with no duplicates.
type Sampler interface {
	Sample(n, k int) []int
}

// RandomSampler draws uniformly without replacement. Pass a seeded *rand.Rand
// via NewSeededSampler for reproducible runs.
type RandomSampler struct {
	rng *rand.Rand
}

func NewRandomSampler() *RandomSampler {
	return &RandomSampler{}
}

func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	var perm []int
	if s.rng != nil {
		perm = s.rng.Perm(n)
	} else {
		perm = rand.Perm(n)
	}
	return perm[:k]
}

// FirstK samples pages 0..k-1 deterministically. Used in tests and available
// behind the DETERMINISTIC_SAMPLING config switch.
type FirstK struct{}

func (FirstK) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}
	return out
}
