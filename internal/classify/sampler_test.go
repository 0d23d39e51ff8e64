package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSamplerBounds(t *testing.T) {
	s := NewRandomSampler()

	for n := 0; n <= 10; n++ {
		for k := 0; k <= 5; k++ {
			got := s.Sample(n, k)
			want := k
			if n < k {
				want = n
			}
			assert.Len(t, got, want, "n=%d k=%d", n, k)

			seen := map[int]struct{}{}
			for _, idx := range got {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, n)
				_, dup := seen[idx]
				assert.False(t, dup, "duplicate index %d", idx)
				seen[idx] = struct{}{}
			}
		}
	}
}

func TestFirstKDeterministic(t *testing.T) {
	var s FirstK
	assert.Equal(t, []int{0, 1, 2}, s.Sample(10, 3))
	assert.Equal(t, []int{0, 1}, s.Sample(2, 3))
	assert.Nil(t, s.Sample(0, 3))
}

func TestSeededSamplerStable(t *testing.T) {
	a := NewSeededSampler(7).Sample(100, 3)
	b := NewSeededSampler(7).Sample(100, 3)
	assert.Equal(t, a, b)
}
