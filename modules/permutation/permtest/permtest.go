// Package permtest holds the property checks shared by the permutation
// family tests.
package permtest

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// RandomState samples a state of n elements.
func RandomState[E comparable](f fields.Field[E], rng *rand.Rand, n int) []E {
	res := make([]E, n)
	for i := range res {
		limbs := make([]uint64, f.NumLimbs())
		for {
			for j := range limbs {
				limbs[j] = rng.Uint64()
			}
			if f.Bits()%64 != 0 {
				limbs[len(limbs)-1] &= 1<<uint(f.Bits()%64) - 1
			}
			if e, err := f.FromLimbs(limbs); err == nil {
				res[i] = e
				break
			}
		}
	}
	return res
}

// CheckProperties runs the black-box checks every engine has to pass:
// determinism, an untouched input slice, a panic on a state of the wrong
// width and full diffusion of a single-word difference.
func CheckProperties[E comparable](t *testing.T, f fields.Field[E], perm permutation.Permutation[E], seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	width := perm.Width()

	for i := 0; i < 4; i++ {
		input := RandomState(f, rng, width)
		saved := append([]E(nil), input...)

		out := perm.Permutation(input)
		require.Len(t, out, width)
		require.Equal(t, saved, input, "input mutated")
		require.Equal(t, out, perm.Permutation(input), "not deterministic")

		for pos := 0; pos < width; pos++ {
			tweaked := append([]E(nil), input...)
			tweaked[pos] = f.Add(tweaked[pos], f.One())
			other := perm.Permutation(tweaked)
			for j := range out {
				require.NotEqual(t, out[j], other[j], "word %d unchanged by a difference in word %d", j, pos)
			}
		}
	}

	require.Panics(t, func() { perm.Permutation(make([]E, width+1)) })
}
