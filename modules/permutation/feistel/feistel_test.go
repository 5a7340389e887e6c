package feistel

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/permtest"

	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFeistelMiMCKAT(t *testing.T) {
	testcases := []struct {
		Rounds   int
		Expected []uint64
	}{
		{MiMCEasy1Rounds, []uint64{0xf874e35bbaf92376, 0x72af6f65901ac3f1}},
		{MiMCEasy2Rounds, []uint64{0x85bd8eb1f92bfb9a, 0x49d9875c885a962c}},
		{MiMCMediumRounds, []uint64{0x6f069da7d13eeac0, 0xf99209102b0f4e3b}},
		{MiMCHard1Rounds, []uint64{0x1017818eae881aee, 0x7e7025221ea192b6}},
		{MiMCHard2Rounds, []uint64{0x095c81195f93fa60, 0x41c45da5e1655eb6}},
	}

	for _, tc := range testcases {
		params, err := NewMiMCP64Params(tc.Rounds)
		require.NoError(t, err)
		perm, err := NewMiMC(params)
		require.NoError(t, err)

		require.Equal(t, tc.Expected, perm.Permutation([]uint64{0, 1}), "rounds %d", tc.Rounds)
		permtest.CheckProperties[uint64](t, params.Field, perm, uint64(tc.Rounds))
	}
}

func TestFeistelMiMCTracer(t *testing.T) {
	params, err := NewMiMCP64Params(MiMCEasy1Rounds)
	require.NoError(t, err)

	var states [][]uint64
	perm, err := NewMiMC(params, permutation.WithTracer(func(round int, state []uint64) {
		states = append(states, state)
	}))
	require.NoError(t, err)

	out := perm.Permutation([]uint64{0, 1})
	require.Len(t, states, MiMCEasy1Rounds)
	require.Equal(t, out, states[len(states)-1])
	// after the first swap the untouched x0 = 0 sits in position 1
	require.Equal(t, uint64(0), states[0][1])
}

func TestGMiMCOptimizedMatchesPlain(t *testing.T) {
	bn := fields.Field[bnfr.Element](fields.NewBN254())
	g := fields.NewGoldilocks()

	for _, width := range []int{3, 4, 5, 8, 12} {
		params, err := GenerateGMiMCParams(bn, width, 5, GMiMCBN254Rounds[width])
		require.NoError(t, err)
		perm, err := NewGMiMC(params)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(uint64(width)))
		for i := 0; i < 4; i++ {
			x := permtest.RandomState(bn, rng, width)
			require.Equal(t, perm.PermutationPlain(x), perm.PermutationOptimized(x))
		}
		permtest.CheckProperties(t, bn, perm, uint64(width))
	}

	// short round counts exercise the queue before it fills up
	for width := 2; width <= 12; width++ {
		for _, rounds := range []int{1, 2, 3, width, 3 * width} {
			params, err := GenerateGMiMCParams[uint64](g, width, 7, rounds)
			require.NoError(t, err)
			perm, err := NewGMiMC(params)
			require.NoError(t, err)

			x := make([]uint64, width)
			for i := range x {
				x[i] = uint64(i * i)
			}
			require.Equal(t, perm.PermutationPlain(x), perm.PermutationOptimized(x), "t=%d rounds=%d", width, rounds)
		}
	}
}

func TestInvalidFeistelParams(t *testing.T) {
	g := fields.NewGoldilocks()

	_, err := GenerateMiMCParams[uint64](g, 7, 10)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = GenerateMiMCParams[uint64](g, 3, 0)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = GenerateGMiMCParams[uint64](g, 1, 7, 10)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = GenerateGMiMCParams[uint64](g, 4, 3, 10)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
}
