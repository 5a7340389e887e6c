package poseidon2

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/permtest"

	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// reference recomputes the permutation with dense matrices.
func reference[E comparable](params *Params[E], input []E) []E {
	f := params.Field
	ext := linear.AsMatrix[E](f, params.external)
	in := linear.AsMatrix[E](f, params.internal)

	state := ext.MulVec(f, input)
	for r := 0; r < params.Rounds; r++ {
		partial := r >= params.RoundsFBeginning && r < params.RoundsFBeginning+params.RoundsP
		for i := range state {
			if partial && i > 0 {
				continue
			}
			state[i] = fields.Pow(f, f.Add(state[i], params.RC[r][i]), params.D)
		}
		if partial {
			state = in.MulVec(f, state)
		} else {
			state = ext.MulVec(f, state)
		}
	}
	return state
}

func checkInstance[E comparable](t *testing.T, params *Params[E], seed uint64) {
	perm, err := New(params)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 8; i++ {
		x := permtest.RandomState(params.Field, rng, params.T)
		require.Equal(t, reference(params, x), perm.Permutation(x))
	}
	permtest.CheckProperties(t, params.Field, perm, seed)
}

func TestPoseidon2MatchesDenseReference(t *testing.T) {
	g := fields.NewGoldilocks()
	m := fields.NewMersenne31()

	testcases := []struct {
		T      int
		RF, RP int
	}{
		{2, 8, 22}, {3, 8, 22}, {4, 8, 22}, {8, 8, 22}, {12, 8, 22}, {16, 8, 22}, {20, 8, 22}, {24, 8, 22},
	}

	for _, tc := range testcases {
		params, err := GenerateParams[uint64](g, tc.T, 7, tc.RF, tc.RP)
		require.NoError(t, err)
		checkInstance(t, params, uint64(tc.T))

		m31, err := GenerateParams[uint32](m, tc.T, 5, tc.RF, tc.RP)
		require.NoError(t, err)
		checkInstance(t, m31, uint64(tc.T))
	}

	bn, err := GenerateParams(fields.Field[bnfr.Element](fields.NewBN254()), 3, 5, 8, 56)
	require.NoError(t, err)
	checkInstance(t, bn, 3)
}

func TestPoseidon2InvalidParams(t *testing.T) {
	g := fields.NewGoldilocks()
	rc := make([][]uint64, 30)
	for i := range rc {
		rc[i] = make([]uint64, 8)
	}
	diag := fields.Elements[uint64](g, 1, 2, 3, 4, 5, 6, 7, 8)

	_, err := NewParams[uint64](g, 8, 7, 8, 22, diag, rc)
	require.NoError(t, err)

	_, err = NewParams[uint64](g, 5, 7, 8, 22, diag[:5], rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 8, 7, 8, 22, diag[:4], rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 8, 7, 8, 21, diag, rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 8, 5, 8, 22, diag, rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
}
