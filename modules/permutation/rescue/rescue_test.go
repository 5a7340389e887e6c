package rescue

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/permtest"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRescuePrimeGoldilocksKAT(t *testing.T) {
	testcases := []struct {
		Params   func() (*Params[uint64], error)
		Expected []uint64
	}{
		{
			Params: NewPrimeGoldilocks8Params,
			Expected: []uint64{
				0x78611c23bb3f3511, 0x747ca7c6adfb6053, 0x72bab842bedc7f2b, 0xff382886d0643ff1,
				0x53364e0ade11b65c, 0xdd7d94314e8b2d24, 0x70f59074a73ebd6f, 0x115d7141e8c75cdd,
			},
		},
		{
			Params: NewPrimeGoldilocks12Params,
			Expected: []uint64{
				0xccd94518a9af0782, 0xf7ae608ea3308620, 0xf56dd53fae1f5876, 0x11e7b12aedd8ca86,
				0x869f9c3f93cd5630, 0x6ffe37312e58ac20, 0xac42b1f88aa27570, 0x312f6b96f7611c8a,
				0xf8b19bd51a741b7e, 0x9d1c158cfa1b7a12, 0x62ae69ae877e1e51, 0xce62641553ffe1bc,
			},
		},
	}

	for _, tc := range testcases {
		params, err := tc.Params()
		require.NoError(t, err)
		require.Equal(t, uint64(0x92492491b6db6db7), params.InverseExponent().Uint64())

		perm, err := NewPrime(params)
		require.NoError(t, err)

		input := make([]uint64, params.T)
		for i := range input {
			input[i] = uint64(i)
		}
		require.Equal(t, tc.Expected, perm.Permutation(input))
		permtest.CheckProperties[uint64](t, params.Field, perm, uint64(params.T))

		_, err = New(params)
		require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	}
}

func TestRescueInverseSBox(t *testing.T) {
	bn := fields.NewBN254()
	params, err := GenerateParams(fields.Field[bnfr.Element](bn), 3, 5, 8)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 16; i++ {
		x := permtest.RandomState[bnfr.Element](bn, rng, 1)[0]
		require.Equal(t, x, params.sbox.Forward(params.sbox.Inverse(x)))
		require.Equal(t, x, params.sbox.Inverse(params.sbox.Forward(x)))
	}
	require.True(t, bn.IsZero(params.sbox.Inverse(bn.Zero())))
}

func TestRescueProperties(t *testing.T) {
	g := fields.NewGoldilocks()
	params, err := GenerateParams[uint64](g, 8, 7, 8)
	require.NoError(t, err)
	require.Len(t, params.RC, 17)

	perm, err := New(params)
	require.NoError(t, err)
	permtest.CheckProperties[uint64](t, g, perm, 8)

	_, err = NewPrime(params)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)

	bls := fields.NewBLS12381()
	blsParams, err := GenerateParams(fields.Field[blsfr.Element](bls), 3, 5, 8)
	require.NoError(t, err)
	blsPerm, err := New(blsParams)
	require.NoError(t, err)
	permtest.CheckProperties(t, blsParams.Field, blsPerm, 3)
}

func TestRescueTracer(t *testing.T) {
	params, err := NewPrimeGoldilocks8Params()
	require.NoError(t, err)

	count := 0
	perm, err := NewPrime(params, permutation.WithTracer(func(round int, state []uint64) {
		require.Equal(t, count, round)
		require.Len(t, state, 8)
		count++
	}))
	require.NoError(t, err)
	perm.Permutation(make([]uint64, 8))
	require.Equal(t, 8, count)
}

func TestRescueInvalidParams(t *testing.T) {
	g := fields.NewGoldilocks()
	mds := linear.Identity[uint64](g, 3)
	rc := make([][]uint64, 4)
	for i := range rc {
		rc[i] = make([]uint64, 3)
	}

	_, err := NewParams[uint64](g, 3, 7, 2, mds, rc)
	require.NoError(t, err)
	_, err = NewParams[uint64](g, 3, 5, 2, mds, rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 3, 7, 3, mds, rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 3, 7, 2, linear.NewMatrix[uint64](g, 3, 3), rc)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
}
