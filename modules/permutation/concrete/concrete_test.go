package concrete

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/permtest"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestReinforcedConcreteKAT(t *testing.T) {
	testcases := []struct {
		Name     string
		Params   func() (*Params[uint64], error)
		Expected []uint64
	}{
		{"easy", NewEasyParams, []uint64{0x9dd81be4a029, 0x2d73419eeae9, 0x7de0e45ef4be}},
		{"medium", NewMediumParams, []uint64{0x7ac8fe441eface, 0x93b569b1b8f58a, 0xaa6255d2aa3450}},
		{"hard", NewHardParams, []uint64{0x0c3eb8259a579e18, 0x92de8f70ea44896c, 0xf4fa8563f3aec0ae}},
	}

	for _, tc := range testcases {
		params, err := tc.Params()
		require.NoError(t, err, tc.Name)
		perm, err := New(params)
		require.NoError(t, err)

		require.Equal(t, tc.Expected, perm.Permutation([]uint64{0, 1, 2}), tc.Name)
		permtest.CheckProperties[uint64](t, params.Field, perm, 7)
	}
}

func TestBarsIsAPermutationOfDigits(t *testing.T) {
	params, err := NewEasyParams()
	require.NoError(t, err)
	perm, err := New(params)
	require.NoError(t, err)

	sbox := params.SBox()
	require.Len(t, sbox, 267)
	require.Equal(t, uint16(0), sbox[0])
	seen := make(map[uint16]bool)
	for i, s := range sbox {
		switch {
		case i == 0:
			require.Zero(t, s)
		case i < int(params.V):
			require.Equal(t, uint32(1), uint32(i)*uint32(s)%uint32(params.V))
		default:
			require.Equal(t, uint16(i), s)
		}
		require.False(t, seen[s])
		seen[s] = true
	}

	// the digit s-box is an involution, so Bars is one too
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 32; i++ {
		x := permtest.RandomState[uint64](params.Field, rng, T)
		require.Equal(t, x, perm.Bars(perm.Bars(x)))
	}
}

func TestDecomposeMatchesRadices(t *testing.T) {
	params, err := NewHardParams()
	require.NoError(t, err)
	f := params.Field

	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 64; i++ {
		x := permtest.RandomState[uint64](f, rng, 1)[0]
		digits := fields.DecomposeElement(f, params.Decomposer(), x)
		require.Len(t, digits, len(HardRadices))
		for j := 1; j < len(digits); j++ {
			require.Less(t, digits[j], HardRadices[j])
		}
		back, err := fields.ComposeElement(f, params.Decomposer(), digits)
		require.NoError(t, err)
		require.Equal(t, x, back)
	}
}

func TestInvalidParams(t *testing.T) {
	f := fields.NewCrandall(fields.P48)
	rc := make([][]uint64, TotalRounds+1)
	for i := range rc {
		rc[i] = make([]uint64, T)
	}

	testcases := []struct {
		Name string
		D    uint64
		Si   []uint16
		V    uint16
		RC   [][]uint64
	}{
		{"degree", 7, EasyRadices, 223, rc},
		{"radix below v", 3, []uint16{267, 267, 267, 244, 258, 200}, 223, rc},
		{"radices too small", 3, []uint16{267, 267, 267}, 223, rc},
		{"constants", 3, EasyRadices, 223, rc[1:]},
	}

	for _, tc := range testcases {
		_, err := NewParams[uint64](f, tc.D, tc.Si, tc.V, [4]uint16{1, 2, 3, 4}, tc.RC)
		require.ErrorIs(t, err, permutation.ErrInvalidConfiguration, tc.Name)
	}
}
