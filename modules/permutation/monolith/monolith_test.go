package monolith

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/permtest"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func iota64(n int) []uint64 {
	res := make([]uint64, n)
	for i := range res {
		res[i] = uint64(i)
	}
	return res
}

func iota32(n int) []uint32 {
	res := make([]uint32, n)
	for i := range res {
		res[i] = uint32(i)
	}
	return res
}

func TestMonolith64KAT(t *testing.T) {
	testcases := []struct {
		T        int
		Expected []uint64
	}{
		{8, []uint64{
			3656442354255169651, 1088199316401146975, 22941152274975507, 14434181924633355796,
			6981961052218049719, 16492720827407246378, 17986182688944525029, 9161400698613172623,
		}},
		{12, []uint64{
			5867581605548782913, 588867029099903233, 6043817495575026667, 805786589926590032,
			9919982299747097782, 6718641691835914685, 7951881005429661950, 15453177927755089358,
			974633365445157727, 9654662171963364206, 6281307445101925412, 13745376999934453119,
		}},
	}

	for _, tc := range testcases {
		params, err := NewMonolith64Params(tc.T)
		require.NoError(t, err)
		require.Equal(t, 4, params.Bars)
		require.Len(t, params.RC, Rounds-1)

		perm, err := New(params)
		require.NoError(t, err)
		require.Equal(t, tc.Expected, perm.Permutation(iota64(tc.T)), "width %d", tc.T)
		require.Equal(t, tc.Expected, perm.PermutationLookup(iota64(tc.T)), "width %d", tc.T)
		permtest.CheckProperties[uint64](t, params.Field, perm, uint64(tc.T))
	}

	params, err := NewMonolith64Params(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xe17b45f7a0e77938), params.RC[0][0])
}

func TestMonolith31KAT(t *testing.T) {
	testcases := []struct {
		T        int
		Expected []uint32
	}{
		{16, []uint32{
			609156607, 290107110, 1900746598, 1734707571, 2050994835, 1648553244, 1307647296, 1941164548,
			1707113065, 1477714255, 1170160793, 93800695, 769879348, 375548503, 1989726444, 1349325635,
		}},
		{24, []uint32{
			2067773075, 1832201932, 1944824478, 1823377759, 1441396277, 2131077448, 2132180368, 1432941899,
			1347592327, 1652902071, 1809291778, 1684517779, 785982444, 1037200378, 1316286130, 1391154514,
			1760346031, 1412575993, 2108791223, 1657735769, 219740691, 1165267731, 505815021, 2080295871,
		}},
	}

	for _, tc := range testcases {
		params, err := NewMonolith31Params(tc.T)
		require.NoError(t, err)
		require.Equal(t, 8, params.Bars)

		perm, err := New(params)
		require.NoError(t, err)
		require.Equal(t, tc.Expected, perm.Permutation(iota32(tc.T)), "width %d", tc.T)
		require.Equal(t, tc.Expected, perm.PermutationLookup(iota32(tc.T)), "width %d", tc.T)
		permtest.CheckProperties[uint32](t, params.Field, perm, uint64(tc.T))
	}
}

func TestBarsLookupMatchesBitwise(t *testing.T) {
	for x := uint32(0); x < 1<<16; x++ {
		require.Equal(t, uint16(bar8(uint8(x>>8)))<<8|uint16(bar8(uint8(x))), lookup16()[x])
	}
	for x := uint8(0); x < 1<<7; x++ {
		for y := 0; y < 1<<8; y++ {
			require.Equal(t, uint16(bar7(x))<<8|uint16(bar8(uint8(y))), lookup15()[int(x)<<8|y])
		}
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		x := rng.Uint64()
		require.Equal(t, Bar64(x), Bar64Lookup(x))
		y := uint32(x) & 0x7FFFFFFF
		require.Equal(t, Bar31(y), Bar31Lookup(y))
	}
}

func TestBarLanes(t *testing.T) {
	// each lane is a permutation of its own values
	seen8 := make(map[uint8]bool)
	for x := 0; x < 1<<8; x++ {
		seen8[bar8(uint8(x))] = true
	}
	require.Len(t, seen8, 1<<8)

	seen7 := make(map[uint8]bool)
	for x := uint8(0); x < 1<<7; x++ {
		y := bar7(x)
		require.Less(t, y, uint8(1<<7))
		seen7[y] = true
	}
	require.Len(t, seen7, 1<<7)

	require.Equal(t, uint64(0), Bar64(0))
	require.Equal(t, uint32(0), Bar31(0))
	// lanes do not interact
	require.Equal(t, Bar64(0xAB)|Bar64(0xCD00000000000000), Bar64(0xCD000000000000AB))
}

func TestConcreteLayers(t *testing.T) {
	g := fields.NewGoldilocks()
	m := fields.NewMersenne31()

	p8, err := NewMonolith64Params(8)
	require.NoError(t, err)
	require.True(t, linear.CirculantMatrix(fields.Elements[uint64](g, Row8...)).Equal(linear.AsMatrix[uint64](g, p8.Concrete())))

	p24, err := NewMonolith31Params(24)
	require.NoError(t, err)
	full := linear.CirculantMatrix(fields.Elements[uint32](m, Row32...))
	require.True(t, full.Submatrix(0, 24, 0, 24).Equal(linear.AsMatrix[uint32](m, p24.Concrete())))
}

func TestGeneratedWidths(t *testing.T) {
	g := fields.NewGoldilocks()
	m := fields.NewMersenne31()

	p16, err := GenerateParams[uint64](g, 16)
	require.NoError(t, err)
	mds := linear.AsMatrix[uint64](g, p16.Concrete())
	require.True(t, mds.IsInvertible(g))
	perm16, err := New(p16)
	require.NoError(t, err)
	permtest.CheckProperties[uint64](t, g, perm16, 16)

	p20, err := GenerateParams[uint32](m, 20)
	require.NoError(t, err)
	perm20, err := New(p20)
	require.NoError(t, err)
	require.Equal(t, perm20.Permutation(iota32(20)), perm20.PermutationLookup(iota32(20)))
}

func TestCompress(t *testing.T) {
	params, err := NewMonolith64Params(8)
	require.NoError(t, err)
	perm, err := New(params)
	require.NoError(t, err)
	g := params.Field

	left := []uint64{1, 2, 3, 4}
	right := []uint64{5, 6, 7, 8}
	out := perm.Permutation([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
	expected := make([]uint64, 4)
	for i := range expected {
		expected[i] = g.Add(left[i], out[i])
	}
	require.Equal(t, expected, perm.Compress(left, right))
	require.Equal(t, []uint64{1, 2, 3, 4}, left)

	require.Panics(t, func() { perm.Compress(left, right[:3]) })
}

func TestTracer(t *testing.T) {
	params, err := NewMonolith31Params(16)
	require.NoError(t, err)

	var rounds []int
	var last []uint32
	perm, err := New(params, permutation.WithTracer(func(round int, state []uint32) {
		rounds = append(rounds, round)
		last = state
	}))
	require.NoError(t, err)

	out := perm.Permutation(iota32(16))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, rounds)
	require.Equal(t, out, last)
}

func TestInvalidParams(t *testing.T) {
	g := fields.NewGoldilocks()
	m := fields.NewMersenne31()

	_, err := GenerateParams[uint64](g, 6)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = GenerateParams[uint32](m, 12)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = GenerateParams[uint64](fields.NewCrandall(fields.P64), 8)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewMonolith64Params(16)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewMonolith31Params(8)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)

	valid, err := NewMonolith64Params(8)
	require.NoError(t, err)
	_, err = NewParams[uint64](g, 8, valid.Concrete(), valid.RC[:4])
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 12, valid.Concrete(), valid.RC)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
	_, err = NewParams[uint64](g, 8, nil, valid.RC)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)
}
