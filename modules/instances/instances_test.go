package instances

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/merkle"
	"AlgebraicPermutations/modules/params"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/rescue"

	"github.com/stretchr/testify/require"
)

func counting(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fields.FormatElement[uint64](fields.NewGoldilocks(), uint64(3*i+1))
	}
	return res
}

func TestRegistry(t *testing.T) {
	names := Names()
	require.Len(t, names, 38)
	require.IsIncreasing(t, names)

	for _, inst := range All() {
		input := counting(inst.Width())
		out, err := inst.Permute(input)
		require.NoError(t, err, inst.Name())
		require.Len(t, out, inst.Width())
		require.NotEqual(t, input, out)

		again, err := inst.Permute(input)
		require.NoError(t, err)
		require.Equal(t, out, again)

		// exported tables rebuild the same permutation
		table, err := inst.Export()
		require.NoError(t, err)
		require.Equal(t, inst.Family(), table.Family)
		require.Equal(t, inst.Field().String(), table.Field)
		loaded, err := FromTable(table)
		require.NoError(t, err, inst.Name())
		fromTable, err := loaded.Permute(input)
		require.NoError(t, err)
		require.Equal(t, out, fromTable, inst.Name())
	}
}

func TestLookup(t *testing.T) {
	testcases := []struct {
		Name   string
		Family params.Family
		Field  fields.FieldEnum
		Width  int
	}{
		{"poseidon-m31x16", params.Poseidon, fields.M31, 16},
		{"poseidon2-bn254-3", params.Poseidon2, fields.BN254, 3},
		{"rescue-prime-goldilocks-12", params.RescuePrime, fields.Goldilocks, 12},
		{"feistel-mimc-p64-35", params.FeistelMiMC, fields.P64, 2},
		{"gmimc-bn254-12", params.GMiMC, fields.BN254, 12},
		{"griffin-bls12-381-3", params.Griffin, fields.BLS12381, 3},
		{"monolith-31-24", params.Monolith, fields.M31, 24},
		{"reinforced-concrete-medium", params.ReinforcedConcrete, fields.P56, 3},
		{"grendel-bn254-5", params.Grendel, fields.BN254, 5},
		{"grendel-bls12-381-3", params.Grendel, fields.BLS12381, 3},
		{"neptune-bls12-381-4", params.Neptune, fields.BLS12381, 4},
		{"neptune-goldilocks-12", params.Neptune, fields.Goldilocks, 12},
	}

	for _, tc := range testcases {
		inst, err := Lookup(tc.Name)
		require.NoError(t, err)
		require.Equal(t, tc.Name, inst.Name())
		require.Equal(t, tc.Family, inst.Family())
		require.Equal(t, tc.Field, inst.Field())
		require.Equal(t, tc.Width, inst.Width())
	}

	_, err := Lookup("poseidon-m31x17")
	require.ErrorIs(t, err, ErrUnknownInstance)
}

func TestCachedSets(t *testing.T) {
	a, err := RescuePrimeGoldilocks8()
	require.NoError(t, err)
	b, err := RescuePrimeGoldilocks8()
	require.NoError(t, err)
	require.Same(t, a, b)

	require.Nil(t, FeistelMiMC(23))
	require.Nil(t, GMiMCBN254(6))
	require.NotNil(t, GMiMCBN254(8))
}

func TestPermuteMatchesEngine(t *testing.T) {
	p, err := RescuePrimeGoldilocks8()
	require.NoError(t, err)
	perm, err := rescue.NewPrime(p)
	require.NoError(t, err)

	g := fields.NewGoldilocks()
	input := fields.Elements[uint64](g, 0, 1, 2, 3, 4, 5, 6, 7)
	want := fields.FormatElements[uint64](g, perm.Permutation(input))

	inst, err := Lookup("rescue-prime-goldilocks-8")
	require.NoError(t, err)
	got, err := inst.Permute([]string{"0", "1", "2", "3", "0x4", "0x5", "0x6", "0x7"})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestPermuteErrors(t *testing.T) {
	inst, err := Lookup("poseidon-goldilocks-8")
	require.NoError(t, err)

	_, err = inst.Permute(counting(7))
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)

	input := counting(8)
	input[3] = "0xffffffff00000001"
	_, err = inst.Permute(input)
	require.ErrorIs(t, err, fields.ErrNotInField)

	input[3] = "twelve"
	_, err = inst.Permute(input)
	require.Error(t, err)
}

func TestTrace(t *testing.T) {
	inst, err := Lookup("monolith-64-8")
	require.NoError(t, err)
	input := counting(8)

	var rounds []int
	var last []string
	out, err := inst.Trace(input, func(round int, state []string) {
		rounds = append(rounds, round)
		last = state
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, rounds)
	require.Equal(t, out, last)

	plain, err := inst.Permute(input)
	require.NoError(t, err)
	require.Equal(t, plain, out)
}

func TestMerkle(t *testing.T) {
	inst, err := Lookup("poseidon2-goldilocks-8")
	require.NoError(t, err)
	leaves := counting(10)

	res, err := inst.Merkle(leaves, "")
	require.NoError(t, err)
	require.Equal(t, 4, res.Arity)
	require.Empty(t, res.Witness)

	proved, err := inst.Merkle(leaves, leaves[6])
	require.NoError(t, err)
	require.Equal(t, res.Root, proved.Root)
	require.True(t, proved.Verified)
	require.Len(t, proved.Witness, 2)
	require.Equal(t, 2, proved.Witness[0].Position)
	require.Equal(t, 1, proved.Witness[1].Position)

	_, err = inst.Merkle(leaves, "0x2a")
	require.ErrorIs(t, err, merkle.ErrNotFound)

	_, err = inst.Merkle(nil, "")
	require.ErrorIs(t, err, merkle.ErrNoLeaves)
}

func TestFromTableRejectsBrokenTables(t *testing.T) {
	inst, err := Lookup("griffin-goldilocks-8")
	require.NoError(t, err)
	table, err := inst.Export()
	require.NoError(t, err)

	// a reducible pair, L^2 + 3L + 2 = (L + 1)(L + 2)
	table.AlphaBeta[0] = []string{"0x3", "0x2"}
	_, err = FromTable(table)
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)

	table.Field = "m31"
	_, err = FromTable(table)
	require.Error(t, err)
}
