package merkle

import (
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/griffin"
	"AlgebraicPermutations/modules/permutation/monolith"
	"AlgebraicPermutations/modules/permutation/poseidon"

	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func goldilocksPoseidon(t *testing.T, width int) permutation.Permutation[uint64] {
	params, err := poseidon.GenerateParams[uint64](fields.NewGoldilocks(), width, 7, 8, 22)
	require.NoError(t, err)
	perm, err := poseidon.New(params)
	require.NoError(t, err)
	return perm
}

func leaves(n int) []uint64 {
	res := make([]uint64, n)
	for i := range res {
		res[i] = uint64(1000 + 7*i)
	}
	return res
}

func TestArity(t *testing.T) {
	testcases := []struct {
		Width, Arity int
	}{
		{3, 2}, {4, 2}, {5, 4}, {8, 4}, {9, 8}, {12, 8}, {16, 8}, {17, 16},
	}

	for _, tc := range testcases {
		acc, err := NewAccumulator(goldilocksPoseidon(t, tc.Width))
		require.NoError(t, err)
		require.Equal(t, tc.Arity, acc.Arity(), "width %d", tc.Width)
	}

	_, err := NewAccumulator(goldilocksPoseidon(t, 2))
	require.ErrorIs(t, err, permutation.ErrInvalidConfiguration)

	perm := goldilocksPoseidon(t, 8)
	for _, arity := range []int{0, 1, 3, 6, 8, 16} {
		_, err := NewAccumulatorWithArity(perm, arity)
		require.ErrorIs(t, err, permutation.ErrInvalidConfiguration, "arity %d", arity)
	}
	acc, err := NewAccumulatorWithArity(perm, 2)
	require.NoError(t, err)
	require.Equal(t, 2, acc.Arity())
}

func TestWitnessRoundTrip(t *testing.T) {
	testcases := []struct {
		Width, Leaves int
	}{
		{3, 1}, {3, 2}, {3, 7}, {3, 64},
		{5, 4}, {5, 5}, {5, 17}, {5, 64},
		{9, 3}, {9, 65},
	}

	for _, tc := range testcases {
		acc, err := NewAccumulator(goldilocksPoseidon(t, tc.Width))
		require.NoError(t, err)
		set := leaves(tc.Leaves)

		root, err := acc.Accumulate(set)
		require.NoError(t, err)
		got, ok := acc.Root()
		require.True(t, ok)
		require.Equal(t, root, got)

		depth := 0
		for size := acc.Arity(); size < tc.Leaves; size *= acc.Arity() {
			depth++
		}

		for i, leaf := range set {
			witness, err := acc.CreateWitness(leaf)
			require.NoError(t, err)
			require.Len(t, witness, depth+1)
			for _, level := range witness {
				require.Len(t, level.Digests, acc.Arity()-1)
			}
			require.True(t, acc.Verify(leaf, witness), "width %d leaf %d", tc.Width, i)

			other := set[(i+1)%len(set)]
			if other != leaf {
				require.False(t, acc.Verify(other, witness))
			}
		}
	}
}

func TestPaddingRepeatsLastLeaf(t *testing.T) {
	perm := goldilocksPoseidon(t, 5)
	acc, err := NewAccumulator(perm)
	require.NoError(t, err)

	set := leaves(5)
	root, err := acc.Accumulate(set)
	require.NoError(t, err)

	padded := append(append([]uint64(nil), set...), make([]uint64, 11)...)
	for i := 5; i < 16; i++ {
		padded[i] = set[4]
	}
	explicit, err := acc.Accumulate(padded)
	require.NoError(t, err)
	require.Equal(t, root, explicit)

	// a zero padded tree differs
	zeroPadded := append(append([]uint64(nil), set...), make([]uint64, 11)...)
	other, err := acc.Accumulate(zeroPadded)
	require.NoError(t, err)
	require.NotEqual(t, root, other)
}

func TestRootByHand(t *testing.T) {
	perm := goldilocksPoseidon(t, 3)
	acc, err := NewAccumulator(perm)
	require.NoError(t, err)

	root, err := acc.Accumulate([]uint64{1, 2, 3})
	require.NoError(t, err)

	left := perm.Permutation([]uint64{1, 2, 0})[0]
	right := perm.Permutation([]uint64{3, 3, 0})[0]
	require.Equal(t, perm.Permutation([]uint64{left, right, 0})[0], root)

	witness, err := acc.CreateWitness(3)
	require.NoError(t, err)
	require.Equal(t, []ProofNode[uint64]{
		{Digests: []uint64{3}, Position: 0},
		{Digests: []uint64{left}, Position: 1},
	}, witness)
}

func TestRejectsTamperedWitness(t *testing.T) {
	acc, err := NewAccumulator(goldilocksPoseidon(t, 5))
	require.NoError(t, err)
	set := leaves(16)
	_, err = acc.Accumulate(set)
	require.NoError(t, err)

	witness, err := acc.CreateWitness(set[6])
	require.NoError(t, err)
	require.True(t, acc.Verify(set[6], witness))

	swapped := append([]ProofNode[uint64](nil), witness...)
	swapped[0].Position = (swapped[0].Position + 1) % acc.Arity()
	require.False(t, acc.Verify(set[6], swapped))

	malformed := append([]ProofNode[uint64](nil), witness...)
	malformed[1] = ProofNode[uint64]{Digests: witness[1].Digests[:1], Position: 0}
	require.False(t, acc.Verify(set[6], malformed))

	outOfRange := append([]ProofNode[uint64](nil), witness...)
	outOfRange[0].Position = acc.Arity()
	require.False(t, acc.Verify(set[6], outOfRange))

	require.False(t, acc.Verify(set[6], witness[:1]))
}

func TestWitnessLength(t *testing.T) {
	params, err := monolith.NewMonolith64Params(8)
	require.NoError(t, err)
	perm, err := monolith.New(params)
	require.NoError(t, err)
	acc, err := NewAccumulator[uint64](perm)
	require.NoError(t, err)
	require.Equal(t, 4, acc.Arity())

	set := []uint64{1, 2, 3, 4, 5}
	root, err := acc.Accumulate(set)
	require.NoError(t, err)

	// the root itself is no leaf
	require.False(t, acc.Verify(root, nil))
	require.False(t, acc.Verify(root, []ProofNode[uint64]{}))

	witness, err := acc.CreateWitness(5)
	require.NoError(t, err)
	require.Len(t, witness, 2)
	require.True(t, acc.Verify(5, witness))

	// the first parent digest with the upper level of the witness reaches
	// the root, but it is an inner node
	digests := make([]uint64, 8)
	digests[0] = 5
	copy(digests[1:4], []uint64{5, 5, 5})
	inner := perm.Permutation(digests)[0]
	require.Equal(t, 1, witness[1].Position)
	require.False(t, acc.Verify(inner, witness[1:]))
	require.False(t, acc.Verify(5, witness[:1]))
	require.False(t, acc.Verify(5, append(witness, witness[1])))

	// a smaller tree shortens the witness
	_, err = acc.Accumulate([]uint64{1, 2})
	require.NoError(t, err)
	witness, err = acc.CreateWitness(2)
	require.NoError(t, err)
	require.Len(t, witness, 1)
	require.True(t, acc.Verify(2, witness))
}

func TestNotFound(t *testing.T) {
	acc, err := NewAccumulator(goldilocksPoseidon(t, 3))
	require.NoError(t, err)

	_, ok := acc.Root()
	require.False(t, ok)
	_, err = acc.CreateWitness(1)
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, acc.Verify(1, nil))

	_, err = acc.Accumulate(nil)
	require.ErrorIs(t, err, ErrNoLeaves)

	_, err = acc.Accumulate([]uint64{1, 2, 3, 4})
	require.NoError(t, err)
	_, err = acc.CreateWitness(5)
	require.ErrorIs(t, err, ErrNotFound)

	// a new set replaces the old tree
	_, err = acc.Accumulate([]uint64{5, 6})
	require.NoError(t, err)
	_, err = acc.CreateWitness(1)
	require.ErrorIs(t, err, ErrNotFound)
	witness, err := acc.CreateWitness(5)
	require.NoError(t, err)
	require.True(t, acc.Verify(5, witness))
}

func TestGriffinTree(t *testing.T) {
	params, err := griffin.NewBN254Params()
	require.NoError(t, err)
	perm, err := griffin.New(params)
	require.NoError(t, err)

	acc, err := NewAccumulator[bnfr.Element](perm)
	require.NoError(t, err)
	require.Equal(t, 2, acc.Arity())

	f := fields.NewBN254()
	set := fields.Elements[bnfr.Element](f, 11, 22, 33, 44, 55)
	_, err = acc.Accumulate(set)
	require.NoError(t, err)
	for _, leaf := range set {
		witness, err := acc.CreateWitness(leaf)
		require.NoError(t, err)
		require.True(t, acc.Verify(leaf, witness))
	}
}
