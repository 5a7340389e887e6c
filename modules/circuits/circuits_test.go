package circuits

import (
	"math/big"
	"testing"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/instances"
	"AlgebraicPermutations/modules/permutation/feistel"
	"AlgebraicPermutations/modules/permutation/poseidon"
	"AlgebraicPermutations/modules/permutation/rescue"

	"github.com/consensys/gnark-crypto/ecc"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	gnarktest "github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

func bigs(vs ...int64) []*big.Int {
	res := make([]*big.Int, len(vs))
	for i, v := range vs {
		res[i] = big.NewInt(v)
	}
	return res
}

func counting(n int) []*big.Int {
	res := make([]*big.Int, n)
	for i := range res {
		res[i] = big.NewInt(int64(7*i + 3))
	}
	return res
}

type powCircuit struct {
	X    frontend.Variable
	Y    frontend.Variable `gnark:",public"`
	Root frontend.Variable `gnark:",public"`

	d   uint64
	inv *big.Int
}

func (c *powCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(Pow(api, c.X, c.d), c.Y)
	api.AssertIsEqual(InversePow(api, c.X, c.d, c.inv), c.Root)
	return nil
}

func TestPow(t *testing.T) {
	f := fields.NewBN254()
	testcases := []struct {
		D uint64
	}{{5}, {7}, {11}, {17}}

	for _, tc := range testcases {
		inv, err := fields.InverseExponent[bnfr.Element](f, tc.D)
		require.NoError(t, err)
		x := big.NewInt(1234567)
		y := new(big.Int).Exp(x, new(big.Int).SetUint64(tc.D), f.Modulus())
		root := new(big.Int).Exp(x, inv, f.Modulus())

		circuit := &powCircuit{d: tc.D, inv: inv}
		require.NoError(t, gnarktest.IsSolved(circuit, &powCircuit{X: x, Y: y, Root: root, d: tc.D, inv: inv}, ecc.BN254.ScalarField()))

		wrong := new(big.Int).Add(root, big.NewInt(1))
		require.Error(t, gnarktest.IsSolved(circuit, &powCircuit{X: x, Y: y, Root: wrong, d: tc.D, inv: inv}, ecc.BN254.ScalarField()))
	}
}

func TestConsistency(t *testing.T) {
	bn := fields.NewBN254()

	rescueParams, err := rescue.GenerateParams[bnfr.Element](bn, 3, 5, 3)
	require.NoError(t, err)
	rescueTarget, err := RescueTarget("rescue-bn254-3", rescueParams)
	require.NoError(t, err)
	primeParams, err := rescue.NewParams[bnfr.Element](bn, 3, 5, 3, rescueParams.MDS, rescueParams.RC[:6])
	require.NoError(t, err)
	primeTarget, err := RescuePrimeTarget("rescue-prime-bn254-3", primeParams)
	require.NoError(t, err)

	mimcParams, err := feistel.GenerateMiMCParams[bnfr.Element](bn, 5, 9)
	require.NoError(t, err)
	mimcTarget, err := FeistelMiMCTarget("feistel-mimc-bn254", mimcParams)
	require.NoError(t, err)

	gmimcParams, err := feistel.GenerateGMiMCParams[bnfr.Element](bn, 4, 5, 12)
	require.NoError(t, err)
	gmimcTarget, err := GMiMCTarget("gmimc-bn254-4-short", gmimcParams)
	require.NoError(t, err)

	smallPoseidon, err := poseidon.GenerateParams[bnfr.Element](bn, 3, 5, 4, 3)
	require.NoError(t, err)
	poseidonTarget, err := PoseidonTarget("poseidon-bn254-3-short", smallPoseidon)
	require.NoError(t, err)

	testcases := []struct {
		Target *Target
		Input  []*big.Int
	}{
		{rescueTarget, bigs(1, 2, 3)},
		{primeTarget, bigs(0, 0, 0)},
		{mimcTarget, bigs(17, 42)},
		{gmimcTarget, counting(4)},
		{poseidonTarget, counting(3)},
	}

	for _, tc := range testcases {
		require.NoError(t, tc.Target.CheckConsistency(tc.Input), tc.Target.Name)
	}
}

func TestForInstance(t *testing.T) {
	testcases := []struct {
		Name  string
		Field fields.FieldEnum
	}{
		{"poseidon-bn254-3", fields.BN254},
		{"griffin-bn254-3", fields.BN254},
		{"griffin-bls12-381-3", fields.BLS12381},
		{"gmimc-bn254-3", fields.BN254},
		{"poseidon-m31x16", fields.M31},
	}

	for _, tc := range testcases {
		target, err := ForInstance(tc.Name)
		require.NoError(t, err)
		require.Equal(t, tc.Field, target.Field)

		inst, err := instances.Lookup(tc.Name)
		require.NoError(t, err)
		require.Equal(t, inst.Width(), target.Width)
		require.NoError(t, target.CheckConsistency(counting(target.Width)), tc.Name)
	}

	_, err := ForInstance("monolith-31-16")
	require.ErrorIs(t, err, ErrNoCircuit)
	_, err = ForInstance("poseidon-goldilocks-8")
	require.ErrorIs(t, err, ErrNoCircuit)
	_, err = ForInstance("poseidon-bn254-4")
	require.ErrorIs(t, err, instances.ErrUnknownInstance)
}

func TestNoCircuitField(t *testing.T) {
	g := fields.NewGoldilocks()
	p, err := feistel.GenerateMiMCParams[uint64](g, 3, 4)
	require.NoError(t, err)
	_, err = FeistelMiMCTarget("feistel-mimc-goldilocks", p)
	require.ErrorIs(t, err, ErrNoCircuit)
}

func TestAssignmentWidth(t *testing.T) {
	target, err := ForInstance("gmimc-bn254-3")
	require.NoError(t, err)
	_, err = target.Assignment(counting(4))
	require.Error(t, err)
}

func TestGroth16(t *testing.T) {
	p, err := feistel.GenerateMiMCParams[bnfr.Element](fields.NewBN254(), 5, 6)
	require.NoError(t, err)
	target, err := FeistelMiMCTarget("feistel-mimc-bn254-6", p)
	require.NoError(t, err)

	assignment, err := target.Assignment(bigs(5, 8))
	require.NoError(t, err)
	require.NoError(t, Groth16(target, assignment))

	m31, err := ForInstance("poseidon-m31x16")
	require.NoError(t, err)
	require.ErrorIs(t, Groth16(m31, m31.Circuit()), ErrNoCircuit)
}
