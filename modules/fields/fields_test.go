package fields

import (
	"math/big"
	"testing"
	"testing/quick"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type (
	frBN254 = bnfr.Element
	frBLS   = blsfr.Element
)

func TestFieldEnumModulus(t *testing.T) {
	testcases := []struct {
		Enum    FieldEnum
		Modulus string
		Bytes   uint
	}{
		{M31, "2147483647", 4},
		{BN254, "21888242871839275222246405745257275088548364400416034343698204186575808495617", 32},
		{Goldilocks, "18446744069414584321", 8},
		{BLS12381, "52435875175126190479447740508185965837690552500527637822603658699938581184513", 32},
		{P48, "281474976710597", 6},
		{P56, "72057594037926839", 7},
		{P64, "18446744073709551557", 8},
	}

	for _, tc := range testcases {
		expected, _ := new(big.Int).SetString(tc.Modulus, 10)
		require.Equal(t, 0, expected.Cmp(tc.Enum.FieldModulus()), "modulus of %s", tc.Enum)
		require.Equal(t, tc.Bytes, tc.Enum.FieldBytes(), "bytes of %s", tc.Enum)
		require.True(t, expected.ProbablyPrime(20), "%s modulus not prime", tc.Enum)

		parsed, err := ParseFieldEnum(tc.Enum.String())
		require.NoError(t, err)
		require.Equal(t, tc.Enum, parsed)
	}

	_, err := ParseFieldEnum("gf2")
	require.Error(t, err)
}

func TestEngineModulusMatchesEnum(t *testing.T) {
	require.Equal(t, 0, NewGoldilocks().Modulus().Cmp(Goldilocks.FieldModulus()))
	require.Equal(t, 0, NewMersenne31().Modulus().Cmp(M31.FieldModulus()))
	require.Equal(t, 0, NewBN254().Modulus().Cmp(BN254.FieldModulus()))
	require.Equal(t, 0, NewBLS12381().Modulus().Cmp(BLS12381.FieldModulus()))
	for _, e := range []FieldEnum{P48, P56, P64} {
		require.Equal(t, 0, NewCrandall(e).Modulus().Cmp(e.FieldModulus()), "%s", e)
	}
}

// randomBig samples below the modulus, biased towards the edges of the range
// where carries and folds happen.
func randomBig(rng *rand.Rand, p *big.Int) *big.Int {
	switch rng.Intn(4) {
	case 0:
		return new(big.Int).Sub(p, big.NewInt(int64(rng.Intn(1000)+1)))
	case 1:
		return big.NewInt(int64(rng.Intn(1000)))
	default:
		v := new(big.Int)
		for v.BitLen() <= p.BitLen() {
			v.Lsh(v, 64)
			v.Or(v, new(big.Int).SetUint64(rng.Uint64()))
		}
		return v.Mod(v, p)
	}
}

func checkAgainstBig[E comparable](t *testing.T, f Field[E], rounds int) {
	rng := rand.New(rand.NewSource(uint64(f.Enum())))
	p := f.Modulus()

	for i := 0; i < rounds; i++ {
		ab, bb := randomBig(rng, p), randomBig(rng, p)
		a, err := f.FromBig(ab)
		require.NoError(t, err)
		b, err := f.FromBig(bb)
		require.NoError(t, err)

		eq := func(op string, expected *big.Int, actual E) {
			require.Equal(t, 0, expected.Mod(expected, p).Cmp(f.Big(actual)), "%s %s", f.Enum(), op)
		}
		eq("add", new(big.Int).Add(ab, bb), f.Add(a, b))
		eq("sub", new(big.Int).Sub(ab, bb), f.Sub(a, b))
		eq("mul", new(big.Int).Mul(ab, bb), f.Mul(a, b))
		eq("square", new(big.Int).Mul(ab, ab), f.Square(a))
		eq("double", new(big.Int).Lsh(ab, 1), f.Double(a))
		eq("neg", new(big.Int).Neg(ab), f.Neg(a))

		e := big.NewInt(int64(rng.Intn(1 << 20)))
		eq("exp", new(big.Int).Exp(ab, e, p), f.Exp(a, e))
		require.Equal(t, f.Exp(a, e), Pow(f, a, e.Uint64()), "%s pow", f.Enum())

		inv, ok := f.Inverse(a)
		if f.IsZero(a) {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)
		require.Equal(t, f.One(), f.Mul(a, inv), "%s inverse", f.Enum())

		require.Equal(t, 0, ab.Cmp(limbsToBig(f.Limbs(a))), "%s limbs", f.Enum())
		back, err := f.FromLimbs(f.Limbs(a))
		require.NoError(t, err)
		require.Equal(t, a, back)
	}
}

func TestArithmeticAgainstBig(t *testing.T) {
	t.Run("goldilocks", func(t *testing.T) { checkAgainstBig[uint64](t, NewGoldilocks(), 2000) })
	t.Run("m31", func(t *testing.T) { checkAgainstBig[uint32](t, NewMersenne31(), 2000) })
	t.Run("p48", func(t *testing.T) { checkAgainstBig[uint64](t, NewCrandall(P48), 2000) })
	t.Run("p56", func(t *testing.T) { checkAgainstBig[uint64](t, NewCrandall(P56), 2000) })
	t.Run("p64", func(t *testing.T) { checkAgainstBig[uint64](t, NewCrandall(P64), 2000) })
	t.Run("bn254", func(t *testing.T) { checkAgainstBig(t, Field[frBN254](NewBN254()), 200) })
	t.Run("bls12-381", func(t *testing.T) { checkAgainstBig(t, Field[frBLS](NewBLS12381()), 200) })
}

func TestGoldilocksAgainstGnarkCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGoldilocks()

	for i := 0; i < 10000; i++ {
		a := rng.Uint64() % GoldilocksModulus
		b := rng.Uint64() % GoldilocksModulus
		if i%7 == 0 {
			a = GoldilocksModulus - 1 - uint64(i%5)
		}

		var ea, eb, ec goldilocks.Element
		ea.SetUint64(a)
		eb.SetUint64(b)
		ec.Mul(&ea, &eb)
		require.Equal(t, ec.Uint64(), g.Mul(a, b))

		ec.Add(&ea, &eb)
		require.Equal(t, ec.Uint64(), g.Add(a, b))
		ec.Sub(&ea, &eb)
		require.Equal(t, ec.Uint64(), g.Sub(a, b))
	}
}

func TestGoldilocksReduceEdges(t *testing.T) {
	testcases := []struct {
		Hi, Lo uint64
	}{
		{0, 0},
		{0, GoldilocksModulus},
		{0, ^uint64(0)},
		{^uint64(0), ^uint64(0)},
		{1, 0},
		{0xFFFFFFFF, 0},
		{0x100000000, 0},
		{0xFFFFFFFF00000000, 0xFFFFFFFF},
	}

	p := new(big.Int).SetUint64(GoldilocksModulus)
	for _, tc := range testcases {
		x := new(big.Int).SetUint64(tc.Hi)
		x.Lsh(x, 64).Or(x, new(big.Int).SetUint64(tc.Lo))
		expected := x.Mod(x, p).Uint64()
		require.Equal(t, expected, goldilocksReduce128(tc.Hi, tc.Lo), "hi %#x lo %#x", tc.Hi, tc.Lo)
	}
}

func TestNotInFieldRejected(t *testing.T) {
	g := NewGoldilocks()
	_, err := g.FromLimbs([]uint64{GoldilocksModulus})
	require.ErrorIs(t, err, ErrNotInField)
	_, err = g.FromLimbs([]uint64{1, 1})
	require.ErrorIs(t, err, ErrNotInField)

	m := NewMersenne31()
	_, err = m.FromLimbs([]uint64{uint64(Mersenne31Modulus)})
	require.ErrorIs(t, err, ErrNotInField)

	c := NewCrandall(P48)
	_, err = c.FromBig(new(big.Int).SetUint64(P48Modulus))
	require.ErrorIs(t, err, ErrNotInField)
	_, err = c.FromBig(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNotInField)

	b := NewBN254()
	_, err = b.FromBig(BN254.FieldModulus())
	require.ErrorIs(t, err, ErrNotInField)

	_, err = ParseElement[uint64](g, "0xFFFFFFFF00000001")
	require.ErrorIs(t, err, ErrNotInField)
	v, err := ParseElement[uint64](g, "0xFFFFFFFF00000000")
	require.NoError(t, err)
	require.Equal(t, GoldilocksModulus-1, v)
}

func TestLegendreAndInverseExponent(t *testing.T) {
	g := NewGoldilocks()
	require.Equal(t, 0, Legendre[uint64](g, 0))
	require.Equal(t, 1, Legendre[uint64](g, 4))
	// 7 generates the multiplicative group of Goldilocks
	require.Equal(t, -1, Legendre[uint64](g, 7))

	_, err := InverseExponent[uint64](g, 3)
	require.ErrorIs(t, err, ErrNoInverse)

	dInv, err := InverseExponent[uint64](g, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(0x92492491b6db6db7), dInv.Uint64())

	x := uint64(123456789)
	require.Equal(t, x, g.Exp(Pow[uint64](g, x, 7), dInv))
}

func TestShakeSampling(t *testing.T) {
	testcases := []struct {
		Name  string
		Check func(t *testing.T)
	}{
		{"p48", func(t *testing.T) { checkShake[uint64](t, NewCrandall(P48)) }},
		{"m31", func(t *testing.T) { checkShake[uint32](t, NewMersenne31()) }},
		{"bn254", func(t *testing.T) { checkShake(t, Field[frBN254](NewBN254())) }},
	}

	for _, tc := range testcases {
		t.Run(tc.Name, tc.Check)
	}
}

func checkShake[E comparable](t *testing.T, f Field[E]) {
	s1 := NewShake(f, "label")
	s2 := NewShake(f, "label")
	s3 := NewShake(f, "other")

	v1 := ShakeVector(f, s1, 16)
	v2 := ShakeVector(f, s2, 16)
	v3 := ShakeVector(f, s3, 16)
	require.Equal(t, v1, v2)
	require.NotEqual(t, v1, v3)

	nz := FromShakeNonZero(f, s1)
	require.False(t, f.IsZero(nz))
}

func TestSeedLimbs(t *testing.T) {
	testcases := []struct {
		Field FieldEnum
		Limbs int
	}{
		{M31, 1}, {Goldilocks, 1}, {P48, 1}, {P56, 1}, {P64, 2}, {BN254, 4}, {BLS12381, 4},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.Limbs, tc.Field.SeedLimbs(), tc.Field.String())
	}
}

func TestMersenne31Laws(t *testing.T) {
	f := NewMersenne31()
	ring := func(a, b, c uint32) bool {
		x, y, z := f.FromUint64(uint64(a)), f.FromUint64(uint64(b)), f.FromUint64(uint64(c))
		distributes := f.Mul(x, f.Add(y, z)) == f.Add(f.Mul(x, y), f.Mul(x, z))
		commutes := f.Mul(x, y) == f.Mul(y, x)
		return distributes && commutes && f.Sub(f.Add(x, y), y) == x
	}
	require.NoError(t, quick.Check(ring, nil))

	inverse := func(a uint32) bool {
		x := f.FromUint64(uint64(a))
		inv, ok := f.Inverse(x)
		if f.IsZero(x) {
			return !ok
		}
		return ok && f.Mul(x, inv) == f.One()
	}
	require.NoError(t, quick.Check(inverse, nil))
}
