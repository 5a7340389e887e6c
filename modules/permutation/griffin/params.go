package griffin

import (
	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Params is a Griffin instance of width T = 3 or a multiple of 4.
//
// RC holds Rounds-1 rows: the affine layer of the last round adds no
// constants. AlphaBeta holds the T-2 coefficient pairs of the quadratic
// factors, alpha_i^2 - 4*beta_i being a non-residue for each of them.
type Params[E comparable] struct {
	Field     fields.Field[E]
	T         int
	D         uint64
	Rounds    int
	RC        [][]E
	AlphaBeta [][2]E

	sbox   permutation.SBox[E]
	affine *linear.Block4[E]
}

func NewParams[E comparable](f fields.Field[E], t int, d uint64, rounds int, rc [][]E, alphaBeta [][2]E) (*Params[E], error) {
	if t != 3 && (t < 4 || t%4 != 0) {
		return nil, permutation.Invalid("griffin width %d", t)
	}
	if rounds < 1 {
		return nil, permutation.Invalid("griffin with %d rounds", rounds)
	}
	sbox, err := permutation.NewSBox(f, d)
	if err != nil {
		return nil, err
	}
	affine, err := linear.NewGriffinBlock4(f, t)
	if err != nil {
		return nil, permutation.Invalid("%v", err)
	}

	if len(rc) != rounds-1 {
		return nil, permutation.Invalid("%d griffin constant rows for %d rounds", len(rc), rounds)
	}
	rows := make([][]E, len(rc))
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("griffin constant row %d of length %d", i, len(row))
		}
		rows[i] = append([]E(nil), row...)
	}

	if len(alphaBeta) != t-2 {
		return nil, permutation.Invalid("%d griffin coefficient pairs for width %d", len(alphaBeta), t)
	}
	four := f.FromUint64(4)
	for i, ab := range alphaBeta {
		disc := f.Sub(f.Square(ab[0]), f.Mul(four, ab[1]))
		if fields.Legendre(f, disc) != -1 {
			return nil, permutation.Invalid("griffin pair %d has a root", i)
		}
	}

	return &Params[E]{
		Field:     f,
		T:         t,
		D:         d,
		Rounds:    rounds,
		RC:        rows,
		AlphaBeta: append([][2]E(nil), alphaBeta...),
		sbox:      sbox,
		affine:    affine,
	}, nil
}

// GenerateParams reads the round constants and then the coefficient pairs
// from a SHAKE128 stream labelled "Griffin".
//
// The first pair (alpha, beta) is drawn with both entries non-zero and
// distinct until alpha^2 - 4*beta is a non-residue; pair i then is
// (alpha*(i+1), beta*(i+1)^2), counting pairs from 0, which keeps the
// discriminant a non-residue.
func GenerateParams[E comparable](f fields.Field[E], t int, d uint64, rounds int) (*Params[E], error) {
	if rounds < 1 || t < 3 {
		return nil, permutation.Invalid("griffin width %d with %d rounds", t, rounds)
	}
	shake := fields.NewShake(f, "Griffin")

	rc := make([][]E, rounds-1)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, t)
	}

	four := f.FromUint64(4)
	alphaBeta := make([][2]E, 0, t-2)
	for {
		alpha := fields.FromShakeNonZero(f, shake)
		beta := fields.FromShakeNonZero(f, shake)
		for alpha == beta {
			beta = fields.FromShakeNonZero(f, shake)
		}
		if fields.Legendre(f, f.Sub(f.Square(alpha), f.Mul(four, beta))) == -1 {
			alphaBeta = append(alphaBeta, [2]E{alpha, beta})
			break
		}
	}
	for i := 2; i < t-1; i++ {
		alpha := f.Mul(alphaBeta[0][0], f.FromUint64(uint64(i)))
		beta := f.Mul(alphaBeta[0][1], f.FromUint64(uint64(i*i)))
		for alpha == beta {
			beta = fields.FromShakeNonZero(f, shake)
		}
		alphaBeta = append(alphaBeta, [2]E{alpha, beta})
	}

	return NewParams(f, t, d, rounds, rc, alphaBeta)
}

// SBox returns the power map of the first two words.
func (p *Params[E]) SBox() permutation.SBox[E] { return p.sbox }

// Affine returns the linear part of the affine layer.
func (p *Params[E]) Affine() linear.Layer[E] { return p.affine }

// Published instances.
const (
	PairingRounds    = 12
	PairingDegree    = 5
	GoldilocksRounds = 8
	GoldilocksDegree = 7
)

// NewBN254Params is the width 3 instance over the BN254 scalar field.
func NewBN254Params() (*Params[bnfr.Element], error) {
	return GenerateParams[bnfr.Element](fields.NewBN254(), 3, PairingDegree, PairingRounds)
}

// NewBLS12381Params is the width 3 instance over the BLS12-381 scalar field.
func NewBLS12381Params() (*Params[blsfr.Element], error) {
	return GenerateParams[blsfr.Element](fields.NewBLS12381(), 3, PairingDegree, PairingRounds)
}

// NewGoldilocksParams is the Goldilocks instance of width 8 or 12.
func NewGoldilocksParams(t int) (*Params[uint64], error) {
	if t != 8 && t != 12 {
		return nil, permutation.Invalid("no goldilocks griffin instance of width %d", t)
	}
	return GenerateParams[uint64](fields.NewGoldilocks(), t, GoldilocksDegree, GoldilocksRounds)
}
