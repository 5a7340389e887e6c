package neptune

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

type Params[E comparable] struct {
	Field            fields.Field[E]
	T                int
	D                uint64
	RoundsFBeginning int
	RoundsP          int
	RoundsFEnd       int
	Rounds           int
	// MDS is the external matrix, applied once before the first round and
	// after every external s-box layer.
	MDS linear.Matrix[E]
	// MatInternalDiagM1 is the internal diagonal minus one.
	MatInternalDiagM1 []E
	// Gamma is the constant of the external pair s-box, never zero.
	Gamma E
	// RC has one full row per round.
	RC [][]E

	sbox     permutation.SBox[E]
	external *linear.Dense[E]
	internal *linear.DiagonalPlusSum[E]
}

func NewParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int, mds linear.Matrix[E], diagM1 []E, gamma E, rc [][]E) (*Params[E], error) {
	if t < 4 || t%2 != 0 {
		return nil, permutation.Invalid("neptune width %d is not an even number from 4", t)
	}
	if rf < 2 || rf%2 != 0 || rp < 0 {
		return nil, permutation.Invalid("neptune rounds RF=%d RP=%d", rf, rp)
	}
	if f.IsZero(gamma) {
		return nil, permutation.Invalid("zero neptune gamma")
	}
	sbox, err := permutation.NewSBox(f, d)
	if err != nil {
		return nil, err
	}
	if mds.Rows() != t || !mds.IsSquare() || !mds.IsInvertible(f) {
		return nil, permutation.Invalid("neptune external matrix of %dx%d is not an invertible %dx%d matrix", mds.Rows(), mds.Cols(), t, t)
	}
	external, err := linear.NewDense(f, mds)
	if err != nil {
		return nil, err
	}
	internal, err := linear.NewDiagonalPlusSum(f, t, diagM1)
	if err != nil {
		return nil, permutation.Invalid("neptune internal layer: %v", err)
	}
	if !linear.AsMatrix[E](f, internal).IsInvertible(f) {
		return nil, permutation.Invalid("singular neptune internal layer")
	}
	rounds := rf + rp
	if len(rc) != rounds {
		return nil, permutation.Invalid("%d round constant rows for %d rounds", len(rc), rounds)
	}

	p := &Params[E]{
		Field:             f,
		T:                 t,
		D:                 d,
		RoundsFBeginning:  rf / 2,
		RoundsP:           rp,
		RoundsFEnd:        rf / 2,
		Rounds:            rounds,
		MDS:               mds.Clone(),
		MatInternalDiagM1: append([]E(nil), diagM1...),
		Gamma:             gamma,
		RC:                make([][]E, rounds),
		sbox:              sbox,
		external:          external,
		internal:          internal,
	}
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("round constant row %d has %d elements", i, len(row))
		}
		p.RC[i] = append([]E(nil), row...)
	}
	return p, nil
}

// GenerateParams derives the round constants, gamma and the internal
// diagonal, in that order, from a SHAKE128 stream labelled "Neptune".
// Diagonals giving a singular internal matrix are resampled. The external
// matrix is the Cauchy matrix 1/(x_i + y_j), x_i = i, y_j = t + j.
func GenerateParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int) (*Params[E], error) {
	xs := make([]E, t)
	ys := make([]E, t)
	for i := 0; i < t; i++ {
		xs[i] = f.FromUint64(uint64(i))
		ys[i] = f.FromUint64(uint64(t + i))
	}
	mds, err := linear.CauchyMatrix(f, xs, ys)
	if err != nil {
		return nil, fmt.Errorf("neptune external matrix: %w", err)
	}

	shake := fields.NewShake(f, "Neptune")
	rc := make([][]E, rf+rp)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, t)
	}
	gamma := fields.FromShakeNonZero(f, shake)
	for {
		diag := make([]E, t)
		for i := range diag {
			diag[i] = fields.FromShakeNonZero(f, shake)
		}
		layer, err := linear.NewDiagonalPlusSum(f, t, diag)
		if err != nil {
			return nil, permutation.Invalid("neptune internal layer: %v", err)
		}
		if linear.AsMatrix[E](f, layer).IsInvertible(f) {
			return NewParams(f, t, d, rf, rp, mds, diag, gamma, rc)
		}
	}
}

// Width 4 instances over the pairing-friendly scalar fields.
const (
	PairingD  = 5
	PairingRF = 6
	PairingRP = 68
)

// GoldilocksD is the internal s-box degree over Goldilocks; the instances
// have 6 external rounds.
const GoldilocksD = 7

var goldilocksRP = map[int]int{8: 38, 12: 42}

func NewBN254Params() (*Params[bnfr.Element], error) {
	return GenerateParams[bnfr.Element](fields.NewBN254(), 4, PairingD, PairingRF, PairingRP)
}

func NewBLS12381Params() (*Params[blsfr.Element], error) {
	return GenerateParams[blsfr.Element](fields.NewBLS12381(), 4, PairingD, PairingRF, PairingRP)
}

func NewGoldilocksParams(t int) (*Params[uint64], error) {
	rp, ok := goldilocksRP[t]
	if !ok {
		return nil, permutation.Invalid("no neptune goldilocks instance of width %d", t)
	}
	return GenerateParams[uint64](fields.NewGoldilocks(), t, GoldilocksD, 6, rp)
}
