package rescue

import (
	"fmt"
	"math/big"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
)

// Params is shared by Rescue and Rescue-Prime. Rescue needs 2R + 1 rows of
// round constants (one initial row), Rescue-Prime 2R.
type Params[E comparable] struct {
	Field  fields.Field[E]
	T      int
	D      uint64
	Rounds int
	MDS    linear.Matrix[E]
	RC     [][]E

	sbox  permutation.SBox[E]
	dense *linear.Dense[E]
}

func NewParams[E comparable](f fields.Field[E], t int, d uint64, rounds int, mds linear.Matrix[E], rc [][]E) (*Params[E], error) {
	if t < 2 || rounds < 1 {
		return nil, permutation.Invalid("rescue width %d with %d rounds", t, rounds)
	}
	sbox, err := permutation.NewSBox(f, d)
	if err != nil {
		return nil, err
	}
	if mds.Rows() != t || !mds.IsSquare() || !mds.IsInvertible(f) {
		return nil, permutation.Invalid("rescue mds of %dx%d is not an invertible %dx%d matrix", mds.Rows(), mds.Cols(), t, t)
	}
	dense, err := linear.NewDense(f, mds)
	if err != nil {
		return nil, err
	}
	if len(rc) != 2*rounds && len(rc) != 2*rounds+1 {
		return nil, permutation.Invalid("%d round constant rows for %d rounds", len(rc), rounds)
	}
	p := &Params[E]{
		Field:  f,
		T:      t,
		D:      d,
		Rounds: rounds,
		MDS:    mds.Clone(),
		RC:     make([][]E, len(rc)),
		sbox:   sbox,
		dense:  dense,
	}
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("round constant row %d has %d elements", i, len(row))
		}
		p.RC[i] = append([]E(nil), row...)
	}
	return p, nil
}

// InverseExponent returns d^-1 mod (p - 1).
func (p *Params[E]) InverseExponent() *big.Int { return p.sbox.InverseExponent() }

// GenerateParams derives a Rescue instance (2R + 1 constant rows) from a
// SHAKE128 stream labelled "Rescue", with the Cauchy matrix
// 1/(x_i + y_j), x_i = i, y_j = t + j.
func GenerateParams[E comparable](f fields.Field[E], t int, d uint64, rounds int) (*Params[E], error) {
	xs := make([]E, t)
	ys := make([]E, t)
	for i := 0; i < t; i++ {
		xs[i] = f.FromUint64(uint64(i))
		ys[i] = f.FromUint64(uint64(t + i))
	}
	mds, err := linear.CauchyMatrix(f, xs, ys)
	if err != nil {
		return nil, fmt.Errorf("rescue mds: %w", err)
	}
	shake := fields.NewShake(f, "Rescue")
	rc := make([][]E, 2*rounds+1)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, t)
	}
	return NewParams(f, t, d, rounds, mds, rc)
}

func goldilocksPrimeParams(mdsTable, rcTable [][]uint64) (*Params[uint64], error) {
	f := fields.NewGoldilocks()
	t := len(mdsTable)
	mds := linear.NewMatrix[uint64](f, t, t)
	for i, row := range mdsTable {
		for j, v := range row {
			e, err := f.FromLimbs([]uint64{v})
			if err != nil {
				return nil, fmt.Errorf("mds[%d][%d]: %w", i, j, err)
			}
			mds[i][j] = e
		}
	}
	rc := make([][]uint64, len(rcTable))
	for i, row := range rcTable {
		rc[i] = make([]uint64, len(row))
		for j, v := range row {
			e, err := f.FromLimbs([]uint64{v})
			if err != nil {
				return nil, fmt.Errorf("rc[%d][%d]: %w", i, j, err)
			}
			rc[i][j] = e
		}
	}
	return NewParams[uint64](f, t, 7, 8, mds, rc)
}

// NewPrimeGoldilocks8Params is the published Rescue-Prime instance of width
// 8 over Goldilocks.
func NewPrimeGoldilocks8Params() (*Params[uint64], error) {
	return goldilocksPrimeParams(goldilocksMDS8, goldilocksRC8)
}

// NewPrimeGoldilocks12Params is the published Rescue-Prime instance of
// width 12 over Goldilocks.
func NewPrimeGoldilocks12Params() (*Params[uint64], error) {
	return goldilocksPrimeParams(goldilocksMDS12, goldilocksRC12)
}
