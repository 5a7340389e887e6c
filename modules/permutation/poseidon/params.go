package poseidon

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
)

// RoundOrder selects where the linear layer sits inside a round.
type RoundOrder int

const (
	// SBoxFirst is the usual Poseidon round: constants, S-box, linear layer.
	SBoxFirst RoundOrder = iota
	// LinearFirst adds constants, applies the linear layer and then the
	// S-box, as in the Mersenne31 width 16 transcript hash.
	LinearFirst
)

func (o RoundOrder) String() string {
	if o == LinearFirst {
		return "linear-first"
	}
	return "sbox-first"
}

// Optimized are the coefficients of the partial-round fast path: the round
// constants folded forward through the linear layer, the pre-matrix M_i and
// the per-round low-rank factors.
type Optimized[E comparable] struct {
	RC   [][]E
	MI   linear.Matrix[E]
	WHat [][]E
	V    [][]E
}

// Params is one Poseidon instance. It is immutable once built and meant to
// be shared by pointer.
type Params[E comparable] struct {
	Field            fields.Field[E]
	T                int
	D                uint64
	RoundsFBeginning int
	RoundsP          int
	RoundsFEnd       int
	Rounds           int
	MDS              linear.Matrix[E]
	RC               [][]E
	Order            RoundOrder

	sbox  permutation.SBox[E]
	dense *linear.Dense[E]

	opt    *Optimized[E]
	mI     *linear.Dense[E]
	sparse []*linear.Cheap[E]
}

// NewParams validates an instance and derives the partial-round fast path
// from the MDS matrix and round constants. RF full rounds are split evenly
// around the RP partial rounds.
func NewParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int, mds linear.Matrix[E], rc [][]E) (*Params[E], error) {
	return NewParamsWithOrder(f, t, d, rf, rp, mds, rc, SBoxFirst)
}

// NewParamsWithOrder is NewParams for a chosen round order. Only the
// SBoxFirst order has a partial-round fast path.
func NewParamsWithOrder[E comparable](f fields.Field[E], t int, d uint64, rf, rp int, mds linear.Matrix[E], rc [][]E, order RoundOrder) (*Params[E], error) {
	p, err := newParams(f, t, d, rf, rp, mds, rc, order)
	if err != nil {
		return nil, err
	}
	if order == SBoxFirst && rp > 0 {
		opt, err := p.deriveOptimized()
		if err != nil {
			return nil, err
		}
		if err := p.setOptimized(opt); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewParamsPrecomputed takes externally supplied fast-path coefficients
// instead of deriving them.
func NewParamsPrecomputed[E comparable](f fields.Field[E], t int, d uint64, rf, rp int, mds linear.Matrix[E], rc [][]E, opt *Optimized[E]) (*Params[E], error) {
	p, err := newParams(f, t, d, rf, rp, mds, rc, SBoxFirst)
	if err != nil {
		return nil, err
	}
	if rp > 0 {
		if opt == nil {
			return nil, permutation.Invalid("missing optimized coefficients for %d partial rounds", rp)
		}
		if err := p.setOptimized(opt); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int, mds linear.Matrix[E], rc [][]E, order RoundOrder) (*Params[E], error) {
	if t < 2 {
		return nil, permutation.Invalid("poseidon width %d", t)
	}
	if rf < 2 || rf%2 != 0 || rp < 0 {
		return nil, permutation.Invalid("poseidon rounds RF=%d RP=%d", rf, rp)
	}
	sbox, err := permutation.NewSBox(f, d)
	if err != nil {
		return nil, err
	}
	if mds.Rows() != t || !mds.IsSquare() {
		return nil, permutation.Invalid("mds of %dx%d for width %d", mds.Rows(), mds.Cols(), t)
	}
	if !mds.IsInvertible(f) {
		return nil, permutation.Invalid("singular mds")
	}
	rounds := rf + rp
	if len(rc) != rounds {
		return nil, permutation.Invalid("%d round constant rows for %d rounds", len(rc), rounds)
	}
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("round constant row %d has %d elements", i, len(row))
		}
	}
	dense, err := linear.NewDense(f, mds)
	if err != nil {
		return nil, err
	}

	p := &Params[E]{
		Field:            f,
		T:                t,
		D:                d,
		RoundsFBeginning: rf / 2,
		RoundsP:          rp,
		RoundsFEnd:       rf / 2,
		Rounds:           rounds,
		MDS:              mds.Clone(),
		RC:               make([][]E, rounds),
		Order:            order,
		sbox:             sbox,
		dense:            dense,
	}
	for i := range rc {
		p.RC[i] = append([]E(nil), rc[i]...)
	}
	return p, nil
}

// Optimized returns the fast-path coefficients, nil when the instance has
// none.
func (p *Params[E]) Optimized() *Optimized[E] {
	if p.opt == nil {
		return nil
	}
	res := &Optimized[E]{
		RC:   make([][]E, len(p.opt.RC)),
		MI:   p.opt.MI.Clone(),
		WHat: make([][]E, len(p.opt.WHat)),
		V:    make([][]E, len(p.opt.V)),
	}
	for i := range p.opt.RC {
		res.RC[i] = append([]E(nil), p.opt.RC[i]...)
	}
	for i := range p.opt.WHat {
		res.WHat[i] = append([]E(nil), p.opt.WHat[i]...)
		res.V[i] = append([]E(nil), p.opt.V[i]...)
	}
	return res
}

func (p *Params[E]) setOptimized(opt *Optimized[E]) error {
	f := p.Field
	if len(opt.RC) != p.Rounds {
		return permutation.Invalid("%d optimized round constant rows for %d rounds", len(opt.RC), p.Rounds)
	}
	for i, row := range opt.RC {
		if len(row) != p.T {
			return permutation.Invalid("optimized round constant row %d has %d elements", i, len(row))
		}
	}
	if len(opt.WHat) != p.RoundsP || len(opt.V) != p.RoundsP {
		return permutation.Invalid("%d/%d sparse factors for %d partial rounds", len(opt.WHat), len(opt.V), p.RoundsP)
	}
	mI, err := linear.NewDense(f, opt.MI)
	if err != nil {
		return err
	}
	if mI.Width() != p.T {
		return permutation.Invalid("pre-matrix of width %d", mI.Width())
	}

	sparse := make([]*linear.Cheap[E], p.RoundsP)
	for k := range sparse {
		if len(opt.WHat[k]) != p.T-1 || len(opt.V[k]) != p.T-1 {
			return permutation.Invalid("sparse factor %d has the wrong length", k)
		}
		sparse[k], err = linear.NewCheap(f, p.MDS[0][0], opt.WHat[k], opt.V[k])
		if err != nil {
			return err
		}
	}
	p.opt = opt
	p.mI = mI
	p.sparse = sparse
	return nil
}

// deriveOptimized factors the partial rounds. Constants are pushed forward:
// the constants of partial round i+1 are moved in front of the linear layer
// of round i, where all but the first word merge into round i's constants.
// Matrices are peeled from the last partial round backwards: each effective
// matrix splits as S * diag(1, X) with S sparse, and diag(1, X) commutes with
// the single-word S-box and folds into the preceding matrix.
func (p *Params[E]) deriveOptimized() (*Optimized[E], error) {
	f := p.Field
	t := p.T
	begin := p.RoundsFBeginning
	rp := p.RoundsP

	mdsInv, err := p.MDS.Inverse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: mds: %w", permutation.ErrInvalidConfiguration, err)
	}

	rc := make([][]E, p.Rounds)
	for i := range p.RC {
		rc[i] = append([]E(nil), p.RC[i]...)
	}
	for i := begin + rp - 2; i >= begin; i-- {
		moved := mdsInv.MulVec(f, rc[i+1])
		for j := 1; j < t; j++ {
			rc[i][j] = f.Add(rc[i][j], moved[j])
		}
		rc[i+1] = fields.Zeroes(f, t)
		rc[i+1][0] = moved[0]
	}

	wHat := make([][]E, rp)
	v := make([][]E, rp)
	eff := p.MDS.Clone()
	var mI linear.Matrix[E]
	for k := rp - 1; k >= 0; k-- {
		x := eff.Submatrix(1, t, 1, t)
		xInv, err := x.Inverse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: partial round %d: %w", permutation.ErrInvalidConfiguration, k, err)
		}
		wHat[k] = xInv.VecMul(f, eff[0][1:])
		v[k] = make([]E, t-1)
		for i := 1; i < t; i++ {
			v[k][i-1] = eff[i][0]
		}

		block := linear.Identity(f, t)
		for i := 1; i < t; i++ {
			copy(block[i][1:], x[i-1])
		}
		if k == 0 {
			mI = block
		} else {
			eff = block.Mul(f, p.MDS)
		}
	}
	return &Optimized[E]{RC: rc, MI: mI, WHat: wHat, V: v}, nil
}
