// Package poseidon2 implements Poseidon2, Poseidon with cheap external
// (4x4 block) and internal (diagonal plus all-ones) linear layers.
package poseidon2

import (
	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
)

type Params[E comparable] struct {
	Field            fields.Field[E]
	T                int
	D                uint64
	RoundsFBeginning int
	RoundsP          int
	RoundsFEnd       int
	Rounds           int
	// MatInternalDiagM1 is the internal diagonal minus one.
	MatInternalDiagM1 []E
	// RC has one row per round; partial rounds only use the first entry.
	RC [][]E

	sbox     permutation.SBox[E]
	external *linear.Block4[E]
	internal *linear.DiagonalPlusSum[E]
}

func NewParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int, diagM1 []E, rc [][]E) (*Params[E], error) {
	if rf < 2 || rf%2 != 0 || rp < 0 {
		return nil, permutation.Invalid("poseidon2 rounds RF=%d RP=%d", rf, rp)
	}
	sbox, err := permutation.NewSBox(f, d)
	if err != nil {
		return nil, err
	}
	external, err := linear.NewBlock4(f, t)
	if err != nil {
		return nil, permutation.Invalid("poseidon2 external layer: %v", err)
	}
	internal, err := linear.NewDiagonalPlusSum(f, t, diagM1)
	if err != nil {
		return nil, permutation.Invalid("poseidon2 internal layer: %v", err)
	}
	if !linear.AsMatrix[E](f, internal).IsInvertible(f) {
		return nil, permutation.Invalid("singular poseidon2 internal layer")
	}
	rounds := rf + rp
	if len(rc) != rounds {
		return nil, permutation.Invalid("%d round constant rows for %d rounds", len(rc), rounds)
	}
	p := &Params[E]{
		Field:            f,
		T:                t,
		D:                d,
		RoundsFBeginning: rf / 2,
		RoundsP:          rp,
		RoundsFEnd:       rf / 2,
		Rounds:           rounds,
		RC:               make([][]E, rounds),
		sbox:             sbox,
		external:         external,
		internal:         internal,
	}
	if t > 3 {
		p.MatInternalDiagM1 = append([]E(nil), diagM1...)
	}
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("round constant row %d has %d elements", i, len(row))
		}
		p.RC[i] = append([]E(nil), row...)
	}
	return p, nil
}

// GenerateParams derives round constants and, for widths above 3, the
// internal diagonal from a SHAKE128 stream labelled "Poseidon2". Diagonals
// giving a singular internal matrix are resampled.
func GenerateParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int) (*Params[E], error) {
	shake := fields.NewShake(f, "Poseidon2")
	rc := make([][]E, rf+rp)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, t)
	}
	if t <= 3 {
		return NewParams(f, t, d, rf, rp, nil, rc)
	}

	for {
		diag := make([]E, t)
		for i := range diag {
			diag[i] = fields.FromShakeNonZero(f, shake)
		}
		layer, err := linear.NewDiagonalPlusSum(f, t, diag)
		if err != nil {
			return nil, err
		}
		if linear.AsMatrix[E](f, layer).IsInvertible(f) {
			return NewParams(f, t, d, rf, rp, diag, rc)
		}
	}
}

type Poseidon2[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Poseidon2[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil poseidon2 parameters")
	}
	return &Poseidon2[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (p *Poseidon2[E]) Width() int { return p.params.T }

func (p *Poseidon2[E]) Params() *Params[E] { return p.params }

func (p *Poseidon2[E]) Permutation(input []E) []E {
	params := p.params
	f := params.Field
	state := permutation.CopyState(params.T, input)

	state = params.external.Apply(state)

	partialEnd := params.RoundsFBeginning + params.RoundsP
	for r := 0; r < params.Rounds; r++ {
		if r >= params.RoundsFBeginning && r < partialEnd {
			state[0] = params.sbox.Forward(f.Add(state[0], params.RC[r][0]))
			state = params.internal.Apply(state)
		} else {
			for i := range state {
				state[i] = params.sbox.Forward(f.Add(state[i], params.RC[r][i]))
			}
			state = params.external.Apply(state)
		}
		p.opts.Trace(r, state)
	}
	return state
}
