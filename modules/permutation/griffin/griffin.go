// Package griffin implements the Griffin permutation: a Horst-style
// nonlinear layer (x^(1/d) on word 0, x^d on word 1, quadratic multipliers
// on the rest) followed by a structured affine layer.
package griffin

import (
	"AlgebraicPermutations/modules/permutation"
)

type Griffin[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Griffin[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil griffin parameters")
	}
	return &Griffin[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (g *Griffin[E]) Width() int { return g.params.T }

func (g *Griffin[E]) Params() *Params[E] { return g.params }

// Permutation starts with a constant-free affine layer, then runs Rounds
// times the nonlinear layer followed by the affine layer.
func (g *Griffin[E]) Permutation(input []E) []E {
	p := g.params
	state := permutation.CopyState(p.T, input)

	state = g.affine(state, p.Rounds)
	for r := 0; r < p.Rounds; r++ {
		state = g.nonLinear(state)
		state = g.affine(state, r)
		g.opts.Trace(r, state)
	}
	return state
}

// affine applies the linear layer and adds the constants of the given
// round, if it has any.
func (g *Griffin[E]) affine(state []E, round int) []E {
	p := g.params
	f := p.Field
	res := p.affine.Apply(state)
	if round < p.Rounds-1 {
		for i, c := range p.RC[round] {
			res[i] = f.Add(res[i], c)
		}
	}
	return res
}

// nonLinear computes y0 = x0^(1/d), y1 = x1^d and
//
//	y_i = x_i * (L_i^2 + alpha_i*L_i + beta_i), i >= 2
//
// with L_2 = y0 + y1 and L_i = (i-1)*y0 + y1 + x_{i-1} beyond.
func (g *Griffin[E]) nonLinear(state []E) []E {
	p := g.params
	f := p.Field
	res := append([]E(nil), state...)

	res[0] = p.sbox.Inverse(state[0])
	res[1] = p.sbox.Forward(state[1])

	y0 := res[0]
	acc := f.Add(y0, res[1])
	for i, ab := range p.AlphaBeta {
		l := acc
		if i > 0 {
			acc = f.Add(acc, y0)
			l = f.Add(acc, state[i+1])
		}
		factor := f.Add(f.Add(f.Square(l), f.Mul(ab[0], l)), ab[1])
		res[i+2] = f.Mul(res[i+2], factor)
	}
	return res
}
