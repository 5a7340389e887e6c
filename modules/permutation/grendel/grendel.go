// Package grendel implements Grendel, a substitution-permutation network
// whose s-box x -> x^d * (x/p) multiplies a small power with the Legendre
// symbol of its input.
package grendel

import (
	"AlgebraicPermutations/modules/permutation"
)

type Grendel[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Grendel[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil grendel parameters")
	}
	return &Grendel[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (g *Grendel[E]) Width() int { return g.params.T }

func (g *Grendel[E]) Params() *Params[E] { return g.params }

// sbox returns x^d for squares, -x^d for non-squares and zero for zero.
// x^((p-1)/2) is the Legendre symbol as a field element.
func (g *Grendel[E]) sbox(x E) E {
	f := g.params.Field
	return f.Mul(permutation.PowSmall(f, x, g.params.D), f.Exp(x, g.params.half))
}

func (g *Grendel[E]) Permutation(input []E) []E {
	params := g.params
	f := params.Field
	state := permutation.CopyState(params.T, input)

	for r := 0; r < params.Rounds; r++ {
		for i := range state {
			state[i] = g.sbox(state[i])
		}
		state = params.dense.Apply(state)
		for i := range state {
			state[i] = f.Add(state[i], params.RC[r][i])
		}
		g.opts.Trace(r, state)
	}
	return state
}
