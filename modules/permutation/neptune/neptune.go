// Package neptune implements Neptune, a Poseidon variant whose external
// rounds replace the power s-boxes by a quadratic Lai-Massey map on pairs
// of state words.
package neptune

import (
	"AlgebraicPermutations/modules/permutation"
)

type Neptune[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Neptune[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil neptune parameters")
	}
	return &Neptune[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (n *Neptune[E]) Width() int { return n.params.T }

func (n *Neptune[E]) Params() *Params[E] { return n.params }

// pair maps (x1, x2) with z = x1 - x2 and w = z - x2 - z^2 + gamma to
//
//	y1 = 2x1 + x2 + 3z^2 + w^2
//	y2 = x1 + 3x2 + 4z^2 + w^2
func (n *Neptune[E]) pair(x1, x2 E) (E, E) {
	f := n.params.Field
	z := f.Sub(x1, x2)
	z2 := f.Square(z)
	w := f.Add(f.Sub(f.Sub(z, x2), z2), n.params.Gamma)
	w2 := f.Square(w)

	sum := f.Add(x1, x2)
	y1 := f.Add(f.Add(f.Add(sum, x1), f.Add(f.Double(z2), z2)), w2)
	y2 := f.Add(f.Add(f.Add(sum, f.Double(x2)), f.Double(f.Double(z2))), w2)
	return y1, y2
}

func (n *Neptune[E]) addRoundConstants(state []E, r int) {
	f := n.params.Field
	for i := range state {
		state[i] = f.Add(state[i], n.params.RC[r][i])
	}
}

func (n *Neptune[E]) Permutation(input []E) []E {
	params := n.params
	state := permutation.CopyState(params.T, input)

	state = params.external.Apply(state)

	partialEnd := params.RoundsFBeginning + params.RoundsP
	for r := 0; r < params.Rounds; r++ {
		if r >= params.RoundsFBeginning && r < partialEnd {
			state[0] = params.sbox.Forward(state[0])
			state = params.internal.Apply(state)
		} else {
			for i := 0; i < params.T; i += 2 {
				state[i], state[i+1] = n.pair(state[i], state[i+1])
			}
			state = params.external.Apply(state)
		}
		n.addRoundConstants(state, r)
		n.opts.Trace(r, state)
	}
	return state
}
