// Package monolith implements the Monolith permutations over Mersenne31 and
// Goldilocks. A round is bars (a lookup-friendly bitwise map on the first
// few words), bricks (x_i += x_{i-1}^2) and concrete (a circulant layer plus
// constants).
package monolith

import (
	"AlgebraicPermutations/modules/permutation"
)

type Monolith[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Monolith[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil monolith parameters")
	}
	return &Monolith[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (m *Monolith[E]) Width() int { return m.params.T }

func (m *Monolith[E]) Params() *Params[E] { return m.params }

// Permutation evaluates the bars with the bitwise formula.
func (m *Monolith[E]) Permutation(input []E) []E {
	return m.run(input, m.params.variant.bar)
}

// PermutationLookup evaluates the bars through the 16-bit lookup tables.
func (m *Monolith[E]) PermutationLookup(input []E) []E {
	return m.run(input, m.params.variant.barLookup)
}

func (m *Monolith[E]) run(input []E, bar func(uint64) uint64) []E {
	p := m.params
	state := permutation.CopyState(p.T, input)

	state = p.concrete.Apply(state)
	for r := 0; r < Rounds; r++ {
		m.bars(state, bar)
		m.bricks(state)
		state = m.concrete(state, r)
		m.opts.Trace(r, state)
	}
	return state
}

func (m *Monolith[E]) bars(state []E, bar func(uint64) uint64) {
	f := m.params.Field
	for i := 0; i < m.params.Bars; i++ {
		state[i] = f.FromUint64(bar(f.Limbs(state[i])[0]))
	}
}

// bricks runs top down so every square is taken of a word before its own
// update.
func (m *Monolith[E]) bricks(state []E) {
	f := m.params.Field
	for i := len(state) - 1; i > 0; i-- {
		state[i] = f.Add(state[i], f.Square(state[i-1]))
	}
}

func (m *Monolith[E]) concrete(state []E, round int) []E {
	p := m.params
	f := p.Field
	res := p.concrete.Apply(state)
	if round < len(p.RC) {
		for i, c := range p.RC[round] {
			res[i] = f.Add(res[i], c)
		}
	}
	return res
}

// Compress is the two-to-one hash with feed-forward: left and right fill
// the state and the first half of the output is added to left.
func (m *Monolith[E]) Compress(left, right []E) []E {
	f := m.params.Field
	half := m.params.T / 2
	if len(left) != half || len(right) != half {
		panic(permutation.Invalid("monolith compression of %d and %d elements at width %d", len(left), len(right), m.params.T))
	}
	out := m.Permutation(append(append([]E(nil), left...), right...))
	res := make([]E, half)
	for i := range res {
		res[i] = f.Add(left[i], out[i])
	}
	return res
}
