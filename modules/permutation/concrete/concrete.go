// Package concrete implements ReinforcedConcrete, a width 3 permutation
// mixing low-degree Bricks rounds with one lookup-based Bars round.
package concrete

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
)

type ReinforcedConcrete[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*ReinforcedConcrete[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil reinforced concrete parameters")
	}
	return &ReinforcedConcrete[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (rc *ReinforcedConcrete[E]) Width() int { return T }

func (rc *ReinforcedConcrete[E]) Params() *Params[E] { return rc.params }

// Permutation runs Concrete, three Bricks rounds, Bars, and three more
// Bricks rounds, each followed by Concrete.
func (rc *ReinforcedConcrete[E]) Permutation(input []E) []E {
	state := permutation.CopyState(T, input)
	state = rc.Concrete(state, 0)
	rc.opts.Trace(0, state)

	for i := 1; i <= PreRounds; i++ {
		state = rc.Concrete(rc.Bricks(state), i)
		rc.opts.Trace(i, state)
	}

	state = rc.Concrete(rc.Bars(state), PreRounds+1)
	rc.opts.Trace(PreRounds+1, state)

	for i := PreRounds + 2; i <= TotalRounds; i++ {
		state = rc.Concrete(rc.Bricks(state), i)
		rc.opts.Trace(i, state)
	}
	return state
}

// Concrete adds the sum of the state and the round constants to every word.
func (rc *ReinforcedConcrete[E]) Concrete(state []E, round int) []E {
	f := rc.params.Field
	sum := fields.Sum(f, state)
	res := make([]E, T)
	for i := range state {
		res[i] = f.Add(f.Add(state[i], sum), rc.params.RC[round][i])
	}
	return res
}

// Bricks maps (x0, x1, x2) to
// (x0^d, (x0^2 + a0*x0 + b0)*x1, (x1^2 + a1*x1 + b1)*x2).
func (rc *ReinforcedConcrete[E]) Bricks(state []E) []E {
	p := rc.params
	f := p.Field
	res := make([]E, T)
	res[0] = permutation.PowSmall(f, state[0], p.D)
	for i := 0; i < 2; i++ {
		x := state[i]
		alpha := f.FromUint64(uint64(p.Alphas[i]))
		quad := f.Add(f.Add(f.Square(x), f.Mul(alpha, x)), p.Betas[i])
		res[i+1] = f.Mul(quad, state[i+1])
	}
	return res
}

// Bars decomposes every word in the radix sequence, substitutes each digit
// and composes again.
func (rc *ReinforcedConcrete[E]) Bars(state []E) []E {
	p := rc.params
	res := make([]E, T)
	for i, x := range state {
		digits := fields.DecomposeElement(p.Field, p.decomposer, x)
		for j, d := range digits {
			digits[j] = p.sbox[d]
		}
		e, err := fields.ComposeElement(p.Field, p.decomposer, digits)
		if err != nil {
			panic(fmt.Errorf("bars left the field: %w", err))
		}
		res[i] = e
	}
	return res
}
