// Package rescue implements the Rescue and Rescue-Prime permutations, whose
// rounds alternate the power map x^d with its inverse x^(1/d).
package rescue

import (
	"AlgebraicPermutations/modules/permutation"
)

// Rescue adds an initial row of constants, then runs rounds of
// x^(1/d), affine, x^d, affine.
type Rescue[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Rescue[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil rescue parameters")
	}
	if len(params.RC) != 2*params.Rounds+1 {
		return nil, permutation.Invalid("rescue needs %d round constant rows, got %d", 2*params.Rounds+1, len(params.RC))
	}
	return &Rescue[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (r *Rescue[E]) Width() int { return r.params.T }

func (r *Rescue[E]) Params() *Params[E] { return r.params }

func (r *Rescue[E]) Permutation(input []E) []E {
	p := r.params
	state := permutation.CopyState(p.T, input)
	addRC(p, state, p.RC[0])

	for round := 0; round < p.Rounds; round++ {
		sboxInverse(p, state)
		state = affine(p, state, 2*round+1)
		sbox(p, state)
		state = affine(p, state, 2*round+2)
		r.opts.Trace(round, state)
	}
	return state
}

// RescuePrime runs rounds of x^d, affine, x^(1/d), affine.
type RescuePrime[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

func NewPrime[E comparable](params *Params[E], opts ...permutation.Option[E]) (*RescuePrime[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil rescue-prime parameters")
	}
	if len(params.RC) != 2*params.Rounds {
		return nil, permutation.Invalid("rescue-prime needs %d round constant rows, got %d", 2*params.Rounds, len(params.RC))
	}
	return &RescuePrime[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (r *RescuePrime[E]) Width() int { return r.params.T }

func (r *RescuePrime[E]) Params() *Params[E] { return r.params }

func (r *RescuePrime[E]) Permutation(input []E) []E {
	p := r.params
	state := permutation.CopyState(p.T, input)

	for round := 0; round < p.Rounds; round++ {
		sbox(p, state)
		state = affine(p, state, 2*round)
		sboxInverse(p, state)
		state = affine(p, state, 2*round+1)
		r.opts.Trace(round, state)
	}
	return state
}

func sbox[E comparable](p *Params[E], state []E) {
	for i := range state {
		state[i] = p.sbox.Forward(state[i])
	}
}

func sboxInverse[E comparable](p *Params[E], state []E) {
	for i := range state {
		state[i] = p.sbox.Inverse(state[i])
	}
}

func affine[E comparable](p *Params[E], state []E, round int) []E {
	res := p.dense.Apply(state)
	addRC(p, res, p.RC[round])
	return res
}

func addRC[E comparable](p *Params[E], state, rc []E) {
	for i := range state {
		state[i] = p.Field.Add(state[i], rc[i])
	}
}
