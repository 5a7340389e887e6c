// Package poseidon implements the Poseidon permutation: full rounds apply
// the S-box to every word, the partial rounds in the middle only to the
// first word.
package poseidon

import (
	"AlgebraicPermutations/modules/permutation"
)

type Poseidon[E comparable] struct {
	params *Params[E]
	opts   permutation.Options[E]
}

// New builds an engine over validated parameters.
func New[E comparable](params *Params[E], opts ...permutation.Option[E]) (*Poseidon[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil poseidon parameters")
	}
	return &Poseidon[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (p *Poseidon[E]) Width() int { return p.params.T }

func (p *Poseidon[E]) Params() *Params[E] { return p.params }

// Permutation runs the fast path when the instance has one. With a tracer
// installed it runs the reference path so the traced states are the
// round outputs of the textbook description.
func (p *Poseidon[E]) Permutation(input []E) []E {
	if p.params.opt == nil || p.opts.Tracing() {
		return p.PermutationReference(input)
	}
	return p.permutationOptimized(input)
}

// PermutationReference runs every round with the dense matrix.
func (p *Poseidon[E]) PermutationReference(input []E) []E {
	params := p.params
	state := permutation.CopyState(params.T, input)

	partialBegin := params.RoundsFBeginning
	partialEnd := partialBegin + params.RoundsP
	for r := 0; r < params.Rounds; r++ {
		full := r < partialBegin || r >= partialEnd
		state = p.addRC(state, params.RC[r])
		if params.Order == LinearFirst {
			state = params.dense.Apply(state)
			p.sbox(state, full)
		} else {
			p.sbox(state, full)
			state = params.dense.Apply(state)
		}
		p.opts.Trace(r, state)
	}
	return state
}

func (p *Poseidon[E]) permutationOptimized(input []E) []E {
	params := p.params
	f := params.Field
	state := permutation.CopyState(params.T, input)
	rc := params.opt.RC

	r := 0
	for ; r < params.RoundsFBeginning; r++ {
		state = p.addRC(state, rc[r])
		p.sbox(state, true)
		state = params.dense.Apply(state)
	}

	state = p.addRC(state, rc[r])
	state = params.mI.Apply(state)
	for k := 0; k < params.RoundsP; k++ {
		state[0] = params.sbox.Forward(state[0])
		if k < params.RoundsP-1 {
			state[0] = f.Add(state[0], rc[r+k+1][0])
		}
		state = params.sparse[k].Apply(state)
	}
	r += params.RoundsP

	for ; r < params.Rounds; r++ {
		state = p.addRC(state, rc[r])
		p.sbox(state, true)
		state = params.dense.Apply(state)
	}
	return state
}

func (p *Poseidon[E]) addRC(state, rc []E) []E {
	f := p.params.Field
	for i := range state {
		state[i] = f.Add(state[i], rc[i])
	}
	return state
}

func (p *Poseidon[E]) sbox(state []E, full bool) {
	if !full {
		state[0] = p.params.sbox.Forward(state[0])
		return
	}
	for i := range state {
		state[i] = p.params.sbox.Forward(state[i])
	}
}
