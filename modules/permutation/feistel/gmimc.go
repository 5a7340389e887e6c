package feistel

import (
	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
)

// GMiMCParams is a GMiMC instance of width T.
type GMiMCParams[E comparable] struct {
	Field  fields.Field[E]
	T      int
	D      uint64
	Rounds int
	RC     []E
}

func NewGMiMCParams[E comparable](f fields.Field[E], t int, d uint64, rc []E) (*GMiMCParams[E], error) {
	if t < 2 {
		return nil, permutation.Invalid("gmimc width %d", t)
	}
	if _, err := permutation.NewSBox(f, d); err != nil {
		return nil, err
	}
	if len(rc) == 0 {
		return nil, permutation.Invalid("gmimc without rounds")
	}
	return &GMiMCParams[E]{Field: f, T: t, D: d, Rounds: len(rc), RC: append([]E(nil), rc...)}, nil
}

// GenerateGMiMCParams derives the round constants from a SHAKE128 stream
// labelled "GMiMC".
func GenerateGMiMCParams[E comparable](f fields.Field[E], t int, d uint64, rounds int) (*GMiMCParams[E], error) {
	if rounds < 1 {
		return nil, permutation.Invalid("gmimc with %d rounds", rounds)
	}
	return NewGMiMCParams(f, t, d, fields.ShakeVector(f, fields.NewShake(f, "GMiMC"), rounds))
}

// GMiMCBN254Rounds maps the width of the published BN254 instances (d = 5)
// to their number of rounds.
var GMiMCBN254Rounds = map[int]int{3: 226, 4: 228, 5: 230, 8: 236, 9: 238, 12: 314, 16: 546, 20: 842, 24: 1202}

// gmimcOptThreshold is the width from which the accumulator form is used.
const gmimcOptThreshold = 8

type GMiMC[E comparable] struct {
	params *GMiMCParams[E]
	opts   permutation.Options[E]
}

func NewGMiMC[E comparable](params *GMiMCParams[E], opts ...permutation.Option[E]) (*GMiMC[E], error) {
	if params == nil {
		return nil, permutation.Invalid("nil gmimc parameters")
	}
	return &GMiMC[E]{params: params, opts: permutation.NewOptions(opts...)}, nil
}

func (g *GMiMC[E]) Width() int { return g.params.T }

func (g *GMiMC[E]) Params() *GMiMCParams[E] { return g.params }

func (g *GMiMC[E]) Permutation(input []E) []E {
	if g.params.T < gmimcOptThreshold || g.opts.Tracing() {
		return g.PermutationPlain(input)
	}
	return g.PermutationOptimized(input)
}

func (g *GMiMC[E]) power(x E, round int) E {
	f := g.params.Field
	return permutation.PowSmall(f, f.Add(x, g.params.RC[round]), g.params.D)
}

// PermutationPlain adds p = (x0 + c_r)^d to every word but the first and
// rotates the state right by one, except after the last round.
func (g *GMiMC[E]) PermutationPlain(input []E) []E {
	p := g.params
	f := p.Field
	state := permutation.CopyState(p.T, input)

	for r := 0; r < p.Rounds; r++ {
		power := g.power(state[0], r)
		for i := 1; i < p.T; i++ {
			state[i] = f.Add(state[i], power)
		}
		if r < p.Rounds-1 {
			rotateRight(state)
		}
		g.opts.Trace(r, state)
	}
	return state
}

// PermutationOptimized delays the additions: a word that was rotated in
// receives the sum of the last T-1 powers only when it reaches position 0,
// tracked by a running accumulator over a queue of those powers.
func (g *GMiMC[E]) PermutationOptimized(input []E) []E {
	p := g.params
	f := p.Field
	t := p.T
	state := permutation.CopyState(t, input)

	acc := f.Zero()
	queue := fields.Zeroes(f, t-1)
	push := func(power E) {
		rotateRight(queue)
		acc = f.Sub(acc, queue[0])
		queue[0] = power
		acc = f.Add(acc, power)
	}

	for r := 0; r < p.Rounds-1; r++ {
		push(g.power(state[0], r))
		rotateRight(state)
		state[0] = f.Add(state[0], acc)
	}

	push(g.power(state[0], p.Rounds-1))
	state[t-1] = f.Add(state[t-1], acc)
	for i := t - 2; i > 0; i-- {
		rotateRight(queue)
		acc = f.Sub(acc, queue[0])
		state[i] = f.Add(state[i], acc)
	}
	return state
}

func rotateRight[E any](s []E) {
	if len(s) < 2 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}
