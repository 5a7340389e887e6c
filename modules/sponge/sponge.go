// Package sponge turns any permutation into a hash function and a
// Fiat-Shamir transcript.
package sponge

import (
	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
)

// Sponge splits the state into a capacity part (the first t-r words) and a
// rate part (the last r words). Input is added into the rate part, one
// chunk of r elements per permutation call.
type Sponge[E comparable] struct {
	field fields.Field[E]
	perm  permutation.Permutation[E]
	rate  int
}

func New[E comparable](f fields.Field[E], perm permutation.Permutation[E], rate int) (*Sponge[E], error) {
	if perm == nil {
		return nil, permutation.Invalid("nil permutation")
	}
	if rate <= 0 || rate >= perm.Width() {
		return nil, permutation.Invalid("sponge rate %d for width %d", rate, perm.Width())
	}
	return &Sponge[E]{field: f, perm: perm, rate: rate}, nil
}

func (s *Sponge[E]) Field() fields.Field[E] { return s.field }

func (s *Sponge[E]) Width() int { return s.perm.Width() }

func (s *Sponge[E]) Rate() int { return s.rate }

func (s *Sponge[E]) Capacity() int { return s.perm.Width() - s.rate }

// StateCapacity is the number of state elements a transcript keeps between
// two hashes: the whole state, as returned by HashToState.
func (s *Sponge[E]) StateCapacity() int { return s.perm.Width() }

// HashToState absorbs the elements, zero padded to whole chunks, into the
// zero state and returns the final state with the number of permutation
// calls.
func (s *Sponge[E]) HashToState(fs ...E) ([]E, uint) {
	f := s.field
	t := s.perm.Width()
	capacity := t - s.rate
	chunks := (len(fs) + s.rate - 1) / s.rate

	state := fields.Zeroes(f, t)
	for c := 0; c < chunks; c++ {
		for j := 0; j < s.rate; j++ {
			if k := c*s.rate + j; k < len(fs) {
				state[capacity+j] = f.Add(state[capacity+j], fs[k])
			}
		}
		state = s.perm.Permutation(state)
	}
	return state, uint(chunks)
}

// Hash pads the elements with a one and then zeroes to whole chunks,
// absorbs them and squeezes n outputs from the rate part, permuting again
// whenever the rate part is used up. Inputs differing only in trailing
// zeroes hash apart, unlike with HashToState.
func (s *Sponge[E]) Hash(n int, fs ...E) []E {
	padded := append(append(make([]E, 0, len(fs)+1), fs...), s.field.One())
	state, _ := s.HashToState(padded...)
	capacity := s.Width() - s.rate

	out := make([]E, 0, n)
	for {
		for j := 0; j < s.rate && len(out) < n; j++ {
			out = append(out, state[capacity+j])
		}
		if len(out) == n {
			return out
		}
		state = s.perm.Permutation(state)
	}
}
