package sponge

import "AlgebraicPermutations/modules/fields"

// Transcript is the native counterpart of the in-circuit transcript: field
// elements are appended to a pool, and each challenge hashes the kept state
// followed by the pool.
type Transcript[E comparable] struct {
	sponge *Sponge[E]

	// The values to feed the hash function
	dataPool []E

	// The hash state
	hashState []E

	// number of permutation calls so far
	count uint
}

func NewTranscript[E comparable](s *Sponge[E]) *Transcript[E] {
	return &Transcript[E]{
		sponge:    s,
		hashState: fields.Zeroes(s.Field(), s.StateCapacity()),
	}
}

func (t *Transcript[E]) AppendF(f E) {
	t.dataPool = append(t.dataPool, f)
}

func (t *Transcript[E]) AppendFs(fs ...E) {
	t.dataPool = append(t.dataPool, fs...)
}

// ChallengeF returns the first word of the next hash state.
func (t *Transcript[E]) ChallengeF() E {
	return t.HashAndReturnState()[0]
}

func (t *Transcript[E]) ChallengeFs(n int) []E {
	res := make([]E, n)
	for i := range res {
		res[i] = t.ChallengeF()
	}
	return res
}

// HashAndReturnState hashes the state and the pending pool, or the state
// alone when nothing was appended since the last hash.
func (t *Transcript[E]) HashAndReturnState() []E {
	input := append(append([]E(nil), t.hashState...), t.dataPool...)
	state, calls := t.sponge.HashToState(input...)

	t.hashState = state
	t.dataPool = nil
	t.count += calls
	return append([]E(nil), t.hashState...)
}

func (t *Transcript[E]) SetState(newHashState []E) {
	t.dataPool = nil
	t.hashState = append([]E(nil), newHashState...)
}

func (t *Transcript[E]) GetCount() uint {
	return t.count
}

func (t *Transcript[E]) ResetCount() {
	t.count = 0
}
