package linear

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
)

// Cheap is the O(t) layer used inside partial rounds. It multiplies by
//
//	[ m00  w_hat ]
//	[ v    I     ]
//
// i.e. word 0 becomes m00*x0 + <w_hat, x[1:]> and every other word i gets
// v[i-1]*x0 added.
type Cheap[E comparable] struct {
	f    fields.Field[E]
	m00  E
	wHat []E
	v    []E
}

// NewCheap validates the shapes of the low-rank coefficients.
func NewCheap[E comparable](f fields.Field[E], m00 E, wHat, v []E) (*Cheap[E], error) {
	if len(wHat) == 0 || len(wHat) != len(v) {
		return nil, fmt.Errorf("cheap layer coefficients of length %d and %d", len(wHat), len(v))
	}
	return &Cheap[E]{
		f:    f,
		m00:  m00,
		wHat: append([]E(nil), wHat...),
		v:    append([]E(nil), v...),
	}, nil
}

func (c *Cheap[E]) Width() int { return len(c.v) + 1 }

func (c *Cheap[E]) Apply(state []E) []E {
	f := c.f
	res := make([]E, len(state))

	acc := f.Mul(c.m00, state[0])
	for i, w := range c.wHat {
		acc = f.Add(acc, f.Mul(w, state[i+1]))
	}
	res[0] = acc
	for i := 1; i < len(state); i++ {
		res[i] = f.Add(f.Mul(c.v[i-1], state[0]), state[i])
	}
	return res
}

// WHat returns a copy of the first-row coefficients.
func (c *Cheap[E]) WHat() []E { return append([]E(nil), c.wHat...) }

// V returns a copy of the first-column coefficients.
func (c *Cheap[E]) V() []E { return append([]E(nil), c.v...) }
