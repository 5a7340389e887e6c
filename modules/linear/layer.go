package linear

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
)

// Layer applies a fixed t x t diffusion matrix to a state. Apply leaves its
// argument untouched and returns a fresh slice.
type Layer[E comparable] interface {
	Width() int
	Apply(state []E) []E
}

// Dense is the O(t^2) matrix-vector product strategy.
type Dense[E comparable] struct {
	f fields.Field[E]
	m Matrix[E]
}

// NewDense wraps a square matrix.
func NewDense[E comparable](f fields.Field[E], m Matrix[E]) (*Dense[E], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("dense layer needs a square matrix, got %dx%d", m.Rows(), m.Cols())
	}
	return &Dense[E]{f: f, m: m.Clone()}, nil
}

func (d *Dense[E]) Width() int { return len(d.m) }

func (d *Dense[E]) Apply(state []E) []E {
	return d.m.MulVec(d.f, state)
}

// Matrix returns a copy of the underlying matrix.
func (d *Dense[E]) Matrix() Matrix[E] { return d.m.Clone() }

// AsMatrix recovers the matrix of any layer by applying it to the unit
// vectors, column by column.
func AsMatrix[E comparable](f fields.Field[E], l Layer[E]) Matrix[E] {
	t := l.Width()
	cols := make(Matrix[E], t)
	for j := 0; j < t; j++ {
		unit := fields.Zeroes(f, t)
		unit[j] = f.One()
		cols[j] = l.Apply(unit)
	}
	return cols.Transpose()
}
