package linear

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
)

// Block4 is the structured linear layer built from the 4x4 matrix
//
//	M4 = [[5, 7, 1, 3], [4, 6, 1, 1], [1, 3, 5, 7], [1, 1, 4, 6]]
//
// applied to every 4-word chunk, followed by adding the sum of the chunks to
// each chunk (so diagonal blocks are 2*M4 and off-diagonal blocks M4). Widths
// 2 and 3 use circ(2, 1) and circ(2, 1, 1) instead, both equal to
// x + sum(x).
type Block4[E comparable] struct {
	f     fields.Field[E]
	t     int
	plain bool
}

// NewBlock4 is the Poseidon2 external layer, t in {2, 3} or a multiple of 4
// up to 24.
func NewBlock4[E comparable](f fields.Field[E], t int) (*Block4[E], error) {
	if t != 2 && t != 3 && (t%4 != 0 || t > 24) {
		return nil, fmt.Errorf("no block layer of width %d", t)
	}
	return &Block4[E]{f: f, t: t}, nil
}

// NewGriffinBlock4 is the Griffin layer, which differs from NewBlock4 only at
// width 4 where M4 is applied alone.
func NewGriffinBlock4[E comparable](f fields.Field[E], t int) (*Block4[E], error) {
	if t != 3 && t%4 != 0 {
		return nil, fmt.Errorf("no griffin layer of width %d", t)
	}
	return &Block4[E]{f: f, t: t, plain: t == 4}, nil
}

func (b *Block4[E]) Width() int { return b.t }

func (b *Block4[E]) Apply(state []E) []E {
	f := b.f
	res := append([]E(nil), state...)

	if b.t < 4 {
		sum := fields.Sum(f, res)
		for i := range res {
			res[i] = f.Add(res[i], sum)
		}
		return res
	}

	for i := 0; i < b.t; i += 4 {
		m4(f, res[i:i+4])
	}
	if b.plain {
		return res
	}

	var stored [4]E
	for l := 0; l < 4; l++ {
		stored[l] = res[l]
		for j := 4 + l; j < b.t; j += 4 {
			stored[l] = f.Add(stored[l], res[j])
		}
	}
	for i := range res {
		res[i] = f.Add(res[i], stored[i%4])
	}
	return res
}

// m4 multiplies a 4-word chunk by M4 in place using 8 additions and 4
// doublings.
func m4[E comparable](f fields.Field[E], x []E) {
	t0 := f.Add(x[0], x[1])
	t1 := f.Add(x[2], x[3])
	t2 := f.Add(f.Double(x[1]), t1)
	t3 := f.Add(f.Double(x[3]), t0)
	t4 := f.Add(f.Double(f.Double(t1)), t3)
	t5 := f.Add(f.Double(f.Double(t0)), t2)
	t6 := f.Add(t3, t5)
	t7 := f.Add(t2, t4)
	x[0], x[1], x[2], x[3] = t6, t5, t7, t4
}

// DiagonalPlusSum is the Poseidon2 internal layer x_i = mu_i*x_i + sum(x).
// Widths 2 and 3 use the fixed matrices [[2, 1], [1, 3]] and
// [[2, 1, 1], [1, 2, 1], [1, 1, 3]].
type DiagonalPlusSum[E comparable] struct {
	f  fields.Field[E]
	mu []E
}

// NewDiagonalPlusSum takes the diagonal minus one; it is ignored for widths 2
// and 3 and may be nil there.
func NewDiagonalPlusSum[E comparable](f fields.Field[E], t int, mu []E) (*DiagonalPlusSum[E], error) {
	switch {
	case t == 2:
		mu = fields.Elements(f, 1, 2)
	case t == 3:
		mu = fields.Elements(f, 1, 1, 2)
	case len(mu) != t:
		return nil, fmt.Errorf("internal diagonal of length %d for width %d", len(mu), t)
	}
	return &DiagonalPlusSum[E]{f: f, mu: append([]E(nil), mu...)}, nil
}

func (d *DiagonalPlusSum[E]) Width() int { return len(d.mu) }

func (d *DiagonalPlusSum[E]) Apply(state []E) []E {
	f := d.f
	sum := fields.Sum(f, state)
	res := make([]E, len(state))
	for i, x := range state {
		res[i] = f.Add(f.Mul(d.mu[i], x), sum)
	}
	return res
}
