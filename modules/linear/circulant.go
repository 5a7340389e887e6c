package linear

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
)

// Circulant multiplies by a circulant matrix through a fast cyclic
// convolution. For M[i][j] = row[(j - i) mod n] the product M*x is the
// cyclic convolution of x with the first column c[k] = row[-k mod n].
//
// The convolution is split recursively: modulo X^n - 1 = (X^h - 1)(X^h + 1)
// a length-n cyclic product becomes a half-size cyclic and a half-size
// negacyclic product, and a negacyclic product splits into three half-size
// negacyclic products on even/odd coefficients (Karatsuba). Odd lengths are
// schoolbook base cases. The halving of the CRT recombination is folded into
// the sub-kernels once at construction.
type Circulant[E comparable] struct {
	f     fields.Field[E]
	row   []E
	width int
	plan  *cyclicPlan[E]
}

// NewCirculant builds the fast layer for the circulant matrix with the given
// first row.
func NewCirculant[E comparable](f fields.Field[E], row []E) (*Circulant[E], error) {
	return NewTruncatedCirculant(f, row, len(row))
}

// NewTruncatedCirculant builds the layer for the top-left width x width block
// of the circulant matrix with the given first row, computed as a zero padded
// convolution of the full length.
func NewTruncatedCirculant[E comparable](f fields.Field[E], row []E, width int) (*Circulant[E], error) {
	n := len(row)
	if n == 0 || width <= 0 || width > n {
		return nil, fmt.Errorf("circulant of size %d truncated to %d", n, width)
	}
	two := f.FromUint64(2)
	halve, ok := f.Inverse(two)
	if !ok {
		return nil, fmt.Errorf("characteristic 2 field: %w", fields.ErrNoInverse)
	}

	column := make([]E, n)
	for k := 0; k < n; k++ {
		column[k] = row[(n-k)%n]
	}

	return &Circulant[E]{
		f:     f,
		row:   append([]E(nil), row...),
		width: width,
		plan:  newCyclicPlan(f, column, halve),
	}, nil
}

func (c *Circulant[E]) Width() int { return c.width }

// Size is the length of the underlying convolution.
func (c *Circulant[E]) Size() int { return len(c.row) }

// Matrix returns the (truncated) circulant matrix.
func (c *Circulant[E]) Matrix() Matrix[E] {
	full := CirculantMatrix(c.row)
	return full.Submatrix(0, c.width, 0, c.width)
}

func (c *Circulant[E]) Apply(state []E) []E {
	if len(state) != c.width {
		panic(fmt.Sprintf("circulant layer of width %d applied to %d elements", c.width, len(state)))
	}
	in := state
	if c.width < len(c.row) {
		in = fields.Zeroes(c.f, len(c.row))
		copy(in, state)
	}
	out := c.plan.apply(c.f, in)
	return out[:c.width]
}

type cyclicPlan[E comparable] struct {
	n      int
	kernel []E
	plus   *cyclicPlan[E]
	minus  *negacyclicPlan[E]
}

func newCyclicPlan[E comparable](f fields.Field[E], kernel []E, halve E) *cyclicPlan[E] {
	n := len(kernel)
	if n%2 == 1 {
		return &cyclicPlan[E]{n: n, kernel: append([]E(nil), kernel...)}
	}
	h := n / 2
	plus := make([]E, h)
	minus := make([]E, h)
	for i := 0; i < h; i++ {
		plus[i] = f.Mul(f.Add(kernel[i], kernel[i+h]), halve)
		minus[i] = f.Mul(f.Sub(kernel[i], kernel[i+h]), halve)
	}
	return &cyclicPlan[E]{
		n:     n,
		plus:  newCyclicPlan(f, plus, halve),
		minus: newNegacyclicPlan(f, minus),
	}
}

func (p *cyclicPlan[E]) apply(f fields.Field[E], a []E) []E {
	n := p.n
	if p.kernel != nil {
		res := make([]E, n)
		for k := 0; k < n; k++ {
			acc := f.Zero()
			for j := 0; j < n; j++ {
				idx := k - j
				if idx < 0 {
					idx += n
				}
				acc = f.Add(acc, f.Mul(a[j], p.kernel[idx]))
			}
			res[k] = acc
		}
		return res
	}

	h := n / 2
	aPlus := make([]E, h)
	aMinus := make([]E, h)
	for i := 0; i < h; i++ {
		aPlus[i] = f.Add(a[i], a[i+h])
		aMinus[i] = f.Sub(a[i], a[i+h])
	}
	lo := p.plus.apply(f, aPlus)
	hi := p.minus.apply(f, aMinus)

	res := make([]E, n)
	for i := 0; i < h; i++ {
		res[i] = f.Add(lo[i], hi[i])
		res[i+h] = f.Sub(lo[i], hi[i])
	}
	return res
}

type negacyclicPlan[E comparable] struct {
	n      int
	kernel []E
	even   *negacyclicPlan[E]
	odd    *negacyclicPlan[E]
	sum    *negacyclicPlan[E]
}

func newNegacyclicPlan[E comparable](f fields.Field[E], kernel []E) *negacyclicPlan[E] {
	n := len(kernel)
	if n%2 == 1 || n <= 2 {
		return &negacyclicPlan[E]{n: n, kernel: append([]E(nil), kernel...)}
	}
	h := n / 2
	even := make([]E, h)
	odd := make([]E, h)
	sum := make([]E, h)
	for i := 0; i < h; i++ {
		even[i] = kernel[2*i]
		odd[i] = kernel[2*i+1]
		sum[i] = f.Add(even[i], odd[i])
	}
	return &negacyclicPlan[E]{
		n:    n,
		even: newNegacyclicPlan(f, even),
		odd:  newNegacyclicPlan(f, odd),
		sum:  newNegacyclicPlan(f, sum),
	}
}

func (p *negacyclicPlan[E]) apply(f fields.Field[E], a []E) []E {
	n := p.n
	if p.kernel != nil {
		res := make([]E, n)
		for k := 0; k < n; k++ {
			acc := f.Zero()
			for j := 0; j <= k; j++ {
				acc = f.Add(acc, f.Mul(a[j], p.kernel[k-j]))
			}
			for j := k + 1; j < n; j++ {
				acc = f.Sub(acc, f.Mul(a[j], p.kernel[n+k-j]))
			}
			res[k] = acc
		}
		return res
	}

	h := n / 2
	aEven := make([]E, h)
	aOdd := make([]E, h)
	aSum := make([]E, h)
	for i := 0; i < h; i++ {
		aEven[i] = a[2*i]
		aOdd[i] = a[2*i+1]
		aSum[i] = f.Add(aEven[i], aOdd[i])
	}
	ee := p.even.apply(f, aEven)
	oo := p.odd.apply(f, aOdd)
	ss := p.sum.apply(f, aSum)

	// with Y = X^2: a*b = ee(Y) + Y*oo(Y) + X*(ss - ee - oo)(Y), Y^h = -1
	res := make([]E, n)
	for i := 0; i < h; i++ {
		shifted := f.Neg(oo[h-1])
		if i > 0 {
			shifted = oo[i-1]
		}
		res[2*i] = f.Add(ee[i], shifted)
		res[2*i+1] = f.Sub(f.Sub(ss[i], ee[i]), oo[i])
	}
	return res
}
