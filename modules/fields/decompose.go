package fields

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// Reciprocal is the normalized divisor / reciprocal pair used to divide a
// multi-limb integer by a small constant without a hardware divide.
type Reciprocal struct {
	divisor uint64
	shift   uint
	norm    uint64
	recip   uint64
}

// NewReciprocal precomputes floor((2^128 - 1) / norm) - 2^64 for the divisor
// shifted so that its top bit is set.
func NewReciprocal(divisor uint16) (Reciprocal, error) {
	if divisor < 2 {
		return Reciprocal{}, fmt.Errorf("divisor %d: must be at least 2", divisor)
	}
	d := uint64(divisor)
	shift := uint(bits.LeadingZeros64(d))
	norm := d << shift
	recip, _ := bits.Div64(^norm, ^uint64(0), norm)
	return Reciprocal{divisor: d, shift: shift, norm: norm, recip: recip}, nil
}

// Divisor returns the small divisor.
func (r Reciprocal) Divisor() uint64 { return r.divisor }

// divRem2by1 divides u1*2^64 + u0 by the normalized divisor, u1 < norm.
func (r Reciprocal) divRem2by1(u1, u0 uint64) (uint64, uint64) {
	qHi, qLo := bits.Mul64(u1, r.recip)
	qLo, carry := bits.Add64(qLo, u0, 0)
	qHi, _ = bits.Add64(qHi, u1, carry)
	qHi++

	rem := u0 - qHi*r.norm
	if rem > qLo {
		qHi--
		rem += r.norm
	}
	if rem >= r.norm {
		qHi++
		rem -= r.norm
	}
	return qHi, rem
}

// DivRem divides the little-endian limbs in place by the divisor and returns
// the remainder.
func (r Reciprocal) DivRem(limbs []uint64) uint64 {
	n := len(limbs)
	if n == 0 {
		return 0
	}
	if r.shift == 0 {
		var rem uint64
		for i := n - 1; i >= 0; i-- {
			limbs[i], rem = r.divRem2by1(rem, limbs[i])
		}
		return rem
	}

	// the shifted dividend is one limb longer, its top limb seeds the
	// running remainder
	rem := limbs[n-1] >> (64 - r.shift)
	for i := n - 1; i >= 0; i-- {
		u0 := limbs[i] << r.shift
		if i > 0 {
			u0 |= limbs[i-1] >> (64 - r.shift)
		}
		limbs[i], rem = r.divRem2by1(rem, u0)
	}
	return rem >> r.shift
}

// mulAddSmall computes limbs = limbs*m + a in place and returns the carry out.
func mulAddSmall(limbs []uint64, m, a uint64) uint64 {
	carry := a
	for i := range limbs {
		hi, lo := bits.Mul64(limbs[i], m)
		var c uint64
		limbs[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return carry
}

// ErrDigitOutOfRange is returned by Compose for a digit not below its radix.
var ErrDigitOutOfRange = errors.New("digit out of range")

// Decomposer writes integers in the mixed radix (s_0, ..., s_{n-1}):
// x = ((d_0*s_1 + d_1)*s_2 + d_2)... with 0 <= d_i < s_i for i > 0.
type Decomposer struct {
	radices []uint16
	recips  []Reciprocal
	limbs   int
}

// NewDecomposer precomputes the reciprocals of the radix sequence. The
// product of the radices must cover [0, modulus) so that every field element
// has a representation with d_0 < s_0.
func NewDecomposer(radices []uint16, modulus *big.Int) (*Decomposer, error) {
	if len(radices) == 0 {
		return nil, errors.New("empty radix sequence")
	}
	d := &Decomposer{
		radices: append([]uint16(nil), radices...),
		recips:  make([]Reciprocal, len(radices)),
		limbs:   (modulus.BitLen() + 63) / 64,
	}
	prod := big.NewInt(1)
	for i, s := range radices {
		r, err := NewReciprocal(s)
		if err != nil {
			return nil, fmt.Errorf("radix %d: %w", i, err)
		}
		d.recips[i] = r
		prod.Mul(prod, big.NewInt(int64(s)))
	}
	if prod.Cmp(modulus) < 0 {
		return nil, fmt.Errorf("radix product %s does not cover modulus %s", prod, modulus)
	}
	return d, nil
}

// Radices returns the radix sequence.
func (d *Decomposer) Radices() []uint16 {
	return append([]uint16(nil), d.radices...)
}

// Decompose splits the value given as little-endian limbs into digits,
// dividing by s_{n-1} first and leaving the last quotient as d_0.
func (d *Decomposer) Decompose(limbs []uint64) []uint16 {
	repr := make([]uint64, d.limbs)
	copy(repr, limbs)

	res := make([]uint16, len(d.radices))
	for i := len(d.radices) - 1; i > 0; i-- {
		res[i] = uint16(d.recips[i].DivRem(repr))
	}
	res[0] = uint16(repr[0])
	return res
}

// Compose is the Horner-style inverse of Decompose.
func (d *Decomposer) Compose(digits []uint16) ([]uint64, error) {
	if len(digits) != len(d.radices) {
		return nil, fmt.Errorf("got %d digits for %d radices", len(digits), len(d.radices))
	}
	repr := make([]uint64, d.limbs)
	repr[0] = uint64(digits[0])
	for i := 1; i < len(digits); i++ {
		if digits[i] >= d.radices[i] {
			return nil, fmt.Errorf("digit %d = %d, radix %d: %w", i, digits[i], d.radices[i], ErrDigitOutOfRange)
		}
		if carry := mulAddSmall(repr, uint64(d.radices[i]), uint64(digits[i])); carry != 0 {
			return nil, fmt.Errorf("composed value overflows %d limbs: %w", d.limbs, ErrNotInField)
		}
	}
	return repr, nil
}

// DecomposeElement decomposes a field element.
func DecomposeElement[E comparable](f Field[E], d *Decomposer, x E) []uint16 {
	return d.Decompose(f.Limbs(x))
}

// ComposeElement recomposes digits into a field element, rejecting values
// outside [0, p).
func ComposeElement[E comparable](f Field[E], d *Decomposer, digits []uint16) (E, error) {
	limbs, err := d.Compose(digits)
	if err != nil {
		return f.Zero(), err
	}
	return f.FromLimbs(limbs)
}

// ModInverseU16 computes a^-1 mod m for a small modulus by the extended
// Euclidean algorithm, mapping 0 to 0.
func ModInverseU16(a, m uint16) uint16 {
	if a == 0 {
		return 0
	}
	t, newT := int32(0), int32(1)
	r, newR := int32(m), int32(a)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if t < 0 {
		t += int32(m)
	}
	return uint16(t)
}
