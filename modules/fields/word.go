package fields

import (
	"math/big"
	"math/bits"
)

// addMod adds two canonical values of a modulus p < 2^64, the sum may carry
// out of the word.
func addMod(a, b, p uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= p {
		s -= p
	}
	return s
}

func subMod(a, b, p uint64) uint64 {
	d, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		d += p
	}
	return d
}

func negMod(a, p uint64) uint64 {
	if a == 0 {
		return 0
	}
	return p - a
}

// euclidInverse runs the extended Euclidean algorithm on (p, a), keeping the
// Bezout coefficient of a reduced modulo p through the field's own mul/sub.
func euclidInverse[T uint32 | uint64](a, p T, mul, sub func(T, T) T) (T, bool) {
	if a == 0 {
		return 0, false
	}
	r0, r1 := p, a
	t0, t1 := T(0), T(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, sub(t0, mul(q, t1))
	}
	if r0 != 1 {
		return 0, false
	}
	return t0, true
}

// expWord is square and multiply over the bits of a big exponent.
func expWord[T uint32 | uint64](a T, e *big.Int, one T, mul func(T, T) T) T {
	res := one
	for i := e.BitLen() - 1; i >= 0; i-- {
		res = mul(res, res)
		if e.Bit(i) == 1 {
			res = mul(res, a)
		}
	}
	return res
}
