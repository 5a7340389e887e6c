package fields

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrNotInField is returned when a raw value is outside [0, p).
	ErrNotInField = errors.New("value not in field")
	// ErrNoInverse is returned when an inverse does not exist.
	ErrNoInverse = errors.New("no multiplicative inverse")
)

// Field is the arithmetic engine of a prime field with element type E.
//
// Elements are plain values: every method returns a fresh canonical element
// (0 <= v < p) and never mutates its arguments. The engine itself is
// stateless beyond its modulus, so one engine can be shared freely.
type Field[E comparable] interface {
	Enum() FieldEnum
	Modulus() *big.Int
	// Bits is the bit length of the modulus.
	Bits() int
	// NumLimbs is the number of 64-bit limbs used by Limbs and FromLimbs.
	NumLimbs() int

	Zero() E
	One() E
	// FromUint64 maps v to v mod p, meant for small constants.
	FromUint64(v uint64) E
	// FromLimbs reads a little-endian limb representation, rejecting values
	// outside [0, p) with ErrNotInField.
	FromLimbs(limbs []uint64) (E, error)
	// FromBig is the checked conversion from a big integer.
	FromBig(v *big.Int) (E, error)
	// Limbs returns the canonical little-endian representation.
	Limbs(a E) []uint64
	Big(a E) *big.Int

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Square(a E) E
	Double(a E) E
	Neg(a E) E
	// Inverse returns (0, false) for zero.
	Inverse(a E) (E, bool)
	Exp(a E, e *big.Int) E
	IsZero(a E) bool
}

// Elements lifts small constants into the field.
func Elements[E comparable](f Field[E], vs ...uint64) []E {
	res := make([]E, len(vs))
	for i, v := range vs {
		res[i] = f.FromUint64(v)
	}
	return res
}

// Zeroes returns a slice of n zero elements.
func Zeroes[E comparable](f Field[E], n int) []E {
	res := make([]E, n)
	for i := range res {
		res[i] = f.Zero()
	}
	return res
}

// Sum adds up all elements of a slice.
func Sum[E comparable](f Field[E], xs []E) E {
	acc := f.Zero()
	for _, x := range xs {
		acc = f.Add(acc, x)
	}
	return acc
}

// Pow raises a to a machine-word exponent by square and multiply.
func Pow[E comparable](f Field[E], a E, e uint64) E {
	res := f.One()
	for i := 63; i >= 0; i-- {
		res = f.Square(res)
		if (e>>uint(i))&1 == 1 {
			res = f.Mul(res, a)
		}
	}
	return res
}

// Legendre returns 1 for a non-zero square, -1 for a non-square and 0 for
// zero, by Euler's criterion.
func Legendre[E comparable](f Field[E], a E) int {
	if f.IsZero(a) {
		return 0
	}
	e := new(big.Int).Rsh(new(big.Int).Sub(f.Modulus(), big.NewInt(1)), 1)
	if f.Exp(a, e) == f.One() {
		return 1
	}
	return -1
}

// InverseExponent computes d^-1 mod (p - 1), the exponent of the inverse
// power map x -> x^(1/d). It fails when gcd(d, p - 1) != 1, in which case
// x -> x^d is not a permutation of the field.
func InverseExponent[E comparable](f Field[E], d uint64) (*big.Int, error) {
	pMinusOne := new(big.Int).Sub(f.Modulus(), big.NewInt(1))
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(d), pMinusOne)
	if inv == nil {
		return nil, fmt.Errorf("x^%d is not a permutation of %s: %w", d, f.Enum(), ErrNoInverse)
	}
	return inv, nil
}

// ParseElement reads a decimal or 0x-prefixed hexadecimal string.
func ParseElement[E comparable](f Field[E], s string) (E, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return f.Zero(), fmt.Errorf("malformed field element %q", s)
	}
	return f.FromBig(v)
}

// ParseElements reads a slice of strings with ParseElement.
func ParseElements[E comparable](f Field[E], ss []string) ([]E, error) {
	res := make([]E, len(ss))
	for i, s := range ss {
		e, err := ParseElement(f, s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = e
	}
	return res, nil
}

// FormatElement prints an element as 0x-prefixed hex.
func FormatElement[E comparable](f Field[E], a E) string {
	return "0x" + f.Big(a).Text(16)
}

// FormatElements prints every element of a slice with FormatElement.
func FormatElements[E comparable](f Field[E], xs []E) []string {
	res := make([]string, len(xs))
	for i, x := range xs {
		res[i] = FormatElement(f, x)
	}
	return res
}

// checkedFromBig is shared by the word-sized engines.
func checkedFromBig(v *big.Int, p *big.Int, limbs int) ([]uint64, error) {
	if v.Sign() < 0 || v.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%s: %w", v.String(), ErrNotInField)
	}
	return bigToLimbs(v, limbs), nil
}

var limbMask = new(big.Int).SetUint64(^uint64(0))

// bigToLimbs splits a non-negative big integer into n little-endian limbs.
func bigToLimbs(v *big.Int, n int) []uint64 {
	res := make([]uint64, n)
	tmp := new(big.Int).Set(v)
	word := new(big.Int)
	for i := 0; i < n; i++ {
		res[i] = word.And(tmp, limbMask).Uint64()
		tmp.Rsh(tmp, 64)
	}
	return res
}

// limbsToBig converts a little-endian limb slice to a big integer.
func limbsToBig(limbs []uint64) *big.Int {
	res := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		res.Lsh(res, 64)
		res.Or(res, new(big.Int).SetUint64(limbs[i]))
	}
	return res
}
