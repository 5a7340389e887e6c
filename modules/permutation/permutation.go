package permutation

import (
	"errors"
	"fmt"
	"math/big"

	"AlgebraicPermutations/modules/fields"
)

// ErrInvalidConfiguration is returned when parameters are inconsistent, and
// is the panic value when a state of the wrong width reaches an engine.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Permutation is a fixed-width bijection on field vectors. Implementations
// copy their input and never mutate the caller's slice.
type Permutation[E comparable] interface {
	Permutation(input []E) []E
	Width() int
}

// CopyState checks the width of an input state and returns a private copy
// to run the rounds on.
func CopyState[E comparable](t int, input []E) []E {
	if len(input) != t {
		panic(fmt.Errorf("state of %d elements for width %d: %w", len(input), t, ErrInvalidConfiguration))
	}
	return append([]E(nil), input...)
}

// Invalid wraps a formatted message with ErrInvalidConfiguration.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfiguration)
}

// PowSmall computes x^d with a fixed squaring chain for the common S-box
// degrees 3, 5 and 7.
func PowSmall[E comparable](f fields.Field[E], x E, d uint64) E {
	switch d {
	case 3:
		return f.Mul(f.Square(x), x)
	case 5:
		x2 := f.Square(x)
		return f.Mul(f.Square(x2), x)
	case 7:
		x2 := f.Square(x)
		x3 := f.Mul(x2, x)
		return f.Mul(f.Square(x2), x3)
	default:
		return fields.Pow(f, x, d)
	}
}

// SBox is the power map x^d together with its inverse x^(1/d).
type SBox[E comparable] struct {
	f   fields.Field[E]
	d   uint64
	inv *big.Int
}

// NewSBox fails unless x^d is a permutation of the field, i.e.
// gcd(d, p - 1) = 1.
func NewSBox[E comparable](f fields.Field[E], d uint64) (SBox[E], error) {
	if d < 3 {
		return SBox[E]{}, Invalid("s-box degree %d", d)
	}
	inv, err := fields.InverseExponent(f, d)
	if err != nil {
		return SBox[E]{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return SBox[E]{f: f, d: d, inv: inv}, nil
}

// Degree returns d.
func (s SBox[E]) Degree() uint64 { return s.d }

// InverseExponent returns d^-1 mod (p - 1).
func (s SBox[E]) InverseExponent() *big.Int { return new(big.Int).Set(s.inv) }

// Forward computes x^d.
func (s SBox[E]) Forward(x E) E { return PowSmall(s.f, x, s.d) }

// Inverse computes x^(1/d), mapping 0 to 0.
func (s SBox[E]) Inverse(x E) E {
	if s.f.IsZero(x) {
		return x
	}
	return s.f.Exp(x, s.inv)
}
