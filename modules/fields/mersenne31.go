package fields

import (
	"fmt"
	"math/big"
)

// Mersenne31Modulus is 2^31 - 1.
const Mersenne31Modulus uint32 = 0x7FFFFFFF

// Mersenne31Field is the arithmetic engine over uint32 elements modulo
// 2^31 - 1.
type Mersenne31Field struct{}

// NewMersenne31 returns the Mersenne31 engine.
func NewMersenne31() Mersenne31Field { return Mersenne31Field{} }

func (Mersenne31Field) Enum() FieldEnum { return M31 }
func (Mersenne31Field) Modulus() *big.Int {
	return new(big.Int).SetUint64(uint64(Mersenne31Modulus))
}
func (Mersenne31Field) Bits() int     { return 31 }
func (Mersenne31Field) NumLimbs() int { return 1 }
func (Mersenne31Field) Zero() uint32  { return 0 }
func (Mersenne31Field) One() uint32   { return 1 }

func (Mersenne31Field) FromUint64(v uint64) uint32 {
	return mersenne31Reduce64(v)
}

func (Mersenne31Field) FromLimbs(limbs []uint64) (uint32, error) {
	if len(limbs) == 0 {
		return 0, nil
	}
	for _, l := range limbs[1:] {
		if l != 0 {
			return 0, fmt.Errorf("limbs %v: %w", limbs, ErrNotInField)
		}
	}
	if limbs[0] >= uint64(Mersenne31Modulus) {
		return 0, fmt.Errorf("%#x: %w", limbs[0], ErrNotInField)
	}
	return uint32(limbs[0]), nil
}

func (m Mersenne31Field) FromBig(v *big.Int) (uint32, error) {
	limbs, err := checkedFromBig(v, m.Modulus(), 1)
	if err != nil {
		return 0, err
	}
	return uint32(limbs[0]), nil
}

func (Mersenne31Field) Limbs(a uint32) []uint64 { return []uint64{uint64(a)} }
func (Mersenne31Field) Big(a uint32) *big.Int   { return new(big.Int).SetUint64(uint64(a)) }

func (Mersenne31Field) Add(a, b uint32) uint32 {
	// both operands are below 2^31, the sum fits in 32 bits
	s := a + b
	if s >= Mersenne31Modulus {
		s -= Mersenne31Modulus
	}
	return s
}

func (Mersenne31Field) Sub(a, b uint32) uint32 {
	if a >= b {
		return a - b
	}
	return a + Mersenne31Modulus - b
}

func (Mersenne31Field) Neg(a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return Mersenne31Modulus - a
}

func (m Mersenne31Field) Double(a uint32) uint32 { return m.Add(a, a) }

func (Mersenne31Field) Mul(a, b uint32) uint32 {
	return mersenne31Reduce64(uint64(a) * uint64(b))
}

func (Mersenne31Field) Square(a uint32) uint32 {
	return mersenne31Reduce64(uint64(a) * uint64(a))
}

func (m Mersenne31Field) Inverse(a uint32) (uint32, bool) {
	return euclidInverse(a, Mersenne31Modulus, m.Mul, m.Sub)
}

func (m Mersenne31Field) Exp(a uint32, e *big.Int) uint32 {
	return expWord(a, e, 1, m.Mul)
}

func (Mersenne31Field) IsZero(a uint32) bool { return a == 0 }

// mersenne31Reduce64 folds x = hi*2^31 + lo into lo + hi, twice, since
// 2^31 = 1 modulo p.
func mersenne31Reduce64(x uint64) uint32 {
	x = (x & uint64(Mersenne31Modulus)) + (x >> 31)
	x = (x & uint64(Mersenne31Modulus)) + (x >> 31)
	r := uint32(x)
	if r >= Mersenne31Modulus {
		r -= Mersenne31Modulus
	}
	return r
}
