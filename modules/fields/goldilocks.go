package fields

import (
	"fmt"
	"math/big"
	"math/bits"
)

const (
	// GoldilocksModulus is 2^64 - 2^32 + 1.
	GoldilocksModulus uint64 = 0xFFFFFFFF00000001
	// goldilocksEpsilon is 2^64 mod p = 2^32 - 1.
	goldilocksEpsilon uint64 = 0xFFFFFFFF
)

// GoldilocksField is the arithmetic engine over uint64 elements modulo
// 2^64 - 2^32 + 1.
type GoldilocksField struct{}

// NewGoldilocks returns the Goldilocks engine.
func NewGoldilocks() GoldilocksField { return GoldilocksField{} }

func (GoldilocksField) Enum() FieldEnum   { return Goldilocks }
func (GoldilocksField) Modulus() *big.Int { return new(big.Int).SetUint64(GoldilocksModulus) }
func (GoldilocksField) Bits() int         { return 64 }
func (GoldilocksField) NumLimbs() int     { return 1 }
func (GoldilocksField) Zero() uint64      { return 0 }
func (GoldilocksField) One() uint64       { return 1 }

func (GoldilocksField) FromUint64(v uint64) uint64 {
	if v >= GoldilocksModulus {
		v -= GoldilocksModulus
	}
	return v
}

func (g GoldilocksField) FromLimbs(limbs []uint64) (uint64, error) {
	if len(limbs) == 0 {
		return 0, nil
	}
	for _, l := range limbs[1:] {
		if l != 0 {
			return 0, fmt.Errorf("limbs %v: %w", limbs, ErrNotInField)
		}
	}
	if limbs[0] >= GoldilocksModulus {
		return 0, fmt.Errorf("%#x: %w", limbs[0], ErrNotInField)
	}
	return limbs[0], nil
}

func (g GoldilocksField) FromBig(v *big.Int) (uint64, error) {
	limbs, err := checkedFromBig(v, g.Modulus(), 1)
	if err != nil {
		return 0, err
	}
	return limbs[0], nil
}

func (GoldilocksField) Limbs(a uint64) []uint64 { return []uint64{a} }
func (GoldilocksField) Big(a uint64) *big.Int   { return new(big.Int).SetUint64(a) }

func (GoldilocksField) Add(a, b uint64) uint64 { return addMod(a, b, GoldilocksModulus) }
func (GoldilocksField) Sub(a, b uint64) uint64 { return subMod(a, b, GoldilocksModulus) }
func (GoldilocksField) Neg(a uint64) uint64    { return negMod(a, GoldilocksModulus) }

func (g GoldilocksField) Double(a uint64) uint64 { return g.Add(a, a) }

func (GoldilocksField) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return goldilocksReduce128(hi, lo)
}

func (GoldilocksField) Square(a uint64) uint64 {
	hi, lo := bits.Mul64(a, a)
	return goldilocksReduce128(hi, lo)
}

func (g GoldilocksField) Inverse(a uint64) (uint64, bool) {
	return euclidInverse(a, GoldilocksModulus, g.Mul, g.Sub)
}

func (g GoldilocksField) Exp(a uint64, e *big.Int) uint64 {
	return expWord(a, e, 1, g.Mul)
}

func (GoldilocksField) IsZero(a uint64) bool { return a == 0 }

// goldilocksReduce128 reduces hi*2^64 + lo using 2^64 = 2^32 - 1 and
// 2^96 = -1 modulo p. Any 128-bit input is accepted.
func goldilocksReduce128(hi, lo uint64) uint64 {
	hiHi := hi >> 32
	hiLo := hi & goldilocksEpsilon

	t0, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		// t0 wrapped by 2^64, folding back 2^64 - p
		t0 -= goldilocksEpsilon
	}
	t1 := hiLo * goldilocksEpsilon

	t2, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		t2 += goldilocksEpsilon
	}

	// t2 is below 2p here, only the public value has to be canonical
	if t2 >= GoldilocksModulus {
		t2 -= GoldilocksModulus
	}
	return t2
}
