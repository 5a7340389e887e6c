package fields

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BLS12381Field is the arithmetic engine over the BLS12-381 scalar field, backed by
// the gnark-crypto Montgomery element.
type BLS12381Field struct{}

// NewBLS12381 returns the BLS12-381 scalar field engine.
func NewBLS12381() BLS12381Field { return BLS12381Field{} }

func (BLS12381Field) Enum() FieldEnum   { return BLS12381 }
func (BLS12381Field) Modulus() *big.Int { return fr.Modulus() }
func (BLS12381Field) Bits() int         { return fr.Bits }
func (BLS12381Field) NumLimbs() int     { return fr.Limbs }
func (BLS12381Field) Zero() fr.Element  { return fr.Element{} }
func (BLS12381Field) One() fr.Element   { return fr.One() }

func (BLS12381Field) FromUint64(v uint64) fr.Element {
	return fr.NewElement(v)
}

func (b BLS12381Field) FromLimbs(limbs []uint64) (fr.Element, error) {
	return b.FromBig(limbsToBig(limbs))
}

func (BLS12381Field) FromBig(v *big.Int) (fr.Element, error) {
	var z fr.Element
	if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return z, fmt.Errorf("%s: %w", v.String(), ErrNotInField)
	}
	z.SetBigInt(v)
	return z, nil
}

func (BLS12381Field) Limbs(a fr.Element) []uint64 {
	words := a.Bits()
	return words[:]
}

func (BLS12381Field) Big(a fr.Element) *big.Int {
	return a.BigInt(new(big.Int))
}

func (BLS12381Field) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)
	return z
}

func (BLS12381Field) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)
	return z
}

func (BLS12381Field) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)
	return z
}

func (BLS12381Field) Square(a fr.Element) fr.Element {
	var z fr.Element
	z.Square(&a)
	return z
}

func (BLS12381Field) Double(a fr.Element) fr.Element {
	var z fr.Element
	z.Double(&a)
	return z
}

func (BLS12381Field) Neg(a fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&a)
	return z
}

func (BLS12381Field) Inverse(a fr.Element) (fr.Element, bool) {
	var z fr.Element
	if a.IsZero() {
		return z, false
	}
	z.Inverse(&a)
	return z, true
}

func (BLS12381Field) Exp(a fr.Element, e *big.Int) fr.Element {
	var z fr.Element
	z.Exp(a, e)
	return z
}

func (BLS12381Field) IsZero(a fr.Element) bool { return a.IsZero() }
