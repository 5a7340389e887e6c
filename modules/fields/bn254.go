package fields

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254Field is the arithmetic engine over the BN254 scalar field, backed by
// the gnark-crypto Montgomery element.
type BN254Field struct{}

// NewBN254 returns the BN254 scalar field engine.
func NewBN254() BN254Field { return BN254Field{} }

func (BN254Field) Enum() FieldEnum   { return BN254 }
func (BN254Field) Modulus() *big.Int { return fr.Modulus() }
func (BN254Field) Bits() int         { return fr.Bits }
func (BN254Field) NumLimbs() int     { return fr.Limbs }
func (BN254Field) Zero() fr.Element  { return fr.Element{} }
func (BN254Field) One() fr.Element   { return fr.One() }

func (BN254Field) FromUint64(v uint64) fr.Element {
	return fr.NewElement(v)
}

func (b BN254Field) FromLimbs(limbs []uint64) (fr.Element, error) {
	return b.FromBig(limbsToBig(limbs))
}

func (BN254Field) FromBig(v *big.Int) (fr.Element, error) {
	var z fr.Element
	if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return z, fmt.Errorf("%s: %w", v.String(), ErrNotInField)
	}
	z.SetBigInt(v)
	return z, nil
}

func (BN254Field) Limbs(a fr.Element) []uint64 {
	words := a.Bits()
	return words[:]
}

func (BN254Field) Big(a fr.Element) *big.Int {
	return a.BigInt(new(big.Int))
}

func (BN254Field) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)
	return z
}

func (BN254Field) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)
	return z
}

func (BN254Field) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)
	return z
}

func (BN254Field) Square(a fr.Element) fr.Element {
	var z fr.Element
	z.Square(&a)
	return z
}

func (BN254Field) Double(a fr.Element) fr.Element {
	var z fr.Element
	z.Double(&a)
	return z
}

func (BN254Field) Neg(a fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&a)
	return z
}

func (BN254Field) Inverse(a fr.Element) (fr.Element, bool) {
	var z fr.Element
	if a.IsZero() {
		return z, false
	}
	z.Inverse(&a)
	return z, true
}

func (BN254Field) Exp(a fr.Element, e *big.Int) fr.Element {
	var z fr.Element
	z.Exp(a, e)
	return z
}

func (BN254Field) IsZero(a fr.Element) bool { return a.IsZero() }
