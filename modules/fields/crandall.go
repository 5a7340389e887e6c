package fields

import (
	"fmt"
	"math/big"
	"math/bits"
)

const (
	// P48Modulus is 2^48 - 59.
	P48Modulus uint64 = 281474976710597
	// P56Modulus is 2^56 - 1097.
	P56Modulus uint64 = 72057594037926839
	// P64Modulus is 2^64 - 59.
	P64Modulus uint64 = 18446744073709551557
)

// CrandallField is the arithmetic engine over uint64 elements modulo a
// pseudo-Mersenne prime p = 2^k - c with small c, using Crandall folding
// x = hi*2^k + lo = lo + c*hi (mod p) for the reduction.
type CrandallField struct {
	enum FieldEnum
	k    uint
	c    uint64
	p    uint64
	mask uint64
}

// NewCrandall builds the engine for one of the pseudo-Mersenne fields.
func NewCrandall(enum FieldEnum) *CrandallField {
	switch enum {
	case P48:
		return newCrandall(enum, 48, 59)
	case P56:
		return newCrandall(enum, 56, 1097)
	case P64:
		return newCrandall(enum, 64, 59)
	default:
		panic(fmt.Sprintf("%s is not a pseudo-Mersenne field", enum))
	}
}

func newCrandall(enum FieldEnum, k uint, c uint64) *CrandallField {
	f := &CrandallField{enum: enum, k: k, c: c, mask: ^uint64(0)}
	if k < 64 {
		f.mask = (uint64(1) << k) - 1
	}
	f.p = f.mask - c + 1
	return f
}

func (f *CrandallField) Enum() FieldEnum   { return f.enum }
func (f *CrandallField) Modulus() *big.Int { return new(big.Int).SetUint64(f.p) }
func (f *CrandallField) Bits() int         { return int(f.k) }
func (f *CrandallField) NumLimbs() int     { return 1 }
func (f *CrandallField) Zero() uint64      { return 0 }
func (f *CrandallField) One() uint64       { return 1 }

// P returns the modulus as a machine word.
func (f *CrandallField) P() uint64 { return f.p }

func (f *CrandallField) FromUint64(v uint64) uint64 {
	return f.reduce128(0, v)
}

func (f *CrandallField) FromLimbs(limbs []uint64) (uint64, error) {
	if len(limbs) == 0 {
		return 0, nil
	}
	for _, l := range limbs[1:] {
		if l != 0 {
			return 0, fmt.Errorf("limbs %v: %w", limbs, ErrNotInField)
		}
	}
	if limbs[0] >= f.p {
		return 0, fmt.Errorf("%#x: %w", limbs[0], ErrNotInField)
	}
	return limbs[0], nil
}

func (f *CrandallField) FromBig(v *big.Int) (uint64, error) {
	limbs, err := checkedFromBig(v, f.Modulus(), 1)
	if err != nil {
		return 0, err
	}
	return limbs[0], nil
}

func (f *CrandallField) Limbs(a uint64) []uint64 { return []uint64{a} }
func (f *CrandallField) Big(a uint64) *big.Int   { return new(big.Int).SetUint64(a) }

func (f *CrandallField) Add(a, b uint64) uint64 { return addMod(a, b, f.p) }
func (f *CrandallField) Sub(a, b uint64) uint64 { return subMod(a, b, f.p) }
func (f *CrandallField) Neg(a uint64) uint64    { return negMod(a, f.p) }
func (f *CrandallField) Double(a uint64) uint64 { return addMod(a, a, f.p) }

func (f *CrandallField) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return f.reduce128(hi, lo)
}

func (f *CrandallField) Square(a uint64) uint64 {
	hi, lo := bits.Mul64(a, a)
	return f.reduce128(hi, lo)
}

func (f *CrandallField) Inverse(a uint64) (uint64, bool) {
	return euclidInverse(a, f.p, f.Mul, f.Sub)
}

func (f *CrandallField) Exp(a uint64, e *big.Int) uint64 {
	return expWord(a, e, 1, f.Mul)
}

func (f *CrandallField) IsZero(a uint64) bool { return a == 0 }

// reduce128 folds the bits above position k back with weight c until the
// value fits in k bits, then subtracts p at most once. For k < 64 the input
// must be below 2^(64+k).
func (f *CrandallField) reduce128(hi, lo uint64) uint64 {
	for {
		var top, low uint64
		if f.k == 64 {
			top, low = hi, lo
		} else {
			// products of canonical values stay below 2^(2k), so x >> k fits a word
			top = hi<<(64-f.k) | lo>>f.k
			low = lo & f.mask
		}
		if top == 0 {
			lo = low
			break
		}
		h, l := bits.Mul64(top, f.c)
		var carry uint64
		lo, carry = bits.Add64(l, low, 0)
		hi = h + carry
	}
	if lo >= f.p {
		lo -= f.p
	}
	return lo
}
