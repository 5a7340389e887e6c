package fields

import (
	"fmt"
	"math/big"
	"strings"

	eccFields "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/field"
	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// FieldEnum is the enum value naming the prime field a permutation instance
// is defined over.
type FieldEnum uint64

// The enum assignment of the circuit-capable fields is aligning with the ones
// on ECGO side, the remaining fields take values out of the ECGO range.
const (
	// M31 is the FieldEnum for Mersenne31 field, 2^31 - 1
	M31 FieldEnum = 1
	// BN254 is the FieldEnum for the BN254 scalar field
	BN254 FieldEnum = 2

	// Goldilocks is the FieldEnum for 2^64 - 2^32 + 1
	Goldilocks FieldEnum = 16
	// BLS12381 is the FieldEnum for the BLS12-381 scalar field
	BLS12381 FieldEnum = 17
	// P48 is the FieldEnum for the pseudo-Mersenne prime 2^48 - 59
	P48 FieldEnum = 18
	// P56 is the FieldEnum for the pseudo-Mersenne prime 2^56 - 1097
	P56 FieldEnum = 19
	// P64 is the FieldEnum for the pseudo-Mersenne prime 2^64 - 59
	P64 FieldEnum = 20
)

var fieldNames = map[FieldEnum]string{
	M31:        "m31",
	BN254:      "bn254",
	Goldilocks: "goldilocks",
	BLS12381:   "bls12-381",
	P48:        "p48",
	P56:        "p56",
	P64:        "p64",
}

// AllFields lists every supported field in enum order.
func AllFields() []FieldEnum {
	return []FieldEnum{M31, BN254, Goldilocks, BLS12381, P48, P56, P64}
}

func (f FieldEnum) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FieldEnum(%d)", uint64(f))
}

// ParseFieldEnum resolves a field name as printed by String.
func ParseFieldEnum(name string) (FieldEnum, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// CircuitCapable reports whether ECGO has a field engine for the field, i.e.,
// whether a permutation over this field can be compiled to a layered circuit.
func (f FieldEnum) CircuitCapable() bool {
	return f == M31 || f == BN254
}

// GetFieldEngine returns the ECGO field engine tied to the field enum.
func (f FieldEnum) GetFieldEngine() eccFields.Field {
	if !f.CircuitCapable() {
		panic(fmt.Sprintf("no circuit field engine for %s, it aint an ecgo field", f))
	}
	return eccFields.GetFieldById(uint64(f))
}

// FieldModulus finds the modulus of the field tied to the field enum
func (f FieldEnum) FieldModulus() *big.Int {
	switch f {
	case M31, BN254:
		return f.GetFieldEngine().Field()
	case Goldilocks:
		return new(big.Int).SetUint64(GoldilocksModulus)
	case BLS12381:
		return blsfr.Modulus()
	case P48:
		return new(big.Int).SetUint64(P48Modulus)
	case P56:
		return new(big.Int).SetUint64(P56Modulus)
	case P64:
		return new(big.Int).SetUint64(P64Modulus)
	default:
		panic(fmt.Sprintf("unknown field enum %d", uint64(f)))
	}
}

// FieldBits is the bit length of the field modulus.
func (f FieldEnum) FieldBits() int {
	return f.FieldModulus().BitLen()
}

// FieldBytes stand for the number of bytes of the field modulus
// tied to the field enum
func (f FieldEnum) FieldBytes() uint {
	// NOTE: round up against bit-byte rate
	return (uint(f.FieldBits()) + 8 - 1) / 8
}

// FieldLimbs is the number of 64-bit little-endian limbs holding an element.
func (f FieldEnum) FieldLimbs() int {
	return (f.FieldBits() + 63) / 64
}

// SeedLimbs is the number of 64-bit words the modulus is written with when
// it seeds a parameter derivation stream. The pseudo-Mersenne and
// pairing-curve fields use a representation wide enough to hold 2p, so P64
// takes two words; Goldilocks and Mersenne31 use exactly one.
func (f FieldEnum) SeedLimbs() int {
	switch f {
	case M31, Goldilocks:
		return 1
	default:
		return (f.FieldBits() + 1 + 63) / 64
	}
}
