package concrete

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"
)

// Round structure of ReinforcedConcrete.
const (
	T           = 3
	PreRounds   = 3
	PostRounds  = 3
	TotalRounds = PreRounds + PostRounds + 1
)

// Params is one ReinforcedConcrete instance: the Bricks coefficients, the
// radix sequence of the Bars decomposition and its digit S-box.
type Params[E comparable] struct {
	Field  fields.Field[E]
	D      uint64
	Alphas [2]uint16
	Betas  [2]E
	// Si is the radix sequence s_0..s_{n-1}, V the prime of the digit S-box.
	Si []uint16
	V  uint16
	RC [][]E

	decomposer *fields.Decomposer
	sbox       []uint16
}

// NewParams validates an instance. ab holds alpha_0, alpha_1, beta_0 and
// beta_1; the round constants are TotalRounds + 1 rows of width T.
func NewParams[E comparable](f fields.Field[E], d uint64, si []uint16, v uint16, ab [4]uint16, rc [][]E) (*Params[E], error) {
	if d != 3 && d != 5 {
		return nil, permutation.Invalid("reinforced concrete degree %d", d)
	}
	if _, err := permutation.NewSBox(f, d); err != nil {
		return nil, err
	}
	if v < 2 {
		return nil, permutation.Invalid("digit s-box modulus %d", v)
	}
	for i, s := range si {
		if s < v {
			return nil, permutation.Invalid("radix s_%d = %d below s-box modulus %d", i, s, v)
		}
	}
	decomposer, err := fields.NewDecomposer(si, f.Modulus())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", permutation.ErrInvalidConfiguration, err)
	}
	if len(rc) != TotalRounds+1 {
		return nil, permutation.Invalid("%d round constant rows, want %d", len(rc), TotalRounds+1)
	}

	p := &Params[E]{
		Field:      f,
		D:          d,
		Alphas:     [2]uint16{ab[0], ab[1]},
		Betas:      [2]E{f.FromUint64(uint64(ab[2])), f.FromUint64(uint64(ab[3]))},
		Si:         append([]uint16(nil), si...),
		V:          v,
		RC:         make([][]E, len(rc)),
		decomposer: decomposer,
		sbox:       digitSBox(v, si),
	}
	for i, row := range rc {
		if len(row) != T {
			return nil, permutation.Invalid("round constant row %d has %d elements", i, len(row))
		}
		p.RC[i] = append([]E(nil), row...)
	}
	return p, nil
}

// GenerateParams derives the round constants from a SHAKE128 stream
// labelled "ReinforcedConcrete".
func GenerateParams[E comparable](f fields.Field[E], d uint64, si []uint16, v uint16, ab [4]uint16) (*Params[E], error) {
	shake := fields.NewShake(f, "ReinforcedConcrete")
	rc := make([][]E, TotalRounds+1)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, T)
	}
	return NewParams(f, d, si, v, ab, rc)
}

// digitSBox maps i to i^-1 mod v below v (0 to 0) and is the identity from v
// up to the largest radix.
func digitSBox(v uint16, si []uint16) []uint16 {
	size := v
	for _, s := range si {
		if s > size {
			size = s
		}
	}
	sbox := make([]uint16, size)
	for i := uint16(0); i < v; i++ {
		sbox[i] = fields.ModInverseU16(i, v)
	}
	for i := v; i < size; i++ {
		sbox[i] = i
	}
	return sbox
}

// SBox returns a copy of the padded digit S-box.
func (p *Params[E]) SBox() []uint16 { return append([]uint16(nil), p.sbox...) }

// Decomposer returns the radix decomposition of the Bars layer.
func (p *Params[E]) Decomposer() *fields.Decomposer { return p.decomposer }

// Published instances over the pseudo-Mersenne primes.
var (
	EasyRadices   = []uint16{267, 267, 267, 244, 258, 235}
	MediumRadices = []uint16{638, 659, 635, 646, 659, 634}
	HardRadices   = []uint16{570, 577, 549, 579, 553, 577, 553}
)

// NewEasyParams is the instance over 2^48 - 59.
func NewEasyParams() (*Params[uint64], error) {
	return GenerateParams[uint64](fields.NewCrandall(fields.P48), 3, EasyRadices, 223, [4]uint16{1, 2, 3, 4})
}

// NewMediumParams is the instance over 2^56 - 1097.
func NewMediumParams() (*Params[uint64], error) {
	return GenerateParams[uint64](fields.NewCrandall(fields.P56), 3, MediumRadices, 617, [4]uint16{1, 3, 2, 4})
}

// NewHardParams is the instance over 2^64 - 59.
func NewHardParams() (*Params[uint64], error) {
	return GenerateParams[uint64](fields.NewCrandall(fields.P64), 3, HardRadices, 541, [4]uint16{1, 3, 2, 4})
}
