package grendel

import (
	"fmt"
	"math/big"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Params describes a Grendel instance: Rounds rounds of the Legendre s-box
// layer followed by the MDS matrix and one row of round constants.
type Params[E comparable] struct {
	Field  fields.Field[E]
	T      int
	D      uint64
	Rounds int
	MDS    linear.Matrix[E]
	RC     [][]E
	// N is a quadratic non-residue: -1 if possible, else the smallest one.
	N E

	half  *big.Int
	dense *linear.Dense[E]
}

// NewParams accepts the degrees 2, 3 and 5 and rejects a degree for which
// x^d * (x/p) is no permutation, that is gcd(d + (p-1)/2, p-1) != 1.
func NewParams[E comparable](f fields.Field[E], t int, d uint64, rounds int, mds linear.Matrix[E], rc [][]E) (*Params[E], error) {
	if t < 2 || rounds < 1 {
		return nil, permutation.Invalid("grendel width %d with %d rounds", t, rounds)
	}
	if d != 2 && d != 3 && d != 5 {
		return nil, permutation.Invalid("grendel s-box degree %d", d)
	}
	pMinusOne := new(big.Int).Sub(f.Modulus(), big.NewInt(1))
	half := new(big.Int).Rsh(pMinusOne, 1)
	exponent := new(big.Int).Add(half, new(big.Int).SetUint64(d))
	if new(big.Int).GCD(nil, nil, exponent, pMinusOne).Cmp(big.NewInt(1)) != 0 {
		return nil, permutation.Invalid("x^%d legendre s-box is not a permutation of %s", d, f.Enum())
	}
	if mds.Rows() != t || !mds.IsSquare() || !mds.IsInvertible(f) {
		return nil, permutation.Invalid("grendel mds of %dx%d is not an invertible %dx%d matrix", mds.Rows(), mds.Cols(), t, t)
	}
	dense, err := linear.NewDense(f, mds)
	if err != nil {
		return nil, err
	}
	if len(rc) != rounds {
		return nil, permutation.Invalid("%d round constant rows for %d rounds", len(rc), rounds)
	}

	p := &Params[E]{
		Field:  f,
		T:      t,
		D:      d,
		Rounds: rounds,
		MDS:    mds.Clone(),
		RC:     make([][]E, rounds),
		N:      nonResidue(f),
		half:   half,
		dense:  dense,
	}
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("round constant row %d has %d elements", i, len(row))
		}
		p.RC[i] = append([]E(nil), row...)
	}
	return p, nil
}

func nonResidue[E comparable](f fields.Field[E]) E {
	n := f.Neg(f.One())
	if fields.Legendre(f, n) == -1 {
		return n
	}
	n = f.One()
	for fields.Legendre(f, n) != -1 {
		n = f.Add(n, f.One())
	}
	return n
}

// GenerateParams derives the round constants from a SHAKE128 stream
// labelled "Grendel" and uses the Cauchy matrix 1/(x_i + y_j), x_i = i,
// y_j = t + j.
func GenerateParams[E comparable](f fields.Field[E], t int, d uint64, rounds int) (*Params[E], error) {
	xs := make([]E, t)
	ys := make([]E, t)
	for i := 0; i < t; i++ {
		xs[i] = f.FromUint64(uint64(i))
		ys[i] = f.FromUint64(uint64(t + i))
	}
	mds, err := linear.CauchyMatrix(f, xs, ys)
	if err != nil {
		return nil, fmt.Errorf("grendel mds: %w", err)
	}
	shake := fields.NewShake(f, "Grendel")
	rc := make([][]E, rounds)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, t)
	}
	return NewParams(f, t, d, rounds, mds, rc)
}

// Degree is the s-box degree of the registered instances. 2 and 3 are no
// permutations of the BN254 and BLS12-381 scalar fields.
const Degree = 5

// instanceRounds maps the widths of the registered instances to their
// round count.
var instanceRounds = map[int]int{3: 8, 4: 8, 5: 7, 8: 7}

func NewBN254Params(t int) (*Params[bnfr.Element], error) {
	rounds, ok := instanceRounds[t]
	if !ok {
		return nil, permutation.Invalid("no grendel bn254 instance of width %d", t)
	}
	return GenerateParams[bnfr.Element](fields.NewBN254(), t, Degree, rounds)
}

func NewBLS12381Params(t int) (*Params[blsfr.Element], error) {
	rounds, ok := instanceRounds[t]
	if !ok {
		return nil, permutation.Invalid("no grendel bls12-381 instance of width %d", t)
	}
	return GenerateParams[blsfr.Element](fields.NewBLS12381(), t, Degree, rounds)
}
