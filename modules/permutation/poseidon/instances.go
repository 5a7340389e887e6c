package poseidon

import (
	"encoding/binary"
	"fmt"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"

	"golang.org/x/crypto/sha3"
)

// GenerateParams derives an instance from a SHAKE128 stream labelled
// "Poseidon", with the Cauchy matrix 1/(x_i + y_j), x_i = i, y_j = t + j, as
// MDS matrix.
func GenerateParams[E comparable](f fields.Field[E], t int, d uint64, rf, rp int) (*Params[E], error) {
	xs := make([]E, t)
	ys := make([]E, t)
	for i := 0; i < t; i++ {
		xs[i] = f.FromUint64(uint64(i))
		ys[i] = f.FromUint64(uint64(t + i))
	}
	mds, err := linear.CauchyMatrix(f, xs, ys)
	if err != nil {
		return nil, fmt.Errorf("poseidon mds: %w", err)
	}

	shake := fields.NewShake(f, "Poseidon")
	rc := make([][]E, rf+rp)
	for i := range rc {
		rc[i] = fields.ShakeVector(f, shake, t)
	}
	return NewParams(f, t, d, rf, rp, mds, rc)
}

// M31x16 parameters of the Mersenne31 transcript hash.
const (
	M31x16FullRounds    = 8
	M31x16PartialRounds = 14
	M31x16Degree        = 5
)

var m31x16MDSRow = []uint64{1, 1, 51, 1, 11, 17, 2, 1, 101, 63, 15, 2, 67, 22, 13, 3}

// NewM31x16Params builds the width 16 Mersenne31 instance. Round constants
// come from a Keccak-256 chain seeded with "poseidon_seed_Mersenne 31_16",
// one constant per hash, taken as the first four bytes little-endian modulo
// p. The matrix is the Hankel matrix M[i][j] = row[(i + j) mod 16].
func NewM31x16Params() (*Params[uint32], error) {
	f := fields.NewMersenne31()
	const t = 16

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte("poseidon_seed_Mersenne 31_16"))
	seed := hasher.Sum(nil)

	rc := make([][]uint32, M31x16FullRounds+M31x16PartialRounds)
	for i := range rc {
		rc[i] = make([]uint32, t)
		for j := range rc[i] {
			hasher.Reset()
			hasher.Write(seed)
			seed = hasher.Sum(nil)
			rc[i][j] = f.FromUint64(uint64(binary.LittleEndian.Uint32(seed[:4])))
		}
	}

	mds := linear.NewMatrix[uint32](f, t, t)
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			mds[i][j] = f.FromUint64(m31x16MDSRow[(i+j)%t])
		}
	}
	return NewParamsWithOrder[uint32](f, t, M31x16Degree, M31x16FullRounds, M31x16PartialRounds, mds, rc, LinearFirst)
}
