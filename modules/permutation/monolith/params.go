package monolith

import (
	"encoding/binary"
	"fmt"
	"io"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"

	"golang.org/x/crypto/sha3"
)

// Rounds is the number of bars-bricks-concrete rounds; only the first
// Rounds-1 concrete layers add constants.
const Rounds = 6

// variant holds what differs between Monolith-31 and Monolith-64.
type variant struct {
	bars      int
	minWidth  int
	wordBytes int
	lanes     []byte
	bar       func(uint64) uint64
	barLookup func(uint64) uint64
}

var (
	variant31 = variant{
		bars:      8,
		minWidth:  16,
		wordBytes: 4,
		lanes:     []byte{8, 8, 8, 7},
		bar:       func(x uint64) uint64 { return uint64(Bar31(uint32(x))) },
		barLookup: func(x uint64) uint64 { return uint64(Bar31Lookup(uint32(x))) },
	}
	variant64 = variant{
		bars:      4,
		minWidth:  8,
		wordBytes: 8,
		lanes:     []byte{8, 8, 8, 8, 8, 8, 8, 8},
		bar:       Bar64,
		barLookup: Bar64Lookup,
	}
)

func variantOf(enum fields.FieldEnum) (variant, error) {
	switch enum {
	case fields.M31:
		return variant31, nil
	case fields.Goldilocks:
		return variant64, nil
	default:
		return variant{}, permutation.Invalid("no monolith over %s", enum)
	}
}

// Circulant first rows of the published widths. The width 24 layer is the
// top-left block of the 32x32 circulant.
var (
	Row8  = []uint64{23, 8, 13, 10, 7, 6, 21, 8}
	Row12 = []uint64{7, 23, 8, 26, 13, 10, 9, 7, 6, 22, 21, 8}
	Row16 = []uint64{
		61402, 17845, 26798, 59689, 12021, 40901, 41351, 27521,
		56951, 12034, 53865, 43244, 7454, 33823, 28750, 1108,
	}
	Row32 = []uint64{
		87474966, 500304516, 1138910529, 1387408269, 937082352, 1410252806, 806711693, 1520034124,
		593719941, 1284124534, 1575767662, 927918294, 669885656, 1717383379, 853820823, 1137173171,
		1740948995, 2024301343, 1160738787, 60752863, 1950203872, 1302354504, 1593997632, 136918578,
		1358088042, 2071410473, 1467869360, 1941039814, 1490713897, 1739211637, 230334003, 643163553,
	}
)

// Params is a Monolith instance over Mersenne31 (8 bars, T >= 16) or
// Goldilocks (4 bars, T >= 8), T a multiple of 4.
type Params[E comparable] struct {
	Field fields.Field[E]
	T     int
	Bars  int
	// RC holds the constants of the first Rounds-1 concrete layers.
	RC [][]E

	variant  variant
	concrete linear.Layer[E]
}

// NewParams checks the constants against the width and wraps the given
// concrete layer.
func NewParams[E comparable](f fields.Field[E], t int, concrete linear.Layer[E], rc [][]E) (*Params[E], error) {
	v, err := variantOf(f.Enum())
	if err != nil {
		return nil, err
	}
	if t < v.minWidth || t%4 != 0 {
		return nil, permutation.Invalid("monolith width %d over %s", t, f.Enum())
	}
	if concrete == nil || concrete.Width() != t {
		return nil, permutation.Invalid("monolith concrete layer does not have width %d", t)
	}
	if len(rc) != Rounds-1 {
		return nil, permutation.Invalid("%d monolith constant rows", len(rc))
	}
	rows := make([][]E, len(rc))
	for i, row := range rc {
		if len(row) != t {
			return nil, permutation.Invalid("monolith constant row %d of length %d", i, len(row))
		}
		rows[i] = append([]E(nil), row...)
	}
	return &Params[E]{Field: f, T: t, Bars: v.bars, RC: rows, variant: v, concrete: concrete}, nil
}

// GenerateParams builds the instance of width t. Constants are sampled from
// SHAKE128 seeded with "Monolith" || t || Rounds || p || lane partition, one
// little-endian word per draw, rejecting values >= p. Widths 8, 12, 16 and 24
// use the fixed circulant layers, other widths a Cauchy matrix read from a
// second stream.
func GenerateParams[E comparable](f fields.Field[E], t int) (*Params[E], error) {
	v, err := variantOf(f.Enum())
	if err != nil {
		return nil, err
	}
	if t < v.minWidth || t%4 != 0 || t > 255 {
		return nil, permutation.Invalid("monolith width %d over %s", t, f.Enum())
	}

	concrete, err := concreteLayer(f, v, t)
	if err != nil {
		return nil, err
	}

	shake := sha3.NewShake128()
	shake.Write([]byte("Monolith"))
	shake.Write([]byte{byte(t), Rounds})
	shake.Write(modulusBytes(f, v))
	shake.Write(v.lanes)

	rc := make([][]E, Rounds-1)
	for i := range rc {
		rc[i] = make([]E, t)
		for j := range rc[i] {
			rc[i][j] = randomWord(f, v, shake)
		}
	}
	return NewParams(f, t, concrete, rc)
}

func modulusBytes[E comparable](f fields.Field[E], v variant) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, f.Modulus().Uint64())
	return buf[:v.wordBytes]
}

func randomWord[E comparable](f fields.Field[E], v variant, r io.Reader) E {
	buf := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, buf[:v.wordBytes]); err != nil {
			panic(err)
		}
		if e, err := f.FromLimbs([]uint64{binary.LittleEndian.Uint64(buf)}); err == nil {
			return e
		}
	}
}

func concreteLayer[E comparable](f fields.Field[E], v variant, t int) (linear.Layer[E], error) {
	var row []uint64
	switch {
	case v.bars == 4 && t == 8:
		row = Row8
	case v.bars == 4 && t == 12:
		row = Row12
	case v.bars == 8 && t == 16:
		row = Row16
	case v.bars == 8 && t == 24:
		row = Row32
	}
	if row != nil {
		layer, err := linear.NewTruncatedCirculant(f, fields.Elements(f, row...), t)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", permutation.ErrInvalidConfiguration, err)
		}
		return layer, nil
	}

	mds, err := cauchyMDS(f, v, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", permutation.ErrInvalidConfiguration, err)
	}
	return linear.NewDense(f, mds)
}

// cauchyMDS seeds its stream with only the low 32 bits of p. It samples y_i
// of bits(p)-2 bits whose low bits(p)-9 bits x_i are pairwise distinct and
// returns the matrix 1/(x_i + y_j).
func cauchyMDS[E comparable](f fields.Field[E], v variant, t int) (linear.Matrix[E], error) {
	shake := sha3.NewShake128()
	shake.Write([]byte("Monolith"))
	shake.Write([]byte{byte(t), Rounds})
	shake.Write(modulusBytes(f, v)[:4])
	shake.Write([]byte{16, 15})
	shake.Write([]byte("MDS"))

	bits := uint(f.Bits())
	xMask := uint64(1)<<(bits-9) - 1
	yMask := (uint64(1)<<bits - 1) >> 2

	ys := make([]uint64, 0, t)
	buf := make([]byte, v.wordBytes)
	for len(ys) < t {
		if _, err := io.ReadFull(shake, buf); err != nil {
			return nil, err
		}
		var y uint64
		if v.wordBytes == 8 {
			y = binary.BigEndian.Uint64(buf)
		} else {
			y = uint64(binary.BigEndian.Uint32(buf))
		}
		y &= yMask
		distinct := true
		for _, prev := range ys {
			if prev&xMask == y&xMask {
				distinct = false
				break
			}
		}
		if distinct {
			ys = append(ys, y)
		}
	}

	xs := make([]E, t)
	yEls := make([]E, t)
	for i, y := range ys {
		xs[i] = f.FromUint64(y & xMask)
		yEls[i] = f.FromUint64(y)
	}
	return linear.CauchyMatrix(f, xs, yEls)
}

// Concrete returns the linear layer.
func (p *Params[E]) Concrete() linear.Layer[E] { return p.concrete }

// NewMonolith64Params is the Goldilocks instance of width 8 or 12.
func NewMonolith64Params(t int) (*Params[uint64], error) {
	if t != 8 && t != 12 {
		return nil, permutation.Invalid("no published monolith-64 instance of width %d", t)
	}
	return GenerateParams[uint64](fields.NewGoldilocks(), t)
}

// NewMonolith31Params is the Mersenne31 instance of width 16 or 24.
func NewMonolith31Params(t int) (*Params[uint32], error) {
	if t != 16 && t != 24 {
		return nil, permutation.Invalid("no published monolith-31 instance of width %d", t)
	}
	return GenerateParams[uint32](fields.NewMersenne31(), t)
}
