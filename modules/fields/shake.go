package fields

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// NewShake seeds a SHAKE128 stream with a family label followed by the
// SeedLimbs words of the modulus in little-endian byte order, the domain
// separation used by the parameter generation of FeistelMiMC, GMiMC, Griffin
// and ReinforcedConcrete.
func NewShake[E comparable](f Field[E], label string) sha3.ShakeHash {
	shake := sha3.NewShake128()
	shake.Write([]byte(label))
	var buf [8]byte
	for _, limb := range bigToLimbs(f.Modulus(), f.Enum().SeedLimbs()) {
		binary.LittleEndian.PutUint64(buf[:], limb)
		shake.Write(buf[:])
	}
	return shake
}

// FromShake samples a uniform element by rejection: it reads ceil(bits/8)
// bytes, clears the bits above the modulus length, interprets them
// little-endian and retries until the value is below p.
func FromShake[E comparable](f Field[E], r io.Reader) E {
	numBytes := (f.Bits() + 7) / 8
	mod := f.Bits() % 8
	buf := make([]byte, numBytes)
	padded := make([]byte, f.NumLimbs()*8)
	limbs := make([]uint64, f.NumLimbs())
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			panic(err.Error())
		}
		if mod != 0 {
			buf[numBytes-1] &= byte(1<<mod) - 1
		}
		copy(padded, buf)
		for i := range limbs {
			limbs[i] = binary.LittleEndian.Uint64(padded[8*i:])
		}
		if e, err := f.FromLimbs(limbs); err == nil {
			return e
		}
	}
}

// FromShakeNonZero samples like FromShake and additionally rejects zero.
func FromShakeNonZero[E comparable](f Field[E], r io.Reader) E {
	for {
		e := FromShake(f, r)
		if !f.IsZero(e) {
			return e
		}
	}
}

// ShakeVector samples n elements.
func ShakeVector[E comparable](f Field[E], r io.Reader, n int) []E {
	res := make([]E, n)
	for i := range res {
		res[i] = FromShake(f, r)
	}
	return res
}
