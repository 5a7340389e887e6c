package circuits

import (
	"fmt"
	"strings"

	"AlgebraicPermutations/modules/instances"
	"AlgebraicPermutations/modules/permutation/feistel"
	"AlgebraicPermutations/modules/permutation/griffin"
	"AlgebraicPermutations/modules/permutation/poseidon"
	"AlgebraicPermutations/modules/permutation/rescue"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func PoseidonTarget[E comparable](name string, p *poseidon.Params[E]) (*Target, error) {
	perm, err := poseidon.New(p)
	if err != nil {
		return nil, err
	}
	return NewTarget[E](name, p.Field, perm, Poseidon(p))
}

func RescueTarget[E comparable](name string, p *rescue.Params[E]) (*Target, error) {
	perm, err := rescue.New(p)
	if err != nil {
		return nil, err
	}
	permute, err := Rescue(p)
	if err != nil {
		return nil, err
	}
	return NewTarget[E](name, p.Field, perm, permute)
}

func RescuePrimeTarget[E comparable](name string, p *rescue.Params[E]) (*Target, error) {
	perm, err := rescue.NewPrime(p)
	if err != nil {
		return nil, err
	}
	permute, err := RescuePrime(p)
	if err != nil {
		return nil, err
	}
	return NewTarget[E](name, p.Field, perm, permute)
}

func FeistelMiMCTarget[E comparable](name string, p *feistel.MiMCParams[E]) (*Target, error) {
	perm, err := feistel.NewMiMC(p)
	if err != nil {
		return nil, err
	}
	return NewTarget[E](name, p.Field, perm, FeistelMiMC(p))
}

func GMiMCTarget[E comparable](name string, p *feistel.GMiMCParams[E]) (*Target, error) {
	perm, err := feistel.NewGMiMC(p)
	if err != nil {
		return nil, err
	}
	return NewTarget[E](name, p.Field, perm, GMiMC(p))
}

func GriffinTarget[E comparable](name string, p *griffin.Params[E]) (*Target, error) {
	perm, err := griffin.New(p)
	if err != nil {
		return nil, err
	}
	return NewTarget[E](name, p.Field, perm, Griffin(p))
}

func target[P any](name string, load func() (P, error), build func(string, P) (*Target, error)) (*Target, error) {
	p, err := load()
	if err != nil {
		return nil, err
	}
	return build(name, p)
}

// ForInstance returns the circuit target of a registered instance whose
// field has a circuit backend.
func ForInstance(name string) (*Target, error) {
	if _, err := instances.Lookup(name); err != nil {
		return nil, err
	}
	switch name {
	case "poseidon-m31x16":
		return target(name, instances.PoseidonM31x16, PoseidonTarget[uint32])
	case "poseidon-bn254-3":
		return target(name, instances.PoseidonBN254x3, PoseidonTarget[bnfr.Element])
	case "griffin-bn254-3":
		return target(name, instances.GriffinBN254, GriffinTarget[bnfr.Element])
	case "griffin-bls12-381-3":
		return target(name, instances.GriffinBLS12381, GriffinTarget[blsfr.Element])
	}
	if strings.HasPrefix(name, "gmimc-bn254-") {
		for _, t := range instances.GMiMCBN254Widths {
			if name == fmt.Sprintf("gmimc-bn254-%d", t) {
				return target(name, instances.GMiMCBN254(t), GMiMCTarget[bnfr.Element])
			}
		}
	}
	return nil, fmt.Errorf("instance %s: %w", name, ErrNoCircuit)
}
