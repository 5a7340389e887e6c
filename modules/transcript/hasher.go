package transcript

import (
	"AlgebraicPermutations/modules/circuits"
	"AlgebraicPermutations/modules/instances"
	"AlgebraicPermutations/modules/permutation"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// FieldHasher describes the behavior of a field hasher in a Fiat-Shamir
// transcript. Instances are immutable, the sponge state is managed by a
// FieldHasherTranscript.
type FieldHasher interface {
	// StateCapacity returns how many field elements of a state dumped by
	// HashToState a transcript keeps for challenges.
	StateCapacity() uint

	// HashToState hashes a bunch of field elements to a "hash state", and
	// returns the number of hash invocations it took.
	HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint)
}

// MiMCFieldHasher is a wrapper around the gnark MiMC hasher of the circuit
// field.
type MiMCFieldHasher struct {
	mimc.MiMC
}

func NewMiMCFieldHasher(api frontend.API) (*MiMCFieldHasher, error) {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return nil, err
	}
	return &MiMCFieldHasher{MiMC: h}, nil
}

func (m *MiMCFieldHasher) StateCapacity() uint {
	return 1
}

func (m *MiMCFieldHasher) HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint) {
	m.MiMC.Reset()
	m.MiMC.Write(fs...)

	h0 := m.MiMC.Sum()
	return []frontend.Variable{h0}, uint(len(fs))
}

// PermutationHasher is the in-circuit sponge over a permutation encoding.
// The first width - rate words are the capacity part, input chunks are
// added into the rest.
type PermutationHasher struct {
	api     frontend.API
	permute circuits.Permute
	width   int
	rate    int
}

func NewPermutationHasher(api frontend.API, permute circuits.Permute, width, rate int) (*PermutationHasher, error) {
	if permute == nil || rate <= 0 || rate >= width {
		return nil, permutation.Invalid("sponge rate %d for width %d", rate, width)
	}
	return &PermutationHasher{api: api, permute: permute, width: width, rate: rate}, nil
}

// NewPoseidonM31x16Hasher is the rate 8 sponge over the Mersenne31 width 16
// Poseidon instance.
func NewPoseidonM31x16Hasher(api frontend.API) (*PermutationHasher, error) {
	p, err := instances.PoseidonM31x16()
	if err != nil {
		return nil, err
	}
	return NewPermutationHasher(api, circuits.Poseidon(p), p.T, 8)
}

// StateCapacity is the full width, so the initial state has the same length
// as every state HashToState returns.
func (h *PermutationHasher) StateCapacity() uint {
	return uint(h.width)
}

func (h *PermutationHasher) HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint) {
	capacity := h.width - h.rate
	numChunks := (len(fs) + h.rate - 1) / h.rate

	res := make([]frontend.Variable, h.width)
	for i := range res {
		res[i] = 0
	}

	for i := 0; i < numChunks; i++ {
		for j := 0; j < h.rate; j++ {
			if k := i*h.rate + j; k < len(fs) {
				res[capacity+j] = h.api.Add(res[capacity+j], fs[k])
			}
		}
		res = h.permute(h.api, res)
	}

	return res, uint(numChunks)
}
