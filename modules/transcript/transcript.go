// Package transcript is the in-circuit Fiat-Shamir transcript, hashing with
// gnark MiMC over BN254 and with the Poseidon sponge over Mersenne31.
package transcript

import (
	"fmt"

	"AlgebraicPermutations/modules/circuits"
	"AlgebraicPermutations/modules/fields"

	"github.com/consensys/gnark/frontend"
)

// FieldHasherTranscript is the transcript constructed from a field hasher.
type FieldHasherTranscript struct {
	api frontend.API

	// The hash function
	hasher FieldHasher

	// The values to feed the hash function
	dataPool []frontend.Variable

	// The hashState
	hashState []frontend.Variable

	// helper field: counting, irrelevant to circuit
	count uint
}

// NewTranscript picks the hasher tied to the circuit field.
func NewTranscript(api frontend.API, field fields.FieldEnum) (*FieldHasherTranscript, error) {
	var (
		hasher FieldHasher
		err    error
	)
	switch field {
	case fields.BN254:
		hasher, err = NewMiMCFieldHasher(api)
	case fields.M31:
		hasher, err = NewPoseidonM31x16Hasher(api)
	default:
		return nil, fmt.Errorf("transcript over %s: %w", field, circuits.ErrNoCircuit)
	}
	if err != nil {
		return nil, err
	}
	return NewHasherTranscript(api, hasher), nil
}

func NewHasherTranscript(api frontend.API, hasher FieldHasher) *FieldHasherTranscript {
	initState := make([]frontend.Variable, hasher.StateCapacity())
	for i := range initState {
		initState[i] = 0
	}
	return &FieldHasherTranscript{
		api:       api,
		hasher:    hasher,
		hashState: initState,
	}
}

func (t *FieldHasherTranscript) AppendF(f frontend.Variable) {
	t.dataPool = append(t.dataPool, f)
}

func (t *FieldHasherTranscript) AppendFs(fs ...frontend.Variable) {
	t.dataPool = append(t.dataPool, fs...)
}

// ChallengeF returns the first word of the next hash state.
func (t *FieldHasherTranscript) ChallengeF() frontend.Variable {
	return t.HashAndReturnState()[0]
}

func (t *FieldHasherTranscript) ChallengeFs(n int) []frontend.Variable {
	cs := make([]frontend.Variable, n)
	for i := range cs {
		cs[i] = t.ChallengeF()
	}
	return cs
}

// HashAndReturnState hashes the kept state followed by the pending pool.
func (t *FieldHasherTranscript) HashAndReturnState() []frontend.Variable {
	input := append(append([]frontend.Variable(nil), t.hashState...), t.dataPool...)

	var newCount uint
	t.hashState, newCount = t.hasher.HashToState(input...)
	t.count += newCount
	t.dataPool = nil

	return t.hashState
}

func (t *FieldHasherTranscript) SetState(newHashState []frontend.Variable) {
	t.dataPool = nil
	t.hashState = append([]frontend.Variable(nil), newHashState...)
}

func (t *FieldHasherTranscript) GetCount() uint {
	return t.count
}

func (t *FieldHasherTranscript) ResetCount() {
	t.count = 0
}
