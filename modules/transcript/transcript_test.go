package transcript

import (
	"math/big"
	"testing"

	"AlgebraicPermutations/modules/circuits"
	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/instances"
	"AlgebraicPermutations/modules/permutation/poseidon"
	"AlgebraicPermutations/modules/sponge"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"
)

type TranscriptTestingCircuit struct {
	Input  []frontend.Variable
	Output frontend.Variable
}

func (t *TranscriptTestingCircuit) Define(api frontend.API) error {
	transcript, err := NewTranscript(api, fields.BN254)
	if err != nil {
		return err
	}
	transcript.AppendFs(t.Input...)
	api.AssertIsEqual(transcript.ChallengeF(), t.Output)
	return nil
}

func TestMiMCTranscript(t *testing.T) {
	circuit := TranscriptTestingCircuit{
		Input:  make([]frontend.Variable, 5),
		Output: frontend.Variable(0),
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err)

	assignment := TranscriptTestingCircuit{
		Input: []frontend.Variable{1, 2, 3, 4, 5},
		Output: func() frontend.Variable {
			v := new(big.Int)
			v.SetString("0x13f9a09b05c4429bbf9d0e782b00c942272a131a36749b2c55ba6ca3297ea9b7", 0)
			return v
		}(),
	}

	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	require.NoError(t, ccs.IsSolved(witness))
}

type PoseidonM31x16HashCircuit struct {
	Inputs  []frontend.Variable
	Outputs []frontend.Variable
}

func NewPoseidonM31x16HashCircuit(inputLen uint) PoseidonM31x16HashCircuit {
	return PoseidonM31x16HashCircuit{
		Inputs:  make([]frontend.Variable, inputLen),
		Outputs: make([]frontend.Variable, 16),
	}
}

func (c *PoseidonM31x16HashCircuit) Define(api frontend.API) error {
	hasher, err := NewPoseidonM31x16Hasher(api)
	if err != nil {
		return err
	}
	actualOut, _ := hasher.HashToState(c.Inputs...)
	for i := range actualOut {
		api.AssertIsEqual(actualOut[i], c.Outputs[i])
	}
	return nil
}

func TestPoseidonM31x16HashToState(t *testing.T) {
	testcases := []struct {
		InputLen   uint
		Assignment PoseidonM31x16HashCircuit
	}{
		{
			InputLen: 8,
			Assignment: PoseidonM31x16HashCircuit{
				Inputs: []frontend.Variable{
					114514, 114514, 114514, 114514,
					114514, 114514, 114514, 114514,
				},
				Outputs: []frontend.Variable{
					1021105124, 1342990709, 1593716396, 2100280498,
					330652568, 1371365483, 586650367, 345482939,
					849034538, 175601510, 1454280121, 1362077584,
					528171622, 187534772, 436020341, 1441052621,
				},
			},
		},
		{
			InputLen: 16,
			Assignment: PoseidonM31x16HashCircuit{
				Inputs: []frontend.Variable{
					114514, 114514, 114514, 114514,
					114514, 114514, 114514, 114514,
					114514, 114514, 114514, 114514,
					114514, 114514, 114514, 114514,
				},
				Outputs: []frontend.Variable{
					1510043913, 1840611937, 45881205, 1134797377,
					803058407, 1772167459, 846553905, 2143336151,
					300871060, 545838827, 1603101164, 396293243,
					502075988, 2067011878, 402134378, 535675968,
				},
			},
		},
	}

	for _, testcase := range testcases {
		circuit := NewPoseidonM31x16HashCircuit(testcase.InputLen)
		require.NoError(t, circuits.CheckLayered(&circuit, &testcase.Assignment))
	}
}

type M31TranscriptCircuit struct {
	Inputs     []frontend.Variable
	Challenges []frontend.Variable `gnark:",public"`
}

func (c *M31TranscriptCircuit) Define(api frontend.API) error {
	transcript, err := NewTranscript(api, fields.M31)
	if err != nil {
		return err
	}
	transcript.AppendFs(c.Inputs...)
	challenges := transcript.ChallengeFs(len(c.Challenges))
	for i := range challenges {
		api.AssertIsEqual(challenges[i], c.Challenges[i])
	}
	return nil
}

// The circuit transcript draws the same challenges as the native one.
func TestM31TranscriptMatchesNative(t *testing.T) {
	params, err := instances.PoseidonM31x16()
	require.NoError(t, err)
	perm, err := poseidon.New(params)
	require.NoError(t, err)
	s, err := sponge.New[uint32](fields.NewMersenne31(), perm, 8)
	require.NoError(t, err)

	inputs := []uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	native := sponge.NewTranscript(s)
	native.AppendFs(inputs...)
	challenges := native.ChallengeFs(3)

	assignment := M31TranscriptCircuit{
		Inputs:     make([]frontend.Variable, len(inputs)),
		Challenges: make([]frontend.Variable, len(challenges)),
	}
	for i, v := range inputs {
		assignment.Inputs[i] = v
	}
	for i, v := range challenges {
		assignment.Challenges[i] = v
	}
	circuit := M31TranscriptCircuit{
		Inputs:     make([]frontend.Variable, len(inputs)),
		Challenges: make([]frontend.Variable, len(challenges)),
	}
	require.NoError(t, circuits.CheckLayered(&circuit, &assignment))

	assignment.Challenges[2] = challenges[2] ^ 1
	require.Error(t, circuits.CheckLayered(&circuit, &assignment))
}

type countingHasher struct{}

func (countingHasher) StateCapacity() uint { return 2 }

func (countingHasher) HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint) {
	return []frontend.Variable{len(fs), 0}, 1
}

func TestFieldHasherTranscript(t *testing.T) {
	tr := NewHasherTranscript(nil, countingHasher{})

	tr.AppendFs(1, 2, 3)
	require.Equal(t, 5, tr.ChallengeF())
	require.Equal(t, uint(1), tr.GetCount())

	// only the kept state is hashed with an empty pool
	require.Equal(t, []frontend.Variable{2, 2}, tr.ChallengeFs(2))
	require.Equal(t, uint(3), tr.GetCount())

	tr.SetState([]frontend.Variable{0, 0, 0})
	tr.AppendF(9)
	require.Equal(t, []frontend.Variable{4, 0}, tr.HashAndReturnState())

	tr.ResetCount()
	require.Equal(t, uint(0), tr.GetCount())
}

func TestUnsupportedField(t *testing.T) {
	_, err := NewTranscript(nil, fields.Goldilocks)
	require.ErrorIs(t, err, circuits.ErrNoCircuit)
}

func TestPermutationHasherStateWidth(t *testing.T) {
	identity := func(api frontend.API, state []frontend.Variable) []frontend.Variable { return state }
	hasher, err := NewPermutationHasher(nil, identity, 16, 8)
	require.NoError(t, err)
	require.Equal(t, uint(16), hasher.StateCapacity())

	tr := NewHasherTranscript(nil, hasher)
	require.Len(t, tr.hashState, 16)

	_, err = NewPermutationHasher(nil, identity, 8, 8)
	require.Error(t, err)
}
