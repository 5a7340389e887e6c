// Package circuits encodes the permutations as arithmetic circuits: gnark
// R1CS over the pairing-curve scalar fields and ecgo layered circuits over
// Mersenne31.
package circuits

import (
	"errors"
	"fmt"
	"math/big"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/permutation"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/test"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
)

var (
	// ErrNoCircuit is returned for fields or instances without a circuit
	// encoding.
	ErrNoCircuit = errors.New("no circuit encoding")
	// ErrUnsatisfied is returned when an assignment does not satisfy a
	// circuit.
	ErrUnsatisfied = errors.New("circuit not satisfied")
)

// Circuit asserts Output == permute(Input).
type Circuit struct {
	Input  []frontend.Variable
	Output []frontend.Variable `gnark:",public"`

	permute Permute
}

// Define declares the circuit constraints
func (c *Circuit) Define(api frontend.API) error {
	if c.permute == nil {
		return errors.New("circuit without permutation")
	}
	out := c.permute(api, c.Input)
	if len(out) != len(c.Output) {
		return fmt.Errorf("permutation returned %d variables, want %d", len(out), len(c.Output))
	}
	for i := range out {
		api.AssertIsEqual(out[i], c.Output[i])
	}
	return nil
}

// Curve returns the curve whose scalar field is the given field, for the
// fields with a gnark R1CS backend.
func Curve(field fields.FieldEnum) (ecc.ID, bool) {
	switch field {
	case fields.BN254:
		return ecc.BN254, true
	case fields.BLS12381:
		return ecc.BLS12_381, true
	default:
		return ecc.UNKNOWN, false
	}
}

// Target couples a circuit encoding with the native permutation it
// encodes.
type Target struct {
	Name  string
	Field fields.FieldEnum
	Width int

	permute Permute
	native  func(input []*big.Int) ([]*big.Int, error)
}

// NewTarget fails for fields that neither gnark nor ecgo can compile over.
func NewTarget[E comparable](name string, f fields.Field[E], perm permutation.Permutation[E], permute Permute) (*Target, error) {
	enum := f.Enum()
	if _, ok := Curve(enum); !ok && enum != fields.M31 {
		return nil, fmt.Errorf("%s over %s: %w", name, enum, ErrNoCircuit)
	}
	native := func(input []*big.Int) ([]*big.Int, error) {
		state := make([]E, len(input))
		for i, x := range input {
			e, err := f.FromBig(x)
			if err != nil {
				return nil, fmt.Errorf("input %d: %w", i, err)
			}
			state[i] = e
		}
		out := perm.Permutation(state)
		res := make([]*big.Int, len(out))
		for i, y := range out {
			res[i] = f.Big(y)
		}
		return res, nil
	}
	return &Target{Name: name, Field: enum, Width: perm.Width(), permute: permute, native: native}, nil
}

// Circuit returns the placeholder circuit to compile.
func (t *Target) Circuit() *Circuit {
	return &Circuit{
		Input:   make([]frontend.Variable, t.Width),
		Output:  make([]frontend.Variable, t.Width),
		permute: t.permute,
	}
}

// Assignment assigns the input and the native permutation of it.
func (t *Target) Assignment(input []*big.Int) (*Circuit, error) {
	if len(input) != t.Width {
		return nil, fmt.Errorf("%s takes %d inputs, got %d: %w", t.Name, t.Width, len(input), permutation.ErrInvalidConfiguration)
	}
	output, err := t.native(input)
	if err != nil {
		return nil, err
	}
	c := t.Circuit()
	for i := range input {
		c.Input[i] = input[i]
		c.Output[i] = output[i]
	}
	return c, nil
}

// Check compiles the circuit for the field of the target and checks the
// assignment against it.
func (t *Target) Check(assignment *Circuit) error {
	if t.Field == fields.M31 {
		return CheckLayered(t.Circuit(), assignment)
	}
	return CheckR1CS(t.Circuit(), assignment, t.Field.FieldModulus())
}

// CheckConsistency checks that the assignment with the native output is
// satisfied and that one with a perturbed output is not.
func (t *Target) CheckConsistency(input []*big.Int) error {
	assignment, err := t.Assignment(input)
	if err != nil {
		return err
	}
	if err := t.Check(assignment); err != nil {
		return fmt.Errorf("%s: native output rejected: %w", t.Name, err)
	}

	perturbed := *assignment
	perturbed.Output = append([]frontend.Variable(nil), assignment.Output...)
	last := new(big.Int).Add(assignment.Output[t.Width-1].(*big.Int), big.NewInt(1))
	perturbed.Output[t.Width-1] = last.Mod(last, t.Field.FieldModulus())
	if err := t.Check(&perturbed); err == nil {
		return fmt.Errorf("%s: perturbed output accepted: %w", t.Name, ErrUnsatisfied)
	}
	return nil
}

// CheckR1CS compiles the circuit with the gnark R1CS builder and checks
// that the assignment solves it.
func CheckR1CS(circuit, assignment frontend.Circuit, field *big.Int) error {
	ccs, err := frontend.Compile(field, r1cs.NewBuilder, circuit)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	log := logger.Logger()
	log.Debug().
		Int("constraints", ccs.GetNbConstraints()).
		Int("internal", ccs.GetNbInternalVariables()).
		Msg("r1cs compiled")

	witness, err := frontend.NewWitness(assignment, field)
	if err != nil {
		return fmt.Errorf("witness: %w", err)
	}
	if err := ccs.IsSolved(witness); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsatisfied, err)
	}
	return nil
}

// CheckLayered compiles the circuit with ecgo over Mersenne31 and checks the
// solved witness against the layered circuit.
func CheckLayered(circuit, assignment frontend.Circuit) error {
	compiled, err := ecgo.Compile(fields.M31.FieldModulus(), circuit)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	layered := compiled.GetLayeredCircuit()

	witness, err := compiled.GetInputSolver().SolveInput(assignment, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsatisfied, err)
	}
	if !test.CheckCircuit(layered, witness) {
		return ErrUnsatisfied
	}
	return nil
}

// Groth16 runs a fresh setup, proves the assignment and verifies the proof
// against its public part, the output state.
func Groth16(t *Target, assignment *Circuit) error {
	curve, ok := Curve(t.Field)
	if !ok {
		return fmt.Errorf("groth16 over %s: %w", t.Field, ErrNoCircuit)
	}
	field := curve.ScalarField()
	log := logger.Logger()

	ccs, err := frontend.Compile(field, r1cs.NewBuilder, t.Circuit())
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	log.Info().Str("target", t.Name).Int("constraints", ccs.GetNbConstraints()).Msg("groth16 setup")
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	witness, err := frontend.NewWitness(assignment, field)
	if err != nil {
		return fmt.Errorf("witness: %w", err)
	}
	proof, err := groth16.Prove(ccs, pk, witness)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	public, err := witness.Public()
	if err != nil {
		return fmt.Errorf("public witness: %w", err)
	}
	if err := groth16.Verify(proof, vk, public); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	log.Info().Str("target", t.Name).Msg("groth16 proof verified")
	return nil
}
