package circuits

import (
	"errors"
	"math/big"
	"math/bits"

	"AlgebraicPermutations/modules/fields"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/utils/customgates"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

var (
	POW_5_GATE_ID     uint64 = 12345
	POW_5_COST_PSEUDO int    = 20
)

func init() {
	solver.RegisterHint(InversePowerHint)
	customgates.Register(POW_5_GATE_ID, Power5, POW_5_COST_PSEUDO)
}

// Power5 evaluates the POW-5 custom gate.
func Power5(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	a := big.NewInt(0)
	a.Mul(inputs[0], inputs[0])
	a.Mul(a, a)
	a.Mul(a, inputs[0])
	outputs[0] = a.Mod(a, field)
	return nil
}

// InversePowerHint computes inputs[0]^inputs[1] in the circuit field. The
// exponent is the inverse of the S-box degree modulo p - 1.
func InversePowerHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs) != 2 || len(outputs) != 1 {
		return errors.New("inverse power hint takes a base and an exponent")
	}
	outputs[0].Exp(inputs[0], inputs[1], field)
	return nil
}

// Pow computes x^d with the same chains as the native S-boxes.
func Pow(api frontend.API, x frontend.Variable, d uint64) frontend.Variable {
	switch d {
	case 3:
		return api.Mul(api.Mul(x, x), x)
	case 5:
		x2 := api.Mul(x, x)
		return api.Mul(api.Mul(x2, x2), x)
	case 7:
		x2 := api.Mul(x, x)
		x3 := api.Mul(x2, x)
		return api.Mul(api.Mul(x2, x2), x3)
	}
	res := x
	for i := bits.Len64(d) - 2; i >= 0; i-- {
		res = api.Mul(res, res)
		if (d>>uint(i))&1 == 1 {
			res = api.Mul(res, x)
		}
	}
	return res
}

// sbox is x^d, through the POW-5 custom gate when compiling with ecgo.
func sbox(api frontend.API, x frontend.Variable, d uint64) frontend.Variable {
	if ecgoAPI, ok := api.(ecgo.API); ok && d == 5 {
		return ecgoAPI.CustomGate(POW_5_GATE_ID, x)
	}
	return Pow(api, x, d)
}

// InversePow returns y = x^(1/d) computed by a hint and constrained by
// y^d == x, which pins y down as x -> x^d is a permutation.
func InversePow(api frontend.API, x frontend.Variable, d uint64, inv *big.Int) frontend.Variable {
	res, err := api.Compiler().NewHint(InversePowerHint, 1, x, inv)
	if err != nil {
		panic(err.Error())
	}
	api.AssertIsEqual(sbox(api, res[0], d), x)
	return res[0]
}

func constants[E comparable](f fields.Field[E], xs []E) []*big.Int {
	res := make([]*big.Int, len(xs))
	for i, x := range xs {
		res[i] = f.Big(x)
	}
	return res
}

func constantRows[E comparable](f fields.Field[E], rows [][]E) [][]*big.Int {
	res := make([][]*big.Int, len(rows))
	for i, row := range rows {
		res[i] = constants(f, row)
	}
	return res
}

func addConstants(api frontend.API, state []frontend.Variable, rc []*big.Int) []frontend.Variable {
	res := make([]frontend.Variable, len(state))
	for i := range state {
		res[i] = api.Add(state[i], rc[i])
	}
	return res
}

// mulMatrix is the dense product, skipping zero entries and multiplications
// by one.
func mulMatrix(api frontend.API, m [][]*big.Int, state []frontend.Variable) []frontend.Variable {
	res := make([]frontend.Variable, len(m))
	for i, row := range m {
		var acc frontend.Variable = 0
		for j, c := range row {
			switch {
			case c.Sign() == 0:
				continue
			case c.IsInt64() && c.Int64() == 1:
				acc = api.Add(acc, state[j])
			default:
				acc = api.Add(acc, api.Mul(c, state[j]))
			}
		}
		res[i] = acc
	}
	return res
}
