package circuits

import (
	"fmt"
	"math/big"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation/feistel"
	"AlgebraicPermutations/modules/permutation/griffin"
	"AlgebraicPermutations/modules/permutation/poseidon"
	"AlgebraicPermutations/modules/permutation/rescue"

	"github.com/consensys/gnark/frontend"
)

// Permute is the in-circuit counterpart of a permutation: it returns the
// variables of the output state for the variables of the input state.
type Permute func(api frontend.API, state []frontend.Variable) []frontend.Variable

func checkWidth(state []frontend.Variable, t int) {
	if len(state) != t {
		panic(fmt.Sprintf("state of %d variables for width %d", len(state), t))
	}
}

// Poseidon encodes the reference round structure: every round adds its
// constants and applies the dense matrix, full rounds put every word
// through the S-box and partial rounds only the first.
func Poseidon[E comparable](p *poseidon.Params[E]) Permute {
	rc := constantRows(p.Field, p.RC)
	mds := constantRows(p.Field, p.MDS)
	partialBegin := p.RoundsFBeginning
	partialEnd := partialBegin + p.RoundsP

	return func(api frontend.API, state []frontend.Variable) []frontend.Variable {
		checkWidth(state, p.T)
		for r := 0; r < p.Rounds; r++ {
			full := r < partialBegin || r >= partialEnd
			state = addConstants(api, state, rc[r])
			if p.Order == poseidon.LinearFirst {
				state = mulMatrix(api, mds, state)
				state = poseidonSBox(api, state, p.D, full)
			} else {
				state = poseidonSBox(api, state, p.D, full)
				state = mulMatrix(api, mds, state)
			}
		}
		return state
	}
}

func poseidonSBox(api frontend.API, state []frontend.Variable, d uint64, full bool) []frontend.Variable {
	res := append([]frontend.Variable(nil), state...)
	if !full {
		res[0] = sbox(api, res[0], d)
		return res
	}
	for i := range res {
		res[i] = sbox(api, res[i], d)
	}
	return res
}

func rescueLayers[E comparable](p *rescue.Params[E]) ([][]*big.Int, [][]*big.Int, *big.Int, error) {
	inv, err := fields.InverseExponent(p.Field, p.D)
	if err != nil {
		return nil, nil, nil, err
	}
	return constantRows(p.Field, p.MDS), constantRows(p.Field, p.RC), inv, nil
}

func rescueAffine(api frontend.API, mds [][]*big.Int, state []frontend.Variable, rc []*big.Int) []frontend.Variable {
	return addConstants(api, mulMatrix(api, mds, state), rc)
}

// Rescue encodes the initial constant row followed by rounds of x^(1/d),
// affine, x^d, affine.
func Rescue[E comparable](p *rescue.Params[E]) (Permute, error) {
	mds, rc, inv, err := rescueLayers(p)
	if err != nil {
		return nil, err
	}
	return func(api frontend.API, state []frontend.Variable) []frontend.Variable {
		checkWidth(state, p.T)
		state = addConstants(api, state, rc[0])
		for round := 0; round < p.Rounds; round++ {
			for i := range state {
				state[i] = InversePow(api, state[i], p.D, inv)
			}
			state = rescueAffine(api, mds, state, rc[2*round+1])
			for i := range state {
				state[i] = Pow(api, state[i], p.D)
			}
			state = rescueAffine(api, mds, state, rc[2*round+2])
		}
		return state
	}, nil
}

// RescuePrime encodes rounds of x^d, affine, x^(1/d), affine.
func RescuePrime[E comparable](p *rescue.Params[E]) (Permute, error) {
	mds, rc, inv, err := rescueLayers(p)
	if err != nil {
		return nil, err
	}
	return func(api frontend.API, state []frontend.Variable) []frontend.Variable {
		checkWidth(state, p.T)
		state = append([]frontend.Variable(nil), state...)
		for round := 0; round < p.Rounds; round++ {
			for i := range state {
				state[i] = Pow(api, state[i], p.D)
			}
			state = rescueAffine(api, mds, state, rc[2*round])
			for i := range state {
				state[i] = InversePow(api, state[i], p.D, inv)
			}
			state = rescueAffine(api, mds, state, rc[2*round+1])
		}
		return state
	}, nil
}

// FeistelMiMC encodes x1 += (x0 + c_r)^d and the swap between rounds.
func FeistelMiMC[E comparable](p *feistel.MiMCParams[E]) Permute {
	rc := constants(p.Field, p.RC)
	return func(api frontend.API, state []frontend.Variable) []frontend.Variable {
		checkWidth(state, 2)
		x0, x1 := state[0], state[1]
		for r := 0; r < p.Rounds; r++ {
			x1 = api.Add(x1, Pow(api, api.Add(x0, rc[r]), p.D))
			if r < p.Rounds-1 {
				x0, x1 = x1, x0
			}
		}
		return []frontend.Variable{x0, x1}
	}
}

// GMiMC encodes the plain unbalanced Feistel rounds. The accumulator form
// of the native engine saves field additions only, which cost nothing in
// a constraint system.
func GMiMC[E comparable](p *feistel.GMiMCParams[E]) Permute {
	rc := constants(p.Field, p.RC)
	return func(api frontend.API, state []frontend.Variable) []frontend.Variable {
		checkWidth(state, p.T)
		state = append([]frontend.Variable(nil), state...)
		for r := 0; r < p.Rounds; r++ {
			power := Pow(api, api.Add(state[0], rc[r]), p.D)
			for i := 1; i < p.T; i++ {
				state[i] = api.Add(state[i], power)
			}
			if r < p.Rounds-1 {
				last := state[p.T-1]
				copy(state[1:], state[:p.T-1])
				state[0] = last
			}
		}
		return state
	}
}

// Griffin encodes the constant-free initial affine layer and the rounds of
// nonlinear layer and affine layer.
func Griffin[E comparable](p *griffin.Params[E]) Permute {
	f := p.Field
	m := constantRows(f, linear.AsMatrix(f, p.Affine()))
	rc := constantRows(f, p.RC)
	alphaBeta := make([][2]*big.Int, len(p.AlphaBeta))
	for i, ab := range p.AlphaBeta {
		alphaBeta[i] = [2]*big.Int{f.Big(ab[0]), f.Big(ab[1])}
	}
	inv := p.SBox().InverseExponent()

	affine := func(api frontend.API, state []frontend.Variable, round int) []frontend.Variable {
		res := mulMatrix(api, m, state)
		if round < p.Rounds-1 {
			res = addConstants(api, res, rc[round])
		}
		return res
	}

	return func(api frontend.API, state []frontend.Variable) []frontend.Variable {
		checkWidth(state, p.T)
		state = affine(api, state, p.Rounds)
		for r := 0; r < p.Rounds; r++ {
			res := append([]frontend.Variable(nil), state...)
			res[0] = InversePow(api, state[0], p.D, inv)
			res[1] = Pow(api, state[1], p.D)

			y0 := res[0]
			acc := api.Add(y0, res[1])
			for i, ab := range alphaBeta {
				l := acc
				if i > 0 {
					acc = api.Add(acc, y0)
					l = api.Add(acc, state[i+1])
				}
				factor := api.Add(api.Mul(l, l), api.Mul(ab[0], l), ab[1])
				res[i+2] = api.Mul(res[i+2], factor)
			}
			state = affine(api, res, r)
		}
		return state
	}
}
