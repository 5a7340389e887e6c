package main

import (
	"fmt"
	"math/big"

	"AlgebraicPermutations/modules/circuits"

	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

var circuitMode string

func init() {
	rootCmd.AddCommand(circuitCmd)
	circuitCmd.Flags().StringVar(&instanceName, "instance", "", "The registered instance to arithmetize.")
	circuitCmd.Flags().StringSliceVar(&inputState, "input", nil, "The input state of the witness, zeroes when omitted.")
	circuitCmd.Flags().StringVar(&circuitMode, "mode", "check", "The circuit work mode - one of check/groth16.")
	circuitCmd.MarkFlagRequired("instance")
}

func parseBigs(state []string) ([]*big.Int, error) {
	res := make([]*big.Int, len(state))
	for i, s := range state {
		v, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("input %d: cannot parse %q", i, s)
		}
		res[i] = v
	}
	return res, nil
}

var circuitCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Compile the circuit of an instance and check it against the native permutation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if circuitMode != "check" && circuitMode != "groth16" {
			return fmt.Errorf("unknown circuit mode %q", circuitMode)
		}
		target, err := circuits.ForInstance(instanceName)
		if err != nil {
			return err
		}
		input, err := parseBigs(defaultState(target.Width, inputState))
		if err != nil {
			return err
		}

		log := logger.Logger()
		if err := target.CheckConsistency(input); err != nil {
			return err
		}
		log.Info().Str("target", target.Name).Stringer("field", target.Field).Msg("witness consistent")

		if circuitMode == "groth16" {
			assignment, err := target.Assignment(input)
			if err != nil {
				return err
			}
			if err := circuits.Groth16(target, assignment); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", target.Name)
		return err
	},
}
