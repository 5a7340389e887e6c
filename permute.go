package main

import (
	"errors"
	"fmt"
	"strings"

	"AlgebraicPermutations/modules/instances"
	"AlgebraicPermutations/modules/params"

	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

var (
	instanceName string
	paramsFile   string
	inputState   []string
	traceRounds  bool
)

func init() {
	rootCmd.AddCommand(permuteCmd)
	permuteCmd.Flags().StringVar(&instanceName, "instance", "", "The registered instance to permute with.")
	permuteCmd.Flags().StringVar(&paramsFile, "params", "", "A JSON parameter table to permute with instead of a registered instance.")
	permuteCmd.Flags().StringSliceVar(&inputState, "input", nil, "The input state, decimal or 0x-prefixed hex, zeroes when omitted.")
	permuteCmd.Flags().BoolVar(&traceRounds, "trace", false, "Print the state after every round.")
	permuteCmd.MarkFlagsMutuallyExclusive("instance", "params")
	permuteCmd.MarkFlagsOneRequired("instance", "params")
}

// loadInstance resolves a registered instance, or builds one from a table
// file when a path is given.
func loadInstance(name, path string) (instances.Instance, error) {
	if path == "" {
		return instances.Lookup(name)
	}
	table, err := params.LoadParamsFromFile(path)
	if err != nil {
		return nil, err
	}
	inst, err := instances.FromTable(table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log := logger.Logger()
	log.Debug().Str("params", path).Str("instance", inst.Name()).Msg("loaded parameter table")
	return inst, nil
}

func defaultState(width int, input []string) []string {
	if len(input) != 0 {
		return input
	}
	state := make([]string, width)
	for i := range state {
		state[i] = "0"
	}
	return state
}

func formatState(state []string) string {
	return "[" + strings.Join(state, ", ") + "]"
}

var permuteCmd = &cobra.Command{
	Use:   "permute",
	Short: "Apply a permutation to a state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := loadInstance(instanceName, paramsFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		input := defaultState(inst.Width(), inputState)

		var tracer func(int, []string)
		var traceErr error
		if traceRounds {
			tracer = func(round int, state []string) {
				if _, err := fmt.Fprintf(out, "round %2d: %s\n", round, formatState(state)); err != nil {
					traceErr = errors.Join(traceErr, err)
				}
			}
		}
		output, err := inst.Trace(input, tracer)
		if err != nil {
			return err
		}
		if traceErr != nil {
			return traceErr
		}
		_, err = fmt.Fprintln(out, formatState(output))
		return err
	},
}
