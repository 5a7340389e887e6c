package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	merkleLeaves []string
	merkleProve  string
)

func init() {
	rootCmd.AddCommand(merkleCmd)
	merkleCmd.Flags().StringVar(&instanceName, "instance", "", "The registered instance to hash with.")
	merkleCmd.Flags().StringVar(&paramsFile, "params", "", "A JSON parameter table to hash with instead of a registered instance.")
	merkleCmd.Flags().StringSliceVar(&merkleLeaves, "leaves", nil, "The leaves to accumulate.")
	merkleCmd.Flags().StringVar(&merkleProve, "prove", "", "A leaf to build and verify the witness for.")
	merkleCmd.MarkFlagRequired("leaves")
	merkleCmd.MarkFlagsMutuallyExclusive("instance", "params")
	merkleCmd.MarkFlagsOneRequired("instance", "params")
}

var merkleCmd = &cobra.Command{
	Use:   "merkle",
	Short: "Accumulate leaves into a Merkle tree and optionally prove a leaf",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := loadInstance(instanceName, paramsFile)
		if err != nil {
			return err
		}
		res, err := inst.Merkle(merkleLeaves, merkleProve)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		if merkleProve != "" && !res.Verified {
			return fmt.Errorf("witness of %s does not verify against root %s", merkleProve, res.Root)
		}
		return nil
	},
}
