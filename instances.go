package main

import (
	"fmt"

	"AlgebraicPermutations/modules/instances"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(instancesCmd)
}

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List the registered parameter sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, inst := range instances.All() {
			if _, err := fmt.Fprintf(out, "%-28s %-20s %-10s t=%d\n",
				inst.Name(), inst.Family(), inst.Field(), inst.Width()); err != nil {
				return err
			}
		}
		return nil
	},
}
