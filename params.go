package main

import (
	"AlgebraicPermutations/modules/instances"

	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

var exportFile string

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&instanceName, "instance", "", "The registered instance to export.")
	exportCmd.Flags().StringVar(&exportFile, "out", "", "The JSON output file, stdout when omitted.")
	exportCmd.MarkFlagRequired("instance")
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Manage JSON parameter tables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the parameter table of a registered instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instances.Lookup(instanceName)
		if err != nil {
			return err
		}
		table, err := inst.Export()
		if err != nil {
			return err
		}
		if exportFile == "" {
			return table.Write(cmd.OutOrStdout())
		}
		if err := table.WriteFile(exportFile); err != nil {
			return err
		}
		log := logger.Logger()
		log.Info().Str("instance", inst.Name()).Str("out", exportFile).Msg("parameter table written")
		return nil
	},
}
