package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sriovhmc",
	Short: "Exercise SR-IOV logical port lifecycle on a POWER LPAR through its HMC",
	Long: "Logs into the Hardware Management Console over SSH, adds and removes virtual SR-IOV logical ports " +
		"on the partition under test with chhwres, verifies them with lshwres, configures the resulting local " +
		"network interface, and checks peer reachability. Results are written to a YAML report.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
