package cmd

import (
	"github.com/spf13/cobra"
)

// removeCmd releases the configured SR-IOV logical ports and verifies they
// disappear from the HMC listing.
var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove SR-IOV logical ports and verify they are gone",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle((*testbed).removeDevices)
	},
}
