package cmd

import (
	"github.com/spf13/cobra"
)

// addCmd creates the configured SR-IOV logical ports and verifies each one is
// listed by the HMC, visible on the partition, and reachable from its peer.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add SR-IOV logical ports and verify connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle((*testbed).addDevices)
	},
}
