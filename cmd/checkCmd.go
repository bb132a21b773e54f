package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd runs the full lifecycle on one session: add and verify every
// device, then remove and verify again. Errors halt the run immediately; a
// failed add is not compensated with a remove.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Full cycle: add, verify, then remove the logical ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(func(tb *testbed) error {
			if err := tb.addDevices(); err != nil {
				return err
			}
			return tb.removeDevices()
		})
	},
}
