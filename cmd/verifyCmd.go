package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verifyCmd validates a params file offline, without touching the HMC.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate a params YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgParams == "" {
			return errors.New("--params is required (path to YAML)")
		}
		if _, err := loadParams(cfgParams); err != nil {
			return fmt.Errorf("invalid params: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, "Params OK")
		return nil
	},
}
