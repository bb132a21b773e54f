package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestExecute_UsageErrorExitsOne verifies generic errors exit with code 1.
func TestExecute_UsageErrorExitsOne(t *testing.T) {
	defer resetConfig()
	resetConfig()
	var code = -1
	exitFunc = func(c int) { code = c }
	rootCmd.SetArgs([]string{"verify"}) // missing --params
	Execute()
	require.Equal(t, 1, code)
}

// TestExecute_AssertionFailureExitsTwo verifies assertion failures use the
// distinct verdict exit code.
func TestExecute_AssertionFailureExitsTwo(t *testing.T) {
	defer resetConfig()
	resetConfig()
	var code = -1
	exitFunc = func(c int) { code = c }
	boom := &cobra.Command{Use: "boom", RunE: func(*cobra.Command, []string) error {
		return assertf("device not listed")
	}}
	rootCmd.AddCommand(boom)
	defer rootCmd.RemoveCommand(boom)
	rootCmd.SetArgs([]string{"boom"})
	Execute()
	require.Equal(t, 2, code)
}

// TestExecute_SuccessDoesNotExit verifies a clean run never touches
// exitFunc.
func TestExecute_SuccessDoesNotExit(t *testing.T) {
	defer resetConfig()
	resetConfig()
	called := false
	exitFunc = func(int) { called = true }
	p := writeTemp(t, t.TempDir(), "params.yaml", validParamsYAML)
	rootCmd.SetArgs([]string{"verify", "--params", p})
	Execute()
	require.False(t, called)
}
