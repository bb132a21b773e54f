package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVerifyCmd_ValidParams verifies the offline validation accepts a good
// params file.
func TestVerifyCmd_ValidParams(t *testing.T) {
	defer resetConfig()
	resetConfig()
	p := writeTemp(t, t.TempDir(), "params.yaml", validParamsYAML)
	rootCmd.SetArgs([]string{"verify", "--params", p})
	require.NoError(t, rootCmd.Execute())
}

// TestVerifyCmd_MissingParamsFlag verifies the usage error without --params.
func TestVerifyCmd_MissingParamsFlag(t *testing.T) {
	defer resetConfig()
	resetConfig()
	rootCmd.SetArgs([]string{"verify"})
	err := rootCmd.Execute()
	require.ErrorContains(t, err, "--params is required")
}

// TestVerifyCmd_InvalidParams verifies validation errors are surfaced with
// the file context.
func TestVerifyCmd_InvalidParams(t *testing.T) {
	defer resetConfig()
	resetConfig()
	p := writeTemp(t, t.TempDir(), "params.yaml", "name: x\ndescription: y\n")
	rootCmd.SetArgs([]string{"verify", "--params", p})
	err := rootCmd.Execute()
	require.ErrorContains(t, err, "invalid params")
	require.ErrorContains(t, err, "at least one device")
}
