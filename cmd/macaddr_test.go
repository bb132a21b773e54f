package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMacPlain_NormalizesSeparatorsAndCase verifies colon and dash forms
// collapse to the 12-digit lowercase form the HMC expects.
func TestMacPlain_NormalizesSeparatorsAndCase(t *testing.T) {
	got, err := macPlain("02:03:03:03:03:01")
	require.NoError(t, err)
	require.Equal(t, "020303030301", got)

	got, err = macPlain("AA-BB-CC-DD-EE-FF")
	require.NoError(t, err)
	require.Equal(t, "aabbccddeeff", got)
}

// TestMacPlain_RejectsMalformed verifies short and non-hex inputs error out.
func TestMacPlain_RejectsMalformed(t *testing.T) {
	_, err := macPlain("02:03:03")
	require.Error(t, err)
	_, err = macPlain("0203030303zz")
	require.Error(t, err)
}

// TestMacColons_RoundTrip verifies the colon rendering used for local
// interface matching.
func TestMacColons_RoundTrip(t *testing.T) {
	require.Equal(t, "02:03:03:03:03:01", macColons("020303030301"))
}
