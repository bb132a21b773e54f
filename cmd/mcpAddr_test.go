package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const lsrsrcOutput = `Resource Persistent Attributes for IBM.MCP
resource 1:
        HMCIPAddr = "9.40.192.1"
`

// TestParseHMCAddress_TrimsDecoration verifies the quote/brace trimming on
// the RSCT attribute value.
func TestParseHMCAddress_TrimsDecoration(t *testing.T) {
	require.Equal(t, "9.40.192.1", parseHMCAddress(lsrsrcOutput))
	require.Equal(t, "9.40.192.1", parseHMCAddress(`HMCIPAddr = {"9.40.192.1"}`))
}

// TestParseHMCAddress_Absent verifies unrelated output yields empty.
func TestParseHMCAddress_Absent(t *testing.T) {
	require.Equal(t, "", parseHMCAddress("resource 1:\n  NodeID = 7\n"))
}

// TestLookupHMCAddress_UsesLsrsrc verifies the IBM.MCP probe invocation.
func TestLookupHMCAddress_UsesLsrsrc(t *testing.T) {
	defer resetConfig()
	var got []string
	localRunFunc = func(name string, args ...string) (string, int, error) {
		got = append(got, name)
		got = append(got, args...)
		return lsrsrcOutput, 0, nil
	}
	addr, err := lookupHMCAddress()
	require.NoError(t, err)
	require.Equal(t, "9.40.192.1", addr)
	require.Equal(t, []string{"lsrsrc", "IBM.MCP", "HMCIPAddr"}, got)

	localRunFunc = func(string, ...string) (string, int, error) { return "resource 1:\n", 0, nil }
	_, err = lookupHMCAddress()
	require.ErrorContains(t, err, "HMCIPAddr not found")
}
