package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMissingPackages_ReportsOnlyAbsent verifies the rpm -q gate splits
// installed from missing packages.
func TestMissingPackages_ReportsOnlyAbsent(t *testing.T) {
	defer resetConfig()
	installed := map[string]bool{"rsct.core": true, "powerpc-utils": true}
	localRunFunc = func(name string, args ...string) (string, int, error) {
		if installed[args[len(args)-1]] {
			return "", 0, nil
		}
		return "package not installed", 1, nil
	}
	missing := missingPackages([]string{"rsct.core", "DynamicRM", "powerpc-utils"})
	require.Equal(t, []string{"DynamicRM"}, missing)
}

// TestMissingPackages_AllPresent verifies a nil result when everything is
// installed.
func TestMissingPackages_AllPresent(t *testing.T) {
	defer resetConfig()
	localRunFunc = func(string, ...string) (string, int, error) { return "", 0, nil }
	require.Empty(t, missingPackages(defaultPackages))
}
