package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestLogicalPortListed_PresentAndAbsent verifies the MAC substring check
// against the filtered listing.
func TestLogicalPortListed_PresentAndAbsent(t *testing.T) {
	fr := &fakeRunner{reply: func(string) (string, error) { return logportLine, nil }}
	listed, err := logicalPortListed(fr, "ltcfleet2", "ltcfleet2-lp3", "020303030301", time.Second)
	require.NoError(t, err)
	require.True(t, listed)

	listed, err = logicalPortListed(fr, "ltcfleet2", "ltcfleet2-lp3", "02030303ffff", time.Second)
	require.NoError(t, err)
	require.False(t, listed)
}

// TestLogicalPortListed_FiltersByPartition verifies the lpar_names filter is
// quoted into the command.
func TestLogicalPortListed_FiltersByPartition(t *testing.T) {
	fr := &fakeRunner{reply: func(string) (string, error) { return "", nil }}
	_, err := logicalPortListed(fr, "ltcfleet2", "ltcfleet2-lp3", "020303030301", time.Second)
	require.NoError(t, err)
	require.Equal(t,
		[]string{"lshwres -r sriov --rsubtype logport -m ltcfleet2 --level eth --filter lpar_names=ltcfleet2-lp3"},
		fr.commands)
}
