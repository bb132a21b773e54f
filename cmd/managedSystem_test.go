package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseManagedSystem_PicksServerEmbeddedInPartitionName verifies the
// substring match between server and partition naming.
func TestParseManagedSystem_PicksServerEmbeddedInPartitionName(t *testing.T) {
	out := "Server-8247-22L-SN212A4CA\nltcfleet2\n"
	require.Equal(t, "ltcfleet2", parseManagedSystem(out, "ltcfleet2-lp3"))
}

// TestParseManagedSystem_NoMatch verifies an empty result when no server name
// is part of the partition name.
func TestParseManagedSystem_NoMatch(t *testing.T) {
	require.Equal(t, "", parseManagedSystem("serverA\nserverB\n", "ltcfleet2-lp3"))
}

// TestLookupManagedSystem_IssuesLssyscfg verifies the exact listing command
// and the not-found error path.
func TestLookupManagedSystem_IssuesLssyscfg(t *testing.T) {
	fr := &fakeRunner{reply: func(string) (string, error) { return "ltcfleet2\n", nil }}
	sys, err := lookupManagedSystem(fr, "ltcfleet2-lp3", time.Second)
	require.NoError(t, err)
	require.Equal(t, "ltcfleet2", sys)
	require.Equal(t, []string{"lssyscfg -r sys -F name"}, fr.commands)

	fr = &fakeRunner{reply: func(string) (string, error) { return "otherbox\n", nil }}
	_, err = lookupManagedSystem(fr, "ltcfleet2-lp3", time.Second)
	require.ErrorContains(t, err, "managed system")
}
