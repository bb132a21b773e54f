package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadParams_Valid verifies a complete params file parses with all fields
// in place.
func TestLoadParams_Valid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "params.yaml", validParamsYAML)
	got, err := loadParams(p)
	require.NoError(t, err)
	require.Equal(t, "sriov lifecycle", got.Name)
	require.Equal(t, "10.0.0.5", got.HMC.Address)
	require.Equal(t, "hscroot", got.HMC.User)
	require.Len(t, got.Devices, 1)
	require.Equal(t, "U78CB.001.WZS0001-P1-C7", got.Devices[0].AdapterLocation)
	require.Equal(t, "192.168.100.1", got.Devices[0].PeerIP)
}

// TestLoadParams_RequiresName verifies the name field is mandatory.
func TestLoadParams_RequiresName(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "params.yaml", `
devices:
  - adapter_location: slot
    phys_port: "0"
    mac: "020303030301"
    ip: 10.0.0.1
    netmask: 255.255.255.0
    peer: 10.0.0.2
`)
	_, err := loadParams(p)
	require.ErrorContains(t, err, "params.name is required")
}

// TestLoadParams_RequiresDevices verifies an empty device list is rejected.
func TestLoadParams_RequiresDevices(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "params.yaml", "name: x\ndescription: y\n")
	_, err := loadParams(p)
	require.ErrorContains(t, err, "at least one device")
}

// TestLoadParams_RejectsBadMAC verifies device MACs are validated up front
// rather than failing halfway through an HMC operation.
func TestLoadParams_RejectsBadMAC(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "params.yaml", `
name: x
devices:
  - adapter_location: slot
    phys_port: "0"
    mac: "nope"
    ip: 10.0.0.1
    netmask: 255.255.255.0
    peer: 10.0.0.2
`)
	_, err := loadParams(p)
	require.ErrorContains(t, err, "devices[0].mac")
}

// TestLoadParams_RequiresPeer verifies the reachability target is mandatory.
func TestLoadParams_RequiresPeer(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "params.yaml", `
name: x
devices:
  - adapter_location: slot
    phys_port: "0"
    mac: "020303030301"
    ip: 10.0.0.1
    netmask: 255.255.255.0
`)
	_, err := loadParams(p)
	require.ErrorContains(t, err, "peer is required")
}

// TestParams_PackageListFallsBack verifies the default RSCT/DynamicRM gate is
// used when the params file names no packages.
func TestParams_PackageListFallsBack(t *testing.T) {
	p := &params{}
	require.Equal(t, defaultPackages, p.packageList())
	p.Packages = []string{"powerpc-utils"}
	require.Equal(t, []string{"powerpc-utils"}, p.packageList())
}
