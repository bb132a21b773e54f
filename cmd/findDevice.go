package cmd

import (
	"fmt"
	"net"
	"strings"
)

// netInterfacesFunc allows tests to stub local interface enumeration.
var netInterfacesFunc = net.Interfaces

// findDeviceByMAC matches a MAC address (plain 12-digit form) to the local
// network device name the kernel assigned to the newly added logical port.
func findDeviceByMAC(mac string) (string, error) {
	want := macColons(mac)
	ifaces, err := netInterfacesFunc()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		if strings.EqualFold(iface.HardwareAddr.String(), want) {
			return iface.Name, nil
		}
	}
	return "", fmt.Errorf("no local interface with mac %s", want)
}
