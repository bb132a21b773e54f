package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// loadParams reads and validates the YAML parameters file. Every device needs
// an adapter location and a well-formed MAC; the IP/netmask/peer triple is
// required because the add flow always ends with a reachability check.
func loadParams(path string) (*params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &params{}
	if err := yamlUnmarshal(b, p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errors.New("params.name is required")
	}
	if len(p.Devices) == 0 {
		return nil, errors.New("params.devices must list at least one device")
	}
	for i, d := range p.Devices {
		if strings.TrimSpace(d.AdapterLocation) == "" {
			return nil, fmt.Errorf("devices[%d].adapter_location is required", i)
		}
		if strings.TrimSpace(d.PhysPort) == "" {
			return nil, fmt.Errorf("devices[%d].phys_port is required", i)
		}
		if _, err := macPlain(d.MAC); err != nil {
			return nil, fmt.Errorf("devices[%d].mac: %w", i, err)
		}
		if strings.TrimSpace(d.IPAddr) == "" || strings.TrimSpace(d.Netmask) == "" {
			return nil, fmt.Errorf("devices[%d]: ip and netmask are required", i)
		}
		if strings.TrimSpace(d.PeerIP) == "" {
			return nil, fmt.Errorf("devices[%d].peer is required for the reachability check", i)
		}
	}
	return p, nil
}
