package cmd

// params models the YAML parameters file consumed by sriovhmc. It captures
// test metadata, optional HMC connection defaults, optional overrides for the
// partition and managed system (both are discovered locally when absent), the
// package presence gate, and the SR-IOV devices to exercise.
type params struct {
	Name          string        `yaml:"name"`
	Description   string        `yaml:"description"`
	HMC           hmcHost       `yaml:"hmc,omitempty"`
	LPAR          string        `yaml:"lpar,omitempty"`
	ManagedSystem string        `yaml:"managed_system,omitempty"`
	Packages      []string      `yaml:"packages,omitempty"`
	Devices       []deviceEntry `yaml:"devices"`
}

// hmcHost describes the HMC connection details when not provided via CLI
// flags. CLI flags take precedence over these defaults when set.
type hmcHost struct {
	Address string `yaml:"address"`
	User    string `yaml:"user"`
}

// deviceEntry describes one SR-IOV logical port to add, configure, and
// remove: the physical adapter slot it is carved from, the physical port on
// that adapter, the MAC to assign, and the local IP configuration used for
// the reachability check.
type deviceEntry struct {
	AdapterLocation string `yaml:"adapter_location"`
	PhysPort        string `yaml:"phys_port"`
	MAC             string `yaml:"mac"`
	IPAddr          string `yaml:"ip"`
	Netmask         string `yaml:"netmask"`
	PeerIP          string `yaml:"peer"`
}

// defaultPackages are the RSCT/DynamicRM pieces a POWER partition needs
// before dynamic SR-IOV operations from the HMC can land on it.
var defaultPackages = []string{
	"src", "rsct.basic", "rsct.core.utils", "rsct.core", "DynamicRM", "powerpc-utils",
}

// packageList returns the configured package gate, falling back to the
// defaults when the params file does not name any.
func (p *params) packageList() []string {
	if len(p.Packages) > 0 {
		return p.Packages
	}
	return defaultPackages
}
