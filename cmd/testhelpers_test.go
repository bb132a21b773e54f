package cmd

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

// resetConfig restores flag-backed globals, the persistent flag values on the
// root command, and stub vars to their defaults so tests do not leak
// configuration into each other.
func resetConfig() {
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	cfgParams = ""
	cfgOutPath = ""
	cfgHMC = ""
	cfgUser = ""
	cfgPassword = ""
	cfgKeyPath = ""
	cfgPassphrase = ""
	cfgKnownHosts = filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts")
	cfgStrictHost = false
	cfgCmdTimeout = 300 * time.Second
	cfgConnTimeout = 15 * time.Second
	cfgLPAR = ""
	cfgManagedSystem = ""
	cfgSkipPackages = false

	dialSSHFunc = dialSSH
	openShellFunc = newHMCShell
	localRunFunc = localRun
	promptPasswordFunc = promptPassword
	netInterfacesFunc = net.Interfaces
	exitFunc = os.Exit
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// fakeRunner records every command sent to the HMC and answers from a
// scripted reply function.
type fakeRunner struct {
	commands []string
	reply    func(command string) (string, error)
}

func (f *fakeRunner) run(command string, _ time.Duration) (string, error) {
	f.commands = append(f.commands, command)
	return f.reply(command)
}

func (f *fakeRunner) close() error { return nil }

const validParamsYAML = `
name: sriov lifecycle
description: add and remove a logical port
hmc:
  address: 10.0.0.5
  user: hscroot
lpar: ltcfleet2-lp3
managed_system: ltcfleet2
devices:
  - adapter_location: U78CB.001.WZS0001-P1-C7
    phys_port: "0"
    mac: "02:03:03:03:03:01"
    ip: 192.168.100.2
    netmask: 255.255.255.0
    peer: 192.168.100.1
`
