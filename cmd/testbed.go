package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// testbed holds everything one lifecycle run needs: the loaded params, the
// resolved HMC/managed-system/partition identities, the open HMC shell, and
// the report being built. The shell is exclusively owned by the testbed:
// setup opens it, teardown closes it on every exit path.
type testbed struct {
	params  *params
	client  *ssh.Client
	shell   remoteShell
	report  *yamlReport
	hmcAddr string
	system  string
	lpar    string
}

func newTestbed(p *params) *testbed {
	return &testbed{params: p, report: newYAMLReport(p)}
}

// run implements hmcRunner on the testbed so every HMC command flows through
// one place: the open-session check, the shell, and the report.
func (tb *testbed) run(command string, timeout time.Duration) (string, error) {
	if tb.shell == nil {
		return "", errors.New("HMC console is not set up; setup must run first")
	}
	_, _ = fmt.Fprintf(os.Stderr, "Running HMC command: %s\n", command)
	out, err := tb.shell.run(command, timeout)
	code := 0
	if err != nil {
		code = -1
		var cf *commandFailedError
		if errors.As(err, &cf) {
			code = cf.exitCode
		}
	}
	tb.report.addStep(command, out, code, err)
	return out, err
}

// setup gates on required packages, resolves the partition, HMC address, and
// credentials (flags take precedence over the params file, which takes
// precedence over local discovery), dials the HMC, negotiates the shell, and
// resolves the managed system.
func (tb *testbed) setup() error {
	if !cfgSkipPackages {
		if missing := missingPackages(tb.params.packageList()); len(missing) > 0 {
			return fmt.Errorf("packages required for the run are not installed: %s", strings.Join(missing, ", "))
		}
	}

	tb.lpar = firstNonEmpty(cfgLPAR, tb.params.LPAR)
	if tb.lpar == "" {
		name, err := lookupPartitionName()
		if err != nil {
			return err
		}
		tb.lpar = name
	}

	tb.hmcAddr = firstNonEmpty(cfgHMC, tb.params.HMC.Address)
	if tb.hmcAddr == "" {
		addr, err := lookupHMCAddress()
		if err != nil {
			return err
		}
		tb.hmcAddr = addr
	}
	if !strings.Contains(tb.hmcAddr, ":") {
		tb.hmcAddr += ":22"
	}

	user := firstNonEmpty(cfgUser, tb.params.HMC.User)
	if user == "" {
		return errors.New("--user is required for HMC authentication")
	}
	password := cfgPassword
	if password == "" && cfgKeyPath == "" {
		password = promptPasswordFunc(user, tb.hmcAddr)
		if password == "" {
			return errors.New("--password or --key is required for HMC authentication")
		}
	}

	client, err := dialSSHFunc(tb.hmcAddr, user, password, cfgKeyPath, cfgPassphrase,
		cfgKnownHosts, cfgStrictHost, cfgConnTimeout)
	if err != nil {
		return &connectionError{target: tb.hmcAddr, err: err}
	}
	tb.client = client

	if client != nil {
		shell, err := openShellFunc(client)
		if err != nil {
			return &connectionError{target: tb.hmcAddr, err: err}
		}
		tb.shell = shell
	}

	tb.system = firstNonEmpty(cfgManagedSystem, tb.params.ManagedSystem)
	if tb.system == "" {
		sys, err := lookupManagedSystem(tb, tb.lpar, cfgCmdTimeout)
		if err != nil {
			return err
		}
		tb.system = sys
	}

	tb.report.HMC = tb.hmcAddr
	tb.report.ManagedSystem = tb.system
	tb.report.Partition = tb.lpar
	return nil
}

// teardown releases the shell and the SSH connection. Safe to call whether or
// not setup completed, and more than once.
func (tb *testbed) teardown() {
	if tb.shell != nil {
		_ = tb.shell.close()
		tb.shell = nil
	}
	if tb.client != nil {
		_ = tb.client.Close()
		tb.client = nil
	}
}

// addDevices runs the add flow for every configured device: resolve the
// adapter id, add the logical port, assert it is listed, match the MAC to a
// local device, configure it, and check peer reachability. The first error
// halts the run; no compensating remove is attempted.
func (tb *testbed) addDevices() error {
	for _, d := range tb.params.Devices {
		mac, err := macPlain(d.MAC)
		if err != nil {
			return err
		}
		adapterID, err := lookupAdapterID(tb, tb.system, d.AdapterLocation, cfgCmdTimeout)
		if err != nil {
			return err
		}
		if err := addLogicalPort(tb, tb.system, tb.lpar, adapterID, d.PhysPort, mac, cfgCmdTimeout); err != nil {
			return fmt.Errorf("sriov logical device add operation failed: %w", err)
		}
		listed, err := logicalPortListed(tb, tb.system, tb.lpar, mac, cfgCmdTimeout)
		if err != nil {
			return err
		}
		if !listed {
			return assertf("failed to list logical device %s after add operation", mac)
		}
		dev, err := findDeviceByMAC(mac)
		if err != nil {
			return assertf("added logical device not visible on the partition: %v", err)
		}
		if err := addIPAddr(dev, d.IPAddr, d.Netmask); err != nil {
			return err
		}
		if err := bringUp(dev); err != nil {
			return err
		}
		if err := pingCheck(dev, d.PeerIP, 5); err != nil {
			return assertf("ping check to %s over %s failed: %v", d.PeerIP, dev, err)
		}
	}
	return nil
}

// removeDevices runs the remove flow for every configured device: resolve the
// logical port id from the MAC, remove it, and assert it is gone.
func (tb *testbed) removeDevices() error {
	for _, d := range tb.params.Devices {
		mac, err := macPlain(d.MAC)
		if err != nil {
			return err
		}
		portID, err := lookupLogicalPortID(tb, tb.system, tb.lpar, mac, cfgCmdTimeout)
		if err != nil {
			return err
		}
		adapterID, err := lookupAdapterID(tb, tb.system, d.AdapterLocation, cfgCmdTimeout)
		if err != nil {
			return err
		}
		if err := removeLogicalPort(tb, tb.system, tb.lpar, adapterID, portID, cfgCmdTimeout); err != nil {
			return fmt.Errorf("sriov logical device remove operation failed: %w", err)
		}
		listed, err := logicalPortListed(tb, tb.system, tb.lpar, mac, cfgCmdTimeout)
		if err != nil {
			return err
		}
		if listed {
			return assertf("logical device %s still listed after remove operation", mac)
		}
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
