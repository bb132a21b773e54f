package cmd

import (
	"fmt"
	"net"
	"strconv"
)

// Local network interface configuration for the freshly added logical port.
// These shell out to iproute2 and ping through localRunFunc; a nonzero exit
// is reported with the same commandFailedError used for remote commands.

// addIPAddr assigns ip/netmask to the device.
func addIPAddr(dev, ip, netmask string) error {
	prefix, err := maskPrefix(netmask)
	if err != nil {
		return err
	}
	return localCommand("ip", "addr", "add", fmt.Sprintf("%s/%d", ip, prefix), "dev", dev)
}

// bringUp sets the device link state up.
func bringUp(dev string) error {
	return localCommand("ip", "link", "set", dev, "up")
}

// pingCheck verifies the peer answers over the device.
func pingCheck(dev, peer string, count int) error {
	return localCommand("ping", "-I", dev, "-c", strconv.Itoa(count), peer)
}

func localCommand(name string, args ...string) error {
	out, code, err := localRunFunc(name, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		line := name
		for _, a := range args {
			line += " " + a
		}
		return &commandFailedError{command: line, output: out, exitCode: code}
	}
	return nil
}

// maskPrefix converts a netmask to a prefix length. Both the dotted-quad
// form the params file usually carries and a bare prefix number are accepted.
func maskPrefix(netmask string) (int, error) {
	if n, err := strconv.Atoi(netmask); err == nil {
		if n < 0 || n > 32 {
			return 0, fmt.Errorf("invalid prefix length %d", n)
		}
		return n, nil
	}
	ip := net.ParseIP(netmask)
	if ip == nil || ip.To4() == nil {
		return 0, fmt.Errorf("invalid netmask %q", netmask)
	}
	ones, bits := net.IPMask(ip.To4()).Size()
	if bits == 0 {
		return 0, fmt.Errorf("non-contiguous netmask %q", netmask)
	}
	return ones, nil
}
