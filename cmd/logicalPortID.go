package cmd

import (
	"fmt"
	"strings"
	"time"
)

// lookupLogicalPortID finds the logical_port_id of the port carrying the
// given MAC on this partition. The grep pipeline narrows the eth-level
// listing to the single line describing that port.
func lookupLogicalPortID(r hmcRunner, system, lpar, mac string, timeout time.Duration) (string, error) {
	cmd := fmt.Sprintf("lshwres -r sriov --rsubtype logport -m %s --level eth | grep %s | grep %s",
		shellQuote(system), shellQuote(lpar), mac)
	out, err := r.run(cmd, timeout)
	if err != nil {
		return "", err
	}
	return parseLogicalPortID(out)
}

// parseLogicalPortID pulls logical_port_id out of one comma-delimited
// key=value lshwres line. The field sits at index 6 in the eth-level layout;
// the position is undocumented upstream and has to be treated as part of the
// HMC's ad hoc contract.
func parseLogicalPortID(out string) (string, error) {
	line := strings.TrimSpace(out)
	fields := strings.Split(line, ",")
	if len(fields) < 7 {
		return "", fmt.Errorf("unexpected lshwres logport line %q", line)
	}
	kv := fields[6]
	i := strings.LastIndex(kv, "=")
	if i < 0 || i == len(kv)-1 {
		return "", fmt.Errorf("no logical_port_id value in field %q", kv)
	}
	return kv[i+1:], nil
}
