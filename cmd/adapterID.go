package cmd

import (
	"fmt"
	"strings"
	"time"
)

// lookupAdapterID resolves the SR-IOV adapter id for a physical slot location
// on the managed system.
func lookupAdapterID(r hmcRunner, system, slot string, timeout time.Duration) (string, error) {
	cmd := fmt.Sprintf("lshwres -m %s -r sriov --rsubtype adapter -F phys_loc:adapter_id", shellQuote(system))
	out, err := r.run(cmd, timeout)
	if err != nil {
		return "", err
	}
	return parseAdapterID(out, slot)
}

// parseAdapterID extracts the adapter_id field from phys_loc:adapter_id
// listing lines, keyed by slot location substring.
func parseAdapterID(out, slot string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, slot) {
			continue
		}
		i := strings.LastIndex(line, ":")
		if i < 0 || i == len(line)-1 {
			continue
		}
		return line[i+1:], nil
	}
	return "", fmt.Errorf("sriov adapter in slot %q not found", slot)
}
