package cmd

import (
	"fmt"
	"strings"
	"time"
)

// lookupManagedSystem asks the HMC for its managed system names and picks the
// one this partition lives on. Partition names on these fleets embed the
// server name, so the match is "server name is a substring of the partition
// name".
func lookupManagedSystem(r hmcRunner, lpar string, timeout time.Duration) (string, error) {
	out, err := r.run("lssyscfg -r sys -F name", timeout)
	if err != nil {
		return "", err
	}
	if sys := parseManagedSystem(out, lpar); sys != "" {
		return sys, nil
	}
	return "", fmt.Errorf("managed system for partition %q not found in lssyscfg output", lpar)
}

// parseManagedSystem scans lssyscfg -r sys -F name output for a server name
// contained in the partition name.
func parseManagedSystem(out, lpar string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(lpar, line) {
			return line
		}
	}
	return ""
}
