package cmd

import (
	"fmt"
	"strings"
)

// lookupHMCAddress probes the IBM.MCP resource class for the address of the
// management console this partition reports to. Used when --hmc and the
// params file do not provide one.
func lookupHMCAddress() (string, error) {
	out, _, err := localRunFunc("lsrsrc", "IBM.MCP", "HMCIPAddr")
	if err != nil {
		return "", fmt.Errorf("lsrsrc IBM.MCP: %w", err)
	}
	if addr := parseHMCAddress(out); addr != "" {
		return addr, nil
	}
	return "", fmt.Errorf("HMCIPAddr not found in IBM.MCP resource output")
}

// parseHMCAddress extracts the address value from an lsrsrc attribute line
// like `HMCIPAddr = "9.40.192.1"`, trimming RSCT's brace/quote decoration.
func parseHMCAddress(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "HMCIPAddr") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return strings.Trim(fields[len(fields)-1], `{}"`)
	}
	return ""
}
