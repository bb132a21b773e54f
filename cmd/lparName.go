package cmd

import (
	"fmt"
	"strings"
)

// lookupPartitionName reads this partition's name from lparstat -i. Used when
// the params file and --lpar do not name the partition explicitly.
func lookupPartitionName() (string, error) {
	out, _, err := localRunFunc("lparstat", "-i")
	if err != nil {
		return "", fmt.Errorf("lparstat -i: %w", err)
	}
	if name := parsePartitionName(out); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("partition name not found in lparstat -i output")
}

// parsePartitionName extracts the value of the "Partition Name" line from
// lparstat -i output.
func parsePartitionName(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Partition Name") {
			continue
		}
		parts := strings.Split(line, ":")
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return ""
}
