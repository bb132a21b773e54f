package cmd

import (
	"fmt"
	"strings"
)

// macPlain normalizes a MAC address to the 12-digit lowercase hex form the
// HMC uses in chhwres/lshwres attribute strings. Colons and dashes are
// accepted and stripped.
func macPlain(mac string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(mac))
	s = strings.ReplaceAll(s, ":", "")
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 12 {
		return "", fmt.Errorf("invalid mac address %q", mac)
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("invalid mac address %q", mac)
		}
	}
	return s, nil
}

// macColons renders a plain 12-digit MAC in the colon-separated form local
// interface enumeration reports.
func macColons(plain string) string {
	parts := make([]string, 0, 6)
	for i := 0; i+2 <= len(plain); i += 2 {
		parts = append(parts, plain[i:i+2])
	}
	return strings.Join(parts, ":")
}
