package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassword asks for the HMC password on the controlling terminal when
// none was supplied by flag or environment. On a non-interactive stdin it
// returns empty so the caller can fail with a clear message instead of
// hanging.
func promptPassword(user, target string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ""
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s@%s password: ", user, target)
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return ""
	}
	return string(b)
}
