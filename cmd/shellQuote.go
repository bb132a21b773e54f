package cmd

import "strings"

// shellQuote minimally quotes an argument for POSIX shells. It leaves common
// safe characters unquoted and uses single-quoting with the standard `'\''`
// escape for embedded single quotes. HMC attribute strings contain commas and
// equals signs, which are treated as safe so chhwres lines stay readable.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, func(r rune) bool {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			return false
		}
		if r >= '0' && r <= '9' {
			return false
		}
		switch r {
		case '-', '_', '.', '/', '@', ':', ',', '+', '=':
			return false
		}
		return true
	}) == -1 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
