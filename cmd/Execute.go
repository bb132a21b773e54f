package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var af *assertionError
		if errors.As(err, &af) {
			// Assertion failures are test verdicts, not usage errors.
			_, _ = fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitFunc(2)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
		return
	}
}
