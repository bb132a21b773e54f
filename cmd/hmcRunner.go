package cmd

import "time"

// hmcRunner is a minimal interface for running one command line on the HMC.
// hmcShell implements it; tests substitute canned runners.
type hmcRunner interface {
	run(command string, timeout time.Duration) (string, error)
}

// remoteShell is what the testbed owns: a runner with a lifecycle.
type remoteShell interface {
	hmcRunner
	close() error
}
