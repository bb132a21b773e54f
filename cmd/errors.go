package cmd

import "fmt"

// connectionError reports that the SSH session to the HMC could not be
// established or negotiated. It is fatal to the whole run.
type connectionError struct {
	target string
	err    error
}

func (e *connectionError) Error() string {
	return fmt.Sprintf("cannot establish HMC session to %s: %v", e.target, e.err)
}

func (e *connectionError) Unwrap() error { return e.err }

// commandFailedError reports a remote command that returned a nonzero exit
// status. It carries the command line, the output captured before the status
// query, and the exit code.
type commandFailedError struct {
	command  string
	output   string
	exitCode int
}

func (e *commandFailedError) Error() string {
	return fmt.Sprintf("Command '%s' exited with %d.\nOutput:\n%s", e.command, e.exitCode, e.output)
}

// assertionError reports a post-condition that did not hold, e.g. a logical
// port missing from the lshwres listing after an add operation. Assertion
// failures are never retried.
type assertionError struct {
	msg string
}

func (e *assertionError) Error() string { return e.msg }

func assertf(format string, args ...any) error {
	return &assertionError{msg: fmt.Sprintf(format, args...)}
}
