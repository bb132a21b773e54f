package cmd

import (
	"errors"
	"os/exec"
)

// localRun executes a command on the partition under test and returns its
// combined output and exit code. A nonzero exit is not an error at this
// level; callers decide what a failing lparstat or ping means.
func localRun(name string, args ...string) (string, int, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return string(out), ee.ExitCode(), nil
		}
		return string(out), -1, err
	}
	return string(out), 0, nil
}
