package cmd

import (
	"errors"
	"fmt"
)

// runLifecycle is the shared driver behind add/remove/check: load params,
// bring the testbed up, run the operation, and always tear the session down
// and write the report, whether or not the operation succeeded.
func runLifecycle(op func(*testbed) error) error {
	if cfgParams == "" {
		return errors.New("--params is required (path to YAML)")
	}
	p, err := loadParams(cfgParams)
	if err != nil {
		return fmt.Errorf("failed to read params: %w", err)
	}

	tb := newTestbed(p)
	defer tb.teardown()

	err = tb.setup()
	if err == nil {
		err = op(tb)
	}
	tb.report.finish(err)

	if cfgOutPath != "" {
		if werr := writeReport(cfgOutPath, tb.report); werr != nil && err == nil {
			err = fmt.Errorf("failed writing report: %w", werr)
		}
	}
	return err
}
