package cmd

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the top-level structure serialized to the output YAML file:
// run metadata, the resolved environment, every command issued in order with
// its captured output and exit code, and the final verdict.
type yamlReport struct {
	Name          string     `yaml:"name"`
	Description   string     `yaml:"description,omitempty"`
	Generated     string     `yaml:"generated"`
	HMC           string     `yaml:"hmc,omitempty"`
	ManagedSystem string     `yaml:"managed_system,omitempty"`
	Partition     string     `yaml:"partition,omitempty"`
	Steps         []yamlStep `yaml:"steps"`
	Result        string     `yaml:"result,omitempty"`
	Error         string     `yaml:"error,omitempty"`
}

// yamlStep records the outcome of a single command execution.
type yamlStep struct {
	Command  string `yaml:"command"`
	ExitCode int    `yaml:"exit_code"`
	Output   string `yaml:"output"`
	Error    string `yaml:"error,omitempty"`
}

// newYAMLReport constructs a report seeded with params metadata and a
// generated timestamp.
func newYAMLReport(p *params) *yamlReport {
	return &yamlReport{
		Name:        p.Name,
		Description: p.Description,
		Generated:   time.Now().Format(time.RFC3339),
		Steps:       []yamlStep{},
	}
}

// addStep appends one executed command to the report.
func (r *yamlReport) addStep(command, output string, exitCode int, err error) {
	st := yamlStep{Command: command, ExitCode: exitCode, Output: output}
	if err != nil {
		st.Error = err.Error()
	}
	r.Steps = append(r.Steps, st)
}

// finish sets the overall verdict from the run's terminal error.
func (r *yamlReport) finish(err error) {
	if err == nil {
		r.Result = "pass"
		return
	}
	r.Result = "fail"
	r.Error = err.Error()
}

// write serializes the report as YAML to w.
func (r *yamlReport) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

// writeReport creates the output file (and directories) and writes the
// report into it.
func writeReport(path string, r *yamlReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return r.write(f)
}
