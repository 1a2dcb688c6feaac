// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

type (
	// Runner executes external commands. The provisioner only ever runs one
	// command at a time and blocks until it completes.
	Runner interface {
		// Run executes name with args, wiring output to the runner's
		// configured writers, and returns an error for any non-zero exit.
		Run(ctx context.Context, name string, args ...string) error
		// LookPath reports the absolute path of an executable, like
		// exec.LookPath.
		LookPath(file string) (string, error)
	}

	// execRunner is the production Runner backed by os/exec.
	execRunner struct {
		stdout io.Writer
		stderr io.Writer
	}
)

// NewExecRunner creates a Runner that streams subprocess output to the given
// writers.
func NewExecRunner(stdout, stderr io.Writer) Runner {
	return &execRunner{stdout: stdout, stderr: stderr}
}

// Run implements Runner.
func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with code %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// LookPath implements Runner.
func (r *execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
