// SPDX-License-Identifier: MPL-2.0

package launch

import "rfxboot/internal/pyenv"

// Result contains the outcome of a launch.
type Result struct {
	// ExitCode is the child's exit code, propagated verbatim. For pre-spawn
	// failures it is the wrapper's own code (see ExitNoInterpreter).
	ExitCode ExitCode
	// Error is set for infrastructure failures (no interpreter, spawn
	// failure). A child that ran and exited non-zero has Error == nil.
	Error error
	// Interpreter records which interpreter was used, nil when resolution
	// itself failed. A Source of pyenv.SourceSystem means the provisioned
	// environment was absent — the signal behind the re-provision hint.
	Interpreter *pyenv.Interpreter
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code ExitCode, interp *pyenv.Interpreter) *Result {
	return &Result{ExitCode: code, Interpreter: interp}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult(interp *pyenv.Interpreter) *Result {
	return &Result{Interpreter: interp}
}
