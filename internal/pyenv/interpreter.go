// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"errors"
	"fmt"
	"os/exec"
)

// Interpreter source constants.
const (
	// SourceVenv means the interpreter came from the provisioned venv.
	SourceVenv InterpreterSource = "venv"
	// SourceSystem means a system interpreter was found on PATH.
	SourceSystem InterpreterSource = "system"
)

// ErrNoInterpreter is returned when neither the venv interpreter nor any
// system candidate could be resolved.
var ErrNoInterpreter = errors.New("no python interpreter found")

type (
	// InterpreterSource identifies where a resolved interpreter came from.
	InterpreterSource string

	// Interpreter is a resolved Python interpreter.
	Interpreter struct {
		// Path is the executable path.
		Path string
		// Source records whether the venv or a system candidate was used.
		Source InterpreterSource
	}

	// LookPathFunc abstracts exec.LookPath for tests.
	LookPathFunc func(file string) (string, error)
)

// DefaultSystemCandidates are the system interpreter names tried, in order,
// when the venv interpreter is absent.
var DefaultSystemCandidates = []string{"python3", "python"}

// Resolve determines which interpreter to use. The venv interpreter always
// wins when present and executable; otherwise the candidates are probed in
// order via lookPath. Returns ErrNoInterpreter when nothing resolves.
func Resolve(venv VenvPath, candidates []string, lookPath LookPathFunc) (*Interpreter, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if len(candidates) == 0 {
		candidates = DefaultSystemCandidates
	}

	if venv.Exists() {
		return &Interpreter{Path: venv.Interpreter(), Source: SourceVenv}, nil
	}

	path, err := FindSystem(candidates, lookPath)
	if err != nil {
		return nil, err
	}
	return &Interpreter{Path: path, Source: SourceSystem}, nil
}

// FindSystem returns the first discoverable candidate on PATH.
// Returns ErrNoInterpreter when none of the candidates resolve.
func FindSystem(candidates []string, lookPath LookPathFunc) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v", ErrNoInterpreter, candidates)
}
