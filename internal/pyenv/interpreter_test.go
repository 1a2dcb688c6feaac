// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

// lookPathFrom builds a LookPathFunc that resolves only the given names.
func lookPathFrom(available map[string]string) LookPathFunc {
	return func(file string) (string, error) {
		if path, ok := available[file]; ok {
			return path, nil
		}
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
	}
}

func TestResolvePrefersVenvInterpreter(t *testing.T) {
	t.Parallel()

	venv := writeVenvInterpreter(t, t.TempDir(), 0o755)
	lookPath := lookPathFrom(map[string]string{"python3": "/usr/bin/python3"})

	interp, err := Resolve(venv, nil, lookPath)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if interp.Source != SourceVenv {
		t.Errorf("Source = %q, want %q", interp.Source, SourceVenv)
	}
	if interp.Path != venv.Interpreter() {
		t.Errorf("Path = %q, want venv interpreter %q", interp.Path, venv.Interpreter())
	}
}

func TestResolveFallsBackToSystem(t *testing.T) {
	t.Parallel()

	venv := VenvPath(filepath.Join(t.TempDir(), "venv"))
	lookPath := lookPathFrom(map[string]string{"python": "/usr/bin/python"})

	interp, err := Resolve(venv, nil, lookPath)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if interp.Source != SourceSystem {
		t.Errorf("Source = %q, want %q", interp.Source, SourceSystem)
	}
	if interp.Path != "/usr/bin/python" {
		t.Errorf("Path = %q, want /usr/bin/python", interp.Path)
	}
}

func TestResolveCandidateOrder(t *testing.T) {
	t.Parallel()

	venv := VenvPath(filepath.Join(t.TempDir(), "venv"))
	lookPath := lookPathFrom(map[string]string{
		"python3": "/usr/bin/python3",
		"python":  "/usr/bin/python",
	})

	interp, err := Resolve(venv, []string{"python3", "python"}, lookPath)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if interp.Path != "/usr/bin/python3" {
		t.Errorf("Path = %q, want first candidate /usr/bin/python3", interp.Path)
	}
}

func TestResolveNoInterpreter(t *testing.T) {
	t.Parallel()

	venv := VenvPath(filepath.Join(t.TempDir(), "venv"))
	lookPath := lookPathFrom(nil)

	_, err := Resolve(venv, nil, lookPath)
	if !errors.Is(err, ErrNoInterpreter) {
		t.Errorf("Resolve() error = %v, want ErrNoInterpreter", err)
	}
}

func TestFindSystemErrorNamesCandidates(t *testing.T) {
	t.Parallel()

	_, err := FindSystem([]string{"python3", "python"}, lookPathFrom(nil))
	if err == nil {
		t.Fatal("FindSystem() = nil error, want ErrNoInterpreter")
	}
	if !errors.Is(err, ErrNoInterpreter) {
		t.Errorf("error = %v, want ErrNoInterpreter", err)
	}
}
