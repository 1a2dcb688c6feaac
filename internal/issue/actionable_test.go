// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	ae := NewErrorContext().
		WithOperation("create virtual environment").
		WithResource("/opt/ripperfox/venv").
		Wrap(cause).
		Build()

	want := "failed to create virtual environment: /opt/ripperfox/venv: permission denied"
	if got := ae.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(ae, cause) {
		t.Error("ActionableError does not unwrap to its cause")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("exec: \"python3\": executable file not found in $PATH")
	wrapped := WrapWithOperation(inner, "locate interpreter")
	ae := NewErrorContext().
		WithOperation("provision environment").
		WithSuggestion("Install Python 3").
		WithSuggestion("Check your PATH").
		Wrap(wrapped).
		Build()

	short := ae.Format(false)
	if !strings.Contains(short, "• Install Python 3") {
		t.Errorf("Format(false) missing suggestion:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	long := ae.Format(true)
	if !strings.Contains(long, "Error chain") {
		t.Error("Format(true) should include the error chain")
	}
	if !strings.Contains(long, "executable file not found") {
		t.Errorf("Format(true) missing the root cause:\n%s", long)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if ae := NewErrorContext().WithResource("venv").Build(); ae != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Error("BuildError() without operation should return nil")
	}
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}
