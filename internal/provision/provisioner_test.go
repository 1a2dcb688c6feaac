// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rfxboot/internal/pyenv"
)

type fakeRunner struct {
	// available maps executable names to resolved paths for LookPath.
	available map[string]string
	// failOn maps a command substring to the error Run should return.
	failOn map[string]error
	// calls records every Run invocation as a single joined string.
	calls []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	call := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, call)
	for substr, err := range r.failOn {
		if strings.Contains(call, substr) {
			return err
		}
	}
	return nil
}

func (r *fakeRunner) LookPath(file string) (string, error) {
	if path, ok := r.available[file]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
}

// newTestProvisioner builds a Provisioner against a temp dir with a manifest
// present and a fake runner that resolves python3 (and nothing else unless
// extended by the test).
func newTestProvisioner(t *testing.T) (*Provisioner, *fakeRunner, string) {
	t.Helper()

	dir := t.TempDir()
	manifest := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(manifest, []byte("flask\nyt-dlp\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{
		available: map[string]string{"python3": "/usr/bin/python3"},
	}
	p := &Provisioner{
		Venv:                  pyenv.VenvPath(filepath.Join(dir, "venv")),
		Manifest:              manifest,
		Candidates:            []string{"python3", "python"},
		SystemPackagesEnabled: true,
		Runner:                runner,
	}
	return p, runner, dir
}

func TestProvisionRunsFullSequence(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)

	if err := p.Provision(context.Background()); err != nil {
		t.Fatalf("Provision() error: %v", err)
	}

	want := []string{
		"/usr/bin/python3 -c import venv, ensurepip",
		"/usr/bin/python3 -m venv " + p.Venv.String(),
		p.Venv.Interpreter() + " -m pip install --upgrade pip",
		p.Venv.Interpreter() + " -m pip install -r " + p.Manifest,
	}
	if len(runner.calls) != len(want) {
		t.Fatalf("Run calls = %v, want %v", runner.calls, want)
	}
	for i := range want {
		if runner.calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, runner.calls[i], want[i])
		}
	}
}

func TestProvisionFailsWithoutInterpreter(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.available = nil

	err := p.Provision(context.Background())
	if !errors.Is(err, pyenv.ErrNoInterpreter) {
		t.Errorf("Provision() error = %v, want ErrNoInterpreter", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no subprocess should run without an interpreter, got %v", runner.calls)
	}
}

func TestProvisionFailsWithoutVenvCapability(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.failOn = map[string]error{"import venv": errors.New("exit 1")}

	err := p.Provision(context.Background())
	if !errors.Is(err, ErrVenvUnavailable) {
		t.Errorf("Provision() error = %v, want ErrVenvUnavailable", err)
	}
}

func TestProvisionMissingManifestLeavesVenvUntouched(t *testing.T) {
	t.Parallel()

	p, runner, dir := newTestProvisioner(t)
	if err := os.Remove(p.Manifest); err != nil {
		t.Fatal(err)
	}

	// Pre-existing environment with a marker file that must survive.
	marker := filepath.Join(dir, "venv", "bin", "marker")
	if err := os.MkdirAll(filepath.Dir(marker), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(marker, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := p.Provision(context.Background())
	if !errors.Is(err, ErrManifestMissing) {
		t.Errorf("Provision() error = %v, want ErrManifestMissing", err)
	}
	if _, statErr := os.Stat(marker); statErr != nil {
		t.Error("existing environment was modified despite missing manifest")
	}
	for _, call := range runner.calls {
		if strings.Contains(call, "-m venv") {
			t.Errorf("venv creation ran despite missing manifest: %q", call)
		}
	}
}

func TestProvisionReplacesExistingVenv(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestProvisioner(t)

	// Simulate a previously provisioned environment: executable interpreter
	// plus a stale file that must not survive re-provisioning.
	interp := p.Venv.Interpreter()
	if err := os.MkdirAll(filepath.Dir(interp), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(interp, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(p.Venv.String(), "stale.txt")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := p.Provision(context.Background()); err != nil {
		t.Fatalf("Provision() error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived re-provisioning; replacement semantics violated")
	}
}

func TestProvisionConsentDeclinedIsSuccess(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.available["apt-get"] = "/usr/bin/apt-get"

	asked := false
	p.Consent = func(title, desc string) (bool, error) {
		asked = true
		return false, nil
	}

	if err := p.Provision(context.Background()); err != nil {
		t.Fatalf("Provision() error: %v", err)
	}
	if !asked {
		t.Error("consent prompt was never shown")
	}
	for _, call := range runner.calls {
		if strings.Contains(call, "apt-get") {
			t.Errorf("package install ran despite declined consent: %q", call)
		}
	}
}

func TestProvisionConsentAcceptedInstallsPackages(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.available["apt-get"] = "/usr/bin/apt-get"
	p.Consent = func(string, string) (bool, error) { return true, nil }

	if err := p.Provision(context.Background()); err != nil {
		t.Fatalf("Provision() error: %v", err)
	}

	last := runner.calls[len(runner.calls)-1]
	if last != "sudo apt-get install -y python3-pyqt5" {
		t.Errorf("last call = %q, want the apt-get install command", last)
	}
}

func TestProvisionNilConsentMeansDecline(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.available["dnf"] = "/usr/bin/dnf"
	p.Consent = nil

	if err := p.Provision(context.Background()); err != nil {
		t.Fatalf("Provision() error: %v", err)
	}
	for _, call := range runner.calls {
		if strings.Contains(call, "dnf") {
			t.Errorf("package install ran without consent: %q", call)
		}
	}
}

func TestProvisionSystemPackageFailureIsFatal(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.available["pacman"] = "/usr/bin/pacman"
	runner.failOn = map[string]error{"pacman -S": errors.New("exit 1")}
	p.Consent = func(string, string) (bool, error) { return true, nil }

	if err := p.Provision(context.Background()); err == nil {
		t.Error("Provision() should surface a failed package installation")
	}
}

func TestProvisionInstallOverride(t *testing.T) {
	t.Parallel()

	p, runner, _ := newTestProvisioner(t)
	runner.available["apt-get"] = "/usr/bin/apt-get"
	p.InstallOverrides = map[string]string{"apt-get": "apt-get install -y python3-pyqt5 ffmpeg"}
	p.Consent = func(string, string) (bool, error) { return true, nil }

	if err := p.Provision(context.Background()); err != nil {
		t.Fatalf("Provision() error: %v", err)
	}

	last := runner.calls[len(runner.calls)-1]
	if last != "apt-get install -y python3-pyqt5 ffmpeg" {
		t.Errorf("last call = %q, want the overridden install command", last)
	}
}
