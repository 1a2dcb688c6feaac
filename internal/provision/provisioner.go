// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"rfxboot/internal/issue"
	"rfxboot/internal/pyenv"

	"github.com/charmbracelet/log"
)

var (
	// ErrManifestMissing is returned when the dependency manifest does not
	// exist. The check runs before any filesystem mutation, so a failed
	// provision leaves an existing environment untouched.
	ErrManifestMissing = errors.New("dependency manifest missing")
	// ErrVenvUnavailable is returned when the system interpreter cannot
	// create virtual environments.
	ErrVenvUnavailable = errors.New("venv capability unavailable")
	// ErrSystemPackages is returned when the consent-approved OS package
	// installation fails.
	ErrSystemPackages = errors.New("system package installation failed")
)

type (
	// Consent asks the operator a yes/no question. Implementations may be
	// interactive (TUI prompt) or fixed (--yes / --no-system-packages).
	Consent func(title, description string) (bool, error)

	// Provisioner performs the one-shot environment setup sequence.
	Provisioner struct {
		// Venv is the environment location. An existing environment is
		// deleted and recreated, never upgraded in place.
		Venv pyenv.VenvPath
		// Manifest is the dependency manifest path.
		Manifest string
		// Candidates are the system interpreter names, tried in order.
		Candidates []string
		// SystemPackagesEnabled gates the optional OS package step.
		SystemPackagesEnabled bool
		// InstallOverrides overrides the per-manager install commands.
		InstallOverrides map[string]string
		// Runner executes subprocesses; tests inject a fake.
		Runner Runner
		// Consent asks before installing OS packages. Nil means decline.
		Consent Consent
		// Logger receives step-level progress. Nil disables logging.
		Logger *log.Logger
		// Stdout receives operator-facing informational messages.
		Stdout io.Writer
	}
)

// Provision runs the full sequence. Any missing prerequisite aborts with a
// remediated error before the environment is touched; the optional system
// package step being declined is informational, not an error.
func (p *Provisioner) Provision(ctx context.Context) error {
	python, err := pyenv.FindSystem(p.Candidates, p.Runner.LookPath)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("locate system interpreter").
			WithSuggestion("Install Python 3 (e.g. 'sudo apt-get install python3 python3-venv')").
			WithSuggestion("Make sure the interpreter is on your PATH").
			Wrap(err).
			BuildError()
	}
	p.logf("found system interpreter", "path", python)

	// Probe the venv capability: Debian-family systems ship the venv and
	// ensurepip modules in a separate package.
	if err := p.Runner.Run(ctx, python, "-c", "import venv, ensurepip"); err != nil {
		return issue.NewErrorContext().
			WithOperation("verify virtual environment support").
			WithResource(python).
			WithSuggestion("Install the venv module (e.g. 'sudo apt-get install python3-venv')").
			Wrap(fmt.Errorf("%w: %v", ErrVenvUnavailable, err)).
			BuildError()
	}

	// Manifest precondition comes before any mutation, so a failed
	// provision never leaves a half-built or deleted environment behind.
	if _, err := os.Stat(p.Manifest); err != nil {
		return issue.NewErrorContext().
			WithOperation("read dependency manifest").
			WithResource(p.Manifest).
			WithSuggestion("Run provisioning from the RipperFox checkout directory").
			WithSuggestion("Or pass --manifest with the correct path").
			Wrap(fmt.Errorf("%w: %v", ErrManifestMissing, err)).
			BuildError()
	}

	if p.Venv.Exists() {
		p.infof("Removing existing environment at %s", p.Venv)
		if err := p.Venv.Remove(); err != nil {
			return issue.NewErrorContext().
				WithOperation("remove existing environment").
				WithResource(p.Venv.String()).
				WithSuggestion("Check directory permissions").
				Wrap(err).
				BuildError()
		}
	}

	p.infof("Creating virtual environment at %s", p.Venv)
	if err := p.Runner.Run(ctx, python, "-m", "venv", p.Venv.String()); err != nil {
		return issue.NewErrorContext().
			WithOperation("create virtual environment").
			WithResource(p.Venv.String()).
			Wrap(err).
			BuildError()
	}

	venvPython := p.Venv.Interpreter()

	p.infof("Upgrading pip")
	if err := p.Runner.Run(ctx, venvPython, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return issue.NewErrorContext().
			WithOperation("upgrade pip").
			WithResource(venvPython).
			Wrap(err).
			BuildError()
	}

	p.infof("Installing dependencies from %s", p.Manifest)
	if err := p.Runner.Run(ctx, venvPython, "-m", "pip", "install", "-r", p.Manifest); err != nil {
		return issue.NewErrorContext().
			WithOperation("install dependencies").
			WithResource(p.Manifest).
			WithSuggestion("Inspect the pip output above for the failing package").
			Wrap(err).
			BuildError()
	}

	if err := p.systemPackages(ctx); err != nil {
		return err
	}

	p.infof("Environment ready at %s", p.Venv)
	return nil
}

// systemPackages runs the optional, consent-gated OS package step.
// Declining — or having no supported package manager — is not an error.
func (p *Provisioner) systemPackages(ctx context.Context) error {
	if !p.SystemPackagesEnabled {
		p.infof("System package step disabled, skipping")
		return nil
	}

	mgr, found := DetectPackageManager(p.Runner.LookPath)
	if !found {
		p.infof("No supported package manager found, skipping system packages")
		return nil
	}

	step, err := PlanSystemPackages(mgr, p.InstallOverrides)
	if err != nil {
		return issue.WrapWithOperation(err, "plan system package installation")
	}

	ok := false
	if p.Consent != nil {
		ok, err = p.Consent(
			fmt.Sprintf("Install the system GUI toolkit via %s?", mgr),
			"The tray launcher needs PyQt5; declining keeps the isolated environment as the only dependency source.",
		)
		if err != nil {
			return issue.WrapWithOperation(err, "confirm system package installation")
		}
	}
	if !ok {
		p.infof("System package installation declined, continuing without it")
		return nil
	}

	p.infof("Installing system packages via %s", mgr)
	if err := p.Runner.Run(ctx, step.Argv[0], step.Argv[1:]...); err != nil {
		return issue.NewErrorContext().
			WithOperation("install system packages").
			WithResource(string(mgr)).
			WithSuggestion("Re-run the install command manually to see the full output").
			WithSuggestion("Or skip this step with --no-system-packages").
			Wrap(fmt.Errorf("%w: %v", ErrSystemPackages, err)).
			BuildError()
	}

	return nil
}

// infof writes an operator-facing progress line and mirrors it to the logger.
func (p *Provisioner) infof(format string, args ...any) {
	if p.Stdout != nil {
		fmt.Fprintf(p.Stdout, format+"\n", args...)
	}
	p.logf(fmt.Sprintf(format, args...))
}

// logf logs through the configured logger, if any.
func (p *Provisioner) logf(msg string, kv ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, kv...)
	}
}
