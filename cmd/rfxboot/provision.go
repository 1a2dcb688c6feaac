// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"rfxboot/internal/issue"
	"rfxboot/internal/provision"
	"rfxboot/internal/pyenv"
	"rfxboot/internal/tui"

	"github.com/spf13/cobra"
)

var (
	// provisionYes answers the system package prompt affirmatively.
	provisionYes bool
	// provisionNoSystemPackages skips the optional system package step.
	provisionNoSystemPackages bool
	// provisionVenv overrides the environment directory from config.
	provisionVenv string
	// provisionManifest overrides the manifest path from config.
	provisionManifest string

	provisionCmd = &cobra.Command{
		Use:   "provision",
		Short: "Create the isolated Python environment for RipperFox",
		Long: `Create the isolated Python environment for RipperFox.

Provisioning locates a system Python 3 interpreter, verifies it can
create virtual environments, deletes any existing environment, creates
a fresh one, upgrades pip, and installs the dependency manifest.

An optional, consent-gated step installs the system GUI toolkit
(PyQt5) through apt-get, dnf or pacman. Declining it is not an error;
the isolated environment remains the only dependency source.

If the manifest is missing, provisioning fails before touching the
existing environment.`,
		RunE: runProvision,
	}
)

func init() {
	provisionCmd.Flags().BoolVarP(&provisionYes, "yes", "y", false, "assume yes for the system package prompt")
	provisionCmd.Flags().BoolVar(&provisionNoSystemPackages, "no-system-packages", false, "skip the optional system package step")
	provisionCmd.Flags().StringVar(&provisionVenv, "venv", "", "virtual environment directory (overrides config)")
	provisionCmd.Flags().StringVar(&provisionManifest, "manifest", "", "dependency manifest path (overrides config)")
}

func runProvision(cmd *cobra.Command, _ []string) error {
	venvDir := cfg.ResolvedVenvDir()
	if provisionVenv != "" {
		venvDir = provisionVenv
	}
	manifest := cfg.ResolvedManifest()
	if provisionManifest != "" {
		manifest = provisionManifest
	}

	p := &provision.Provisioner{
		Venv:                  pyenv.VenvPath(venvDir),
		Manifest:              manifest,
		Candidates:            cfg.Interpreters,
		SystemPackagesEnabled: cfg.SystemPackages.Enabled && !provisionNoSystemPackages,
		InstallOverrides:      cfg.SystemPackages.Commands,
		Runner:                provision.NewExecRunner(os.Stdout, os.Stderr),
		Consent:               provisionConsent(),
		Logger:                newLogger(),
		Stdout:                os.Stdout,
	}

	if err := p.Provision(cmd.Context()); err != nil {
		printProvisionIssue(err)
		return fmt.Errorf("provisioning failed: %w", err)
	}

	fmt.Println(SuccessStyle.Render("✓") + " Environment ready. Start RipperFox with " + CmdStyle.Render("rfxboot launch"))
	return nil
}

// provisionConsent builds the consent callback for the system package step.
// --yes bypasses the prompt; a cancelled prompt counts as a decline.
func provisionConsent() provision.Consent {
	if provisionYes {
		return func(string, string) (bool, error) { return true, nil }
	}
	return func(title, description string) (bool, error) {
		ok, err := tui.Confirm(tui.ConfirmOptions{
			Title:       title,
			Description: description,
		})
		if errors.Is(err, tui.ErrCancelled) {
			return false, nil
		}
		return ok, err
	}
}

// printProvisionIssue maps known provisioning failures to their remediation
// cards.
func printProvisionIssue(err error) {
	switch {
	case errors.Is(err, pyenv.ErrNoInterpreter):
		printIssue(issue.InterpreterNotFoundId)
	case errors.Is(err, provision.ErrVenvUnavailable):
		printIssue(issue.VenvUnavailableId)
	case errors.Is(err, provision.ErrManifestMissing):
		printIssue(issue.ManifestNotFoundId)
	case errors.Is(err, provision.ErrSystemPackages):
		printIssue(issue.SystemPackagesFailedId)
	}
}
