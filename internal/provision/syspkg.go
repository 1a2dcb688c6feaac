// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"errors"
	"fmt"

	"mvdan.cc/sh/v3/shell"
)

// Package manager constants, in detection priority order.
const (
	AptGet PackageManager = "apt-get"
	Dnf    PackageManager = "dnf"
	Pacman PackageManager = "pacman"
)

// ErrNoPackageManager is returned by PlanSystemPackages when the manager is
// not one of the known candidates.
var ErrNoPackageManager = errors.New("no supported package manager")

type (
	// PackageManager identifies an OS package manager.
	PackageManager string

	// SystemPackageStep is a planned, consent-gated package installation:
	// one manager, one fully-split argv. Planning is separated from
	// execution so the {manager} x {consent} decision table stays testable
	// without running anything.
	SystemPackageStep struct {
		Manager PackageManager
		Argv    []string
	}
)

// managerPriority fixes the detection order. The three candidates are
// mutually exclusive in practice; the first one found on PATH wins.
var managerPriority = []PackageManager{AptGet, Dnf, Pacman}

// defaultInstallCommands maps each manager to the command that installs the
// platform GUI toolkit dependency. The strings are split with shell word
// splitting rules, so quoting works the way operators expect.
var defaultInstallCommands = map[PackageManager]string{
	AptGet: "sudo apt-get install -y python3-pyqt5",
	Dnf:    "sudo dnf install -y python3-qt5",
	Pacman: "sudo pacman -S --noconfirm python-pyqt5",
}

// DetectPackageManager probes the known managers in priority order and
// returns the first one present on PATH.
func DetectPackageManager(lookPath func(string) (string, error)) (PackageManager, bool) {
	for _, mgr := range managerPriority {
		if _, err := lookPath(string(mgr)); err == nil {
			return mgr, true
		}
	}
	return "", false
}

// PlanSystemPackages resolves the install command for mgr, honoring
// per-manager overrides, and splits it into an argv using shell word
// splitting (no shell is ever invoked).
func PlanSystemPackages(mgr PackageManager, overrides map[string]string) (*SystemPackageStep, error) {
	cmdline, ok := defaultInstallCommands[mgr]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPackageManager, mgr)
	}
	if override, ok := overrides[string(mgr)]; ok && override != "" {
		cmdline = override
	}

	argv, err := shell.Fields(cmdline, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid install command for %s: %w", mgr, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty install command for %s", mgr)
	}

	return &SystemPackageStep{Manager: mgr, Argv: argv}, nil
}
