// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"

	"rfxboot/internal/issue"
	"rfxboot/internal/launch"
	"rfxboot/internal/pyenv"

	"github.com/spf13/cobra"
)

var (
	// launchTerminal attaches the backend to a pseudo-terminal.
	launchTerminal bool
	// launchDetach forwards --detach so the backend backgrounds itself.
	launchDetach bool
	// launchEntry overrides the entry point script from config.
	launchEntry string
	// launchVenv overrides the environment directory from config.
	launchVenv string

	launchCmd = &cobra.Command{
		Use:   "launch [flags] [-- backend-args...]",
		Short: "Start the RipperFox tray application",
		Long: `Start the RipperFox tray application.

The provisioned environment's interpreter is preferred; if it is
missing, the system interpreter candidates are tried in order. The
backend's exit code is propagated verbatim, so scripts wrapping
rfxboot see exactly what RipperFox returned.

Arguments after -- are forwarded to the backend unchanged.`,
		RunE: runLaunch,
	}
)

func init() {
	launchCmd.Flags().BoolVarP(&launchTerminal, "terminal", "t", false, "run attached to a pseudo-terminal")
	launchCmd.Flags().BoolVarP(&launchDetach, "detach", "d", false, "ask the backend to background itself")
	launchCmd.Flags().StringVar(&launchEntry, "entry", "", "entry point script (overrides config)")
	launchCmd.Flags().StringVar(&launchVenv, "venv", "", "virtual environment directory (overrides config)")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	venvDir := cfg.ResolvedVenvDir()
	if launchVenv != "" {
		venvDir = launchVenv
	}
	entry := cfg.ResolvedEntryPoint()
	if launchEntry != "" {
		entry = launchEntry
	}

	launcher := launch.New(pyenv.VenvPath(venvDir), cfg.Interpreters, newLogger())
	result := launcher.Launch(cmd.Context(), launch.Options{
		EntryPoint: entry,
		Args:       args,
		Detach:     launchDetach,
		Terminal:   launchTerminal,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
	})

	if id, ok := launchIssue(result); ok {
		printIssue(id)
	}

	if result.Error != nil {
		return &ExitError{Code: normalizeExitCode(result.ExitCode), Err: result.Error}
	}
	if !result.ExitCode.IsSuccess() {
		return &ExitError{Code: normalizeExitCode(result.ExitCode)}
	}
	return nil
}

// launchIssue picks the remediation card for a failed launch, if any: the
// provision-required card when no interpreter resolved, and the
// backend-failed card when the child failed on a fallback system
// interpreter (the signature of missing provisioned dependencies). A
// failure on the venv interpreter gets no card; the backend's own output
// is the diagnostic.
func launchIssue(result *launch.Result) (issue.Id, bool) {
	if result.Error != nil {
		if errors.Is(result.Error, pyenv.ErrNoInterpreter) {
			return issue.ProvisionRequiredId, true
		}
		return 0, false
	}
	if result.ExitCode.IsSuccess() {
		return 0, false
	}
	if result.Interpreter != nil && result.Interpreter.Source == pyenv.SourceSystem {
		return issue.BackendFailedId, true
	}
	return 0, false
}

// normalizeExitCode clamps out-of-range codes to a plain failure before they
// reach os.Exit. A signal-killed child reports -1, which os.Exit would
// otherwise wrap modulo 256.
func normalizeExitCode(code launch.ExitCode) launch.ExitCode {
	if ok, _ := code.IsValid(); !ok {
		return 1
	}
	return code
}
