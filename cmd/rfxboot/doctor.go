// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"rfxboot/internal/autostart"
	"rfxboot/internal/provision"
	"rfxboot/internal/pyenv"
	"rfxboot/pkg/platform"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the RipperFox environment without changing it",
	Long: `Check the RipperFox environment without changing it.

Reports the configuration source, interpreter resolution, environment
state, manifest presence, package manager detection, and autostart
status. Purely read-only; nothing is created or modified.`,
	RunE: runDoctor,
}

func runDoctor(_ *cobra.Command, _ []string) error {
	fmt.Println(TitleStyle.Render("rfxboot doctor"))
	fmt.Println()

	if cfgPath != "" {
		reportOK("config", cfgPath)
	} else {
		reportInfo("config", "built-in defaults (no config file)")
	}

	venv := pyenv.VenvPath(cfg.ResolvedVenvDir())
	if venv.Exists() {
		reportOK("environment", venv.Interpreter())
	} else {
		reportFail("environment", fmt.Sprintf("%s missing (run %s)", venv, CmdStyle.Render("rfxboot provision")))
	}

	systemFound := false
	for _, candidate := range cfg.Interpreters {
		if path, err := exec.LookPath(candidate); err == nil {
			reportOK("system interpreter", path)
			systemFound = true
			break
		}
	}
	if !systemFound {
		reportFail("system interpreter", fmt.Sprintf("none of %v on PATH", cfg.Interpreters))
	}

	manifest := cfg.ResolvedManifest()
	if _, err := os.Stat(manifest); err == nil {
		reportOK("manifest", manifest)
	} else {
		reportFail("manifest", manifest+" not found")
	}

	entry := cfg.ResolvedEntryPoint()
	if _, err := os.Stat(entry); err == nil {
		reportOK("entry point", entry)
	} else {
		reportFail("entry point", entry+" not found")
	}

	if mgr, found := provision.DetectPackageManager(exec.LookPath); found {
		reportOK("package manager", string(mgr))
	} else {
		reportInfo("package manager", "none detected (system package step will be skipped)")
	}

	if platform.IsLinux() {
		m := &autostart.Manager{}
		if enabled, err := m.Enabled(); err != nil {
			reportFail("autostart", err.Error())
		} else if enabled {
			reportOK("autostart", "enabled")
		} else {
			reportInfo("autostart", "disabled")
		}
	} else {
		reportInfo("autostart", "unsupported on this platform")
	}

	return nil
}

func reportOK(label, detail string) {
	fmt.Printf("%s %s: %s\n", SuccessStyle.Render("✓"), label, detail)
}

func reportFail(label, detail string) {
	fmt.Printf("%s %s: %s\n", ErrorStyle.Render("✗"), label, detail)
}

func reportInfo(label, detail string) {
	fmt.Printf("%s %s: %s\n", SubtitleStyle.Render("-"), label, detail)
}
