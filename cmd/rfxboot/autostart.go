// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os/exec"

	"rfxboot/internal/autostart"
	"rfxboot/internal/issue"
	"rfxboot/internal/pyenv"

	"github.com/spf13/cobra"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage the RipperFox login autostart entry",
	Long: `Manage the RipperFox login autostart entry.

On Linux this writes an XDG desktop entry under ~/.config/autostart
that launches RipperFox in detached mode on login.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	autostartCmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start RipperFox automatically on login",
		RunE:  runAutostartEnable,
	})
	autostartCmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop starting RipperFox on login",
		RunE:  runAutostartDisable,
	})
	autostartCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether autostart is enabled",
		RunE:  runAutostartStatus,
	})
}

func runAutostartEnable(_ *cobra.Command, _ []string) error {
	interp, err := pyenv.Resolve(pyenv.VenvPath(cfg.ResolvedVenvDir()), cfg.Interpreters, exec.LookPath)
	if err != nil {
		printIssue(issue.ProvisionRequiredId)
		return fmt.Errorf("cannot build autostart command: %w", err)
	}

	m := &autostart.Manager{}
	execLine := fmt.Sprintf("%s %s --detach", interp.Path, cfg.ResolvedEntryPoint())
	if err := m.Enable(execLine); err != nil {
		if errors.Is(err, autostart.ErrUnsupported) {
			printIssue(issue.AutostartUnsupportedId)
		}
		return err
	}

	path, _ := m.EntryPath()
	fmt.Println(SuccessStyle.Render("✓") + " Autostart enabled: " + path)
	return nil
}

func runAutostartDisable(_ *cobra.Command, _ []string) error {
	m := &autostart.Manager{}
	if err := m.Disable(); err != nil {
		if errors.Is(err, autostart.ErrUnsupported) {
			printIssue(issue.AutostartUnsupportedId)
		}
		return err
	}
	fmt.Println(SuccessStyle.Render("✓") + " Autostart disabled")
	return nil
}

func runAutostartStatus(_ *cobra.Command, _ []string) error {
	m := &autostart.Manager{}
	enabled, err := m.Enabled()
	if err != nil {
		if errors.Is(err, autostart.ErrUnsupported) {
			printIssue(issue.AutostartUnsupportedId)
		}
		return err
	}

	if enabled {
		path, _ := m.EntryPath()
		fmt.Println("Autostart is " + SuccessStyle.Render("enabled") + " (" + path + ")")
	} else {
		fmt.Println("Autostart is " + SubtitleStyle.Render("disabled"))
	}
	return nil
}
