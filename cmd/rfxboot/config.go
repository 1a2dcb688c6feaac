// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"rfxboot/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rfxboot configuration",
	Long: `Manage rfxboot configuration.

Configuration is stored in:
  - Linux: ~/.config/ripperfox/config.cue
  - macOS: ~/Library/Application Support/ripperfox/config.cue
  - Windows: %APPDATA%\ripperfox\config.cue`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfigPath()
		},
	})
}

func showConfig() error {
	source := cfgPath
	if source == "" {
		source = "built-in defaults"
	}

	fmt.Println(TitleStyle.Render("Current configuration") + SubtitleStyle.Render(" ("+source+")"))
	fmt.Println()
	fmt.Printf("  app_dir:     %s\n", cfg.AppDir)
	fmt.Printf("  venv_dir:    %s\n", cfg.ResolvedVenvDir())
	fmt.Printf("  manifest:    %s\n", cfg.ResolvedManifest())
	fmt.Printf("  entry_point: %s\n", cfg.ResolvedEntryPoint())
	fmt.Printf("  interpreters: %v\n", cfg.Interpreters)
	fmt.Printf("  system_packages.enabled: %v\n", cfg.SystemPackages.Enabled)
	for mgr, cmdline := range cfg.SystemPackages.Commands {
		fmt.Printf("  system_packages.commands[%s]: %s\n", mgr, cmdline)
	}
	fmt.Printf("  ui.verbose:  %v\n", cfg.UI.Verbose)
	return nil
}

func initConfig() error {
	path, err := config.CreateDefaultConfig()
	if err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("✓") + " Created default configuration at " + path)
	return nil
}

func showConfigPath() error {
	if cfgPath != "" {
		fmt.Println(cfgPath)
		return nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Println(SubtitleStyle.Render("(not created yet) ") + path)
	return nil
}
