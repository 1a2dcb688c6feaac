// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rfxboot.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"rfxboot/internal/config"
	"rfxboot/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig. It is
	// never nil after initialization; load failures fall back to defaults.
	cfg *config.Config
	// cfgPath is the config file the configuration was loaded from, empty
	// when running on pure defaults.
	cfgPath string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "rfxboot",
		Short: "Bootstrap and launch the RipperFox tray application",
		Long: TitleStyle.Render("rfxboot") + SubtitleStyle.Render(" - Bootstrap and launch the RipperFox tray application") + `

rfxboot provisions an isolated Python environment for RipperFox
(virtual environment, pip dependencies, optional system GUI toolkit)
and launches the tray application with the right interpreter,
propagating its exit code.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'rfxboot provision' once from the RipperFox checkout
  2. Run 'rfxboot launch' to start the tray application
  3. Optionally run 'rfxboot autostart enable' to start on login

` + SubtitleStyle.Render("Examples:") + `
  rfxboot provision         Build the isolated environment
  rfxboot launch --detach   Start RipperFox in the background
  rfxboot doctor            Check the environment without changing it
  rfxboot config show       Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ripperfox/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file, falling back to defaults on failure.
func initRootConfig() {
	loaded, path, err := config.Load(context.Background(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded == nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded
	cfgPath = path

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// newLogger builds the CLI logger; verbose mode lowers the level to debug.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "rfxboot",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// printIssue renders a known issue from the catalog to stderr. Rendering
// failures fall back to the raw markdown.
func printIssue(id issue.Id) {
	i := issue.Get(id)
	if i == nil {
		return
	}
	rendered, err := i.Render("dark")
	if err != nil {
		rendered = string(i.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, rendered)
}
