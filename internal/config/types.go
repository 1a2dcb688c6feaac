// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAppDirPath is returned when an app_dir value is whitespace-only.
	ErrInvalidAppDirPath = errors.New("invalid app dir path")
	// ErrInvalidVenvDirPath is returned when a venv_dir value is empty or whitespace-only.
	ErrInvalidVenvDirPath = errors.New("invalid venv dir path")
	// ErrInvalidManifestPath is returned when a manifest value is empty or whitespace-only.
	ErrInvalidManifestPath = errors.New("invalid manifest path")
	// ErrInvalidEntryPointPath is returned when an entry_point value is empty or whitespace-only.
	ErrInvalidEntryPointPath = errors.New("invalid entry point path")
	// ErrNoInterpreterCandidates is returned when the interpreters list is empty.
	ErrNoInterpreterCandidates = errors.New("no interpreter candidates configured")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config is the full rfxboot configuration.
	Config struct {
		// AppDir is the RipperFox application directory. VenvDir, Manifest and
		// EntryPoint resolve against it when relative.
		AppDir string `mapstructure:"app_dir"`
		// VenvDir is the virtual environment directory (the Environment Descriptor).
		VenvDir string `mapstructure:"venv_dir"`
		// Manifest is the dependency manifest file.
		Manifest string `mapstructure:"manifest"`
		// EntryPoint is the backend entry-point script.
		EntryPoint string `mapstructure:"entry_point"`
		// Interpreters are the system interpreter candidates, tried in order.
		Interpreters []string `mapstructure:"interpreters"`
		// SystemPackages configures the optional OS package installation step.
		SystemPackages SystemPackagesConfig `mapstructure:"system_packages"`
		// UI holds terminal output settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// SystemPackagesConfig configures the optional, consent-gated installation
	// of the platform GUI toolkit through the OS package manager.
	SystemPackagesConfig struct {
		// Enabled is the master switch; when false the step is skipped without
		// prompting, as if the operator declined.
		Enabled bool `mapstructure:"enabled"`
		// Commands overrides the install command per package manager
		// (keys: apt-get, dnf, pacman).
		Commands map[string]string `mapstructure:"commands"`
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig so callers can use errors.Is for detection.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the built-in defaults. The relative venv, manifest
// and entry-point names mirror the original installer scripts; app_dir
// defaults to the current directory so running from the checkout works with
// no config file at all.
func DefaultConfig() *Config {
	return &Config{
		AppDir:       ".",
		VenvDir:      "venv",
		Manifest:     "requirements.txt",
		EntryPoint:   "ripperfox_launcher.py",
		Interpreters: []string{"python3", "python"},
		SystemPackages: SystemPackagesConfig{
			Enabled: true,
		},
	}
}

// IsValid returns whether the Config is well-formed, and the list of
// field-level validation errors if it is not.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	// AppDir is optional; only a whitespace-only value is rejected.
	if isBlank(c.AppDir) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidAppDirPath, c.AppDir))
	}
	if c.VenvDir == "" || isBlank(c.VenvDir) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidVenvDirPath, c.VenvDir))
	}
	if c.Manifest == "" || isBlank(c.Manifest) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidManifestPath, c.Manifest))
	}
	if c.EntryPoint == "" || isBlank(c.EntryPoint) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidEntryPointPath, c.EntryPoint))
	}
	if len(c.Interpreters) == 0 {
		errs = append(errs, ErrNoInterpreterCandidates)
	}

	return len(errs) == 0, errs
}

// Validate returns an InvalidConfigError if the Config is not well-formed.
func (c *Config) Validate() error {
	if ok, errs := c.IsValid(); !ok {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// isBlank reports whether s is non-empty but consists only of whitespace.
func isBlank(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}
