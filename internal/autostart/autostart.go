// SPDX-License-Identifier: MPL-2.0

package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rfxboot/internal/issue"
	"rfxboot/pkg/platform"
)

// FileName is the desktop entry file name under the autostart directory.
const FileName = "ripperfox.desktop"

// ErrUnsupported is returned on platforms without XDG autostart support.
var ErrUnsupported = errors.New("autostart requires a Linux desktop session")

// entryTemplate is the desktop entry written on Enable. Hidden=false and the
// GNOME enable flag keep the entry active even if a desktop environment
// previously soft-disabled it.
const entryTemplate = `[Desktop Entry]
Type=Application
Name=RipperFox
Comment=Start the RipperFox tray application on login
Exec=%s
Icon=ripperfox
Terminal=false
Hidden=false
X-GNOME-Autostart-enabled=true
`

// Manager reads and writes the autostart desktop entry.
type Manager struct {
	// Dir overrides the autostart directory; empty means the XDG default
	// (~/.config/autostart). Tests inject a temp dir here.
	Dir string
}

// EntryPath returns the absolute path of the desktop entry file.
func (m *Manager) EntryPath() (string, error) {
	dir, err := m.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Enable writes the desktop entry with the given Exec command line,
// overwriting any previous entry.
func (m *Manager) Enable(execLine string) error {
	dir, err := m.dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return issue.NewErrorContext().
			WithOperation("create autostart directory").
			WithResource(dir).
			Wrap(err).
			BuildError()
	}

	path := filepath.Join(dir, FileName)
	content := fmt.Sprintf(entryTemplate, execLine)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("write autostart entry").
			WithResource(path).
			Wrap(err).
			BuildError()
	}
	return nil
}

// Disable removes the desktop entry. A missing entry is not an error.
func (m *Manager) Disable() error {
	path, err := m.EntryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return issue.NewErrorContext().
			WithOperation("remove autostart entry").
			WithResource(path).
			Wrap(err).
			BuildError()
	}
	return nil
}

// Enabled reports whether the desktop entry exists.
func (m *Manager) Enabled() (bool, error) {
	path, err := m.EntryPath()
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// dir resolves the autostart directory, honoring the override.
func (m *Manager) dir() (string, error) {
	if m.Dir != "" {
		return m.Dir, nil
	}
	if !platform.IsLinux() {
		return "", ErrUnsupported
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(cfg, "autostart"), nil
}
