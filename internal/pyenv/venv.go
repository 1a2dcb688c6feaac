// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"

	"rfxboot/pkg/platform"
)

// VenvPath is the resolved filesystem location of the virtual environment
// directory. It is an explicit, injectable value (never an ambient lookup)
// so tests can point it at a temporary directory.
type VenvPath string

// String returns the path as a plain string.
func (p VenvPath) String() string { return string(p) }

// Interpreter returns the path of the interpreter binary inside the venv:
// <venv>/bin/python on POSIX, <venv>\Scripts\python.exe on Windows.
func (p VenvPath) Interpreter() string {
	if platform.IsWindows() {
		return filepath.Join(string(p), "Scripts", "python.exe")
	}
	return filepath.Join(string(p), "bin", "python")
}

// Exists reports whether the venv is usable: its interpreter binary exists,
// is a regular file, and (on POSIX) carries an executable bit. Existence of
// the binary is the only integrity check performed.
func (p VenvPath) Exists() bool {
	info, err := os.Stat(p.Interpreter())
	if err != nil || info.IsDir() {
		return false
	}
	if platform.IsWindows() {
		return true
	}
	return info.Mode()&0o111 != 0
}

// Remove deletes the venv directory tree. Removing a venv that does not
// exist is not an error.
func (p VenvPath) Remove() error {
	return os.RemoveAll(string(p))
}
