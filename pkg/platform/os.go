// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether the current OS is Windows.
func IsWindows() bool { return runtime.GOOS == Windows }

// IsLinux reports whether the current OS is Linux. Desktop autostart
// entries and system package installation are Linux-only concerns.
func IsLinux() bool { return runtime.GOOS == Linux }
