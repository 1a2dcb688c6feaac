// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating-system identification helpers
// shared by the config, pyenv and autostart packages.
package platform
