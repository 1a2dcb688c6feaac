// SPDX-License-Identifier: MPL-2.0

// Package tui provides the interactive terminal prompts used by the CLI.
package tui
