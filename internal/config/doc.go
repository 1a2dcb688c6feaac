// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/ripperfox/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/ripperfox/config.cue on macOS,
// %APPDATA%\ripperfox\config.cue on Windows). The file is validated against an
// embedded CUE schema (config_schema.cue) before being merged over defaults.
//
// The central design point is that every filesystem location the bootstrap
// touches — the virtual environment directory, the dependency manifest, the
// backend entry point — is an explicit resolved path carried in Config, never
// an ambient lookup. Tests point these at temporary directories.
package config
