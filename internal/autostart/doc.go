// SPDX-License-Identifier: MPL-2.0

// Package autostart manages the XDG autostart desktop entry that launches
// the tray application on login.
package autostart
