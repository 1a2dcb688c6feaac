// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides helpers for turning CUE evaluation errors into
// user-readable messages. The config package validates its file against an
// embedded CUE schema; the raw errors CUE produces carry structured paths
// that this package flattens into JSON-path notation.
package cueutil
