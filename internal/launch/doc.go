// SPDX-License-Identifier: MPL-2.0

// Package launch runs the RipperFox backend as a supervised child process.
//
// The launcher resolves an interpreter through pyenv (venv first, system
// candidates second), spawns exactly one child, blocks until it exits, and
// reports the child's exit status verbatim in a Result. It never mutates the
// filesystem; the virtual environment is consumed read-only.
//
// With Terminal enabled the child runs attached to a pseudo-terminal so
// line-buffered console behavior matches an interactive session.
package launch
