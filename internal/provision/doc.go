// SPDX-License-Identifier: MPL-2.0

// Package provision builds the isolated Python environment the launcher
// consumes.
//
// Provisioning is a one-shot, operator-driven sequence: verify a system
// interpreter and its venv capability, verify the dependency manifest,
// delete and recreate the virtual environment (replacement semantics, never
// an in-place upgrade), upgrade pip, and install the manifest. An optional
// consent-gated step installs the platform GUI toolkit through whichever OS
// package manager is present.
//
// Every prerequisite failure is fatal and reported with remediation text;
// there are no retries. Subprocesses run one at a time through the Runner
// interface, which tests replace with a recording fake.
package provision
