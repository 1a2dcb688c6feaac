// SPDX-License-Identifier: MPL-2.0

// Package pyenv models the Python interpreter environment the bootstrap
// manages: the virtual environment directory (the Environment Descriptor)
// and the rules for resolving which interpreter to run with.
//
// Resolution order is always: the venv interpreter when present and
// executable, then the first discoverable system candidate. The venv is
// assumed self-consistent when its interpreter binary exists; no deeper
// integrity check is performed.
package pyenv
