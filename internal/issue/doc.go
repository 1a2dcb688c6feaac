// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for the bootstrap CLI.
//
// Two complementary mechanisms live here:
//
//   - ActionableError: a structured error carrying the failed operation, the
//     resource involved, and remediation suggestions. Built via ErrorContext.
//   - The issue catalog: markdown help texts for the known failure classes
//     (missing interpreter, missing venv capability, missing manifest, ...)
//     rendered to the terminal with glamour.
//
// Every fatal path in the provisioner and launcher surfaces one of these so
// the operator always gets remediation text alongside a non-zero exit code.
package issue
