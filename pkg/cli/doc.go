// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: The fagen root command and its subcommands
//   - cli/flags: Shared flag names and timing detection
//   - cli/parallel: Parallel task execution with controlled concurrency
//   - cli/ui: User interface components (errorhandler)
package cli
