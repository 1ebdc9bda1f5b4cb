// Package flags provides flag handling utilities for CLI commands.
//
// This package holds the names of the flags shared by fagen commands and
// helpers for the timing flag.
package flags
