// Package svc provides service layer components for fagen.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the filesystem and template packages.
//
// Subpackages:
//   - iconbatch: Concurrent generation of one component per configured icon
package svc
