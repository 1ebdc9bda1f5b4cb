// Package fsutil provides utilities for filesystem operations.
//
// All operations take an afero.Fs so callers can target the OS filesystem in
// production and an in-memory filesystem in tests.
//
// Key functionality:
//   - Component output: EmitFile, EnsureDir
//   - File writing: TryWriteFile
//   - Path operations: ExpandHomePath
//
// Subpackages:
//   - configmanager: Configuration loading
//   - generator: Template rendering
//   - marshaller: Serialization
//   - scaffolder: Project scaffolding for `fagen init`
package fsutil
