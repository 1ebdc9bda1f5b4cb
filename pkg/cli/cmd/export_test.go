package cmd

// NewRootCmdWithFs exposes newRootCmd so tests can run commands against an in-memory filesystem.
//
//nolint:gochecknoglobals // test export
var NewRootCmdWithFs = newRootCmd
