// Package utils provides small helpers shared across fagen packages.
//
// Subpackages:
//   - envvar: ${VAR} and ${VAR:-default} expansion for configuration values
package utils
