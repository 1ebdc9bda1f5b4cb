// Package apis provides API type definitions for fagen configuration.
//
// This package contains versioned API types:
//
//   - icon: Icon configuration types, path resolution and render contexts
//
// The API types decode from JSON, YAML and TOML configuration files and
// serialize back to YAML for scaffolding.
package apis
