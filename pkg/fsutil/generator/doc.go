// Package generator provides an interface for generating file content from Go values.
//
// Key functionality:
//   - Generator[T, Options]: Generic interface for content generation
//   - Generate: Transform model into string representation
//
// Subpackages:
//   - component: Icon component renderer backed by a user template
//   - jsonschema: JSON schema of the configuration file
//   - yaml: Generic YAML generator
package generator
