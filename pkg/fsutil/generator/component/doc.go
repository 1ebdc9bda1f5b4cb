// Package component renders icon wrapper components from a single template.
//
// The template is parsed once with text/template and shared by all callers.
// Placeholders can be written bare ({{component_name}}) or as fields
// ({{.component_name}}), and the strcase helpers kebab, snake, camel and
// lowerCamel are available for reshaping names.
package component
