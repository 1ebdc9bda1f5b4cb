package scaffolder

import "errors"

// Scaffolding errors.
var (
	// ErrConfigGeneration wraps failures when creating the sample configuration file.
	ErrConfigGeneration = errors.New("failed to generate fagen configuration")

	// ErrTemplateGeneration wraps failures when creating the component template.
	ErrTemplateGeneration = errors.New("failed to generate component template")
)
