package icons

import "errors"

// ErrMissingField is returned when a required configuration field is absent or empty.
var ErrMissingField = errors.New("missing required field")

// ErrMixedSchema is returned when explicit and derived icon objects are combined in one file.
var ErrMixedSchema = errors.New("explicit and derived icon schemas cannot be mixed")

// ErrUnexpectedSchema is returned when a file uses a schema other than the one the manager requires.
var ErrUnexpectedSchema = errors.New("unexpected icon schema")
