package v1alpha1

import "errors"

// ErrInvalidStyle is returned when an invalid icon style is specified.
var ErrInvalidStyle = errors.New("invalid icon style")

// ErrInvalidTier is returned when an invalid icon type (license tier) is specified.
var ErrInvalidTier = errors.New("invalid icon type")

// ErrInvalidSchema is returned when an unknown icon schema is selected.
var ErrInvalidSchema = errors.New("invalid icon schema")
