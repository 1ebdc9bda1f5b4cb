package component

import "errors"

// ErrTemplateLoad is returned when the template cannot be read or parsed.
var ErrTemplateLoad = errors.New("failed to load template")

// ErrTemplateRender is returned when the template fails to render for an icon.
var ErrTemplateRender = errors.New("failed to render template")

// errMissingPlaceholder is returned when a placeholder has no value in the render context.
var errMissingPlaceholder = errors.New("missing placeholder value")
