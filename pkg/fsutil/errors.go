package fsutil

import "errors"

// ErrEmptyOutputPath is returned when an output path is empty.
var ErrEmptyOutputPath = errors.New("output path cannot be empty")

// ErrEmptyComponentName is returned when a component file is emitted without a name.
var ErrEmptyComponentName = errors.New("component name cannot be empty")

// ErrWrite is wrapped by every directory creation or file write failure.
var ErrWrite = errors.New("write failed")

const (
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o644
)
