package component

import _ "embed"

// DefaultTemplate is the React component template written by `fagen init`.
//
//go:embed assets/icon_template.tsx
var DefaultTemplate string
