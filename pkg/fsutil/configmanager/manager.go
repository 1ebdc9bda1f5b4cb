package configmanager

import "errors"

// ErrConfigRead is returned when a configuration file is missing or unreadable.
var ErrConfigRead = errors.New("failed to read the config file")

// ErrConfigParse is returned when a configuration file is malformed or invalid.
var ErrConfigParse = errors.New("failed to parse the config file")

// ConfigManager loads configuration of type T from a file.
type ConfigManager[T any] interface {
	// Load reads and parses the configuration file at path.
	Load(path string) (*T, error)
}
