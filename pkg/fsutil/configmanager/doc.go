// Package configmanager provides configuration loading for fagen.
//
// Key functionality:
//   - ConfigManager interface for generic configuration loading
//   - Sentinel errors separating read failures from parse failures
//
// Subpackages:
//   - icons: Loads icon configuration files with viper
package configmanager
