// Package cmd provides the command-line interface for fagen.
//
// The root command generates icon components from a configuration file.
// The init subcommand scaffolds a sample configuration and template, and the
// schema subcommand prints the JSON schema of the configuration file.
package cmd
