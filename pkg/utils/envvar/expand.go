// Package envvar provides utilities for working with environment variables.
package envvar

import (
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders.
// Groups: 1 = variable name, 2 = optional default value (after :-).
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// defaultSyntaxMarker separates a variable name from its default value.
const defaultSyntaxMarker = ":-"

// Expand replaces ${VAR_NAME} and ${VAR_NAME:-default} placeholders with their environment variable values.
// If a referenced environment variable is not set:
//   - With default syntax ${VAR:-default}: uses the default value
//   - Without default ${VAR}: uses empty string and logs a warning
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, expandMatch)
}

func expandMatch(match string) string {
	groups := pattern.FindStringSubmatch(match)
	varName := groups[1]

	envValue, exists := os.LookupEnv(varName)
	if exists {
		return envValue
	}

	if strings.Contains(match, defaultSyntaxMarker) {
		return groups[2]
	}

	logrus.WithField("variable", varName).Warn("environment variable not set")

	return ""
}
