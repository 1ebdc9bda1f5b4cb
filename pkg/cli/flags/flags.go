package flags

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// Flag names shared by fagen commands.
const (
	ConfigFlagName      = "config"
	TemplateFlagName    = "template"
	ExtensionFlagName   = "extension"
	ConcurrencyFlagName = "concurrency"
	LogLevelFlagName    = "log-level"
	SchemaFlagName      = "schema"
	ForceFlagName       = "force"
	OutputFlagName      = "output"
	// TimingFlagName enables elapsed time output after a command succeeds.
	TimingFlagName = "timing"
)

var (
	// ErrNilCommand is returned when a flag is looked up on a nil command.
	ErrNilCommand = errors.New("command is nil")
	// ErrFlagNotFound is returned when neither the command nor its parents define a flag.
	ErrFlagNotFound = errors.New("flag not found")
)

// IsTimingEnabled reports whether --timing is set on cmd or inherited from a parent.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	flag := cmd.Flag(TimingFlagName)
	if flag == nil {
		return false, fmt.Errorf("%w: %s", ErrFlagNotFound, TimingFlagName)
	}

	enabled, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		return false, fmt.Errorf("parse %s flag: %w", TimingFlagName, err)
	}

	return enabled, nil
}

// MaybeElapsed returns the time since start when timing is enabled for cmd, and zero otherwise.
func MaybeElapsed(cmd *cobra.Command, start time.Time) time.Duration {
	if start.IsZero() {
		return 0
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return 0
	}

	return time.Since(start)
}
