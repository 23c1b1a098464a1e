package logging

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Level represents a log level. Its value hierarchy is designed to be ordered
// and comparable by value.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only fatal errors are reported. These are
	// printed by the command itself, so the logger emits nothing.
	LevelError
	// LevelWarn indicates that non-fatal errors are logged.
	LevelWarn
	// LevelInfo indicates that per-root summaries are logged (in addition to
	// all errors).
	LevelInfo
	// LevelDebug indicates that individual renames and merges are logged (in
	// addition to summaries and all errors).
	LevelDebug
	// LevelTrace indicates that every skipped entry is logged (in addition to
	// all other execution information and all errors).
	LevelTrace
)

// Level is bound directly to command line flags.
var _ pflag.Value = (*Level)(nil)

// NameToLevel converts a string-based representation of a log level to the
// appropriate Level value. It returns a boolean indicating whether or not the
// conversion was valid. If the name is invalid, LevelDisabled is returned.
func NameToLevel(name string) (Level, bool) {
	switch name {
	case "disabled":
		return LevelDisabled, true
	case "error":
		return LevelError, true
	case "warn":
		return LevelWarn, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	case "trace":
		return LevelTrace, true
	default:
		return LevelDisabled, false
	}
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	switch l {
	case LevelDisabled:
		return "disabled"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Set implements pflag.Value.Set.
func (l *Level) Set(name string) error {
	level, ok := NameToLevel(name)
	if !ok {
		return errors.Errorf("invalid log level: %s", name)
	}
	*l = level
	return nil
}

// Type implements pflag.Value.Type.
func (l *Level) Type() string {
	return "level"
}
