package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is safe for concurrent
// usage.
type Logger struct {
	// level is the most verbose level at which the logger emits output.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// output is the underlying line writer. It is shared with subloggers.
	output *log.Logger
}

// NewLogger creates a new root logger that writes lines at or below the
// specified level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: log.New(writer, "", 0),
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		output: l.output,
	}
}

// enabled returns whether or not the logger emits output at the specified
// level.
func (l *Logger) enabled(level Level) bool {
	return l != nil && level <= l.level
}

// write is the internal logging method.
func (l *Logger) write(line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log. There's nothing useful we can do with a write failure.
	l.output.Output(3, line)
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.write(color.YellowString("Warning: %v", err))
	}
}

// Warnf logs formatted information with a warning prefix and yellow color.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.write(color.YellowString("Warning: "+format, v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.write(fmt.Sprintf(format, v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the logger is at debug level or above.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.write(fmt.Sprintf(format, v...))
	}
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only if
// the logger is at trace level.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.write(fmt.Sprintf(format, v...))
	}
}
