package cmd

import (
	"os"

	"github.com/fatih/color"
)

// Error prints an error message to standard error, in red if standard error is
// a terminal.
func Error(err error) {
	color.New(color.FgRed).Fprintln(color.Error, "Error:", err)
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
