package cmd

import (
	"github.com/spf13/cobra"
)

// Mainify wraps an entry point that returns an error and generates a standard
// Cobra entry point. This allows the entry point to rely on defer-based cleanup,
// which wouldn't occur if it terminated the process itself. Any error is
// printed and the process exits with an error code.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}
