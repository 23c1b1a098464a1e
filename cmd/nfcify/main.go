package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/nfcify/cmd"

	"github.com/mutagen-io/nfcify/pkg/ignore"
	"github.com/mutagen-io/nfcify/pkg/logging"
	"github.com/mutagen-io/nfcify/pkg/nfcify"
)

// rootMain is the entry point for the root command.
func rootMain(_ *cobra.Command, arguments []string) error {
	// If legal information was requested, then print it and bail.
	if rootConfiguration.legal {
		fmt.Print(nfcify.LegalNotice)
		return nil
	}

	// Validate ignore specifications.
	if err := validateIgnores(rootConfiguration.ignores); err != nil {
		return err
	}

	// Create the ignorer.
	ignorer, err := ignore.NewIgnorer(rootConfiguration.ignores)
	if err != nil {
		return errors.Wrap(err, "unable to create ignorer")
	}

	// Create the logger.
	logger := logging.NewLogger(rootConfiguration.logLevel, color.Error)

	// Normalize the roots.
	return normalizeRoots(arguments, ignorer, rootConfiguration.force, logger)
}

// validateIgnores validates ignore patterns provided on the command line.
func validateIgnores(patterns []string) error {
	for _, pattern := range patterns {
		if err := ignore.EnsurePatternValid(pattern); err != nil {
			return errors.Wrapf(err, "invalid ignore pattern (%s)", pattern)
		}
	}
	return nil
}

// requireRoots validates positional arguments. At least one root is required
// unless legal information was requested.
func requireRoots(command *cobra.Command, arguments []string) error {
	if rootConfiguration.legal {
		return nil
	}
	return cobra.MinimumNArgs(1)(command, arguments)
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "nfcify [flags] <path>...",
	Version:      nfcify.Version,
	Short:        "Rename the contents of directory trees to Unicode NFC",
	Args:         requireRoots,
	Run:          cmd.Mainify(rootMain),
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// legal indicates whether or not to show legal information and exit.
	legal bool
	// logLevel is the log level.
	logLevel logging.Level
	// ignores are the ignore patterns.
	ignores []string
	// force indicates whether or not to process roots residing on filesystems
	// that decompose Unicode names.
	force bool
}

func init() {
	// Disable Cobra's command sorting behavior.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. This tool is only meant to be run from
	// an existing shell.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("nfcify version {{ .Version }}\n")

	// Hide the completion command.
	rootCommand.CompletionOptions.HiddenDefaultCmd = true

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Set the default log level.
	rootConfiguration.logLevel = logging.LevelWarn

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.VarP(&rootConfiguration.logLevel, "log-level", "l", "Set the log level (disabled|error|warn|info|debug|trace)")
	flags.StringArrayVarP(&rootConfiguration.ignores, "ignore", "i", nil, "Specify an ignore pattern (may be repeated)")
	flags.BoolVar(&rootConfiguration.force, "force", false, "Process roots on filesystems that decompose Unicode names")
	flags.BoolVar(&rootConfiguration.legal, "legal", false, "Show legal information")
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
