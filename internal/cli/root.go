package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the person CLI.
//
// Invoked without a subcommand it behaves like "show".
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	showOpts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:           "person",
		Short:         "Print a person's name and age",
		Long:          "Build a person from flags or a YAML file and print its name and age through the read-only accessors.",
		SilenceUsage:  true,
		SilenceErrors: true, // Commands write their own formatted errors
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				message := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				formatter := newFormatter(&RootOptions{Format: "text"}, cmd)
				return reportError(formatter, ErrCodeInvalidFlag, message, nil, NewExitError(ExitCommandError, message))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, showOpts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	addShowFlags(cmd, showOpts)

	// Flag parse failures are command errors, not generic failures
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return reportError(newFormatter(opts, c), ErrCodeInvalidFlag, err.Error(), nil,
			WrapExitError(ExitCommandError, "invalid flags", err))
	})

	// Add subcommands
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// Execute runs the command tree and reports errors cobra raises on its own,
// such as an unknown subcommand or unexpected arguments, as E002 command
// errors. Errors already carrying an exit code were reported by the command.
// An unknown subcommand is detected before flags are parsed, so it is always
// reported as text.
func Execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	opts := &RootOptions{Format: "text"}
	if f := root.PersistentFlags().Lookup("format"); f != nil && f.Value.String() == "json" {
		opts.Format = "json"
	}
	return reportError(newFormatter(opts, cmd), ErrCodeInvalidFlag, err.Error(), nil,
		WrapExitError(ExitCommandError, "invalid command", err))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
