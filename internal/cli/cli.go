// Package cli wires the Lazy K interpreter to a cobra command: a single
// positional source file, the --stack-size/-s flag, and the error
// diagnostics of the language's external interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vic/lazyk/internal/driver"
	"github.com/vic/lazyk/internal/lazyparse"
)

var errColor = color.New(color.FgRed)

// Fail prints "error: <msg>" to stderr, colorized the way the rest of
// the pack's CLI diagnostics are, and exits with status 1.
func Fail(format string, args ...any) {
	errColor.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// NewRootCommand builds the lazyk root command.
func NewRootCommand() *cobra.Command {
	var stackSize int

	cmd := &cobra.Command{
		Use:           "lazyk <file>",
		Short:         "Run a Lazy K program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], stackSize)
		},
	}

	cmd.Flags().IntVarP(&stackSize, "stack-size", "s", 0,
		"maximum goroutine stack size in bytes for deep reduction spines (0 = runtime default)")

	return cmd
}

func run(path string, stackSize int) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := lazyparse.Parse(string(source))
	if err != nil {
		Fail("%s", err)
	}

	withStackSize(stackSize, func() {
		exitCode, runErr := driver.Run(prog, os.Stdin, os.Stdout)
		if runErr != nil {
			if runErr == driver.ErrNonNumeralOutput {
				Fail("%s", runErr)
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
			os.Exit(1)
		}
		os.Exit(exitCode)
	})

	return nil
}
