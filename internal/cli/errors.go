package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ErrInvalidNumber is returned by validate when the number fails its rules.
// The result has already been printed.
var ErrInvalidNumber = errors.New("number is not valid")

// ErrUnsupported is returned when the country/type pair is not supported.
var ErrUnsupported = errors.New("unsupported country/type combination")

// FormatError formats an error with the "natid: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("natid: %s\n", err.Error())
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the process exit code.
func RunCLI(cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidNumber):
		return 1
	default:
		fmt.Fprint(stderr, FormatError(err))
		return 1
	}
}
