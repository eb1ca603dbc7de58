package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/shoplist/internal/ui"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0 // success
	ExitFailure = 1 // storage or UI failure
	ExitUsage   = 2 // bad arguments or unknown item
)

// ExitError carries the exit code a command failed with.
type ExitError struct {
	Code    int
	Message string
	Err     error
	// Hint is printed muted below the error line.
	Hint string
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(msg string) *ExitError {
	return &ExitError{Code: ExitUsage, Message: msg}
}

func failure(msg string, err error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: msg, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	// cobra argument and flag errors
	return ExitUsage
}

// Execute runs the command line in args and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	theme := ui.ThemeByName(opts.themeName())
	ui.Fail(stderr, theme, err.Error())
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Hint != "" {
		ui.Hint(stderr, theme, exitErr.Hint)
	}
	return ExitCode(err)
}
