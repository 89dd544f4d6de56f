// Package editor launches the user's text editor on a file and waits for it.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrLaunchFailed is returned when the editor program cannot be started,
	// typically because it is not installed or not in PATH.
	ErrLaunchFailed = errors.New("failed to launch editor")

	// ErrNonZeroExit is returned when the editor exits with a non-zero
	// status. Use ExitCode to recover the status.
	ErrNonZeroExit = errors.New("editor exited with non-zero status")
)

// DefaultCommand is used when no editor is configured.
const DefaultCommand = "nano"

// Editor is an external editor invocation. The file to edit is passed as the
// last argument.
type Editor struct {
	Command string
	Args    []string

	// Stdin, Stdout and Stderr default to the process's own streams so
	// terminal editors work.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Parse builds an Editor from a command line such as "code --wait".
// Words are split on whitespace; quoting is not interpreted.
// An empty command line selects DefaultCommand.
func Parse(cmdline string) *Editor {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return &Editor{Command: DefaultCommand}
	}
	return &Editor{Command: fields[0], Args: fields[1:]}
}

// String returns the command line without the file argument.
func (e *Editor) String() string {
	return strings.Join(append([]string{e.Command}, e.Args...), " ")
}

// Edit opens path in the editor and blocks until the editor exits.
func (e *Editor) Edit(ctx context.Context, path string) error {
	args := append(append([]string{}, e.Args...), path)
	cmd := exec.CommandContext(ctx, e.Command, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if e.Stdin != nil {
		cmd.Stdin = e.Stdin
	}
	if e.Stdout != nil {
		cmd.Stdout = e.Stdout
	}
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrLaunchFailed, e.Command, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: e.Command, Code: exitErr.ExitCode(), err: exitErr}
		}
		return fmt.Errorf("%w '%s': %w", ErrLaunchFailed, e.Command, err)
	}

	return nil
}

// ExitError reports a non-zero editor exit. It matches ErrNonZeroExit with
// errors.Is.
type ExitError struct {
	Command string
	Code    int
	err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor '%s' exited with status %d", e.Command, e.Code)
}

func (e *ExitError) Is(target error) bool {
	return target == ErrNonZeroExit
}

func (e *ExitError) Unwrap() error {
	return e.err
}

// ExitCode returns the editor's exit status carried by err, 0 for nil, or
// -1 if err is not an exit error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return -1
}
