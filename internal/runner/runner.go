// Package runner runs external commands with the caller's standard streams
// attached. Callers depend on the Runner interface so tests can stub it.
package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner starts a command and waits for it to exit.
type Runner interface {
	// Run returns the process exit code. The error is non-nil only when the
	// process could not be started or waited on (binary missing, ctx
	// canceled before start, I/O failure); a non-zero exit is not an error.
	Run(ctx context.Context, dir, name string, args []string) (int, error)
}

// Exec is the production Runner backed by os/exec.
type Exec struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Exec runner that inherits the process's standard streams.
func New() *Exec {
	return &Exec{}
}

// Run executes name with args in dir.
func (e *Exec) Run(ctx context.Context, dir, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
