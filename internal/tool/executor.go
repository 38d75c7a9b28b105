package tool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Result holds the outcome of a single tool invocation. Err is set only when
// the process could not be run at all (binary missing, not executable);
// a process that ran and failed reports a non-zero ExitCode instead.
type Result struct {
	ExitCode int
	Stderr   string
	Err      error
}

// Runner executes one command and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// ExecRunner runs commands as child processes. Stderr is captured for
// [Settle] and also passed through to Passthrough (os.Stderr when nil), so
// tool diagnostics reach the terminal as they would from a shell.
type ExecRunner struct {
	Passthrough io.Writer
}

// Run starts cmd and waits for it. There is no timeout: a hung tool blocks
// until ctx is cancelled.
func (r ExecRunner) Run(ctx context.Context, cmd Command) Result {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Stdout != nil {
		c.Stdout = cmd.Stdout
	}

	pass := r.Passthrough
	if pass == nil {
		pass = os.Stderr
	}
	var stderrBuf bytes.Buffer
	c.Stderr = io.MultiWriter(&stderrBuf, pass)

	err := c.Run()
	res := Result{Stderr: stderrBuf.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode() // -1 when killed by a signal
	default:
		res.ExitCode = -1
		res.Err = err
	}
	return res
}
