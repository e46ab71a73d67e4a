package session

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// ExecuteFunc runs one agent session in workDir and reports its exit code.
// err is reserved for launch and wait failures; a child that ran and exited
// non-zero returns (code, nil). The exit code is -1 when the child was
// terminated without one.
type ExecuteFunc func(ctx context.Context, workDir string) (int, error)

// NewExecutor returns an ExecuteFunc spawning command (resolved via PATH,
// no arguments) in workDir. With inheritStdio the child is attached to this
// process's stdin/stdout/stderr, so an interactive agent behaves exactly as
// if the user had launched it directly; the flag exists so tests can swap
// in captured streams.
func NewExecutor(command string, inheritStdio bool) ExecuteFunc {
	// ctx is deliberately not wired into the command: a running session is
	// never cancelled by the driver, only by signals on the process group.
	return func(_ context.Context, workDir string) (int, error) {
		cmd := exec.Command(command)
		cmd.Dir = workDir
		if inheritStdio {
			cmd.Stdin = os.Stdin
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
		}

		err := cmd.Run()
		if err == nil {
			return 0, nil
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
}
