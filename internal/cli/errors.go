// Package cli provides structured error output helpers.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ozankasikci/autogoals/internal/session"
)

// ExitError carries an exit code and whether output was already printed.
type ExitError struct {
	Code    int
	Err     error
	Printed bool
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func handleCLIError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Printed {
			return exitErr
		}
		if exitErr.Err != nil {
			err = exitErr.Err
		}
	}

	exitCode := 1
	if exitErr != nil && exitErr.Code != 0 {
		exitCode = exitErr.Code
	}

	// Preflight failures (missing path, missing goals file) exit 2 and get
	// their remediation hint on its own line.
	var preflight *session.PreflightError
	if errors.As(err, &preflight) {
		exitCode = 2
		fmt.Fprintln(os.Stderr, preflight.Message)
		if preflight.Hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", preflight.Hint)
		}
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	return &ExitError{
		Code:    exitCode,
		Err:     err,
		Printed: true,
	}
}
