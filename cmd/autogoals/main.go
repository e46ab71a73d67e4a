// Package main is the entry point for the autogoals binary.
// Autogoals drives an external coding agent through repeated sessions
// until every goal in a project's goals.yaml is completed.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ozankasikci/autogoals/internal/cli"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
