// Package session drives the agent-session control loop: re-read the goals
// file, decide whether work remains, run one interactive agent session,
// repeat. The goals file is only ever read here; the agent mutates it.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ozankasikci/autogoals/internal/config"
	"github.com/ozankasikci/autogoals/internal/goals"
	"github.com/ozankasikci/autogoals/internal/logging"
)

// PreflightError reports a precondition failure detected before the first
// session (missing project path, missing goals file).
type PreflightError struct {
	Message string
	Hint    string
}

func (e *PreflightError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Hint)
	}
	return e.Message
}

// Driver orchestrates sequential agent sessions until no pending work
// remains in the goals file.
type Driver struct {
	Config *config.Config
	Logger zerolog.Logger

	// Out receives human-readable progress lines (default: stdout).
	Out io.Writer

	// Exec runs one agent session and is injectable for tests. The default
	// spawns the configured agent command with inherited terminal streams.
	Exec ExecuteFunc
}

// Summary describes a completed run of the loop.
type Summary struct {
	// Sessions is the number of agent sessions launched, failed ones included.
	Sessions int

	// Completed and Total reflect the final read of the goals file.
	Completed int
	Total     int
}

// New creates a Driver with default dependencies.
func New(cfg *config.Config) *Driver {
	return &Driver{
		Config: cfg,
		Logger: logging.Component("session"),
		Out:    os.Stdout,
		Exec:   NewExecutor(cfg.Agent.Command, true),
	}
}

// Run executes the control loop for the project at projectPath. It returns
// normally once no goal is left pending or in flight. Fatal conditions (missing path or
// goals file, unreadable or malformed goals file, agent launch failure)
// abort the run; a session exiting non-zero does not.
//
// There is no iteration cap and no session timeout: the loop is bounded
// only by goals reaching completed status in the file. ctx is consulted
// between sessions, not while one is running.
func (d *Driver) Run(ctx context.Context, projectPath string) (*Summary, error) {
	if d.Config == nil {
		return nil, fmt.Errorf("driver requires config")
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Exec == nil {
		d.Exec = NewExecutor(d.Config.Agent.Command, true)
	}

	if _, err := os.Stat(projectPath); err != nil {
		return nil, &PreflightError{
			Message: fmt.Sprintf("project path does not exist: %s", projectPath),
		}
	}

	goalsPath := filepath.Join(projectPath, d.Config.Goals.File)
	if _, err := os.Stat(goalsPath); err != nil {
		return nil, &PreflightError{
			Message: fmt.Sprintf("no %s found in %s", d.Config.Goals.File, projectPath),
			Hint:    "create one first or run 'autogoals init'",
		}
	}

	fmt.Fprintf(d.Out, "Project: %s\n", projectPath)
	fmt.Fprintf(d.Out, "Found %s\n", d.Config.Goals.File)

	sessions := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The agent may have rewritten the file during the last session, so
		// every iteration loads it fresh.
		file, err := goals.Load(goalsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal status: %w", err)
		}

		counts := file.Counts()
		fmt.Fprintf(d.Out, "Goal status: %d/%d completed, %d in progress, %d pending\n",
			counts.Completed, counts.Total(), counts.Active, counts.Pending)

		if !file.HasPendingWork() {
			fmt.Fprintf(d.Out, "No pending work: %d/%d goals completed after %d session(s)\n",
				counts.Completed, counts.Total(), sessions)
			return &Summary{
				Sessions:  sessions,
				Completed: counts.Completed,
				Total:     counts.Total(),
			}, nil
		}

		sessions++
		runID := uuid.NewString()
		d.Logger.Info().
			Str("run_id", runID).
			Int("session", sessions).
			Str("command", d.Config.Agent.Command).
			Msg("session start")
		fmt.Fprintf(d.Out, "Starting agent session #%d (%s)...\n", sessions, d.Config.Agent.Command)

		exitCode, err := d.Exec(ctx, projectPath)
		if err != nil {
			d.Logger.Error().Str("run_id", runID).Err(err).Msg("session launch failed")
			return nil, fmt.Errorf("failed to run agent %q: %w", d.Config.Agent.Command, err)
		}

		if exitCode == 0 {
			d.Logger.Info().Str("run_id", runID).Int("session", sessions).Msg("session completed")
			fmt.Fprintf(d.Out, "Session #%d completed\n", sessions)
		} else {
			// A failed session is not a failed run: the agent may have made
			// partial progress, so the next iteration re-reads and retries.
			d.Logger.Warn().
				Str("run_id", runID).
				Int("session", sessions).
				Int("exit_code", exitCode).
				Msg("session exited non-zero")
			fmt.Fprintf(d.Out, "Session #%d exited with code %d, checking for remaining work\n", sessions, exitCode)
		}
	}
}
