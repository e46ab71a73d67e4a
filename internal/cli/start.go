package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ozankasikci/autogoals/internal/session"
)

var startAgentCommand string

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVar(&startAgentCommand, "agent", "", "agent command to spawn (overrides agent.command)")
}

var startCmd = &cobra.Command{
	Use:   "start [path]",
	Short: "Run agent sessions until all goals are completed",
	Long: `Start the session loop for a project (defaults to the current directory).

Each iteration re-reads <path>/goals.yaml, and while any goal is pending or
in flight, spawns the agent command attached to this terminal and waits for
it to exit. A session exiting non-zero is reported and the loop continues;
only a missing or corrupt goals file, or a failure to launch the agent at
all, aborts the run.`,
	Example: `  autogoals start
  autogoals start ~/src/myproject
  autogoals start --agent claude ~/src/myproject`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) == 1 {
		projectPath = args[0]
	}

	cfg := GetConfig()
	if startAgentCommand != "" {
		cfg.Agent.Command = startAgentCommand
	}

	fmt.Println(colorize("AutoGoals Runner", colorCyan))

	driver := session.New(cfg)
	summary, err := driver.Run(context.Background(), projectPath)
	if err != nil {
		return fmt.Errorf("session loop failed: %w", err)
	}

	if summary.Sessions == 0 {
		fmt.Println(colorize("Nothing to do, every goal is already completed.", colorGreen))
	} else {
		fmt.Println(colorize(
			fmt.Sprintf("Done: %d/%d goals completed in %d session(s).",
				summary.Completed, summary.Total, summary.Sessions),
			colorGreen))
	}

	return nil
}
