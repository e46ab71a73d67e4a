// Package cli provides the init command for project scaffolding.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing goals file")
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a starter goals.yaml in a project",
	Long: `Create a starter goals file in <path> (defaults to the current directory).

Edit the generated file to describe your goals, then run 'autogoals start'.
The agent updates each goal's status as it works; autogoals itself never
writes the file after scaffolding it.`,
	Example: `  autogoals init
  autogoals init ~/src/myproject`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitGoals,
}

func runInitGoals(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) == 1 {
		projectPath = args[0]
	}

	if _, err := os.Stat(projectPath); err != nil {
		return fmt.Errorf("project path does not exist: %s", projectPath)
	}

	goalsPath := filepath.Join(projectPath, GetConfig().Goals.File)
	created, err := writeFileIfMissing(goalsPath, []byte(starterGoalsFile), initForce)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("%s already exists (use --force to overwrite)", goalsPath)
	}

	fmt.Printf("Created %s\n", goalsPath)
	fmt.Println("Edit it to describe your goals, then run 'autogoals start'.")
	return nil
}

func writeFileIfMissing(path string, data []byte, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

const starterGoalsFile = `# Goals tracked by autogoals. The agent moves each goal through
# not_started -> pending -> ready_for_execution -> in_progress ->
# ready_for_verification -> completed. Only goals that have reached
# pending (or beyond) keep the session loop running.

goals:
  - id: example-goal
    description: Describe the first thing the agent should accomplish
    status: pending
    plan: |
      Optional free-text plan. The session loop ignores it; it exists for
      you and the agent.
`
