package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ozankasikci/autogoals/internal/goals"
)

var statusWatch bool

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "re-render whenever the goals file changes")
}

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Show goal status for a project",
	Long: `Print every goal in <path>/goals.yaml with its lifecycle state, plus
aggregate counts, without launching any agent session.`,
	Example: `  autogoals status
  autogoals status --watch ~/src/myproject`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryStyle   = lipgloss.NewStyle().Faint(true)
)

func runStatus(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) == 1 {
		projectPath = args[0]
	}

	goalsPath := filepath.Join(projectPath, GetConfig().Goals.File)

	if err := renderStatus(goalsPath); err != nil {
		return err
	}
	if !statusWatch {
		return nil
	}

	cleanup, err := goals.Watch(goalsPath, func() {
		fmt.Println()
		if err := renderStatus(goalsPath); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", goalsPath, err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

func renderStatus(goalsPath string) error {
	file, err := goals.Load(goalsPath)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(goalsPath))

	for _, g := range file.Goals {
		marker := string(g.Status)
		if marker == "" {
			marker = "unknown"
		}
		line := fmt.Sprintf("  [%s] %s", marker, g.ID)
		if g.Description != "" {
			line += " - " + g.Description
		}
		fmt.Println(styleFor(g.Status).Render(line))
	}

	counts := file.Counts()
	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"%d/%d completed, %d in progress, %d pending",
		counts.Completed, counts.Total(), counts.Active, counts.Pending)))
	return nil
}

func styleFor(s goals.Status) lipgloss.Style {
	switch s.Classify() {
	case goals.ClassCompleted:
		return completedStyle
	case goals.ClassActive:
		return activeStyle
	default:
		return pendingStyle
	}
}
