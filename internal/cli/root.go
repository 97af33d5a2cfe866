package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"arbeitszeit/internal/files"
	"arbeitszeit/internal/ui"
)

// NewRootCommand creates the top-level Cobra command hosting the
// subcommands and the TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arbeitszeit",
		Short: "Track your work time from the terminal.",
		Long:  "arbeitszeit records clock-in/clock-out events in a flat text ledger and reports daily and weekly worked time against your configured baseline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, manager)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newStartCommand(ctx, manager),
		newStopCommand(ctx, manager),
		newReportCommand(ctx, manager),
		newEditCommand(ctx, manager),
		newConfigCommand(ctx, manager),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.Execute()
}

// Main is a helper used by cmd/arbeitszeit/main.go to keep wiring contained
// in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
