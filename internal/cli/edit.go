package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"arbeitszeit/internal/config"
	"arbeitszeit/internal/files"
)

func newEditCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the ledger file in $EDITOR.",
		Long:  "edit hands the ledger file to your editor for manual corrections. The next load validates every line and refuses the whole file on the first bad record.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(manager)
			if err != nil {
				return err
			}
			return runEditor(ctx, cfg.LedgerPath())
		},
	}

	return cmd
}

func runEditor(ctx context.Context, path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	edit := exec.CommandContext(ctx, editor, path)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	if err := edit.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
