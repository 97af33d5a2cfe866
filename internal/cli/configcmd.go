package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"arbeitszeit/internal/config"
	"arbeitszeit/internal/files"
	"arbeitszeit/internal/ledger"
)

func newConfigCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(manager)
			if err != nil {
				return err
			}
			baseline, err := cfg.Baseline()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:   %s\n", cfg.Path())
			fmt.Fprintf(out, "ledger:   %s\n", cfg.LedgerPath())
			fmt.Fprintf(out, "worktime: %s\n", ledger.FormatDurationText(&baseline))
			return nil
		},
	}

	cmd.AddCommand(
		newConfigPathCommand(manager),
		newConfigWorktimeCommand(manager),
		newConfigEditCommand(ctx, manager),
	)

	return cmd
}

func newConfigPathCommand(manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "path <file>",
		Short: "Point the ledger at a different file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(manager)
			if err != nil {
				return err
			}
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := cfg.SetLedgerPath(abs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger path set to %s\n", abs)
			return nil
		},
	}
}

func newConfigWorktimeCommand(manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "worktime <HH:MM>",
		Short: "Set the expected daily worktime baseline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ledger.ParseDurationText(args[0])
			if err != nil {
				return err
			}
			if d == nil {
				return &ledger.ValidationError{Reason: fmt.Sprintf("worktime must be a concrete duration, not %q", ledger.NoneTime)}
			}
			cfg, err := config.Load(manager)
			if err != nil {
				return err
			}
			if err := cfg.SetBaseline(*d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Worktime baseline set to %s\n", ledger.FormatDurationText(d))
			return nil
		},
	}
}

func newConfigEditCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(manager)
			if err != nil {
				return err
			}
			return runEditor(ctx, cfg.Path())
		},
	}
}
