package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arbeitszeit/internal/files"
)

func newStartCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start [HH:MM]",
		Short: "Clock in, starting a new shift.",
		Long:  "start appends a new open record. Without an argument the current time is used. Starting over a still-open record is allowed and leaves two entries.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ldg, err := openLedger(manager)
			if err != nil {
				return err
			}
			record, err := ldg.Start(timeArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s\n", record.Text())
			return nil
		},
	}

	return cmd
}

func newStopCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stop [HH:MM]",
		Aliases: []string{"end"},
		Short:   "Clock out, closing the pending shift.",
		Long:    "stop closes the last open record, or appends an end-only record when nothing is pending. Without an argument the current time is used.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ldg, err := openLedger(manager)
			if err != nil {
				return err
			}
			record, err := ldg.End(timeArg(args))
			if err != nil {
				return err
			}
			if record.Start == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped without a matching start: %s\n", record.Text())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s\n", record)
			return nil
		},
	}

	return cmd
}
