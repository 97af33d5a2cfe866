package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arbeitszeit/internal/cli/formatter"
	"arbeitszeit/internal/files"
)

func newReportCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var daysFlag bool

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"log"},
		Short:   "Show worked time and delta per week, with a grand total.",
		Long:    "report groups the ledger into ISO weeks with their days and prints worked time plus the signed delta against the configured baseline. Groups keep the order they first appear in the file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ldg, err := openLedger(manager)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ldg.Empty() {
				fmt.Fprintln(out, "No records yet. Run \"arbeitszeit start\" to clock in.")
				return nil
			}

			if daysFlag {
				for _, day := range ldg.Days() {
					fmt.Fprintln(out, formatter.DayLine(day))
				}
			} else {
				for _, week := range ldg.Weeks() {
					fmt.Fprintln(out, formatter.WeekBlock(week))
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.TotalLine(ldg.TotalWorktime(), ldg.TotalDelta()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&daysFlag, "days", false, "Report per day instead of per week")

	return cmd
}
