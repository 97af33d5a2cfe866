package formatter

import (
	"fmt"
	"strings"
	"time"

	"arbeitszeit/internal/ledger"
)

// DayLine renders one day rollup: "Mon 2024-01-15: 08:30 [+00:30]".
func DayLine(d *ledger.Day) string {
	return fmt.Sprintf("%s: %s [%s]",
		StyleFg.Render(ledger.FormatDate(d.Date)),
		worktimeText(d.Worktime()),
		deltaText(d.Delta()),
	)
}

// WeekLine renders one week rollup header: "2024-W03: 40:00 [+00:00]".
func WeekLine(w *ledger.Week) string {
	return fmt.Sprintf("%s: %s [%s]",
		StyleBold.Render(w.Key.String()),
		worktimeText(w.Worktime()),
		deltaText(w.Delta()),
	)
}

// WeekBlock renders a week header with its days indented beneath it.
func WeekBlock(w *ledger.Week) string {
	lines := make([]string, 0, len(w.Days)+1)
	lines = append(lines, WeekLine(w))
	for _, d := range w.Days {
		lines = append(lines, "  "+DayLine(d))
	}
	return strings.Join(lines, "\n")
}

// TotalLine renders the grand total across the whole ledger.
func TotalLine(worktime, delta *time.Duration) string {
	return fmt.Sprintf("%s %s [%s]",
		StyleHeader.Render("Total:"),
		worktimeText(worktime),
		deltaText(delta),
	)
}

func worktimeText(d *time.Duration) string {
	if d == nil {
		return StyleDim.Render(ledger.NoneTime)
	}
	return StyleFg.Render(ledger.FormatDurationText(d))
}

func deltaText(d *time.Duration) string {
	return DeltaStyle(d).Render(ledger.FormatSignedDuration(d))
}
