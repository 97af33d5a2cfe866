package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Day groups all records sharing one calendar date and measures them against
// the configured baseline. Days are transient views rebuilt per report.
type Day struct {
	Date     time.Time
	Baseline time.Duration
	Records  []*Record
}

func dayFromRecord(r *Record, baseline time.Duration) *Day {
	return &Day{Date: r.Day, Baseline: baseline, Records: []*Record{r}}
}

func (d *Day) add(r *Record) {
	if !r.Day.Equal(d.Date) {
		panic("ledger: record grouped into the wrong day")
	}
	d.Records = append(d.Records, r)
}

// Worktime sums the member records, or returns nil while any record is
// still open.
func (d *Day) Worktime() *time.Duration {
	var total time.Duration
	for _, r := range d.Records {
		w := r.Worktime()
		if w == nil {
			return nil
		}
		total += *w
	}
	return &total
}

// Delta is worktime minus baseline; nil propagates from Worktime.
func (d *Day) Delta() *time.Duration {
	w := d.Worktime()
	if w == nil {
		return nil
	}
	delta := *w - d.Baseline
	return &delta
}

// Week returns the ISO week this day belongs to.
func (d *Day) Week() WeekKey {
	year, week := d.Date.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

func (d *Day) String() string {
	return fmt.Sprintf("%s: %s [%s]",
		FormatDate(d.Date), FormatDurationText(d.Worktime()), FormatSignedDuration(d.Delta()))
}

// WeekKey identifies an ISO 8601 (year, week-number) pair.
type WeekKey struct {
	Year int
	Week int
}

func (k WeekKey) String() string { return fmt.Sprintf("%04d-W%02d", k.Year, k.Week) }

// Week groups the days falling into one ISO week.
type Week struct {
	Key  WeekKey
	Days []*Day
}

func weekFromDay(d *Day) *Week {
	return &Week{Key: d.Week(), Days: []*Day{d}}
}

func (w *Week) add(d *Day) {
	if d.Week() != w.Key {
		panic("ledger: day grouped into the wrong week")
	}
	w.Days = append(w.Days, d)
}

// Worktime sums the member days; any undefined day makes the week undefined.
func (w *Week) Worktime() *time.Duration {
	var total time.Duration
	for _, d := range w.Days {
		wt := d.Worktime()
		if wt == nil {
			return nil
		}
		total += *wt
	}
	return &total
}

// Delta sums the member day deltas with the same nil propagation.
func (w *Week) Delta() *time.Duration {
	var total time.Duration
	for _, d := range w.Days {
		delta := d.Delta()
		if delta == nil {
			return nil
		}
		total += *delta
	}
	return &total
}

func (w *Week) String() string {
	lines := make([]string, 0, len(w.Days)+1)
	lines = append(lines, fmt.Sprintf("%s: %s [%s]",
		w.Key, FormatDurationText(w.Worktime()), FormatSignedDuration(w.Delta())))
	for _, d := range w.Days {
		lines = append(lines, "  "+d.String())
	}
	return strings.Join(lines, "\n")
}
