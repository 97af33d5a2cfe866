package ledger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"arbeitszeit/internal/files"
)

// Ledger is the full ordered sequence of records backed by one flat text
// file, plus the start/stop mutation operations. Records keep the order they
// were appended in; the file is rewritten in full after every mutation.
//
// A single process owns the file at a time; concurrent mutation from other
// processes is not guarded against.
type Ledger struct {
	path     string
	baseline time.Duration
	records  []*Record
}

// Open loads the ledger at path. A missing file yields an empty ledger; the
// first malformed line aborts the whole load with a *ParseError.
func Open(path string, baseline time.Duration) (*Ledger, error) {
	l := &Ledger{path: path, baseline: baseline}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read ledger: %w", err)
	}

	lines := splitLines(string(data))
	records := make([]*Record, 0, len(lines))
	for i, line := range lines {
		r, err := RecordFromText(line)
		if err != nil {
			return &ParseError{Path: l.path, Line: i, Text: line, Err: err}
		}
		records = append(records, r)
	}
	l.records = records
	return nil
}

// Save rewrites the whole file, one record per line.
func (l *Ledger) Save() error {
	lines := make([]string, len(l.records))
	for i, r := range l.records {
		lines[i] = r.Text()
	}
	return files.WriteAtomic(l.path, []byte(strings.Join(lines, "\n")))
}

// Path returns the backing file location.
func (l *Ledger) Path() string { return l.path }

// Baseline returns the expected daily worktime.
func (l *Ledger) Baseline() time.Duration { return l.baseline }

// Records returns the backing sequence in appended order.
func (l *Ledger) Records() []*Record { return l.records }

// Empty reports whether the ledger holds no records.
func (l *Ledger) Empty() bool { return len(l.records) == 0 }

// lastOpen is the whole pending state of the start/stop machine: true when
// the latest record still waits for its end time.
func lastOpen(records []*Record) bool {
	return len(records) > 0 && records[len(records)-1].Open()
}

// Open reports whether a started shift is pending.
func (l *Ledger) Open() bool { return lastOpen(l.records) }

// Last returns the most recent record, or nil for an empty ledger.
func (l *Ledger) Last() *Record {
	if len(l.records) == 0 {
		return nil
	}
	return l.records[len(l.records)-1]
}

// Start records a clock-in and persists. Empty timeText means now. A start
// always appends a fresh open record, even over a still-open one: forgetting
// to stop yesterday must not block starting today.
func (l *Ledger) Start(timeText string) (*Record, error) {
	start, err := resolveClock(timeText)
	if err != nil {
		return nil, err
	}
	r, err := NewRecord(Today(), start, nil)
	if err != nil {
		return nil, err
	}
	l.records = append(l.records, r)
	if err := l.Save(); err != nil {
		return nil, err
	}
	return r, nil
}

// End records a clock-out and persists. Empty timeText means now. It closes
// the pending record when one exists; otherwise it appends an end-only half
// record, so a forgotten start does not block logging the stop.
func (l *Ledger) End(timeText string) (*Record, error) {
	end, err := resolveClock(timeText)
	if err != nil {
		return nil, err
	}

	if !lastOpen(l.records) {
		r, err := NewRecord(Today(), nil, end)
		if err != nil {
			return nil, err
		}
		l.records = append(l.records, r)
		if err := l.Save(); err != nil {
			return nil, err
		}
		return r, nil
	}

	last := l.Last()
	if last.Start != nil && last.Start.After(*end) {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("end %s must not come before start %s", end, last.Start),
		}
	}
	last.End = end
	if err := l.Save(); err != nil {
		return nil, err
	}
	return last, nil
}

// resolveClock turns optional HH:MM text into a concrete clock, defaulting
// to the current time.
func resolveClock(timeText string) (*Clock, error) {
	if timeText == "" {
		now := Now()
		return &now, nil
	}
	return requireClock(timeText)
}

// Days folds the record sequence into per-date groups. Grouping is a stable
// single pass: groups appear in first-encounter order, never sorted, so an
// out-of-order edit of the file shows up as-is.
func (l *Ledger) Days() []*Day {
	var days []*Day
	index := make(map[string]*Day)
	for _, r := range l.records {
		key := r.Day.Format("2006-01-02")
		if d, ok := index[key]; ok {
			d.add(r)
			continue
		}
		d := dayFromRecord(r, l.baseline)
		index[key] = d
		days = append(days, d)
	}
	return days
}

// Weeks folds Days into ISO-week groups with the same first-encounter order.
func (l *Ledger) Weeks() []*Week {
	var weeks []*Week
	index := make(map[WeekKey]*Week)
	for _, d := range l.Days() {
		key := d.Week()
		if w, ok := index[key]; ok {
			w.add(d)
			continue
		}
		w := weekFromDay(d)
		index[key] = w
		weeks = append(weeks, w)
	}
	return weeks
}

// TotalWorktime sums every day's worktime; nil while any day is undefined.
func (l *Ledger) TotalWorktime() *time.Duration {
	var total time.Duration
	for _, d := range l.Days() {
		w := d.Worktime()
		if w == nil {
			return nil
		}
		total += *w
	}
	return &total
}

// TotalDelta sums every day's delta with the same nil propagation.
func (l *Ledger) TotalDelta() *time.Duration {
	var total time.Duration
	for _, d := range l.Days() {
		delta := d.Delta()
		if delta == nil {
			return nil
		}
		total += *delta
	}
	return &total
}

// splitLines splits file content on newlines, tolerating CRLF and trailing
// newlines. Blank lines between records still surface as parse errors.
func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
