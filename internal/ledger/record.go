package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Record is one clock-in/clock-out entry for a single calendar day. At least
// one of Start/End is set; when both are set, Start does not come after End.
// An open record (End nil) represents an unfinished shift.
type Record struct {
	Day   time.Time
	Start *Clock
	End   *Clock
}

// NewRecord builds a validated record. A zero day defaults to today.
func NewRecord(day time.Time, start, end *Clock) (*Record, error) {
	if day.IsZero() {
		day = Today()
	}
	if start == nil && end == nil {
		return nil, &ValidationError{Reason: "either start or end must be set"}
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("start %s must not come after end %s", start, end),
		}
	}
	return &Record{Day: day, Start: start, End: end}, nil
}

// RecordFromText reconstructs a record from one ledger line.
func RecordFromText(line string) (*Record, error) {
	if !IsRecordText(line) {
		return nil, &FormatError{Kind: "record", Input: line}
	}
	// Drop the 4-character weekday prefix; the remainder is three
	// single-space separated fields.
	fields := strings.Split(line[4:], " ")
	day, err := ParseDate(fields[0])
	if err != nil {
		return nil, err
	}
	start, err := ParseClock(fields[1])
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(fields[2])
	if err != nil {
		return nil, err
	}
	return NewRecord(day, start, end)
}

// StartedRecord builds an open record for today from HH:MM text. The
// sentinel is rejected: a start event needs a concrete time.
func StartedRecord(timeText string) (*Record, error) {
	start, err := requireClock(timeText)
	if err != nil {
		return nil, err
	}
	return NewRecord(Today(), start, nil)
}

// EndedRecord builds an end-only half record for today from HH:MM text.
func EndedRecord(timeText string) (*Record, error) {
	end, err := requireClock(timeText)
	if err != nil {
		return nil, err
	}
	return NewRecord(Today(), nil, end)
}

func requireClock(timeText string) (*Clock, error) {
	if timeText == NoneTime {
		return nil, &ValidationError{Reason: fmt.Sprintf("a concrete time is required, not %q", NoneTime)}
	}
	if !IsTimeText(timeText) {
		return nil, &ValidationError{Reason: fmt.Sprintf("time string %q is invalid", timeText)}
	}
	return ParseClock(timeText)
}

// Open reports whether the record still waits for its end time.
func (r *Record) Open() bool { return r.End == nil }

// Worktime returns End minus Start, or nil while either side is missing.
func (r *Record) Worktime() *time.Duration {
	if r.Start == nil || r.End == nil {
		return nil
	}
	d := r.End.Sub(*r.Start)
	return &d
}

// Text renders the canonical ledger line, the exact inverse of
// RecordFromText for any valid record.
func (r *Record) Text() string {
	return fmt.Sprintf("%s %s %s", FormatDate(r.Day), FormatClock(r.Start), FormatClock(r.End))
}

func (r *Record) String() string {
	return fmt.Sprintf("%s [%s]", r.Text(), FormatDurationText(r.Worktime()))
}
