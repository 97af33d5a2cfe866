package ledger

import (
	"fmt"
	"regexp"
	"time"
)

// NoneTime is the on-disk sentinel for "no time". It exists only at the text
// boundary; everywhere else absence is a nil *Clock or nil *time.Duration.
const NoneTime = "--:--"

const datePattern = "2006-01-02"

var (
	timeRegexp   = regexp.MustCompile(`^([0-9]{2}:[0-9]{2}|` + NoneTime + `)$`)
	dateRegexp   = regexp.MustCompile(`^[A-Za-z]{3} [0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	recordRegexp = regexp.MustCompile(`^[A-Za-z]{3} [0-9]{4}-[0-9]{2}-[0-9]{2} ([0-9]{2}:[0-9]{2}|` + NoneTime + `) ([0-9]{2}:[0-9]{2}|` + NoneTime + `)$`)
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// NewClock returns a Clock for the given hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

// ClockOf truncates t to its wall-clock hour and minute.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// After reports whether c is strictly later in the day than o.
func (c Clock) After(o Clock) bool { return c.Minutes() > o.Minutes() }

// Sub returns the duration from o to c within the same day.
func (c Clock) Sub(o Clock) time.Duration {
	return time.Duration(c.Minutes()-o.Minutes()) * time.Minute
}

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// IsTimeText reports whether s is a zero-padded 24-hour HH:MM or the
// "no time" sentinel.
func IsTimeText(s string) bool { return timeRegexp.MatchString(s) }

// IsDateText reports whether s is a 3-letter weekday prefix followed by a
// YYYY-MM-DD date.
func IsDateText(s string) bool { return dateRegexp.MatchString(s) }

// IsRecordText reports whether s matches one full ledger line:
// weekday-prefixed date plus two time fields, single-space separated.
func IsRecordText(s string) bool { return recordRegexp.MatchString(s) }

// ParseClock converts HH:MM text to a Clock. The sentinel yields (nil, nil).
func ParseClock(s string) (*Clock, error) {
	if s == NoneTime {
		return nil, nil
	}
	if !timeRegexp.MatchString(s) {
		return nil, &FormatError{Kind: "time", Input: s}
	}
	hour, minute := twoDigits(s[0:2]), twoDigits(s[3:5])
	if hour > 23 || minute > 59 {
		return nil, &FormatError{Kind: "time", Input: s}
	}
	c := NewClock(hour, minute)
	return &c, nil
}

// FormatClock renders a Clock as HH:MM, or the sentinel for nil.
func FormatClock(c *Clock) string {
	if c == nil {
		return NoneTime
	}
	return c.String()
}

// ParseDurationText converts HH:MM text to a duration. Hours may exceed 24.
// The sentinel yields (nil, nil).
func ParseDurationText(s string) (*time.Duration, error) {
	if s == NoneTime {
		return nil, nil
	}
	if !timeRegexp.MatchString(s) {
		return nil, &FormatError{Kind: "duration", Input: s}
	}
	hours, minutes := twoDigits(s[0:2]), twoDigits(s[3:5])
	if minutes > 59 {
		return nil, &FormatError{Kind: "duration", Input: s}
	}
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return &d, nil
}

// FormatDurationText renders a non-negative duration as HH:MM without a days
// component, or the sentinel for nil.
func FormatDurationText(d *time.Duration) string {
	if d == nil {
		return NoneTime
	}
	total := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatSignedDuration renders a duration with an explicit leading sign, or
// the sentinel for nil. The sign is negative iff the duration is below zero.
func FormatSignedDuration(d *time.Duration) string {
	if d == nil {
		return NoneTime
	}
	sign := "+"
	v := *d
	if v < 0 {
		sign = "-"
		v = -v
	}
	total := int(v.Minutes())
	return fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
}

// twoDigits converts a two-character digit pair already vetted by the
// grammar regexps.
func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// ParseDate converts bare YYYY-MM-DD text to a local-midnight date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(datePattern, s, time.Local)
	if err != nil {
		return time.Time{}, &FormatError{Kind: "date", Input: s}
	}
	return d, nil
}

// FormatDate renders a date in the weekday-prefixed form used on disk,
// e.g. "Mon 2024-01-15".
func FormatDate(d time.Time) string {
	return d.Format("Mon " + datePattern)
}

// Today returns the current local date at midnight.
func Today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Now returns the current local wall-clock time.
func Now() Clock {
	return ClockOf(time.Now().In(time.Local))
}
