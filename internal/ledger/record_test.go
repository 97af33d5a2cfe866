package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hour, minute int) *Clock {
	c := NewClock(hour, minute)
	return &c
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestNewRecordRequiresStartOrEnd(t *testing.T) {
	_, err := NewRecord(date(2024, time.January, 15), nil, nil)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNewRecordRejectsStartAfterEnd(t *testing.T) {
	_, err := NewRecord(date(2024, time.January, 15), clock(17, 0), clock(9, 0))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNewRecordAllowsStartEqualEnd(t *testing.T) {
	r, err := NewRecord(date(2024, time.January, 15), clock(9, 0), clock(9, 0))
	require.NoError(t, err)
	require.NotNil(t, r.Worktime())
	assert.Equal(t, time.Duration(0), *r.Worktime())
}

func TestNewRecordDefaultsDayToToday(t *testing.T) {
	r, err := NewRecord(time.Time{}, clock(9, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, Today(), r.Day)
}

func TestRecordWorktime(t *testing.T) {
	r, err := NewRecord(date(2024, time.January, 15), clock(9, 0), clock(17, 30))
	require.NoError(t, err)
	require.NotNil(t, r.Worktime())
	assert.Equal(t, 8*time.Hour+30*time.Minute, *r.Worktime())

	open, err := NewRecord(date(2024, time.January, 15), clock(9, 0), nil)
	require.NoError(t, err)
	assert.Nil(t, open.Worktime())
	assert.True(t, open.Open())
}

func TestRecordTextRoundTrip(t *testing.T) {
	cases := []*Record{
		mustRecord(t, date(2024, time.January, 15), clock(9, 0), clock(17, 30)),
		mustRecord(t, date(2024, time.January, 16), clock(8, 55), nil),
		mustRecord(t, date(2024, time.January, 17), nil, clock(17, 0)),
	}
	for _, r := range cases {
		parsed, err := RecordFromText(r.Text())
		require.NoError(t, err, "round trip of %q", r.Text())
		assert.Equal(t, r, parsed)
	}
}

func TestRecordTextForms(t *testing.T) {
	closed := mustRecord(t, date(2024, time.January, 15), clock(9, 0), clock(17, 30))
	assert.Equal(t, "Mon 2024-01-15 09:00 17:30", closed.Text())

	open := mustRecord(t, date(2024, time.January, 16), clock(8, 55), nil)
	assert.Equal(t, "Tue 2024-01-16 08:55 --:--", open.Text())
	assert.Equal(t, "Tue 2024-01-16 08:55 --:-- [--:--]", open.String())
}

func TestRecordFromTextRejectsBadGrammar(t *testing.T) {
	for _, line := range []string{
		"",
		"hello",
		"Mon 2024-01-15 09:00",
		"2024-01-15 09:00 17:30",
		"Mon 2024-01-15 09:00 17:30 extra",
	} {
		_, err := RecordFromText(line)
		require.Error(t, err, "RecordFromText(%q)", line)
	}
}

func TestRecordFromTextRejectsInvalidTimes(t *testing.T) {
	_, err := RecordFromText("Mon 2024-01-15 25:00 17:30")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestRecordFromTextRejectsBothTimesAbsent(t *testing.T) {
	_, err := RecordFromText("Mon 2024-01-15 --:-- --:--")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestStartedRecord(t *testing.T) {
	r, err := StartedRecord("08:00")
	require.NoError(t, err)
	assert.Equal(t, Today(), r.Day)
	assert.Equal(t, clock(8, 0), r.Start)
	assert.Nil(t, r.End)
}

func TestEndedRecord(t *testing.T) {
	r, err := EndedRecord("17:00")
	require.NoError(t, err)
	assert.Nil(t, r.Start)
	assert.Equal(t, clock(17, 0), r.End)
}

func TestHalfRecordsRejectSentinelAndGarbage(t *testing.T) {
	var validationErr *ValidationError

	_, err := StartedRecord(NoneTime)
	require.ErrorAs(t, err, &validationErr)

	_, err = EndedRecord(NoneTime)
	require.ErrorAs(t, err, &validationErr)

	_, err = StartedRecord("later")
	require.ErrorAs(t, err, &validationErr)
}

func mustRecord(t *testing.T, day time.Time, start, end *Clock) *Record {
	t.Helper()
	r, err := NewRecord(day, start, end)
	require.NoError(t, err)
	return r
}
