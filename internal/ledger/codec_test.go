package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTimeText(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"--:--", true},
		{"9:00", false},
		{"09:0", false},
		{"0900", false},
		{"09:00 ", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsTimeText(tc.input), "IsTimeText(%q)", tc.input)
	}
}

func TestIsDateText(t *testing.T) {
	assert.True(t, IsDateText("Mon 2024-01-15"))
	assert.True(t, IsDateText("Tue 2024-01-16"))
	assert.False(t, IsDateText("2024-01-15"))
	assert.False(t, IsDateText("Monday 2024-01-15"))
	assert.False(t, IsDateText("Mon 2024-1-15"))
}

func TestIsRecordText(t *testing.T) {
	assert.True(t, IsRecordText("Mon 2024-01-15 09:00 17:30"))
	assert.True(t, IsRecordText("Tue 2024-01-16 08:55 --:--"))
	assert.True(t, IsRecordText("Wed 2024-01-17 --:-- 17:00"))
	assert.False(t, IsRecordText("Mon 2024-01-15 09:00"))
	assert.False(t, IsRecordText("Mon 2024-01-15  09:00 17:30"), "double space separator")
	assert.False(t, IsRecordText("2024-01-15 09:00 17:30"))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, NewClock(9, 5), *c)

	c, err = ParseClock(NoneTime)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestParseClockRejectsOutOfRange(t *testing.T) {
	for _, input := range []string{"24:00", "09:60", "99:99"} {
		_, err := ParseClock(input)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr, "ParseClock(%q)", input)
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, input := range []string{"9:00", "morning", ""} {
		_, err := ParseClock(input)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr, "ParseClock(%q)", input)
	}
}

func TestFormatClock(t *testing.T) {
	c := NewClock(8, 5)
	assert.Equal(t, "08:05", FormatClock(&c))
	assert.Equal(t, NoneTime, FormatClock(nil))
}

func TestClockRoundTrip(t *testing.T) {
	for _, text := range []string{"00:00", "08:05", "12:30", "23:59"} {
		c, err := ParseClock(text)
		require.NoError(t, err)
		assert.Equal(t, text, FormatClock(c))
	}
}

func TestDurationText(t *testing.T) {
	d, err := ParseDurationText("08:00")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 8*time.Hour, *d)

	d, err = ParseDurationText(NoneTime)
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDurationText("08:75")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestFormatDurationTextExceedsOneDay(t *testing.T) {
	d := 40*time.Hour + 30*time.Minute
	assert.Equal(t, "40:30", FormatDurationText(&d))
	assert.Equal(t, NoneTime, FormatDurationText(nil))
}

func TestFormatSignedDuration(t *testing.T) {
	positive := 30 * time.Minute
	negative := -30 * time.Minute
	zero := time.Duration(0)

	assert.Equal(t, "+00:30", FormatSignedDuration(&positive))
	assert.Equal(t, "-00:30", FormatSignedDuration(&negative))
	assert.Equal(t, "+00:00", FormatSignedDuration(&zero))
	assert.Equal(t, NoneTime, FormatSignedDuration(nil))
}

func TestFormatDateIncludesWeekday(t *testing.T) {
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "Mon 2024-01-15", FormatDate(day))
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local), day)

	_, err = ParseDate("15.01.2024")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
