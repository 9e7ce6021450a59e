package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantStart time.Time
		wantRange string
	}{
		{
			name:      "two digit times",
			raw:       "2024-05-01|14:00-16:00",
			wantStart: time.Date(2024, time.May, 1, 14, 0, 0, 0, time.Local),
			wantRange: "14:00-16:00",
		},
		{
			name:      "single digit hour and minute",
			raw:       "2024-05-01|9:5-10:30",
			wantStart: time.Date(2024, time.May, 1, 9, 5, 0, 0, time.Local),
			wantRange: "9:5-10:30",
		},
		{
			name:      "leap day on a leap year",
			raw:       "2024-02-29|08:00-09:00",
			wantStart: time.Date(2024, time.February, 29, 8, 0, 0, 0, time.Local),
			wantRange: "08:00-09:00",
		},
		{
			name:      "midnight boundary",
			raw:       "2025-12-31|0:0-23:59",
			wantStart: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local),
			wantRange: "0:0-23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.raw)
			require.NoError(t, err)
			require.True(t, p.Start.Equal(tt.wantStart), "start %v != %v", p.Start, tt.wantStart)
			require.Equal(t, tt.wantRange, p.TimeRange)
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing pipe", "2024-05-01 14:00-16:00"},
		{"empty string", ""},
		{"date with single digit month", "2024-5-01|14:00-16:00"},
		{"date with slashes", "2024/05/01|14:00-16:00"},
		{"hour out of range", "2024-05-01|25:00-26:00"},
		{"minute out of range", "2024-05-01|14:60-16:00"},
		{"end hour out of range", "2024-05-01|14:00-24:00"},
		{"missing end time", "2024-05-01|14:00"},
		{"garbage time part", "2024-05-01|afternoon"},
		{"trailing text", "2024-05-01|14:00-16:00pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParse_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"february 30", "2024-02-30|10:00-11:00"},
		{"day 31 in a 30 day month", "2024-04-31|10:00-11:00"},
		{"month 13", "2024-13-01|10:00-11:00"},
		{"day zero", "2024-05-00|10:00-11:00"},
		{"leap day on a non leap year", "2023-02-29|10:00-11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestDecode(t *testing.T) {
	date, timeRange, err := Decode("2024-05-01|14:00-16:00")
	require.NoError(t, err)
	require.Equal(t, "Wed May 01 2024", date)
	require.Equal(t, "14:00-16:00", timeRange)
}

func TestDecode_WeekdayMatchesCalendar(t *testing.T) {
	// The display date's weekday must agree with the parsed calendar date.
	raws := []string{
		"2024-01-01|09:00-10:00",
		"2024-06-15|18:30-20:00",
		"2025-11-30|7:45-9:15",
	}
	for _, raw := range raws {
		p, err := Parse(raw)
		require.NoError(t, err)

		date, _, err := Decode(raw)
		require.NoError(t, err)
		require.Equal(t, p.Start.Format("Mon"), date[:3], "raw %q", raw)
	}
}

func TestDecode_PreservesTimeRangeVerbatim(t *testing.T) {
	_, timeRange, err := Decode("2024-05-01|9:5-10:30")
	require.NoError(t, err)
	require.Equal(t, "9:5-10:30", timeRange)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("2024-05-01|14:00-16:00"))
	require.ErrorIs(t, Validate("2024-02-30|10:00-11:00"), ErrInvalidDate)
	require.ErrorIs(t, Validate("not-a-timestamp"), ErrInvalidFormat)
}
