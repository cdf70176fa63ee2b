package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLayout string
		want       time.Time
	}{
		{
			"rfc3339",
			"2025-01-01T14:15:22Z",
			LayoutRFC3339,
			time.Date(2025, 1, 1, 14, 15, 22, 0, time.UTC),
		},
		{
			"date-time without zone",
			"2025-01-01T14:15:22",
			LayoutDateTime,
			time.Date(2025, 1, 1, 14, 15, 22, 0, time.UTC),
		},
		{
			"date-time with space",
			"2025-01-01 14:15:22",
			LayoutDateTimeSpace,
			time.Date(2025, 1, 1, 14, 15, 22, 0, time.UTC),
		},
		{
			"bare date",
			"2025-01-01",
			LayoutDate,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"surrounding whitespace",
			"  2025-06-30  ",
			LayoutDate,
			time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, layout, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLayout, layout)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "01/02/2025", "2025-13-40"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseTimestamp(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 3, 15, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestDateOnly_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 3, 15, 2, 0, 0, 0, loc)
	// 02:00 at UTC+5 is still March 14 in UTC.
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"spaces become underscores", "Micron Earnings Preview", 100, "Micron_Earnings_Preview"},
		{"invalid chars removed", `a<b>c:d"e/f\g|h?i*j`, 100, "abcdefghij"},
		{"leading and trailing dots trimmed", "  .report. ", 100, "report"},
		{"truncation", "abcdefghij", 4, "abcd"},
		{"no truncation when max is zero", "abcdefghij", 0, "abcdefghij"},
		{"whitespace runs collapse", "a \t b\n\nc", 100, "a_b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input, tt.max))
		})
	}
}
