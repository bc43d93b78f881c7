package pds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestParseDate_Layouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "ISO date",
			input: "2018-06-01",
			want:  time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "ISO datetime",
			input: "2018-06-01 08:30:00",
			want:  time.Date(2018, time.June, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "US slash date",
			input: "06/01/2018",
			want:  time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "year and month",
			input: "2018-06",
			want:  time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "month name",
			input: "June 2018",
			want:  time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "abbreviated month",
			input: "Jun 2018",
			want:  time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare year",
			input: "2018",
			want:  time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input, testNow)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Present(t *testing.T) {
	for _, input := range []string{"present", "Present", "PRESENT"} {
		got, ok := ParseDate(input, testNow)
		require.True(t, ok, input)
		assert.Equal(t, testNow, got)
	}
}

func TestParseDate_DayFirst(t *testing.T) {
	// First component above 12 can only be a day
	got, ok := ParseDate("25/06/2018", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, time.June, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_YearFallback(t *testing.T) {
	got, ok := ParseDate("graduated sometime in 2012", testNow)
	require.True(t, ok)
	assert.Equal(t, 2012, got.Year())
}

func TestParseDate_Unresolvable(t *testing.T) {
	for _, input := range []string{"", "   ", "no date here", "99/99/9999"} {
		_, ok := ParseDate(input, testNow)
		assert.False(t, ok, input)
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "exact years",
			from: time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
			want: 36,
		},
		{
			name: "partial month does not count",
			from: time.Date(2018, time.January, 15, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2018, time.March, 10, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "reversed range",
			from: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "same day",
			from: testNow,
			to:   testNow,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}

func TestSpanMonths(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{
			name: "closed range",
			from: "2018-06-01",
			to:   "2020-06-01",
			want: 24,
		},
		{
			name: "open range resolves to now",
			from: "2024-06-15",
			to:   "present",
			want: 12,
		},
		{
			name: "missing end resolves to now",
			from: "2024-06-15",
			to:   "",
			want: 12,
		},
		{
			name: "unresolvable start contributes nothing",
			from: "unknown",
			to:   "2020-01-01",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpanMonths(tt.from, tt.to, testNow))
		})
	}
}
