package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromSerial(t *testing.T) {
	tests := []struct {
		serial   float64
		expected time.Time
		ok       bool
	}{
		{34439, day(1994, time.April, 15), true},
		{44392, day(2021, time.July, 15), true},
		{18264, day(1950, time.January, 1), true},
		{18263, time.Time{}, false},
		{47484, day(2030, time.January, 1), true},
		{0, time.Time{}, false},
		{-5, time.Time{}, false},
		{120, time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := FromSerial(tt.serial)
		assert.Equal(t, tt.ok, ok, "FromSerial(%v)", tt.serial)
		if tt.ok {
			assert.Equal(t, tt.expected, got, "FromSerial(%v)", tt.serial)
		}
	}
}

func TestSerialToTimeLeapBug(t *testing.T) {
	got, ok := SerialToTime(1)
	require.True(t, ok)
	assert.Equal(t, day(1900, time.January, 1), got)

	got, ok = SerialToTime(59)
	require.True(t, ok)
	assert.Equal(t, day(1900, time.February, 28), got)

	got, ok = SerialToTime(61)
	require.True(t, ok)
	assert.Equal(t, day(1900, time.March, 1), got)

	got, ok = SerialToTime(34439.75)
	require.True(t, ok)
	assert.Equal(t, day(1994, time.April, 15), got)
}

func TestSerialRoundTrip(t *testing.T) {
	first := ToSerial(day(MinYear, time.January, 1))
	last := ToSerial(day(MaxYear, time.December, 31))
	for s := first - 10; s <= last+10; s++ {
		d, ok := FromSerial(float64(s))
		if !ok {
			continue
		}
		if got := ToSerial(d); got != s {
			t.Fatalf("ToSerial(FromSerial(%d)) = %d", s, got)
		}
	}
	_, ok := FromSerial(float64(first - 1))
	assert.False(t, ok)
	_, ok = FromSerial(float64(last + 1))
	assert.False(t, ok)
}

func TestEraYear(t *testing.T) {
	tests := []struct {
		era, year string
		expected  int
		ok        bool
	}{
		{"昭和", "63", 1988, true},
		{"平成", "6", 1994, true},
		{"平成", "元", 1989, true},
		{"令和", "2", 2020, true},
		{"H", "10", 1998, true},
		{"S", "50", 1975, true},
		{"大正", "15", 1926, true},
		{"明治", "45", 1912, true},
		{"西暦", "10", 0, false},
		{"平成", "x", 0, false},
		{"平成", "0", 0, false},
	}

	for _, tt := range tests {
		got, ok := EraYear(tt.era, tt.year)
		assert.Equal(t, tt.ok, ok, "EraYear(%q, %q)", tt.era, tt.year)
		assert.Equal(t, tt.expected, got, "EraYear(%q, %q)", tt.era, tt.year)
	}
}

func TestAgeAt(t *testing.T) {
	ref := day(2024, time.November, 1)
	assert.Equal(t, 30, AgeAt(day(1994, time.April, 15), ref))
	assert.Equal(t, 29, AgeAt(day(1994, time.November, 2), ref))
	assert.Equal(t, 30, AgeAt(day(1994, time.November, 1), ref))
}

func TestDate(t *testing.T) {
	_, ok := Date(1994, 2, 30)
	assert.False(t, ok)
	_, ok = Date(1994, 13, 1)
	assert.False(t, ok)
	d, ok := Date(1996, 2, 29)
	require.True(t, ok)
	assert.Equal(t, day(1996, time.February, 29), d)
}
