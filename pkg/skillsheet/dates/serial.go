// Package dates converts spreadsheet date serials and Japanese era years to
// calendar dates.
package dates

import (
	"math"
	"time"
)

const (
	// MinYear is the earliest year FromSerial accepts.
	MinYear = 1950
	// MaxYear is the latest year FromSerial accepts.
	MaxYear = 2030

	// leapBugSerial is the first serial after the nonexistent 1900-02-29.
	leapBugSerial = 61
	// maxSerial is 9999-12-31.
	maxSerial = 2958465
	// Offset1904 converts a 1904 date system serial to a 1900 one.
	Offset1904 = 1462
)

// epoch is day zero; serial 1 is 1900-01-01.
var epoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// SerialToTime converts a serial in the 1900 date system to a date without
// any plausibility filter. The fractional time of day is dropped.
func SerialToTime(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || serial < 1 || serial > maxSerial {
		return time.Time{}, false
	}
	days := int(math.Floor(serial))
	if days >= leapBugSerial {
		days--
	}
	return epoch.AddDate(0, 0, days), true
}

// FromSerial converts a serial to a date, rejecting years outside
// [MinYear, MaxYear].
func FromSerial(serial float64) (time.Time, bool) {
	t, ok := SerialToTime(serial)
	if !ok || t.Year() < MinYear || t.Year() > MaxYear {
		return time.Time{}, false
	}
	return t, true
}

// ToSerial converts a date back to a serial in the 1900 date system.
func ToSerial(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(epoch) / (24 * time.Hour))
	if days >= leapBugSerial-1 {
		days++
	}
	return days
}
