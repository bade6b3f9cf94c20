package dates

import (
	"strconv"
	"time"
)

// eraOffsets maps an era name to the Gregorian year before its first year.
var eraOffsets = map[string]int{
	"明治": 1867,
	"大正": 1911,
	"昭和": 1925,
	"平成": 1988,
	"令和": 2018,
	"M":  1867,
	"T":  1911,
	"S":  1925,
	"H":  1988,
	"R":  2018,
}

// EraPattern matches an era name or its one-letter abbreviation.
const EraPattern = `明治|大正|昭和|平成|令和|[MTSHR]`

// EraYear converts an era year such as ("平成", "6") to 1994. The year may be
// written as 元 for the first year.
func EraYear(era, year string) (int, bool) {
	offset, ok := eraOffsets[era]
	if !ok {
		return 0, false
	}
	n := 1
	if year != "元" {
		v, err := strconv.Atoi(year)
		if err != nil || v < 1 || v > 64 {
			return 0, false
		}
		n = v
	}
	return offset + n, true
}

// AgeAt returns the age in whole years on ref of someone born on birth.
func AgeAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// Date builds a UTC date, reporting false when the fields do not form a real
// calendar day.
func Date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}
