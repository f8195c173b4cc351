// ABOUTME: Brazilian date parsing and contract duration arithmetic
// ABOUTME: Strict DD/MM/YYYY parsing plus inclusive months-in-contract
package masks

import (
	"strconv"
	"strings"
	"time"
)

// ParseBRDate parses a DD/MM/YYYY string. ok is false for anything that is
// not exactly three numeric, non-zero parts forming a real calendar date;
// partial input while typing falls in that bucket and is not an error.
func ParseBRDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if day == 0 || month == 0 || year == 0 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/01 becomes 01/02); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// MonthsInContract derives the whole-month duration between two masked dates,
// counting both boundary months. It degrades to "" whenever either date is
// unparseable, the end precedes the start, or the count is not positive —
// the field it feeds is informational and never persisted as authoritative.
func MonthsInContract(start, end string) string {
	s, okS := ParseBRDate(start)
	e, okE := ParseBRDate(end)
	if !okS || !okE || e.Before(s) {
		return ""
	}
	months := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month()) + 1
	if months <= 0 {
		return ""
	}
	return strconv.Itoa(months)
}
