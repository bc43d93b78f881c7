// Package pds adapts raw, synonym-heavy Personal Data Sheet mappings into
// the normalized CandidateRecord schema, and provides the lenient date
// parsing the scoring engine relies on.
package pds

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts lists accepted date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006-01",
	"01/2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ParseDate parses a free-form PDS date string. The literal token
// "present" (case-insensitive) resolves to now. When no layout matches,
// it falls back to extracting a bare 4-digit year. Returns ok=false when
// nothing is resolvable; it never errors.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.EqualFold(s, "present") {
		return now, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// DD/MM/YYYY: only distinguishable from MM/DD/YYYY when the first
	// component exceeds 12, otherwise the MM/DD parse above already won.
	if t, ok := parseDayFirst(s); ok {
		return t, true
	}

	if m := yearPattern.FindString(s); m != "" {
		year, _ := strconv.Atoi(m)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

func parseDayFirst(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1000 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// MonthsBetween returns the whole months between two dates, never
// negative.
func MonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// SpanMonths resolves a free-form date range to a month count. An entry
// without a resolvable start date contributes zero months. A missing or
// unresolvable end date resolves to now.
func SpanMonths(from, to string, now time.Time) int {
	start, ok := ParseDate(from, now)
	if !ok {
		return 0
	}
	end, ok := ParseDate(to, now)
	if !ok {
		end = now
	}
	return MonthsBetween(start, end)
}
