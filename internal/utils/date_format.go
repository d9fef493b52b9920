package utils

import (
	"fmt"
	"time"
)

// arabicMonths is indexed by zero-based month number.
var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// ArabicMonthName returns the localized month name for a 1-based month
// number, or the empty string when out of range.
func ArabicMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return arabicMonths[month-1]
}

// FormatLocalDate renders a date with the localized month name, e.g.
// 2024-03-05 -> "5 مارس 2024". It accepts a time.Time or an ISO YYYY-MM-DD
// string; any string it cannot parse is returned unchanged rather than
// raising, so free-text dates pass through documents untouched.
func FormatLocalDate(v any) string {
	switch val := v.(type) {
	case time.Time:
		return formatLocalDate(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return formatLocalDate(*val)
	case string:
		t, err := time.Parse("2006-01-02", val)
		if err != nil {
			return val
		}
		return formatLocalDate(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatLocalDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[int(t.Month())-1], t.Year())
}
