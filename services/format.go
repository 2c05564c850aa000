package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatAmount formats a monetary amount with thousands separators as the
// printed documents show it: grouped every 3 digits, 2 decimal places kept
// only when the amount is not whole (e.g. "12,500" and "333.34").
func FormatAmount(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := applyGrouping(parts[0])

	result := intPart
	if parts[1] != "00" {
		result += "." + parts[1]
	}
	if negative {
		result = "-" + result
	}
	return result
}

// applyGrouping inserts commas every 3 digits from the right.
func applyGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatArabicDate renders a Gregorian date with its Arabic month name,
// e.g. "15 يناير 2026".
func FormatArabicDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
}

// ParseDate accepts the date layouts stored by this application: plain
// "2006-01-02" and the record store's datetime form.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05.999Z", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateArabic renders a stored date string with Arabic month names,
// falling back to the em-dash placeholder when unset or unparsable.
func FormatDateArabic(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return Dash(strings.TrimSpace(s))
	}
	return FormatArabicDate(t)
}

// Dash substitutes the print documents' em-dash placeholder for empty
// values; missing fields render as "—", never as an error.
func Dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
