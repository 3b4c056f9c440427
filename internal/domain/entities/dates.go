package entities

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of trip dates.
const DateLayout = "2006-01-02"

// CivilDate drops the clock part of t and returns midnight UTC of the same calendar day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return CivilDate(t), nil
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return CivilDate(t).Format(DateLayout)
}
