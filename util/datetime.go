package util

import (
	"fmt"
	"strings"
	"time"
)

const (
	calendarDateLayout = "2006-01-02"
	localTimeLayout    = "15:04"
	localTimeLayoutSec = "15:04:05"
)

// CombineDateTime joins a calendar date (YYYY-MM-DD) and a local time
// (HH:MM or HH:MM:SS) into an absolute timestamp in loc.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	layout := localTimeLayout
	if strings.Count(clock, ":") == 2 {
		layout = localTimeLayoutSec
	}

	t, err := time.ParseInLocation(calendarDateLayout+"T"+layout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ParseCalendarDate parses a YYYY-MM-DD date at midnight in loc.
func ParseCalendarDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(calendarDateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", date, err)
	}
	return t, nil
}

// FormatCalendarDate is the inverse of ParseCalendarDate.
func FormatCalendarDate(t time.Time) string {
	return t.Format(calendarDateLayout)
}

// FormatTimeRange renders "15:04-16:00".
func FormatTimeRange(from, to time.Time) string {
	return fmt.Sprintf("%s-%s", from.Format(localTimeLayout), to.Format(localTimeLayout))
}
