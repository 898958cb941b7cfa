// Package biztime holds the calendar arithmetic behind date filters and
// dashboard buckets. Timestamps are stored and compared in UTC; the business
// location only decides where a day, week or month starts.
package biztime

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	DefaultTimezone = "UTC"
	DateLayout      = "2006-01-02"
)

var (
	bizLocation   = time.UTC
	bizLocationMu sync.RWMutex
)

// Init sets the business time zone. An empty tz means UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	bizLocationMu.Lock()
	bizLocation = loc
	bizLocationMu.Unlock()
	return nil
}

func Location() *time.Location {
	bizLocationMu.RLock()
	defer bizLocationMu.RUnlock()
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateKey returns the YYYY-MM-DD segment of t's UTC ISO form, or "" for the
// zero time. Inclusive date-range filters compare these keys lexically.
func DateKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// ParseDate validates a YYYY-MM-DD string and returns UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseTimestamp accepts RFC3339 with or without fractional seconds.
// Empty input yields the zero time.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// StartOfDay returns midnight of t's business day.
func StartOfDay(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location())
}

// mondayOffset is the number of days between the Monday on or before t and t.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfWeek returns midnight of the Monday opening t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -mondayOffset(day))
}

// WeekOfMonth numbers weeks from 1, with weeks starting on Monday and the
// first partial week of the month counted as week 1.
func WeekOfMonth(t time.Time) int {
	b := t.In(Location())
	first := time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, Location())
	return int(math.Ceil(float64(b.Day()+mondayOffset(first)) / 7))
}

// IsThisWeek reports whether t falls in the Monday-to-Sunday week of now.
func IsThisWeek(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	start := StartOfWeek(now)
	end := start.AddDate(0, 0, 7)
	return !t.Before(start) && t.Before(end)
}

// IsThisMonth reports whether t falls in the calendar month of now.
func IsThisMonth(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	a, b := t.In(Location()), now.In(Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysAgoKey returns the date key of now shifted back by days.
func DaysAgoKey(now time.Time, days int) string {
	return DateKey(now.AddDate(0, 0, -days))
}
