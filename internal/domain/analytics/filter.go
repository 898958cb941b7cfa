// Package analytics computes the aggregates behind the dashboard charts.
package analytics

import (
	"slices"
	"time"

	"github.com/katalon/insights/internal/shared/biztime"
)

type TimeRange string

const (
	RangeAll   TimeRange = "all"
	RangeToday TimeRange = "today"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"

	DefaultTimeRange = RangeWeek
)

// TimeRanges lists the quick-select values in menu order.
var TimeRanges = []TimeRange{RangeAll, RangeToday, RangeWeek, RangeMonth, RangeYear}

// ParseTimeRange accepts the quick-select values. Empty input means def.
func ParseTimeRange(s string, def TimeRange) (TimeRange, bool) {
	if s == "" {
		return def, true
	}
	if r := TimeRange(s); slices.Contains(TimeRanges, r) {
		return r, true
	}
	return "", false
}

// Period narrows the chart widgets to the calendar week or month of now.
type Period string

const (
	PeriodNone      Period = ""
	PeriodThisWeek  Period = "thisWeek"
	PeriodThisMonth Period = "thisMonth"
)

func ParsePeriod(s string) (Period, bool) {
	switch p := Period(s); p {
	case PeriodNone, PeriodThisWeek, PeriodThisMonth:
		return p, true
	default:
		return "", false
	}
}

// Filter is the dashboard filter bar. Explicit dates apply only when the
// time range is "all".
type Filter struct {
	TimeRange TimeRange
	StartDate string
	EndDate   string
	Period    Period
}

// ActiveCount counts the settings that differ from the defaults: a time
// range other than "week", and each explicit date while the range is "all".
func (f Filter) ActiveCount() int {
	count := 0
	if f.TimeRange != DefaultTimeRange {
		count++
	}
	if f.TimeRange == RangeAll {
		if f.StartDate != "" {
			count++
		}
		if f.EndDate != "" {
			count++
		}
	}
	return count
}

// Window is an inclusive range of calendar dates (YYYY-MM-DD). Empty bounds
// are open.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`

	period Period
	now    time.Time
}

// Resolve turns the filter into concrete bounds relative to now.
func (f Filter) Resolve(now time.Time) Window {
	today := biztime.DateKey(now)
	w := Window{period: f.Period, now: now}

	switch f.TimeRange {
	case RangeToday:
		w.Start, w.End = today, today
	case RangeWeek:
		w.Start, w.End = biztime.DaysAgoKey(now, 7), today
	case RangeMonth:
		w.Start, w.End = biztime.DaysAgoKey(now, 30), today
	case RangeYear:
		w.Start, w.End = biztime.DaysAgoKey(now, 365), today
	case RangeAll:
		w.Start, w.End = f.StartDate, f.EndDate
	}
	return w
}

// Contains reports whether t lies in the window and, when a period is set,
// in the current calendar week or month. Zero timestamps only match a fully
// open window.
func (w Window) Contains(t time.Time) bool {
	switch w.period {
	case PeriodThisWeek:
		if !biztime.IsThisWeek(t, w.now) {
			return false
		}
	case PeriodThisMonth:
		if !biztime.IsThisMonth(t, w.now) {
			return false
		}
	}
	if w.Start == "" && w.End == "" {
		return true
	}
	key := biztime.DateKey(t)
	if key == "" {
		return false
	}
	return (w.Start == "" || key >= w.Start) && (w.End == "" || key <= w.End)
}
