// Package query implements the filter, sort and paginate pipeline shared by
// every list view. All stages are pure and never fail.
package query

import (
	"strings"
	"time"

	"github.com/katalon/insights/internal/shared/biztime"
)

// All is the categorical sentinel that disables a category predicate.
const All = "all"

type predicate[T any] func(T) bool

// FilterSpec is a conjunction of predicates over T. Builders that receive a
// default value (empty term, "all", empty date) add nothing.
type FilterSpec[T any] struct {
	predicates []predicate[T]
	active     int
}

func NewFilter[T any]() *FilterSpec[T] {
	return &FilterSpec[T]{}
}

// Text matches when term is a case-insensitive substring of any field.
func (f *FilterSpec[T]) Text(term string, fields ...func(T) string) *FilterSpec[T] {
	if term == "" || len(fields) == 0 {
		return f
	}
	needle := strings.ToLower(term)
	f.predicates = append(f.predicates, func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	})
	return f
}

// Category matches field values equal to value. Empty and "all" disable it.
func (f *FilterSpec[T]) Category(value string, field func(T) string) *FilterSpec[T] {
	if value == "" || value == All {
		return f
	}
	f.active++
	f.predicates = append(f.predicates, func(item T) bool {
		return field(item) == value
	})
	return f
}

// DateRange keeps items whose calendar date lies in [start, end]. Bounds are
// YYYY-MM-DD strings and either may be empty. A zero timestamp never
// satisfies a set bound.
func (f *FilterSpec[T]) DateRange(start, end string, field func(T) time.Time) *FilterSpec[T] {
	if start == "" && end == "" {
		return f
	}
	if start != "" {
		f.active++
	}
	if end != "" {
		f.active++
	}
	f.predicates = append(f.predicates, func(item T) bool {
		key := biztime.DateKey(field(item))
		if key == "" {
			return false
		}
		if start != "" && key < start {
			return false
		}
		if end != "" && key > end {
			return false
		}
		return true
	})
	return f
}

// Match reports whether item satisfies every predicate.
func (f *FilterSpec[T]) Match(item T) bool {
	for _, p := range f.predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Apply returns the matching items in input order. The input is not modified.
func (f *FilterSpec[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f == nil || f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// ActiveCount is the number of categorical predicates and date bounds that
// differ from their defaults. Free-text search is not counted.
func (f *FilterSpec[T]) ActiveCount() int {
	if f == nil {
		return 0
	}
	return f.active
}
