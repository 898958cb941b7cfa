package query

import (
	"slices"
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps the dashboard vocabulary onto a Direction.
// "latest"/"newest"/"desc" mean Desc, "oldest"/"asc" mean Asc, anything else
// returns def.
func ParseDirection(s string, def Direction) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latest", "newest", "desc":
		return Desc
	case "oldest", "asc":
		return Asc
	default:
		return def
	}
}

// SortSpec orders by a single timestamp key. A nil Key keeps input order.
type SortSpec[T any] struct {
	Key       func(T) time.Time
	Direction Direction
}

func ByTime[T any](key func(T) time.Time, dir Direction) SortSpec[T] {
	return SortSpec[T]{Key: key, Direction: dir}
}

// Apply returns a stably sorted copy; equal keys keep their input order.
func (s SortSpec[T]) Apply(items []T) []T {
	out := slices.Clone(items)
	if s.Key == nil {
		return out
	}
	desc := s.Direction != Asc
	slices.SortStableFunc(out, func(a, b T) int {
		if desc {
			return s.Key(b).Compare(s.Key(a))
		}
		return s.Key(a).Compare(s.Key(b))
	})
	return out
}
