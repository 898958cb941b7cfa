// Package mapper has small generic helpers for converting between source
// shapes (store items, persistence models, DTOs) and domain types.
package mapper

// MapSlice applies fn to each element. A nil input yields an empty slice so
// JSON encodes it as [].
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// IndexBy builds a lookup keyed by key(item). Later items overwrite earlier
// ones with the same key; empty keys are skipped.
func IndexBy[T any](items []T, key func(T) string) map[string]T {
	out := make(map[string]T, len(items))
	for _, item := range items {
		if k := key(item); k != "" {
			out[k] = item
		}
	}
	return out
}
