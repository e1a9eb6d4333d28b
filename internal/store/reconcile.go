package store

import "slices"

// Reconciliation helpers. Cached lists hold at most one entry per id; every
// helper preserves that and returns a new slice header, never aliasing the input.

// upsert inserts item at the head (prepend) or tail, or replaces an entry that
// already carries the same id in place.
func upsert[T any](list []T, item T, idOf func(T) string, prepend bool) []T {
	if out, ok := replace(list, item, idOf); ok {
		return out
	}
	if prepend {
		return append([]T{item}, list...)
	}
	return append(slices.Clone(list), item)
}

// replace swaps the entry with item's id. A miss is reported, not an error.
func replace[T any](list []T, item T, idOf func(T) string) ([]T, bool) {
	id := idOf(item)
	i := slices.IndexFunc(list, func(v T) bool { return idOf(v) == id })
	if i < 0 {
		return list, false
	}
	out := slices.Clone(list)
	out[i] = item
	return out, true
}

// remove drops the entry with id; removing an unknown id is a no-op.
func remove[T any](list []T, id string, idOf func(T) string) []T {
	return slices.DeleteFunc(slices.Clone(list), func(v T) bool { return idOf(v) == id })
}

// snapshot copies a cached list for callers; nil becomes empty.
func snapshot[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return slices.Clone(list)
}

func ptrCopy[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}
