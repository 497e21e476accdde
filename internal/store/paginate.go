package store

import "slices"

// paginate returns the window [page*pageSize, page*pageSize+pageSize) of items.
// A window starting past the end yields an empty, non-nil slice.
func paginate[T any](items []T, page, pageSize int) []T {
	if page < 0 || pageSize <= 0 || page > len(items)/pageSize {
		return []T{}
	}
	start := page * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return slices.Clone(items[start:end])
}
