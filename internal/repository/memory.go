package repository

// nextID yields max existing id + 1, or 1 for an empty collection.
func nextID(n int, idAt func(i int) int64) int64 {
	var max int64
	for i := 0; i < n; i++ {
		if id := idAt(i); id > max {
			max = id
		}
	}
	return max + 1
}

// paginate slices [offset, offset+limit) and tolerates an offset past the end.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[offset:end]...)
}
