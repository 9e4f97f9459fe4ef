package catalog

// Page is one deterministic slice of a filtered pool.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// Paginate slices items into a page of pageSize elements.
//
// TotalPages is always at least 1, even for an empty input, so UI controls
// never divide by zero. The requested page is clamped into [1, TotalPages]
// rather than erroring: a page pointer left pointing past the end after the
// pool shrank lands on a valid page instead of an empty misaligned slice.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	if start > len(items) {
		start = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(items),
	}
}
