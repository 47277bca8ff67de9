package dto

// Pagination describes the slice of a ranked listing returned to the caller
type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Paginate slices an already-ranked sequence into one page. Pages are
// 1-based; a page past the end yields an empty slice with valid metadata.
// When all is true slicing is bypassed and the whole sequence is returned
// with totalPages fixed at 1.
func Paginate[T any](items []T, page, limit int, all bool) ([]T, Pagination) {
	total := int64(len(items))

	if all {
		return items, Pagination{
			Page:            1,
			Limit:           limit,
			TotalCount:      total,
			TotalPages:      1,
			HasNextPage:     false,
			HasPreviousPage: false,
		}
	}

	// Callers clamp page/limit; these guards only keep the math defined.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], Pagination{
		Page:            page,
		Limit:           limit,
		TotalCount:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
