package store

// Pagination describes one page of a list response
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NormalizePage clamps page/limit to their allowed ranges: page >= 1,
// limit in [1,100], defaulting to 20 when unset.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// NewPagination builds pagination metadata for a total row count
func NewPagination(total, page, limit int) Pagination {
	page, limit = NormalizePage(page, limit)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// Paginate slices an in-memory collection into one page plus its metadata
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	page, limit = NormalizePage(page, limit)
	p := NewPagination(len(items), page, limit)

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, p
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], p
}
