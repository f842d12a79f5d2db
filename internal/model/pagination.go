package model

// Pagination describes one page of a list result. Total and TotalPages are
// always derived from the count query, never stored.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination derives pagination metadata for a page of size limit.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ListResult pairs a page of records with its pagination metadata.
type ListResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// NormalizePage clamps page and limit to sane values: page >= 1, limit >= 1,
// with defaults of 1 and 10 when the caller passed nothing usable.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
