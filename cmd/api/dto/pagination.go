package dto

// Pagination is a generic pagination envelope for list results.
// T is the element type of the Data slice.
// Total is the number of items matching the filters before slicing;
// TotalPages is always derived from Total and Limit, never stored.
type Pagination[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination builds the envelope, deriving TotalPages as
// ceil(total/limit). TotalPages is 0 exactly when Total is 0.
func NewPagination[T any](data []T, page, limit int, total int64) Pagination[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
