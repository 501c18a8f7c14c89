package utils

const (
	DefaultPageSize = 20
	MaxPageSize     = 500
)

// Pagination holds normalized paging parameters. A zero PageSize means
// everything on one page.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination normalizes paging parameters. Page defaults to 1 and
// PageSize is capped at MaxPageSize. A pageSize below 1 disables paging
// unless a page beyond the first was asked for, in which case
// DefaultPageSize applies.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}

	switch {
	case pageSize < 1 && page > 1:
		pageSize = DefaultPageSize
	case pageSize < 1:
		pageSize = 0
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// Bounds returns the slice indices of the page within total items.
func (p Pagination) Bounds(total int) (start, end int) {
	if p.PageSize == 0 {
		return 0, total
	}
	return ApplyPagination(total, p.Page, p.PageSize)
}

// ApplyPagination calculates slice indices for pagination.
// Returns (start, end) indices for slicing: slice[start:end]. Pages past the
// end yield an empty window, however large page is.
func ApplyPagination(total, page, pageSize int) (start, end int) {
	if total <= 0 || pageSize <= 0 {
		return 0, max(total, 0)
	}
	if page < 1 {
		page = 1
	}
	if page-1 > (total-1)/pageSize {
		return total, total
	}

	start = (page - 1) * pageSize
	end = total
	if pageSize < total-start {
		end = start + pageSize
	}
	return start, end
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return (total-1)/pageSize + 1
}
