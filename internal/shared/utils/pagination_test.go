package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values", 2, 20, 2, 20},
		{"page below one", 0, 20, 1, 20},
		{"no paging", 1, 0, 1, 0},
		{"negative page size", 0, -3, 1, 0},
		{"later page without size", 3, 0, 3, DefaultPageSize},
		{"page size capped", 1, MaxPageSize + 1, 1, MaxPageSize},
		{"page size at cap", 1, MaxPageSize, 1, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestPagination_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		p         Pagination
		total     int
		wantStart int
		wantEnd   int
	}{
		{"unpaged", Pagination{Page: 1}, 7, 0, 7},
		{"first page", Pagination{Page: 1, PageSize: 3}, 7, 0, 3},
		{"last partial page", Pagination{Page: 3, PageSize: 3}, 7, 6, 7},
		{"beyond the end", Pagination{Page: 5, PageSize: 3}, 7, 7, 7},
		{"empty", Pagination{Page: 1, PageSize: 3}, 0, 0, 0},
		{"huge page", Pagination{Page: math.MaxInt64 / 100, PageSize: 200}, 7, 7, 7},
		{"max page", Pagination{Page: math.MaxInt, PageSize: MaxPageSize}, 7, 7, 7},
		{"huge page size", Pagination{Page: 2, PageSize: math.MaxInt}, 7, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.Bounds(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(7, 3))
	assert.Equal(t, 1, TotalPages(math.MaxInt, math.MaxInt))
}
