package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// ParsePage coerces a raw page query value. Absent, non-numeric and
// values below 1 all become DefaultPage.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// NormalizePageSize keeps size inside 1..MaxPageSize, falling back to
// DefaultPageSize otherwise.
func NormalizePageSize(size int) int {
	if size <= 0 || size > MaxPageSize {
		return DefaultPageSize
	}
	return size
}

// ParsePaginationParams extracts the page from the request. The size is a
// server policy and is never read from the client.
func ParsePaginationParams(c *gin.Context, pageSize int) (page, size int) {
	return ParsePage(c.Query("page")), NormalizePageSize(pageSize)
}

// MaxOffset is the largest OFFSET PostgreSQL accepts (a bigint)
const MaxOffset = uint64(math.MaxInt64)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
// Offsets past MaxOffset are clamped, so far-away pages read as empty.
func CalculateOffsetLimit(page, size int) (offset uint64, limit uint64) {
	size = NormalizePageSize(size)
	if page < 1 {
		page = DefaultPage
	}
	skipped := uint64(page - 1)
	if skipped > MaxOffset/uint64(size) {
		return MaxOffset, uint64(size)
	}
	return skipped * uint64(size), uint64(size)
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	size = NormalizePageSize(size)
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}
