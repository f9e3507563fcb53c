package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campus/internal/shared/constants"
	"campus/internal/shared/query"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string.
// Invalid values fall back to defaults and page_size is capped at MaxPageSize.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParseBaseFilter reads pagination plus sort_by / sort_order.
func ParseBaseFilter(c *gin.Context) query.BaseFilter {
	p := ParsePagination(c)
	opts := []query.FilterOption{query.WithPage(p.Page, p.PageSize)}
	if sortBy := c.Query("sort_by"); sortBy != "" {
		opts = append(opts, query.WithSort(sortBy, c.DefaultQuery("sort_order", "desc")))
	}
	return query.NewBaseFilter(opts...)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
