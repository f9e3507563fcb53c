package query

import "strings"

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

// OrderClause returns "<column> ASC|DESC" when SortBy is one of allowed,
// falling back to fallback otherwise.
func (f SortFilter) OrderClause(allowed map[string]bool, fallback string) string {
	if f.SortBy == "" || !allowed[f.SortBy] {
		return fallback
	}
	if f.IsDescending() {
		return f.SortBy + " DESC"
	}
	return f.SortBy + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSort(sortBy, sortOrder string) FilterOption {
	return func(f *BaseFilter) {
		f.SortBy = sortBy
		f.SortOrder = sortOrder
	}
}

func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{Page: 1, PageSize: 20},
		SortFilter: SortFilter{SortOrder: "desc"},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
