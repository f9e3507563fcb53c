package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     PageFilter
		wantOffset int
		wantLimit  int
	}{
		{"defaults", PageFilter{}, 0, 20},
		{"second page", PageFilter{Page: 2, PageSize: 10}, 10, 10},
		{"capped", PageFilter{Page: 3, PageSize: 500}, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.filter.Offset())
			assert.Equal(t, tt.wantLimit, tt.filter.Limit())
		})
	}
}

func TestSortFilter_OrderClause(t *testing.T) {
	allowed := map[string]bool{"name": true, "created_at": true}

	assert.Equal(t, "name ASC", SortFilter{SortBy: "name", SortOrder: "asc"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "created_at DESC", SortFilter{SortBy: "created_at", SortOrder: "DESC"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "id DESC", SortFilter{SortBy: "password; DROP", SortOrder: "asc"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "id DESC", SortFilter{}.OrderClause(allowed, "id DESC"))
}
