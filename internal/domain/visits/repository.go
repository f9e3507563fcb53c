package visits

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type RequestFilter struct {
	query.BaseFilter
	// RequesterID scopes the list to one requester; zero lists all.
	RequesterID  uint
	DepartmentID uint
	Status       string
}

// DepartmentRepository refuses to delete a department with visit requests.
type DepartmentRepository interface {
	shared.CRUD[*Department]
	List(ctx context.Context, page query.PageFilter) ([]*Department, int64, error)
}

type VisitRequestRepository interface {
	shared.CRUD[*VisitRequest]
	List(ctx context.Context, filter RequestFilter) ([]*VisitRequest, int64, error)
}
