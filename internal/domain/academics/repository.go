package academics

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type DepartmentFilter struct {
	query.BaseFilter
	Search string
}

type ProgramFilter struct {
	query.BaseFilter
	DepartmentID uint
	Level        string
	ActiveOnly   bool
}

type CourseFilter struct {
	query.BaseFilter
	ProgramID uint
	Semester  int
}

type FacultyFilter struct {
	query.BaseFilter
	DepartmentID uint
	Search       string
}

// DepartmentRepository deletes cascade to programmes (and from there to
// courses and admission requirements) and clear faculty.department_id.
type DepartmentRepository interface {
	shared.CRUD[*Department]
	List(ctx context.Context, filter DepartmentFilter) ([]*Department, int64, error)
}

// ProgramRepository deletes cascade to courses and requirements and clear
// applicant.program_id.
type ProgramRepository interface {
	shared.CRUD[*Program]
	List(ctx context.Context, filter ProgramFilter) ([]*Program, int64, error)
}

type CourseRepository interface {
	shared.CRUD[*Course]
	List(ctx context.Context, filter CourseFilter) ([]*Course, int64, error)
}

type FacultyRepository interface {
	shared.CRUD[*Faculty]
	List(ctx context.Context, filter FacultyFilter) ([]*Faculty, int64, error)
}
