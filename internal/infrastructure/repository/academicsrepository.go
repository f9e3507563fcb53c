package repository

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/domain/academics"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	departmentSortColumns = map[string]bool{"id": true, "name": true, "created_at": true}
	programSortColumns    = map[string]bool{"id": true, "name": true, "level": true, "duration_months": true, "created_at": true}
	courseSortColumns     = map[string]bool{"id": true, "code": true, "title": true, "semester": true, "credits": true}
	facultySortColumns    = map[string]bool{"id": true, "full_name": true, "created_at": true}
)

type DepartmentRepository struct {
	*table[*academics.Department, models.DepartmentModel]
}

var _ academics.DepartmentRepository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(gdb *gorm.DB, logger logger.Interface) *DepartmentRepository {
	return &DepartmentRepository{&table[*academics.Department, models.DepartmentModel]{
		db:       gdb,
		logger:   logger,
		label:    "department",
		toModel:  mappers.DepartmentToModel,
		toDomain: mappers.DepartmentToDomain,
		modelID:  func(m *models.DepartmentModel) uint { return m.ID },
		unique:   []string{"name", "slug"},
		onDelete: departmentRules(),
	}}
}

func (r *DepartmentRepository) List(ctx context.Context, filter academics.DepartmentFilter) ([]*academics.Department, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(departmentSortColumns, "name ASC"),
		search(filter.Search, "name", "head_of_department"),
	)
}

type ProgramRepository struct {
	*table[*academics.Program, models.ProgramModel]
}

var _ academics.ProgramRepository = (*ProgramRepository)(nil)

func NewProgramRepository(gdb *gorm.DB, logger logger.Interface) *ProgramRepository {
	return &ProgramRepository{&table[*academics.Program, models.ProgramModel]{
		db:       gdb,
		logger:   logger,
		label:    "program",
		toModel:  mappers.ProgramToModel,
		toDomain: mappers.ProgramToDomain,
		modelID:  func(m *models.ProgramModel) uint { return m.ID },
		unique:   []string{"slug"},
		onDelete: programRules(),
	}}
}

func (r *ProgramRepository) List(ctx context.Context, filter academics.ProgramFilter) ([]*academics.Program, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(programSortColumns, "name ASC"),
		db.WhereIf(filter.DepartmentID != 0, "department_id = ?", filter.DepartmentID),
		db.WhereIf(filter.Level != "", "level = ?", filter.Level),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

type CourseRepository struct {
	*table[*academics.Course, models.CourseModel]
}

var _ academics.CourseRepository = (*CourseRepository)(nil)

func NewCourseRepository(gdb *gorm.DB, logger logger.Interface) *CourseRepository {
	return &CourseRepository{&table[*academics.Course, models.CourseModel]{
		db:       gdb,
		logger:   logger,
		label:    "course",
		toModel:  mappers.CourseToModel,
		toDomain: mappers.CourseToDomain,
		modelID:  func(m *models.CourseModel) uint { return m.ID },
		unique:   []string{"code"},
	}}
}

func (r *CourseRepository) List(ctx context.Context, filter academics.CourseFilter) ([]*academics.Course, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(courseSortColumns, "semester ASC, code ASC"),
		db.WhereIf(filter.ProgramID != 0, "program_id = ?", filter.ProgramID),
		db.WhereIf(filter.Semester != 0, "semester = ?", filter.Semester),
	)
}

type FacultyRepository struct {
	*table[*academics.Faculty, models.FacultyModel]
}

var _ academics.FacultyRepository = (*FacultyRepository)(nil)

func NewFacultyRepository(gdb *gorm.DB, logger logger.Interface) *FacultyRepository {
	return &FacultyRepository{&table[*academics.Faculty, models.FacultyModel]{
		db:       gdb,
		logger:   logger,
		label:    "faculty member",
		toModel:  mappers.FacultyToModel,
		toDomain: mappers.FacultyToDomain,
		modelID:  func(m *models.FacultyModel) uint { return m.ID },
	}}
}

func (r *FacultyRepository) List(ctx context.Context, filter academics.FacultyFilter) ([]*academics.Faculty, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(facultySortColumns, "full_name ASC"),
		db.WhereIf(filter.DepartmentID != 0, "department_id = ?", filter.DepartmentID),
		search(filter.Search, "full_name", "specialization"),
	)
}
