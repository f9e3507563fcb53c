// Package academics wires the department, programme, course and faculty
// use cases.
package academics

import (
	"campus/internal/application/common/crud"
	"campus/internal/domain/academics"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

type (
	DepartmentService = crud.Service[*academics.Department, academics.DepartmentDetails, academics.DepartmentFilter]
	ProgramService    = crud.Service[*academics.Program, academics.ProgramDetails, academics.ProgramFilter]
	CourseService     = crud.Service[*academics.Course, academics.CourseDetails, academics.CourseFilter]
	FacultyService    = crud.Service[*academics.Faculty, academics.FacultyDetails, academics.FacultyFilter]
)

type Service struct {
	Departments *DepartmentService
	Programs    *ProgramService
	Courses     *CourseService
	Faculty     *FacultyService
}

func NewService(
	departments academics.DepartmentRepository,
	programs academics.ProgramRepository,
	courses academics.CourseRepository,
	faculty academics.FacultyRepository,
	tx db.Transactor,
	log logger.Interface,
) *Service {
	log = log.Named("academics")
	return &Service{
		Departments: crud.NewService[*academics.Department, academics.DepartmentDetails, academics.DepartmentFilter](
			"department", departments,
			func(d academics.DepartmentDetails, _ uint) (*academics.Department, error) { return academics.NewDepartment(d) },
			tx, log),
		Programs: crud.NewService[*academics.Program, academics.ProgramDetails, academics.ProgramFilter](
			"program", programs,
			func(d academics.ProgramDetails, _ uint) (*academics.Program, error) { return academics.NewProgram(d) },
			tx, log),
		Courses: crud.NewService[*academics.Course, academics.CourseDetails, academics.CourseFilter](
			"course", courses,
			func(d academics.CourseDetails, _ uint) (*academics.Course, error) { return academics.NewCourse(d) },
			tx, log),
		Faculty: crud.NewService[*academics.Faculty, academics.FacultyDetails, academics.FacultyFilter](
			"faculty member", faculty,
			func(d academics.FacultyDetails, _ uint) (*academics.Faculty, error) { return academics.NewFaculty(d) },
			tx, log),
	}
}
