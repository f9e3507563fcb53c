// Package academics serves the department, programme, course and faculty
// admin endpoints.
package academics

import (
	"strconv"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/academics"
	"campus/internal/domain/academics"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type (
	departmentHandler = common.RecordHandler[*academics.Department, academics.DepartmentDetails, academics.DepartmentFilter, DepartmentRequest]
	programHandler    = common.RecordHandler[*academics.Program, academics.ProgramDetails, academics.ProgramFilter, ProgramRequest]
	courseHandler     = common.RecordHandler[*academics.Course, academics.CourseDetails, academics.CourseFilter, CourseRequest]
	facultyHandler    = common.RecordHandler[*academics.Faculty, academics.FacultyDetails, academics.FacultyFilter, FacultyRequest]
)

type Handler struct {
	departments *departmentHandler
	programs    *programHandler
	courses     *courseHandler
	faculty     *facultyHandler
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		departments: common.NewRecordHandler[*academics.Department, academics.DepartmentDetails, academics.DepartmentFilter, DepartmentRequest](
			"department", svc.Departments,
			common.Mapper[*academics.Department, academics.DepartmentDetails, DepartmentRequest]{
				ToDetails: departmentDetails, FromDetails: departmentRequest, ToResponse: toDepartmentResponse,
			},
			departmentFilter, log),
		programs: common.NewRecordHandler[*academics.Program, academics.ProgramDetails, academics.ProgramFilter, ProgramRequest](
			"program", svc.Programs,
			common.Mapper[*academics.Program, academics.ProgramDetails, ProgramRequest]{
				ToDetails: programDetails, FromDetails: programRequest, ToResponse: toProgramResponse,
			},
			programFilter, log),
		courses: common.NewRecordHandler[*academics.Course, academics.CourseDetails, academics.CourseFilter, CourseRequest](
			"course", svc.Courses,
			common.Mapper[*academics.Course, academics.CourseDetails, CourseRequest]{
				ToDetails: courseDetails, FromDetails: courseRequest, ToResponse: toCourseResponse,
			},
			courseFilter, log),
		faculty: common.NewRecordHandler[*academics.Faculty, academics.FacultyDetails, academics.FacultyFilter, FacultyRequest](
			"faculty member", svc.Faculty,
			common.Mapper[*academics.Faculty, academics.FacultyDetails, FacultyRequest]{
				ToDetails: facultyDetails, FromDetails: facultyRequest, ToResponse: toFacultyResponse,
			},
			facultyFilter, log),
	}
}

// Register mounts /departments, /programs, /courses and /faculty.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.departments.Register(rg.Group("/departments"), read, write)
	h.programs.Register(rg.Group("/programs"), read, write)
	h.courses.Register(rg.Group("/courses"), read, write)
	h.faculty.Register(rg.Group("/faculty"), read, write)
}

func departmentFilter(c *gin.Context) academics.DepartmentFilter {
	return academics.DepartmentFilter{BaseFilter: utils.ParseBaseFilter(c), Search: c.Query("search")}
}

func programFilter(c *gin.Context) academics.ProgramFilter {
	return academics.ProgramFilter{
		BaseFilter:   utils.ParseBaseFilter(c),
		DepartmentID: mapper.Deref(utils.QueryUint(c, "department_id")),
		Level:        c.Query("level"),
		ActiveOnly:   mapper.Deref(utils.QueryBool(c, "active_only")),
	}
}

func courseFilter(c *gin.Context) academics.CourseFilter {
	semester, _ := strconv.Atoi(c.Query("semester"))
	return academics.CourseFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		ProgramID:  mapper.Deref(utils.QueryUint(c, "program_id")),
		Semester:   semester,
	}
}

func facultyFilter(c *gin.Context) academics.FacultyFilter {
	return academics.FacultyFilter{
		BaseFilter:   utils.ParseBaseFilter(c),
		DepartmentID: mapper.Deref(utils.QueryUint(c, "department_id")),
		Search:       c.Query("search"),
	}
}
