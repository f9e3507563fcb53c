package academics

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/testutil"
	"campus/internal/domain/academics"
	vo "campus/internal/domain/academics/valueobjects"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type fixture struct {
	svc         *Service
	departments *testutil.MemoryRepository[*academics.Department, academics.DepartmentFilter]
	programs    *testutil.MemoryRepository[*academics.Program, academics.ProgramFilter]
	courses     *testutil.MemoryRepository[*academics.Course, academics.CourseFilter]
	faculty     *testutil.MemoryRepository[*academics.Faculty, academics.FacultyFilter]
	tx          *testutil.Tx
}

func newFixture() *fixture {
	f := &fixture{
		departments: testutil.NewMemoryRepository[*academics.Department, academics.DepartmentFilter](),
		programs:    testutil.NewMemoryRepository[*academics.Program, academics.ProgramFilter](),
		courses:     testutil.NewMemoryRepository[*academics.Course, academics.CourseFilter](),
		faculty:     testutil.NewMemoryRepository[*academics.Faculty, academics.FacultyFilter](),
		tx:          &testutil.Tx{},
	}
	f.programs.ListFunc = func(filter academics.ProgramFilter, rows []*academics.Program) ([]*academics.Program, int64, error) {
		var out []*academics.Program
		for _, p := range rows {
			d := p.Details()
			if filter.DepartmentID != 0 && d.DepartmentID != filter.DepartmentID {
				continue
			}
			if filter.ActiveOnly && !d.IsActive {
				continue
			}
			out = append(out, p)
		}
		return out, int64(len(out)), nil
	}
	f.svc = NewService(f.departments, f.programs, f.courses, f.faculty, f.tx, logger.NewNopLogger())
	return f
}

func (f *fixture) department(t *testing.T, name string) *academics.Department {
	t.Helper()
	d, err := f.svc.Departments.Create(context.Background(), academics.DepartmentDetails{Name: name}, 1)
	require.NoError(t, err)
	return d
}

func TestCreateDepartment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	d, err := f.svc.Departments.Create(ctx, academics.DepartmentDetails{
		Name:  "  Computer Science ",
		Email: "CS@Campus.edu",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", d.Details().Name)
	assert.Equal(t, "computer-science", d.Details().Slug)
	assert.Equal(t, "cs@campus.edu", d.Details().Email)
	assert.Equal(t, 1, f.tx.Calls)

	_, err = f.svc.Departments.Create(ctx, academics.DepartmentDetails{Name: "Physics", Email: "nope"}, 1)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, errors.GetAppError(err).Fields, "email")

	_, err = f.svc.Departments.Create(ctx, academics.DepartmentDetails{}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "name")
	assert.Equal(t, 1, f.departments.Len())
}

func TestCreateProgram_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dept := f.department(t, "Engineering")

	tests := []struct {
		name    string
		details academics.ProgramDetails
		field   string
	}{
		{"missing department", academics.ProgramDetails{Name: "BEng", Level: vo.LevelBachelors, Description: "x", DurationMonths: 48}, "department_id"},
		{"bad level", academics.ProgramDetails{DepartmentID: dept.ID(), Name: "BEng", Level: "doctorate", Description: "x", DurationMonths: 48}, "level"},
		{"zero duration", academics.ProgramDetails{DepartmentID: dept.ID(), Name: "BEng", Level: vo.LevelBachelors, Description: "x"}, "duration_months"},
		{"missing description", academics.ProgramDetails{DepartmentID: dept.ID(), Name: "BEng", Level: vo.LevelBachelors, DurationMonths: 48}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Programs.Create(ctx, tt.details, 1)
			require.Error(t, err)
			assert.Contains(t, errors.GetAppError(err).Fields, tt.field)
		})
	}
	assert.Equal(t, 0, f.programs.Len())
}

func TestListPrograms_ByDepartment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	eng := f.department(t, "Engineering")
	arts := f.department(t, "Arts")

	for _, p := range []academics.ProgramDetails{
		{DepartmentID: eng.ID(), Name: "BEng Civil", Level: vo.LevelBachelors, Description: "x", DurationMonths: 48, IsActive: true},
		{DepartmentID: eng.ID(), Name: "MEng Civil", Level: vo.LevelMasters, Description: "x", DurationMonths: 24},
		{DepartmentID: arts.ID(), Name: "BA History", Level: vo.LevelBachelors, Description: "x", DurationMonths: 36, IsActive: true},
	} {
		_, err := f.svc.Programs.Create(ctx, p, 1)
		require.NoError(t, err)
	}

	items, total, err := f.svc.Programs.List(ctx, academics.ProgramFilter{DepartmentID: eng.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	items, total, err = f.svc.Programs.List(ctx, academics.ProgramFilter{DepartmentID: eng.ID(), ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "beng-civil", items[0].Details().Slug)
}

func TestCourse_CreateAndPatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.svc.Courses.Create(ctx, academics.CourseDetails{ProgramID: 4, Code: " cs101 ", Title: "Intro", Semester: 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, "CS101", c.Details().Code)
	assert.Equal(t, academics.DefaultCredits, c.Details().Credits)

	patched, err := f.svc.Courses.Patch(ctx, c.ID(), func(d academics.CourseDetails) academics.CourseDetails {
		d.Semester = 2
		d.IsRequired = true
		return d
	})
	require.NoError(t, err)
	assert.Equal(t, 2, patched.Details().Semester)
	assert.True(t, patched.Details().IsRequired)
	assert.Equal(t, "Intro", patched.Details().Title)
	assert.Equal(t, 1, f.courses.Updates)

	_, err = f.svc.Courses.Patch(ctx, c.ID(), func(d academics.CourseDetails) academics.CourseDetails {
		d.Semester = 0
		return d
	})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "semester")
	assert.Equal(t, 1, f.courses.Updates)
}

func TestFaculty_UpdateAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dept := f.department(t, "Mathematics")
	deptID := dept.ID()

	m, err := f.svc.Faculty.Create(ctx, academics.FacultyDetails{FullName: "Dr. Amina Hassan", DepartmentID: &deptID}, 1)
	require.NoError(t, err)

	details := m.Details()
	details.Specialization = "Topology"
	updated, err := f.svc.Faculty.Update(ctx, m.ID(), details)
	require.NoError(t, err)
	assert.Equal(t, "Topology", updated.Details().Specialization)

	got, err := f.svc.Faculty.Get(ctx, m.ID())
	require.NoError(t, err)
	assert.Equal(t, "Topology", got.Details().Specialization)

	require.NoError(t, f.svc.Faculty.Delete(ctx, m.ID()))
	_, err = f.svc.Faculty.Get(ctx, m.ID())
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(f.svc.Faculty.Delete(ctx, m.ID())))
}

func TestRepositoryFailureIsHidden(t *testing.T) {
	f := newFixture()
	f.departments.CreateErr = stderrors.New("disk full")

	_, err := f.svc.Departments.Create(context.Background(), academics.DepartmentDetails{Name: "Law"}, 1)
	require.Error(t, err)
	app := errors.GetAppError(err)
	require.NotNil(t, app)
	assert.Equal(t, errors.ErrorTypeInternal, app.Type)
	assert.Equal(t, "failed to create department", app.Message)
	assert.NotContains(t, app.Error(), "disk full")
}
