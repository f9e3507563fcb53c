package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus/internal/domain/academics"
	academicsvo "campus/internal/domain/academics/valueobjects"
	"campus/internal/domain/admissions"
	"campus/internal/domain/announcements"
	"campus/internal/domain/assets"
	"campus/internal/domain/outreach"
	"campus/internal/domain/user"
	"campus/internal/domain/visits"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/authorization"
	apperrors "campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func newApplicant(t *testing.T, email string) *admissions.Applicant {
	a, err := admissions.NewApplicant(admissions.ApplicantDetails{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       email,
		Phone:       "555-0100",
		DateOfBirth: time.Date(2004, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return a
}

func TestApplicantRepository_UniqueEmail(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewApplicantRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	first := newApplicant(t, "a@x.com")
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID())

	second := newApplicant(t, "A@x.com")
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, apperrors.GetAppError(err).Fields, "email")
	assert.Zero(t, second.ID())

	assert.Equal(t, int64(1), countRows(t, gdb, &models.ApplicantModel{}))

	exists, err := repo.ExistsByEmail(ctx, "a@x.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "a@x.com", first.ID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplicantRepository_UpdateAndNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewApplicantRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	a := newApplicant(t, "b@x.com")
	require.NoError(t, repo.Create(ctx, a))
	before := a.UpdatedAt()

	require.NoError(t, a.ChangeStatus("submitted"))
	require.NoError(t, repo.Update(ctx, a))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "submitted", found.Status().String())
	assert.True(t, found.UpdatedAt().After(before))

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(ctx, 9999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDepartmentRepository_DeleteCascades(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	departments := NewDepartmentRepository(gdb, log)
	programs := NewProgramRepository(gdb, log)
	courses := NewCourseRepository(gdb, log)
	faculty := NewFacultyRepository(gdb, log)
	applicants := NewApplicantRepository(gdb, log)

	dept, err := academics.NewDepartment(academics.DepartmentDetails{Name: "Computer Science"})
	require.NoError(t, err)
	require.NoError(t, departments.Create(ctx, dept))

	program, err := academics.NewProgram(academics.ProgramDetails{
		DepartmentID:   dept.ID(),
		Name:           "BSc Computing",
		Level:          academicsvo.LevelBachelors,
		Description:    "Undergraduate computing",
		DurationMonths: 48,
		IsActive:       true,
	})
	require.NoError(t, err)
	require.NoError(t, programs.Create(ctx, program))

	course, err := academics.NewCourse(academics.CourseDetails{
		ProgramID: program.ID(), Code: "CS101", Title: "Intro", Semester: 1,
	})
	require.NoError(t, err)
	require.NoError(t, courses.Create(ctx, course))

	deptID := dept.ID()
	member, err := academics.NewFaculty(academics.FacultyDetails{
		FullName: "Grace Hopper", DepartmentID: &deptID, Email: "grace@campus.edu",
	})
	require.NoError(t, err)
	require.NoError(t, faculty.Create(ctx, member))

	programID := program.ID()
	applicant := newApplicant(t, "c@x.com")
	details := applicant.Details()
	details.ProgramID = &programID
	require.NoError(t, applicant.Update(details))
	require.NoError(t, applicants.Create(ctx, applicant))

	require.NoError(t, departments.Delete(ctx, dept.ID()))

	assert.Zero(t, countRows(t, gdb, &models.ProgramModel{}))
	assert.Zero(t, countRows(t, gdb, &models.CourseModel{}))

	keptFaculty, err := faculty.GetByID(ctx, member.ID())
	require.NoError(t, err)
	assert.Nil(t, keptFaculty.Details().DepartmentID)

	keptApplicant, err := applicants.GetByID(ctx, applicant.ID())
	require.NoError(t, err)
	assert.Nil(t, keptApplicant.Details().ProgramID)
}

func TestAssetCategoryRepository_DeleteProtected(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	categories := NewAssetCategoryRepository(gdb, log)
	assetRepo := NewAssetRepository(gdb, log)

	category, err := assets.NewAssetCategory(assets.CategoryDetails{Name: "Laptops"})
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, category))

	asset, err := assets.NewAsset(assets.AssetDetails{
		AssetTag:           "LT-001",
		Name:               "ThinkPad",
		CategoryID:         category.ID(),
		PurchasePriceCents: 120000,
		AcquisitionDate:    time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, assetRepo.Create(ctx, asset))

	err = categories.Delete(ctx, category.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, int64(1), countRows(t, gdb, &models.AssetCategoryModel{}))

	require.NoError(t, assetRepo.Delete(ctx, asset.ID()))
	require.NoError(t, categories.Delete(ctx, category.ID()))
	assert.Zero(t, countRows(t, gdb, &models.AssetCategoryModel{}))
}

func TestAssetRepository_DuplicateTag(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	categories := NewAssetCategoryRepository(gdb, log)
	assetRepo := NewAssetRepository(gdb, log)

	category, err := assets.NewAssetCategory(assets.CategoryDetails{Name: "Projectors"})
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, category))

	build := func() *assets.Asset {
		a, err := assets.NewAsset(assets.AssetDetails{
			AssetTag:        "PJ-1",
			Name:            "Projector",
			CategoryID:      category.ID(),
			AcquisitionDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		}, nil)
		require.NoError(t, err)
		return a
	}

	require.NoError(t, assetRepo.Create(ctx, build()))
	err = assetRepo.Create(ctx, build())
	require.Error(t, err)
	assert.Contains(t, apperrors.GetAppError(err).Fields, "asset_tag")
	assert.Equal(t, int64(1), countRows(t, gdb, &models.AssetModel{}))
}

func TestUserRepository_DeleteAppliesActorPolicies(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	users := NewUserRepository(gdb, log)
	departments := NewVisitDepartmentRepository(gdb, log)
	requests := NewVisitRequestRepository(gdb, log)

	visitor, err := user.NewUser("visitor@campus.edu", "Visitor", authorization.RoleUser)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, visitor))

	head, err := user.NewUser("head@campus.edu", "Head", authorization.RoleStaff)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, head))

	dept, err := visits.NewDepartment("Registry")
	require.NoError(t, err)
	require.NoError(t, departments.Create(ctx, dept))

	request, err := visits.NewVisitRequest(visitor.ID(), dept.ID(), "Transcript pickup", nil)
	require.NoError(t, err)
	require.NoError(t, request.Respond("APPROVED", "ok", head.ID()))
	require.NoError(t, requests.Create(ctx, request))

	// the responder leaving clears responded_by but keeps the request
	require.NoError(t, users.Delete(ctx, head.ID()))
	kept, err := requests.GetByID(ctx, request.ID())
	require.NoError(t, err)
	assert.Nil(t, kept.RespondedBy())

	// the department is protected while the request exists
	err = departments.Delete(ctx, dept.ID())
	assert.True(t, apperrors.IsConflictError(err))

	// the requester leaving removes their requests
	require.NoError(t, users.Delete(ctx, visitor.ID()))
	assert.Zero(t, countRows(t, gdb, &models.VisitRequestModel{}))
	require.NoError(t, departments.Delete(ctx, dept.ID()))
}

func TestVisitRequestRepository_ListScope(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	users := NewUserRepository(gdb, log)
	departments := NewVisitDepartmentRepository(gdb, log)
	requests := NewVisitRequestRepository(gdb, log)

	dept, err := visits.NewDepartment("Finance")
	require.NoError(t, err)
	require.NoError(t, departments.Create(ctx, dept))

	var owners []uint
	for _, email := range []string{"one@campus.edu", "two@campus.edu"} {
		u, err := user.NewUser(email, "", authorization.RoleUser)
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, u))
		owners = append(owners, u.ID())

		r, err := visits.NewVisitRequest(u.ID(), dept.ID(), "Fees", nil)
		require.NoError(t, err)
		require.NoError(t, requests.Create(ctx, r))
	}

	all, total, err := requests.List(ctx, visits.RequestFilter{BaseFilter: query.NewBaseFilter()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	own, total, err := requests.List(ctx, visits.RequestFilter{BaseFilter: query.NewBaseFilter(), RequesterID: owners[0]})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, own, 1)
	assert.Equal(t, owners[0], own[0].RequesterID())
}

func TestPartnerRepository_DeleteCascadesAffiliates(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	partners := NewPartnerRepository(gdb, log)
	affiliates := NewAffiliateRepository(gdb, log)

	north, err := outreach.NewPartner(outreach.PartnerDetails{Name: "North College", IsActive: true})
	require.NoError(t, err)
	require.NoError(t, partners.Create(ctx, north))
	south, err := outreach.NewPartner(outreach.PartnerDetails{Name: "South College"})
	require.NoError(t, err)
	require.NoError(t, partners.Create(ctx, south))

	dup, err := outreach.NewPartner(outreach.PartnerDetails{Name: "North College"})
	require.NoError(t, err)
	err = partners.Create(ctx, dup)
	require.Error(t, err)
	assert.Contains(t, apperrors.GetAppError(err).Fields, "slug")

	for _, partnerID := range []uint{north.ID(), south.ID()} {
		a, err := outreach.NewAffiliate(outreach.AffiliateDetails{PartnerID: partnerID, Name: "Law School"})
		require.NoError(t, err)
		require.NoError(t, affiliates.Create(ctx, a))
	}

	taken, err := affiliates.ExistsBySlug(ctx, north.ID(), "law-school", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = affiliates.ExistsBySlug(ctx, 404, "law-school", 0)
	require.NoError(t, err)
	assert.False(t, taken)

	found, err := partners.GetBySlug(ctx, "north-college")
	require.NoError(t, err)
	assert.Equal(t, north.ID(), found.ID())

	active, total, err := partners.List(ctx, outreach.PartnerFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, north.ID(), active[0].ID())

	require.NoError(t, partners.Delete(ctx, north.ID()))
	left, total, err := affiliates.List(ctx, outreach.AffiliateFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, south.ID(), left[0].Details().PartnerID)
}

func TestEventRepository_EndsAfter(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEventRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	create := func(title string, start time.Time, end *time.Time) *outreach.Event {
		e, err := outreach.NewEvent(outreach.EventDetails{Title: title, Description: title, StartAt: start, EndAt: end})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, e))
		return e
	}
	pastEnd := now.Add(-time.Hour)
	create("Finished", now.Add(-3*time.Hour), &pastEnd)
	create("Started without end", now.Add(-time.Minute), nil)
	runningEnd := now.Add(time.Hour)
	running := create("Running", now.Add(-2*time.Hour), &runningEnd)
	later := create("Later", now.Add(24*time.Hour), nil)

	items, total, err := repo.List(ctx, outreach.EventFilter{EndsAfter: &now})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []uint{running.ID(), later.ID()}, []uint{items[0].ID(), items[1].ID()})
}

func TestAnnouncementRepository_AttachmentsAndTemplates(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	categories := NewAnnouncementCategoryRepository(gdb, log)
	announcementRepo := NewAnnouncementRepository(gdb, log)
	attachments := NewAttachmentRepository(gdb, log)
	templates := NewTemplateRepository(gdb, log)

	category, err := announcements.NewAnnouncementCategory(announcements.CategoryDetails{Name: "Exams", IsActive: true})
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, category))

	a, err := announcements.NewAnnouncement(announcements.AnnouncementDetails{
		Title: "Exam timetable", Content: "See attached", CategoryID: category.ID(),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, announcementRepo.Create(ctx, a))

	file, err := announcements.NewAttachment(announcements.AttachmentDetails{
		AnnouncementID: a.ID(), FilePath: "timetable.pdf",
	}, nil)
	require.NoError(t, err)
	require.NoError(t, attachments.Create(ctx, file))

	require.NoError(t, attachments.IncrementDownloadCount(ctx, file.ID()))
	require.NoError(t, attachments.IncrementDownloadCount(ctx, file.ID()))
	stored, err := attachments.GetByID(ctx, file.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.DownloadCount())
	assert.Equal(t, "pdf", stored.FileType())
	assert.True(t, apperrors.IsNotFoundError(attachments.IncrementDownloadCount(ctx, 9999)))

	tpl, err := announcements.NewTemplate(announcements.TemplateDetails{Name: "Closure", ContentTemplate: "Closed on {{date}}", IsActive: true}, nil)
	require.NoError(t, err)
	require.NoError(t, templates.Create(ctx, tpl))
	clash, err := announcements.NewTemplate(announcements.TemplateDetails{Name: "Closure", ContentTemplate: "x"}, nil)
	require.NoError(t, err)
	err = templates.Create(ctx, clash)
	require.Error(t, err)
	assert.Contains(t, apperrors.GetAppError(err).Fields, "name")

	exists, err := templates.ExistsByName(ctx, "Closure", tpl.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, announcementRepo.Delete(ctx, a.ID()))
	assert.Zero(t, countRows(t, gdb, &models.AttachmentModel{}))
}

func TestAssetRepository_DeleteCascadesMaintenanceRecords(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	categories := NewAssetCategoryRepository(gdb, log)
	assetRepo := NewAssetRepository(gdb, log)
	records := NewMaintenanceRecordRepository(gdb, log)

	category, err := assets.NewAssetCategory(assets.CategoryDetails{Name: "Projectors"})
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, category))
	asset, err := assets.NewAsset(assets.AssetDetails{
		AssetTag:        "PJ-001",
		Name:            "Hall projector",
		CategoryID:      category.ID(),
		AcquisitionDate: time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, assetRepo.Create(ctx, asset))

	record, err := assets.NewMaintenanceRecord(assets.RecordDetails{
		AssetID:       asset.ID(),
		Title:         "Lamp swap",
		Description:   "Replace lamp",
		ScheduledDate: time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, records.Create(ctx, record))

	items, total, err := records.List(ctx, assets.RecordFilter{AssetID: asset.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "USD", items[0].Details().Currency)

	require.NoError(t, assetRepo.Delete(ctx, asset.ID()))
	assert.Zero(t, countRows(t, gdb, &models.MaintenanceRecordModel{}))
}
