package announcements

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common/lifecycle"
	"campus/internal/application/testutil"
	"campus/internal/domain/announcements"
	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

type mockAnnouncementRepository struct {
	*testutil.MemoryRepository[*announcements.Announcement, announcements.AnnouncementFilter]
	views map[uint]int
}

func (m *mockAnnouncementRepository) ListPublished(_ context.Context, filter announcements.PublishedFilter) ([]*announcements.Announcement, int64, error) {
	var out []*announcements.Announcement
	for _, a := range m.All() {
		if a.IsPublished(filter.Now) {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockAnnouncementRepository) GetBySlug(_ context.Context, slug string) (*announcements.Announcement, error) {
	for _, a := range m.All() {
		if a.Details().Slug == slug {
			return a, nil
		}
	}
	return nil, errors.NewNotFoundError("announcement not found")
}

func (m *mockAnnouncementRepository) ExistsBySlug(_ context.Context, slug string, excludeID uint) (bool, error) {
	for _, a := range m.All() {
		if a.Details().Slug == slug && a.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAnnouncementRepository) IncrementViewCount(_ context.Context, id uint) error {
	m.views[id]++
	return nil
}

func (m *mockAnnouncementRepository) Analytics(_ context.Context, id uint) (*announcements.Analytics, error) {
	return &announcements.Analytics{AnnouncementID: id, Views: m.views[id]}, nil
}

type mockAckRepository struct {
	*testutil.MemoryRepository[*announcements.Acknowledgment, struct{}]
}

func (m *mockAckRepository) Exists(_ context.Context, announcementID, userID uint) (bool, error) {
	for _, a := range m.All() {
		if a.AnnouncementID() == announcementID && a.UserID() == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAckRepository) ListByAnnouncement(_ context.Context, announcementID uint, _ query.PageFilter) ([]*announcements.Acknowledgment, int64, error) {
	var out []*announcements.Acknowledgment
	for _, a := range m.All() {
		if a.AnnouncementID() == announcementID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

type mockAttachmentRepository struct {
	*testutil.MemoryRepository[*announcements.Attachment, announcements.AttachmentFilter]
}

func (m *mockAttachmentRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	a, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	m.Seed(announcements.ReconstructAttachment(a.ID(), a.Details(), a.UploadedBy(), a.DownloadCount()+1, a.UploadedAt(), a.UpdatedAt()))
	return nil
}

type mockTemplateRepository struct {
	*testutil.MemoryRepository[*announcements.Template, announcements.TemplateFilter]
}

func (m *mockTemplateRepository) ExistsByName(_ context.Context, name string, excludeID uint) (bool, error) {
	for _, t := range m.All() {
		if t.Details().Name == name && t.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type paragraphRenderer struct{}

func (paragraphRenderer) Render(md string) (string, error) { return "<p>" + md + "</p>", nil }

type mockMailer struct{ sent []string }

func (m *mockMailer) Send(_ context.Context, to, _, _ string) error {
	if strings.Contains(to, "bounce") {
		return fmt.Errorf("mailbox unavailable")
	}
	m.sent = append(m.sent, to)
	return nil
}

type fixture struct {
	svc           *Service
	announcements *mockAnnouncementRepository
	acks          *mockAckRepository
	comments      *testutil.MemoryRepository[*announcements.Comment, announcements.CommentFilter]
	distributions *testutil.MemoryRepository[*announcements.Distribution, announcements.DistributionFilter]
	attachments   *mockAttachmentRepository
	templates     *mockTemplateRepository
	mailer        *mockMailer
	history       *testutil.MemoryHistory
}

func newFixture() *fixture {
	f := &fixture{
		announcements: &mockAnnouncementRepository{
			MemoryRepository: testutil.NewMemoryRepository[*announcements.Announcement, announcements.AnnouncementFilter](),
			views:            map[uint]int{},
		},
		acks:          &mockAckRepository{testutil.NewMemoryRepository[*announcements.Acknowledgment, struct{}]()},
		comments:      testutil.NewMemoryRepository[*announcements.Comment, announcements.CommentFilter](),
		distributions: testutil.NewMemoryRepository[*announcements.Distribution, announcements.DistributionFilter](),
		attachments:   &mockAttachmentRepository{testutil.NewMemoryRepository[*announcements.Attachment, announcements.AttachmentFilter]()},
		templates:     &mockTemplateRepository{testutil.NewMemoryRepository[*announcements.Template, announcements.TemplateFilter]()},
		mailer:        &mockMailer{},
		history:       &testutil.MemoryHistory{},
	}
	f.attachments.ListFunc = func(filter announcements.AttachmentFilter, rows []*announcements.Attachment) ([]*announcements.Attachment, int64, error) {
		var out []*announcements.Attachment
		for _, a := range rows {
			if filter.AnnouncementID == 0 || a.Details().AnnouncementID == filter.AnnouncementID {
				out = append(out, a)
			}
		}
		return out, int64(len(out)), nil
	}
	log := logger.NewNopLogger()
	f.svc = NewService(Repositories{
		Categories:      testutil.NewMemoryRepository[*announcements.AnnouncementCategory, announcements.CategoryFilter](),
		Announcements:   f.announcements,
		Acknowledgments: f.acks,
		Comments:        f.comments,
		Distributions:   f.distributions,
		Attachments:     f.attachments,
		Templates:       f.templates,
	}, paragraphRenderer{}, f.mailer, &testutil.Tx{}, lifecycle.NewJournal(f.history, nil, log), log)
	return f
}

func (f *fixture) create(t *testing.T, title string, allowComments bool) *announcements.Announcement {
	t.Helper()
	a, err := f.svc.Announcements.Create(context.Background(), announcements.AnnouncementDetails{
		Title:         title,
		Content:       "Lecture halls close at **noon**.",
		CategoryID:    1,
		AllowComments: allowComments,
	}, 1)
	require.NoError(t, err)
	return a
}

func (f *fixture) published(t *testing.T, title string, allowComments bool) *announcements.Announcement {
	t.Helper()
	a := f.create(t, title, allowComments)
	_, err := f.svc.AnnouncementStatus.Execute(context.Background(), lifecycle.ChangeStatusCommand{
		ID: a.ID(), Status: "published", ActorID: 1,
	})
	require.NoError(t, err)
	return a
}

func TestCreateAnnouncement_DeduplicatesSlug(t *testing.T) {
	f := newFixture()

	first := f.create(t, "Open Day", false)
	second := f.create(t, "Open Day", false)
	third := f.create(t, "Open Day!", false)

	assert.Equal(t, "open-day", first.Details().Slug)
	assert.Equal(t, "open-day-2", second.Details().Slug)
	assert.Equal(t, "open-day-3", third.Details().Slug)
	assert.Equal(t, vo.StatusDraft, first.Status())

	// A blank slug on update keeps the stored one.
	updated, err := f.svc.Announcements.Update(context.Background(), second.ID(), announcements.AnnouncementDetails{
		Title: "Open Day (rescheduled)", Content: "New date", CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "open-day-2", updated.Details().Slug)
}

func TestChangeStatus_PublishStampsPublishedAt(t *testing.T) {
	f := newFixture()
	a := f.published(t, "Exam timetable", false)

	assert.Equal(t, vo.StatusPublished, a.Status())
	require.NotNil(t, a.Details().PublishedAt)
	require.Len(t, f.history.Changes, 1)
	assert.Equal(t, "draft", f.history.Changes[0].OldStatus())
}

func TestBulkAction(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.create(t, "First", false)
	b := f.create(t, "Second", false)

	result, err := f.svc.BulkAction(ctx, []uint{a.ID(), b.ID()}, ActionPublish, 1)
	require.NoError(t, err)
	assert.Len(t, result.Updated, 2)
	assert.NotNil(t, b.Details().PublishedAt)

	_, err = f.svc.BulkAction(ctx, []uint{a.ID(), 50}, ActionMarkFeatured, 1)
	require.NoError(t, err)
	assert.True(t, a.Details().IsFeatured)
	assert.Len(t, f.history.Changes, 2, "featuring is not a status change")

	_, err = f.svc.BulkAction(ctx, []uint{a.ID()}, ActionArchive, 1)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusArchived, a.Status())

	_, err = f.svc.BulkAction(ctx, []uint{a.ID()}, "delete_everything", 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "action")
}

func TestReadBySlug(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.published(t, "Library hours", false)
	draft := f.create(t, "Unreleased", false)

	got, err := f.svc.ReadBySlug(ctx, a.Details().Slug)
	require.NoError(t, err)
	assert.Equal(t, "<p>Lecture halls close at **noon**.</p>", got.HTML)
	assert.Equal(t, 1, f.announcements.views[a.ID()])

	_, err = f.svc.ReadBySlug(ctx, draft.Details().Slug)
	assert.True(t, errors.IsNotFoundError(err))

	items, total, err := f.svc.ListPublished(ctx, query.PageFilter{Page: 1, PageSize: 20}, 0, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, a.ID(), items[0].ID())

	stats, err := f.svc.Analytics(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Views)
}

func TestAcknowledge_OncePerUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.published(t, "Fire drill", false)

	_, err := f.svc.Acknowledge(ctx, a.ID(), 8, "read")
	require.NoError(t, err)

	_, err = f.svc.Acknowledge(ctx, a.ID(), 8, "again")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 1, f.acks.Len())

	draft := f.create(t, "Not yet", false)
	_, err = f.svc.Acknowledge(ctx, draft.ID(), 8, "")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddComment_RespectsAllowComments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	open := f.published(t, "Town hall", true)
	closed := f.published(t, "Notice", false)

	c, err := f.svc.AddComment(ctx, open.ID(), 3, "  See you there ")
	require.NoError(t, err)
	assert.Equal(t, "See you there", c.Content())
	assert.True(t, c.IsApproved())

	_, err = f.svc.AddComment(ctx, closed.ID(), 3, "Hello")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 1, f.comments.Len())

	result, err := f.svc.ApproveComments(ctx, []uint{c.ID(), 99}, false)
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID()}, result.Updated)
	assert.Equal(t, []uint{99}, result.Missing)
	assert.False(t, c.IsApproved())
}

func TestDispatch_RecordsOutcome(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.published(t, "Graduation", false)
	d, err := f.svc.Distributions.Create(ctx, announcements.DistributionDetails{
		AnnouncementID: a.ID(), Method: vo.MethodEmail, RecipientGroup: "final-year",
	}, 1)
	require.NoError(t, err)

	got, err := f.svc.Dispatch(ctx, d.ID(), []string{"a@uni.edu", "bounce@uni.edu", "b@uni.edu"}, 1)
	require.NoError(t, err)
	assert.Equal(t, vo.DistributionSent, got.Status())
	assert.Equal(t, 2, got.SuccessCount())
	assert.Equal(t, 1, got.FailureCount())
	assert.Equal(t, 3, got.Details().RecipientCount)
	assert.Contains(t, got.FailureReason(), "bounce@uni.edu")
	assert.NotNil(t, got.SentAt())
	assert.Equal(t, []string{"a@uni.edu", "b@uni.edu"}, f.mailer.sent)

	last := f.history.Changes[len(f.history.Changes)-1]
	assert.Equal(t, EntityDistribution, last.EntityType())
	assert.Equal(t, "pending", last.OldStatus())
	assert.Equal(t, "sent", last.NewStatus())
}

func TestDispatch_AllFailed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.published(t, "Closure", false)
	d, err := f.svc.Distributions.Create(ctx, announcements.DistributionDetails{AnnouncementID: a.ID(), Method: vo.MethodEmail}, 1)
	require.NoError(t, err)

	got, err := f.svc.Dispatch(ctx, d.ID(), []string{"bounce@uni.edu"}, 1)
	require.NoError(t, err)
	assert.Equal(t, vo.DistributionFailed, got.Status())
	assert.Nil(t, got.SentAt())

	_, err = f.svc.Dispatch(ctx, d.ID(), nil, 1)
	assert.True(t, errors.IsValidationError(err))
}

func TestAttachments_DownloadCountsPublishedOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	draft := f.create(t, "Draft notice", false)
	live := f.published(t, "Live notice", false)

	_, err := f.svc.Attachments.Create(ctx, announcements.AttachmentDetails{AnnouncementID: 404, FilePath: "x.pdf"}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "announcement_id")

	hidden, err := f.svc.Attachments.Create(ctx, announcements.AttachmentDetails{AnnouncementID: draft.ID(), FilePath: "draft.pdf"}, 1)
	require.NoError(t, err)
	shown, err := f.svc.Attachments.Create(ctx, announcements.AttachmentDetails{AnnouncementID: live.ID(), FilePath: "live.pdf"}, 1)
	require.NoError(t, err)
	require.NotNil(t, shown.UploadedBy())

	got, err := f.svc.DownloadAttachment(ctx, shown.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, got.DownloadCount())
	got, err = f.svc.DownloadAttachment(ctx, shown.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, got.DownloadCount())

	_, err = f.svc.DownloadAttachment(ctx, hidden.ID())
	assert.True(t, errors.IsNotFoundError(err))
	stored, err := f.attachments.GetByID(ctx, hidden.ID())
	require.NoError(t, err)
	assert.Zero(t, stored.DownloadCount())

	files, total, err := f.svc.ListPublishedAttachments(ctx, live.ID(), query.PageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, shown.ID(), files[0].ID())
	_, _, err = f.svc.ListPublishedAttachments(ctx, draft.ID(), query.PageFilter{})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTemplates_UniqueNameAndRender(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tmpl, err := f.svc.Templates.Create(ctx, announcements.TemplateDetails{
		Name: "Closure", ContentTemplate: "The {{building}} closes on {{date}}.", IsActive: true,
	}, 4)
	require.NoError(t, err)

	_, err = f.svc.Templates.Create(ctx, announcements.TemplateDetails{Name: " Closure ", ContentTemplate: "x"}, 4)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "name")

	// renaming to its own name is fine
	_, err = f.svc.Templates.Update(ctx, tmpl.ID(), announcements.TemplateDetails{
		Name: "Closure", ContentTemplate: "The {{building}} closes on {{date}}.", IsActive: true,
	})
	require.NoError(t, err)

	out, err := f.svc.RenderTemplate(ctx, tmpl.ID(), map[string]string{"building": "library"})
	require.NoError(t, err)
	assert.Equal(t, "The library closes on {{date}}.", out.Content)
	assert.Equal(t, []string{"date"}, out.Missing)

	inactive, err := f.svc.Templates.Create(ctx, announcements.TemplateDetails{Name: "Old", ContentTemplate: "x"}, 4)
	require.NoError(t, err)
	_, err = f.svc.RenderTemplate(ctx, inactive.ID(), nil)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "template")

	_, err = f.svc.RenderTemplate(ctx, 404, nil)
	assert.True(t, errors.IsNotFoundError(err))
}
