package announcements

import (
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"campus/internal/domain/shared"
)

// AttachmentDir is the storage folder attachment paths live under.
const AttachmentDir = "announcements_attachments/"

type AttachmentDetails struct {
	AnnouncementID uint
	FilePath       string
	Filename       string
}

func (a AttachmentDetails) normalize() (AttachmentDetails, error) {
	if a.AnnouncementID == 0 {
		return a, shared.NewFieldError("announcement_id", "announcement_id is required")
	}
	stored, err := shared.StoredPath("file", AttachmentDir, a.FilePath)
	if err != nil {
		return a, err
	}
	if err := shared.Required("file", stored); err != nil {
		return a, err
	}
	a.FilePath = stored
	a.Filename = strings.TrimSpace(a.Filename)
	if a.Filename == "" {
		a.Filename = path.Base(a.FilePath)
	}
	return a, shared.MaxLength("filename", a.Filename, 255)
}

// FileType is the lower-case extension of name without the dot.
func FileType(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// Attachment is a file published with an announcement.
type Attachment struct {
	shared.Base
	details       AttachmentDetails
	uploadedBy    *uint
	downloadCount int
}

func NewAttachment(details AttachmentDetails, uploadedBy *uint) (*Attachment, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Attachment{Base: shared.NewBase(), details: d, uploadedBy: uploadedBy}, nil
}

func ReconstructAttachment(id uint, details AttachmentDetails, uploadedBy *uint, downloadCount int, uploadedAt, updatedAt time.Time) *Attachment {
	return &Attachment{
		Base:          shared.ReconstructBase(id, uploadedAt, updatedAt),
		details:       details,
		uploadedBy:    uploadedBy,
		downloadCount: downloadCount,
	}
}

func (a *Attachment) Details() AttachmentDetails { return a.details }
func (a *Attachment) FileType() string           { return FileType(a.details.FilePath) }
func (a *Attachment) UploadedBy() *uint          { return a.uploadedBy }
func (a *Attachment) DownloadCount() int         { return a.downloadCount }
func (a *Attachment) UploadedAt() time.Time      { return a.CreatedAt() }

// Update may rename the file but never moves it to another announcement.
func (a *Attachment) Update(details AttachmentDetails) error {
	details.AnnouncementID = a.details.AnnouncementID
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = normalized
	a.Touch()
	return nil
}

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

type TemplateDetails struct {
	Name            string
	Description     string
	ContentTemplate string
	CategoryID      *uint
	IsActive        bool
}

func (t TemplateDetails) normalize() (TemplateDetails, error) {
	t.Name = strings.TrimSpace(t.Name)
	return t, shared.FirstError(
		shared.Required("name", t.Name),
		shared.MaxLength("name", t.Name, 200),
		shared.Required("content_template", t.ContentTemplate),
	)
}

// Template is reusable announcement content with {{field}} placeholders.
// Names are unique. Deleting its category leaves it uncategorised.
type Template struct {
	shared.Base
	details   TemplateDetails
	createdBy *uint
}

func NewTemplate(details TemplateDetails, createdBy *uint) (*Template, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Template{Base: shared.NewBase(), details: d, createdBy: createdBy}, nil
}

func ReconstructTemplate(id uint, details TemplateDetails, createdBy *uint, createdAt, updatedAt time.Time) *Template {
	return &Template{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details, createdBy: createdBy}
}

func (t *Template) Details() TemplateDetails { return t.details }
func (t *Template) CreatedBy() *uint         { return t.createdBy }

func (t *Template) Update(details TemplateDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	t.details = normalized
	t.Touch()
	return nil
}

// Placeholders lists the distinct field names the template expects, sorted.
func (t *Template) Placeholders() []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range placeholder.FindAllStringSubmatch(t.details.ContentTemplate, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	sort.Strings(out)
	return out
}

// Render fills the placeholders from values. Fields without a value are
// left in place and reported as missing.
func (t *Template) Render(values map[string]string) (string, []string) {
	missing := map[string]bool{}
	out := placeholder.ReplaceAllStringFunc(t.details.ContentTemplate, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := values[name]; ok {
			return v
		}
		missing[name] = true
		return m
	})
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return out, names
}
