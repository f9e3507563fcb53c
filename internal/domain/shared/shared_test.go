package shared

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/shared/biztime"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Computer Science", "computer-science"},
		{"  Économie & Gestion ", "economie-gestion"},
		{"Exam Results 2024!", "exam-results-2024"},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	existing := map[string]bool{"open-day": true, "open-day-2": true}
	slug, err := UniqueSlug("open-day", func(s string) (bool, error) { return existing[s], nil })
	require.NoError(t, err)
	assert.Equal(t, "open-day-3", slug)

	_, err = UniqueSlug("x", func(string) (bool, error) { return false, errors.New("db down") })
	assert.EqualError(t, err, "db down")
}

func TestBase_TouchAdvances(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time { return fixed })
	defer restore()

	b := NewBase()
	before := b.UpdatedAt()
	b.Touch()
	assert.True(t, b.UpdatedAt().After(before))

	require.NoError(t, b.SetID(7))
	assert.Error(t, b.SetID(8))
	assert.Equal(t, uint(7), b.ID())
}

func TestFieldError(t *testing.T) {
	err := fmt.Errorf("create applicant: %w", Required("email", " "))
	fe, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, "email is required", fe.Message)

	assert.NoError(t, FirstError(nil, MaxLength("code", "CS101", 10)))
	assert.Error(t, MaxLength("code", "CS1010101010", 10))
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("email", "  A@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got)

	for _, bad := range []string{"", "no-at", "a@localhost", "a b@x.com"} {
		_, err := NormalizeEmail("email", bad)
		fe, ok := AsFieldError(err)
		require.True(t, ok, bad)
		assert.Equal(t, "email", fe.Field)
	}

	empty, err := OptionalEmail("email", "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStoredPath(t *testing.T) {
	got, err := StoredPath("logo", "partners/logos/", " /acme.png ")
	require.NoError(t, err)
	assert.Equal(t, "partners/logos/acme.png", got)

	got, err = StoredPath("logo", "partners/logos/", "partners/logos/acme.png")
	require.NoError(t, err)
	assert.Equal(t, "partners/logos/acme.png", got)

	got, err = StoredPath("logo", "partners/logos/", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = StoredPath("logo", "partners/logos/", "../../etc/passwd")
	fe, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "logo", fe.Field)
}
