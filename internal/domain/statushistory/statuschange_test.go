package statushistory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusChange(t *testing.T) {
	c, err := NewStatusChange("applicant", 3, "draft", "submitted", 1, "docs complete")
	require.NoError(t, err)
	assert.Equal(t, "applicant", c.EntityType())
	assert.Equal(t, "draft", c.OldStatus())
	assert.Equal(t, "submitted", c.NewStatus())
	assert.False(t, c.ChangedAt().IsZero())

	_, err = NewStatusChange("", 3, "draft", "submitted", 1, "")
	assert.Error(t, err)
	_, err = NewStatusChange("applicant", 0, "draft", "submitted", 1, "")
	assert.Error(t, err)
	_, err = NewStatusChange("applicant", 3, "draft", "", 1, "")
	assert.Error(t, err)
}
