package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNewsPost(t *testing.T) {
	p, err := NewNewsPost(PostDetails{Title: "Graduation 2024", Content: "Congratulations"})
	require.NoError(t, err)
	assert.Equal(t, "graduation-2024", p.Details().Slug)

	p, err = NewNewsPost(PostDetails{Title: "Graduation 2024", Slug: "grad", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "grad", p.Details().Slug)

	_, err = NewNewsPost(PostDetails{Title: "No body"})
	assert.Error(t, err)
}
