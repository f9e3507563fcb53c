package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	out := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)

	empty := MapSlice[int, string](nil, strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestMapSliceErr(t *testing.T) {
	out, err := MapSliceErr([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)

	_, err = MapSliceErr([]string{"1", "x"}, func(s string) (int, error) {
		if s == "x" {
			return 0, errors.New("bad")
		}
		return 1, nil
	})
	assert.EqualError(t, err, "bad")
}

func TestPtrDeref(t *testing.T) {
	assert.Equal(t, 5, Deref(Ptr(5)))
	assert.Equal(t, "", Deref[string](nil))
}
