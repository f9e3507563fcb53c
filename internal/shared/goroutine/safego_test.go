package goroutine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"campus/internal/shared/logger"
)

func TestRun_ReturnsResult(t *testing.T) {
	want := errors.New("listener closed")
	err := <-Run(logger.NewNopLogger(), "server", func() error { return want })
	assert.ErrorIs(t, err, want)
}

func TestRun_RecoversPanic(t *testing.T) {
	err := <-Run(logger.NewNopLogger(), "server", func() error { panic("boom") })
	assert.EqualError(t, err, "server panicked: boom")
}
