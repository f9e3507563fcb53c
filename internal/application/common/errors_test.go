package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/shared"
	apperrors "campus/internal/shared/errors"
)

func TestDomainError(t *testing.T) {
	assert.NoError(t, DomainError(nil))

	fieldErr := DomainError(fmt.Errorf("new applicant: %w", shared.Required("email", "")))
	appErr := apperrors.GetAppError(fieldErr)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "email is required", appErr.Fields["email"])

	plain := DomainError(errors.New("end date must not be before start date"))
	assert.True(t, apperrors.IsValidationError(plain))

	notFound := apperrors.NewNotFoundError("program not found")
	assert.Same(t, notFound, DomainError(notFound))
}

func TestPersistenceError(t *testing.T) {
	err := PersistenceError(errors.New("connection refused"), "failed to save applicant")
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, "failed to save applicant", appErr.Message)
}
