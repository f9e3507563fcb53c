// Package common holds helpers shared by application services.
package common

import (
	"campus/internal/domain/shared"
	"campus/internal/shared/errors"
)

// DomainError converts an error raised by a domain constructor or mutator
// into a 400 response, keeping field attribution when present. AppErrors
// pass through unchanged.
func DomainError(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	if fe, ok := shared.AsFieldError(err); ok {
		return errors.NewFieldValidationError(fe.Field, fe.Message)
	}
	return errors.NewValidationError(err.Error())
}

// PersistenceError passes AppErrors through and hides everything else
// behind a generic internal error.
func PersistenceError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError(message)
}

// ActorRef turns an authenticated user ID into an optional reference.
// Zero means the write did not come from a signed-in user.
func ActorRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
