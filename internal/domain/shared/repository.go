package shared

import "context"

// CRUD is the persistence contract every aggregate repository starts from.
// GetByID, Update and Delete return a not-found AppError for a missing row.
type CRUD[E any] interface {
	Create(ctx context.Context, entity E) error
	GetByID(ctx context.Context, id uint) (E, error)
	Update(ctx context.Context, entity E) error
	Delete(ctx context.Context, id uint) error
}
