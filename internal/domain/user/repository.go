package user

import (
	"context"

	"campus/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Role   string
	Search string
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
