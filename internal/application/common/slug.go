package common

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/errors"
)

// SlugExists reports whether a slug is used by a record other than excludeID.
type SlugExists func(ctx context.Context, slug string, excludeID uint) (bool, error)

// SlugLookup adapts a GetBySlug repository method to SlugExists.
func SlugLookup[E interface{ ID() uint }](get func(ctx context.Context, slug string) (E, error)) SlugExists {
	return func(ctx context.Context, slug string, excludeID uint) (bool, error) {
		e, err := get(ctx, slug)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return false, nil
			}
			return false, err
		}
		return e.ID() != excludeID, nil
	}
}

// FreeSlug picks the slug to store for record id. An explicit slug wins over
// one derived from the title; either gets a -2, -3 ... suffix while taken.
// An update with a blank slug returns "" so the record keeps its own.
func FreeSlug(ctx context.Context, exists SlugExists, id uint, slug, title string) (string, error) {
	if slug == "" && id != 0 {
		return "", nil
	}
	return DerivedSlug(ctx, exists, id, slug, title)
}

// DerivedSlug is FreeSlug for records that re-derive a blank slug from the
// title on every save.
func DerivedSlug(ctx context.Context, exists SlugExists, id uint, slug, title string) (string, error) {
	base := shared.Slugify(slug)
	if base == "" {
		base = shared.Slugify(title)
	}
	if base == "" {
		return "", nil
	}
	return shared.UniqueSlug(base, func(candidate string) (bool, error) {
		return exists(ctx, candidate, id)
	})
}
