// Package assets models fixed assets, their movements, and consumable
// inventory with its stock transactions.
package assets

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

type CategoryDetails struct {
	Name        string
	Description string
}

func (c CategoryDetails) normalize() (CategoryDetails, error) {
	c.Name = strings.TrimSpace(c.Name)
	return c, shared.FirstError(
		shared.Required("name", c.Name),
		shared.MaxLength("name", c.Name, 100),
	)
}

// AssetCategory cannot be deleted while assets or inventory items use it.
type AssetCategory struct {
	shared.Base
	details CategoryDetails
}

func NewAssetCategory(details CategoryDetails) (*AssetCategory, error) {
	c, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &AssetCategory{Base: shared.NewBase(), details: c}, nil
}

func ReconstructAssetCategory(id uint, details CategoryDetails, createdAt, updatedAt time.Time) *AssetCategory {
	return &AssetCategory{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (c *AssetCategory) Details() CategoryDetails {
	return c.details
}

func (c *AssetCategory) Update(details CategoryDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	c.details = normalized
	c.Touch()
	return nil
}

type LocationDetails struct {
	Name        string
	Department  string
	Description string
	IsActive    bool
}

func (l LocationDetails) normalize() (LocationDetails, error) {
	l.Name = strings.TrimSpace(l.Name)
	return l, shared.FirstError(
		shared.Required("name", l.Name),
		shared.MaxLength("name", l.Name, 200),
	)
}

// AssetLocation is a room or store. Deleting it clears the location on
// assets, inventory items and movements.
type AssetLocation struct {
	shared.Base
	details LocationDetails
}

func NewAssetLocation(details LocationDetails) (*AssetLocation, error) {
	l, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &AssetLocation{Base: shared.NewBase(), details: l}, nil
}

func ReconstructAssetLocation(id uint, details LocationDetails, createdAt, updatedAt time.Time) *AssetLocation {
	return &AssetLocation{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (l *AssetLocation) Details() LocationDetails {
	return l.details
}

func (l *AssetLocation) Update(details LocationDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	l.details = normalized
	l.Touch()
	return nil
}
