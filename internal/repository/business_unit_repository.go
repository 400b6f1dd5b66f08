package repository

import (
	"context"
	"errors"

	"landing-platform/internal/domain/businessunit"

	"gorm.io/gorm"
)

// BusinessUnitRepository implements businessunit.Repository on gorm.
type BusinessUnitRepository struct {
	db *gorm.DB
}

func NewBusinessUnitRepository(db *gorm.DB) *BusinessUnitRepository {
	return &BusinessUnitRepository{db: db}
}

func (r *BusinessUnitRepository) FindIDBySlug(ctx context.Context, slug string) (string, error) {
	var bu businessunit.BusinessUnit
	err := r.db.WithContext(ctx).
		Select("id").
		Where("slug = ?", slug).
		First(&bu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", businessunit.ErrNotFound
		}
		return "", err
	}
	return bu.ID, nil
}

func (r *BusinessUnitRepository) FindByID(ctx context.Context, id string) (*businessunit.BusinessUnit, error) {
	var bu businessunit.BusinessUnit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, businessunit.ErrNotFound
		}
		return nil, err
	}
	return &bu, nil
}
