package repository

import (
	"context"
	"errors"

	"landing-platform/internal/domain/landing"
	"landing-platform/internal/domain/locale"

	"gorm.io/gorm"
)

// LandingPageRepository implements landing.Repository on gorm.
type LandingPageRepository struct {
	db *gorm.DB
}

func NewLandingPageRepository(db *gorm.DB) *LandingPageRepository {
	return &LandingPageRepository{db: db}
}

func localeQuery(db *gorm.DB, businessUnitID, country, languageCode string) *gorm.DB {
	return db.Model(&landing.LandingPage{}).
		Where("business_unit_id = ? AND country = ? AND language_code = ?", businessUnitID, country, languageCode)
}

func firstPage(q *gorm.DB) (*landing.LandingPage, error) {
	var p landing.LandingPage
	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, landing.ErrPageNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *LandingPageRepository) FindByID(ctx context.Context, id string) (*landing.LandingPage, error) {
	return firstPage(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *LandingPageRepository) FindActive(ctx context.Context, businessUnitID, country, languageCode string) (*landing.LandingPage, error) {
	q := localeQuery(r.db.WithContext(ctx), businessUnitID, country, languageCode).
		Where("is_active = ?", true).
		Order("updated_at DESC")
	return firstPage(q)
}

func (r *LandingPageRepository) FindByLocale(ctx context.Context, businessUnitID, country, languageCode string) (*landing.LandingPage, error) {
	q := localeQuery(r.db.WithContext(ctx), businessUnitID, country, languageCode).
		Order("is_active DESC").
		Order("updated_at DESC")
	return firstPage(q)
}

func (r *LandingPageRepository) FindBySlug(ctx context.Context, slug string) (*landing.LandingPage, error) {
	return firstPage(r.db.WithContext(ctx).Where("slug = ?", slug))
}

func (r *LandingPageRepository) ListByBusinessUnit(ctx context.Context, businessUnitID string) ([]landing.LandingPage, error) {
	var pages []landing.LandingPage
	err := r.db.WithContext(ctx).
		Where("business_unit_id = ?", businessUnitID).
		Order("country ASC, language_code ASC, updated_at DESC").
		Find(&pages).Error
	return pages, err
}

// ListLocaleRefs reads only the locale columns, leaving the jsonb content behind.
func (r *LandingPageRepository) ListLocaleRefs(ctx context.Context, businessUnitID string) ([]locale.PageRef, error) {
	var refs []locale.PageRef
	err := r.db.WithContext(ctx).
		Model(&landing.LandingPage{}).
		Select("id", "country", "language_code", "slug", "is_active", "updated_at").
		Where("business_unit_id = ?", businessUnitID).
		Order("country ASC, language_code ASC").
		Scan(&refs).Error
	return refs, err
}

func (r *LandingPageRepository) ListBusinessUnitIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&landing.LandingPage{}).
		Distinct().
		Pluck("business_unit_id", &ids).Error
	return ids, err
}

func (r *LandingPageRepository) Create(ctx context.Context, p *landing.LandingPage) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *LandingPageRepository) Save(ctx context.Context, p *landing.LandingPage) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *LandingPageRepository) DeleteByLocale(ctx context.Context, businessUnitID, country, languageCode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("business_unit_id = ? AND country = ? AND language_code = ?", businessUnitID, country, languageCode).
		Delete(&landing.LandingPage{})
	return res.RowsAffected, res.Error
}

func (r *LandingPageRepository) Activate(ctx context.Context, p *landing.LandingPage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := localeQuery(tx, p.BusinessUnitID, p.Country, p.LanguageCode).
			Where("id <> ?", p.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&landing.LandingPage{}).
			Where("id = ?", p.ID).
			Update("is_active", true).Error; err != nil {
			return err
		}
		p.IsActive = true
		return nil
	})
}

func (r *LandingPageRepository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&landing.LandingPage{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return landing.ErrPageNotFound
	}
	return nil
}
