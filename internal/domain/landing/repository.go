package landing

import (
	"context"
	"errors"

	"landing-platform/internal/domain/locale"
)

var ErrLocaleExists = errors.New("landing page already exists for locale")

// Repository defines landing page persistence. Lookups return
// ErrPageNotFound on a miss.
type Repository interface {
	FindByID(ctx context.Context, id string) (*LandingPage, error)
	// FindActive returns the active row for a locale. If several rows are
	// active the most recently updated one wins.
	FindActive(ctx context.Context, businessUnitID, country, languageCode string) (*LandingPage, error)
	// FindByLocale returns the row edited for a locale, preferring an active one.
	FindByLocale(ctx context.Context, businessUnitID, country, languageCode string) (*LandingPage, error)
	FindBySlug(ctx context.Context, slug string) (*LandingPage, error)

	ListByBusinessUnit(ctx context.Context, businessUnitID string) ([]LandingPage, error)
	ListLocaleRefs(ctx context.Context, businessUnitID string) ([]locale.PageRef, error)
	ListBusinessUnitIDs(ctx context.Context) ([]string, error)

	Create(ctx context.Context, p *LandingPage) error
	Save(ctx context.Context, p *LandingPage) error
	DeleteByLocale(ctx context.Context, businessUnitID, country, languageCode string) (int64, error)

	// Activate marks p active and every other row of its locale inactive.
	Activate(ctx context.Context, p *LandingPage) error
	Deactivate(ctx context.Context, id string) error
}
