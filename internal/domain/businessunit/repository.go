package businessunit

import "context"

// Repository is the storage the service layer needs for business units.
type Repository interface {
	SlugLookup
	FindByID(ctx context.Context, id string) (*BusinessUnit, error)
}
