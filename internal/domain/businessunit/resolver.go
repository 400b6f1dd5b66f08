package businessunit

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var ErrNotFound = errors.New("business unit not found")

var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// SlugLookup finds a business unit id by exact slug.
// Implementations return ErrNotFound on a miss.
type SlugLookup interface {
	FindIDBySlug(ctx context.Context, slug string) (string, error)
}

type Resolver struct {
	lookup SlugLookup
}

func NewResolver(lookup SlugLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// Resolve turns a path segment into a business unit id.
// UUID-shaped input is returned as-is without checking it exists; the
// page fetch that follows comes back empty for an unknown id anyway.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (string, error) {
	if identifier == "" {
		return "", ErrNotFound
	}
	if IsUUID(identifier) {
		return identifier, nil
	}

	id, err := r.lookup.FindIDBySlug(ctx, identifier)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		return "", ErrNotFound
	}
	return id, nil
}

// ResolveOr resolves identifier, falling back to the caller's default when it
// is empty or unknown. The fallback itself goes through Resolve, so it may be
// a slug too. Lookup failures other than ErrNotFound are returned.
func (r *Resolver) ResolveOr(ctx context.Context, identifier, fallback string) (string, error) {
	id, err := r.Resolve(ctx, identifier)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) || fallback == "" {
		return "", err
	}
	return r.Resolve(ctx, fallback)
}
