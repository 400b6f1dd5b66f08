package service

import (
	"context"
	"strings"
)

// PageCache stores rendered live page responses. A nil PageCache disables caching.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Invalidate drops every entry of a business unit. The id arrives lowercased.
	Invalidate(ctx context.Context, businessUnitID string) error
}

// MediaProber reports the byte size of a remote media file.
type MediaProber interface {
	Size(ctx context.Context, url string) (int64, error)
}

// pageCacheKey lowercases the business unit id so UUIDs written in any case
// share one entry.
func pageCacheKey(businessUnitID, country, languageCode string) string {
	return strings.ToLower(businessUnitID) + ":" + country + ":" + languageCode
}
