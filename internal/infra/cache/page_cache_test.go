package cache

import (
	"context"
	"path"
	"testing"
)

func TestBusinessUnitPatternMatchesOnlyItsKeys(t *testing.T) {
	pattern := businessUnitPattern("bu-1")

	tests := map[string]bool{
		pageKey("bu-1:US:en"):    true,
		pageKey("bu-1:TW:zh-TW"): true,
		pageKey("bu-10:US:en"):   false,
		pageKey("bu-2:US:en"):    false,
		"other:bu-1:US:en":       false,
	}
	for key, want := range tests {
		// path.Match follows the same glob rules as redis for these patterns.
		got, err := path.Match(pattern, key)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("match(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestNewRedisClientWithoutURL(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "")
	if err != nil || client != nil {
		t.Errorf("got %v, %v", client, err)
	}
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "http://not-redis"); err == nil {
		t.Error("expected parse error")
	}
}
