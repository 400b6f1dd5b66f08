package businessunit

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeLookup struct {
	slugs map[string]string
	err   error
	calls int
}

func (f *fakeLookup) FindIDBySlug(_ context.Context, slug string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	id, ok := f.slugs[slug]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

const skincoachID = "77313e61-2a19-4f3e-823b-80390dde8bd2"

func TestResolveUUIDSkipsLookup(t *testing.T) {
	lookup := &fakeLookup{}
	r := NewResolver(lookup)

	for _, id := range []string{skincoachID, "77313E61-2A19-4F3E-823B-80390DDE8BD2"} {
		got, err := r.Resolve(context.Background(), id)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", id, err)
		}
		if got != id {
			t.Errorf("Resolve(%q) = %q", id, got)
		}
	}
	if lookup.calls != 0 {
		t.Errorf("slug lookup called %d times for UUID input", lookup.calls)
	}
}

func TestResolveSlug(t *testing.T) {
	r := NewResolver(&fakeLookup{slugs: map[string]string{"skincoach": skincoachID}})

	got, err := r.Resolve(context.Background(), "skincoach")
	if err != nil || got != skincoachID {
		t.Fatalf("Resolve(skincoach) = %q, %v", got, err)
	}

	_, err = r.Resolve(context.Background(), "SkinCoach")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("slug match must be exact, got err %v", err)
	}

	_, err = r.Resolve(context.Background(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("empty identifier: got err %v", err)
	}
}

func TestResolveOr(t *testing.T) {
	r := NewResolver(&fakeLookup{slugs: map[string]string{"skincoach": skincoachID}})
	ctx := context.Background()

	got, err := r.ResolveOr(ctx, "", "skincoach")
	if err != nil || got != skincoachID {
		t.Errorf("empty identifier with fallback = %q, %v", got, err)
	}

	got, err = r.ResolveOr(ctx, "missing", skincoachID)
	if err != nil || got != skincoachID {
		t.Errorf("unknown slug with fallback = %q, %v", got, err)
	}

	_, err = r.ResolveOr(ctx, "missing", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("no fallback: got err %v", err)
	}
}

func TestResolveOrKeepsLookupFailures(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewResolver(&fakeLookup{err: boom})

	_, err := r.ResolveOr(context.Background(), "skincoach", skincoachID)
	if !errors.Is(err, boom) {
		t.Errorf("expected lookup error to surface, got %v", err)
	}
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: skincoachID, want: true},
		{in: strings.ToUpper(skincoachID), want: true},
		{in: "skincoach", want: false},
		{in: "77313e61-2a19-4f3e-823b-80390dde8bd", want: false},
		{in: "{77313e61-2a19-4f3e-823b-80390dde8bd2}", want: false},
		{in: "77313e612a194f3e823b80390dde8bd2", want: false},
	}
	for _, tt := range tests {
		if got := IsUUID(tt.in); got != tt.want {
			t.Errorf("IsUUID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
