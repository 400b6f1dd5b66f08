package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"landing-platform/internal/domain/businessunit"
	"landing-platform/internal/domain/landing"
	"landing-platform/internal/domain/locale"
)

const (
	buID   = "6f1c2d3e-4a5b-4c6d-8e7f-901234567890"
	buSlug = "skincoach"
)

type fakeUnits struct {
	units map[string]businessunit.BusinessUnit
}

func newFakeUnits() *fakeUnits {
	slug := buSlug
	return &fakeUnits{units: map[string]businessunit.BusinessUnit{
		buID: {ID: buID, Slug: &slug, Name: "Skin Coach"},
	}}
}

func (f *fakeUnits) FindIDBySlug(_ context.Context, slug string) (string, error) {
	for _, u := range f.units {
		if u.Slug != nil && *u.Slug == slug {
			return u.ID, nil
		}
	}
	return "", businessunit.ErrNotFound
}

func (f *fakeUnits) FindByID(_ context.Context, id string) (*businessunit.BusinessUnit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, businessunit.ErrNotFound
	}
	return &u, nil
}

// fakePages keeps rows in memory. Rows are stored by value so callers
// never share state with the store, as with a real database. Business unit
// ids compare case-insensitively, like Postgres uuid columns.
type fakePages struct {
	mu    sync.Mutex
	rows  map[string]landing.LandingPage
	seq   int
	clock time.Time
	saves int
}

func newFakePages() *fakePages {
	return &fakePages{
		rows:  map[string]landing.LandingPage{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakePages) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakePages) add(p landing.LandingPage) landing.LandingPage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		f.seq++
		p.ID = fmt.Sprintf("page-%d", f.seq)
	}
	p.UpdatedAt = f.tick()
	f.rows[p.ID] = p
	return p
}

func (f *fakePages) sorted() []landing.LandingPage {
	out := make([]landing.LandingPage, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		if out[i].LanguageCode != out[j].LanguageCode {
			return out[i].LanguageCode < out[j].LanguageCode
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (f *fakePages) pick(match func(landing.LandingPage) bool, activeFirst bool) (*landing.LandingPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found []landing.LandingPage
	for _, p := range f.sorted() {
		if match(p) {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		return nil, landing.ErrPageNotFound
	}
	if activeFirst {
		sort.SliceStable(found, func(i, j int) bool { return found[i].IsActive && !found[j].IsActive })
	}
	p := found[0]
	return &p, nil
}

func (f *fakePages) FindByID(_ context.Context, id string) (*landing.LandingPage, error) {
	return f.pick(func(p landing.LandingPage) bool { return p.ID == id }, false)
}

func (f *fakePages) FindActive(_ context.Context, bu, country, lang string) (*landing.LandingPage, error) {
	return f.pick(func(p landing.LandingPage) bool {
		return strings.EqualFold(p.BusinessUnitID, bu) && p.Country == country && p.LanguageCode == lang && p.IsActive
	}, false)
}

func (f *fakePages) FindByLocale(_ context.Context, bu, country, lang string) (*landing.LandingPage, error) {
	return f.pick(func(p landing.LandingPage) bool {
		return strings.EqualFold(p.BusinessUnitID, bu) && p.Country == country && p.LanguageCode == lang
	}, true)
}

func (f *fakePages) FindBySlug(_ context.Context, slug string) (*landing.LandingPage, error) {
	return f.pick(func(p landing.LandingPage) bool { return p.Slug != nil && *p.Slug == slug }, false)
}

func (f *fakePages) ListByBusinessUnit(_ context.Context, bu string) ([]landing.LandingPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []landing.LandingPage{}
	for _, p := range f.sorted() {
		if strings.EqualFold(p.BusinessUnitID, bu) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePages) ListLocaleRefs(ctx context.Context, bu string) ([]locale.PageRef, error) {
	pages, _ := f.ListByBusinessUnit(ctx, bu)
	refs := make([]locale.PageRef, 0, len(pages))
	for _, p := range pages {
		refs = append(refs, locale.PageRef{
			ID: p.ID, Country: p.Country, LanguageCode: p.LanguageCode,
			Slug: p.Slug, IsActive: p.IsActive, UpdatedAt: p.UpdatedAt,
		})
	}
	return refs, nil
}

func (f *fakePages) ListBusinessUnitIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range f.sorted() {
		if !seen[p.BusinessUnitID] {
			seen[p.BusinessUnitID] = true
			out = append(out, p.BusinessUnitID)
		}
	}
	return out, nil
}

func (f *fakePages) Create(_ context.Context, p *landing.LandingPage) error {
	stored := f.add(*p)
	*p = stored
	return nil
}

func (f *fakePages) Save(_ context.Context, p *landing.LandingPage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[p.ID]; !ok {
		return errors.New("save of unknown row")
	}
	p.UpdatedAt = f.tick()
	f.rows[p.ID] = *p
	f.saves++
	return nil
}

func (f *fakePages) DeleteByLocale(_ context.Context, bu, country, lang string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, p := range f.rows {
		if strings.EqualFold(p.BusinessUnitID, bu) && p.Country == country && p.LanguageCode == lang {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakePages) Activate(_ context.Context, target *landing.LandingPage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.rows {
		if strings.EqualFold(p.BusinessUnitID, target.BusinessUnitID) && p.Country == target.Country && p.LanguageCode == target.LanguageCode {
			p.IsActive = id == target.ID
			f.rows[id] = p
		}
	}
	target.IsActive = true
	return nil
}

func (f *fakePages) Deactivate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return landing.ErrPageNotFound
	}
	p.IsActive = false
	f.rows[id] = p
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	hits        int
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, bu string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, bu)
	for k := range c.entries {
		if strings.HasPrefix(k, bu+":") {
			delete(c.entries, k)
		}
	}
	return nil
}

type fakeProber map[string]int64

func (f fakeProber) Size(_ context.Context, url string) (int64, error) {
	size, ok := f[url]
	if !ok {
		return 0, errors.New("no content length")
	}
	return size, nil
}

func svcTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(pages *fakePages, cache PageCache, prober MediaProber) *LandingService {
	svc := NewLandingService(pages, newFakeUnits(), cache, prober, discardLogger(), "")
	svc.now = svcTime
	return svc
}

func draftPage(country, lang string, active bool, blocks ...landing.Block) landing.LandingPage {
	p := landing.LandingPage{
		BusinessUnitID: buID,
		Country:        country,
		LanguageCode:   lang,
		IsActive:       active,
	}
	if blocks == nil {
		blocks = []landing.Block{}
	}
	p.SetDraft(landing.Snapshot{Blocks: blocks, HeroSlides: []landing.Slide{}})
	return p
}
